package settings_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// UpdateSettings godoc
// @Summary Partial settings update
// @Description Only the sections present in the payload are touched, and within
// @Description a section only non-empty fields overwrite the stored value — the
// @Description console saves one panel at a time.
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateSettingsRequest true "Sections to update"
// @Success 200 {object} models.ApiResponse{data=models.SiteSettings}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/settings [patch]
func UpdateSettings(c *gin.Context) {
	var req models.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	site := store.Get().Site
	if req.Contact != nil {
		site.UpdateContact(*req.Contact)
	}
	if req.Social != nil {
		site.UpdateSocial(*req.Social)
	}
	if req.Newsletter != nil {
		site.UpdateNewsletter(*req.Newsletter)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings updated", site.Settings()))
}
