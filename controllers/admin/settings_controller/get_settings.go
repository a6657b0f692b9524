package settings_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetSettings godoc
// @Summary Current site settings
// @Tags Admin - Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.SiteSettings}
// @Router /admin/settings [get]
func GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved", store.Get().Site.Settings()))
}
