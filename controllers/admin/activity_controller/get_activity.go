package activity_controller

import (
	"net/http"
	"strconv"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/middleware"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetActivity godoc
// @Summary Recent console write activity
// @Description Newest first, capped at 500 retained entries.
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {object} models.ApiResponse{data=[]middleware.ActivityEntry}
// @Router /admin/activity [get]
func GetActivity(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	entries, err := middleware.RecentActivity(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not load activity"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Activity retrieved", entries))
}
