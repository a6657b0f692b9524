package auth_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Lock the console again
// @Description Revokes the server-side session and clears the gate cookie.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/auth/logout [post]
func Logout(c *gin.Context) {
	if token, ok := c.Get("gateToken"); ok {
		if t, ok := token.(string); ok {
			_ = services.GetAdminGateService().RevokeSession(c.Request.Context(), t)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Console locked", nil))
}

// Session godoc
// @Summary Check whether the gate is open
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /admin/auth/session [get]
func Session(c *gin.Context) {
	sessionID, _ := c.Get("gateSessionID")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session active", gin.H{
		"session_id": sessionID,
	}))
}
