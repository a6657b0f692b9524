package auth_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoginRequest carries the shared console secret. There are no accounts —
// one secret gates the whole console.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

const gateCookieMaxAge = 24 * 60 * 60

// Login godoc
// @Summary Unlock the admin console
// @Description Verifies the shared secret, mints a 24h gate token and sets it
// @Description as an HTTP-only cookie. A wrong secret gets a transient message
// @Description and nothing else — no lockout, no attempt counter.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Console secret"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Incorrect password"
// @Router /admin/auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Incorrect password"))
		return
	}

	gate := services.GetAdminGateService()
	if gate == nil || !gate.VerifySecret(req.Password) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Incorrect password"))
		return
	}

	sessionID := uuid.NewString()
	token, err := services.GenerateGateToken(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not create session"))
		return
	}

	if err := gate.CreateSession(c.Request.Context(), sessionID, token, c.ClientIP(), c.Request.UserAgent()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not create session"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("admin_token", token, gateCookieMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Console unlocked", gin.H{
		"token": token,
	}))
}
