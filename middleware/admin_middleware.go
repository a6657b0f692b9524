package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/config"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// AdminGateMiddleware validates the console token and checks the session is
// still live in Redis. The gate it enforces is the shared-secret unlock from
// /admin/login, not a security boundary.
func AdminGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Cookie first, then Authorization header
		token, err := c.Cookie("admin_token")
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
				c.Abort()
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := services.VerifyGateToken(token)
		if err != nil {
			log.Printf("[gate] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		if !services.GetAdminGateService().SessionActive(ctx, token) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session expired"))
			c.Abort()
			return
		}

		c.Set("gateSessionID", claims.SessionID)
		c.Set("gateToken", token)

		c.Next()
	}
}
