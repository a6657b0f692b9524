package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartSessionCookie = "cart_session"

// one week; the bag itself lives only in process memory, the cookie just keeps
// the same visitor mapped to the same bag between requests.
const cartSessionMaxAge = 7 * 24 * 60 * 60

// EnsureCartSession returns the visitor's cart session ID, minting a cookie on
// first contact.
func EnsureCartSession(c *gin.Context) string {
	if id, err := c.Cookie(cartSessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(cartSessionCookie, id, cartSessionMaxAge, "/", "", false, true)
	return id
}
