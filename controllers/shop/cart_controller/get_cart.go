package cart_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary View the bag
// @Description Current cart lines joined with live catalog products, plus the subtotal
// @Tags Store - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	cart := store.Get().Carts.Session(utils.EnsureCartSession(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart retrieved", cart.View()))
}
