package cart_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// RemoveItem godoc
// @Summary Remove a line from the bag
// @Tags Store - Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 409 {object} models.ApiResponse "Checkout is being processed"
// @Router /store/cart/items/{id} [delete]
func RemoveItem(c *gin.Context) {
	cart := store.Get().Carts.Session(utils.EnsureCartSession(c))
	if !cart.Editable() {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Checkout is being processed"))
		return
	}
	cart.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Removed from bag", cart.View()))
}
