package cart_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// UpdateQuantity godoc
// @Summary Change a line's quantity
// @Description Quantities below 1 are a no-op; removing a line is its own action.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.SetCartQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Checkout is being processed"
// @Router /store/cart/items/{id} [patch]
func UpdateQuantity(c *gin.Context) {
	var req models.SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	cart := store.Get().Carts.Session(utils.EnsureCartSession(c))
	if !cart.Editable() {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Checkout is being processed"))
		return
	}
	cart.SetQuantity(c.Param("id"), *req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cart.View()))
}
