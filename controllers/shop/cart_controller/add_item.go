package cart_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// AddItem godoc
// @Summary Add a product to the bag
// @Description Inserts a line with quantity 1 or increments the existing line.
// @Description Sold-out products can still be added; the storefront only disables the button.
// @Tags Store - Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Checkout is being processed"
// @Router /store/cart/items [post]
func AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	state := store.Get()
	if _, ok := state.Catalog.Get(req.ProductID); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	cart := state.Carts.Session(utils.EnsureCartSession(c))
	if !cart.Editable() {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Checkout is being processed"))
		return
	}
	cart.AddItem(req.ProductID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Added to bag", cart.View()))
}
