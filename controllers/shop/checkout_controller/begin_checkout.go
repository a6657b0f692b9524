package checkout_controller

import (
	"errors"
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// BeginCheckout godoc
// @Summary Start checkout (cart → shipping)
// @Tags Store - Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Empty bag or wrong step"
// @Router /store/checkout/begin [post]
func BeginCheckout(c *gin.Context) {
	cart := store.Get().Carts.Session(utils.EnsureCartSession(c))

	if err := cart.BeginShipping(); err != nil {
		if errors.Is(err, store.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Your bag is empty"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Checkout already in progress"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout started", cart.CheckoutState()))
}

// BackToCart godoc
// @Summary Return to the bag (shipping → cart)
// @Tags Store - Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/checkout/back [post]
func BackToCart(c *gin.Context) {
	cart := store.Get().Carts.Session(utils.EnsureCartSession(c))
	cart.BackToCart()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Returned to bag", cart.CheckoutState()))
}

// GetCheckoutState godoc
// @Summary Current sequencer position
// @Tags Store - Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/checkout [get]
func GetCheckoutState(c *gin.Context) {
	cart := store.Get().Carts.Session(utils.EnsureCartSession(c))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout state", cart.CheckoutState()))
}
