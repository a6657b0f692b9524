package checkout_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// GetHandoff godoc
// @Summary Re-fetch the WhatsApp handoff for the just-placed order
// @Description Only valid while the session sits on the success step, so a
// @Description refreshed confirmation page can rebuild the handoff button.
// @Tags Store - Checkout
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CheckoutHandoff}
// @Failure 404 {object} models.ApiResponse
// @Router /store/checkout/handoff [get]
func GetHandoff(c *gin.Context) {
	state := store.Get()
	cart := state.Carts.Session(utils.EnsureCartSession(c))

	checkout := cart.CheckoutState()
	if checkout.Step != store.StepSuccess || checkout.TrackingNumber == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No completed order for this session"))
		return
	}

	order, err := state.Ledger.FindByTrackingNumber(checkout.TrackingNumber)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No completed order for this session"))
		return
	}

	message := services.BuildOrderMessage(order)
	handoff := models.CheckoutHandoff{
		TrackingNumber: order.TrackingNumber,
		Message:        message,
		URL:            services.HandoffURL(state.Site.Settings().Social.WhatsApp, message),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Handoff retrieved", handoff))
}
