package checkout_controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// SubmitCheckout godoc
// @Summary Submit shipping details and place the order
// @Description Streams processing progress over SSE, then a final "confirmed"
// @Description event carrying the order and the WhatsApp handoff link. If the
// @Description client disconnects before confirmation, no order is created.
// @Tags Store - Checkout
// @Accept json
// @Produce text/event-stream
// @Param request body models.ShippingDetailsRequest true "Name and delivery address"
// @Success 200 {string} string "SSE stream"
// @Failure 400 {object} models.ApiResponse
// @Router /store/checkout/submit [post]
func SubmitCheckout(c *gin.Context) {
	var req models.ShippingDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name and address are required"))
		return
	}

	state := store.Get()
	cart := state.Carts.Session(utils.EnsureCartSession(c))

	if err := cart.SubmitShipping(req.Name, req.Address); err != nil {
		if errors.Is(err, store.ErrWrongStep) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Checkout is not at the shipping step"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name and address are required"))
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// Paced progress theater. A disconnect here aborts the attempt without
	// creating an order; the bag and shipping details stay intact.
	for _, msg := range store.ProcessingMessages {
		select {
		case <-c.Request.Context().Done():
			cart.AbandonProcessing()
			return
		case <-time.After(store.ProcessingMessageDelay):
		}
		c.SSEvent("progress", gin.H{"message": msg})
		c.Writer.Flush()
	}

	select {
	case <-c.Request.Context().Done():
		cart.AbandonProcessing()
		return
	default:
	}

	order, err := cart.Finalize(state.Ledger)
	if err != nil {
		c.SSEvent("error", gin.H{"message": "Unable to place the order"})
		c.Writer.Flush()
		return
	}

	message := services.BuildOrderMessage(order)
	handoff := models.CheckoutHandoff{
		TrackingNumber: order.TrackingNumber,
		Message:        message,
		URL:            services.HandoffURL(state.Site.Settings().Social.WhatsApp, message),
	}

	c.SSEvent("confirmed", gin.H{"order": order, "handoff": handoff})
	c.Writer.Flush()
}
