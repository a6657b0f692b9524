package order_controller

import (
	"net/http"
	"strings"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// TrackOrder godoc
// @Summary Look up an order by tracking code
// @Description Case-insensitive exact match on the MNT- tracking code.
// @Tags Store - Orders
// @Produce json
// @Param code query string true "Tracking code, e.g. MNT-LXK2A9-7F3Q"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/orders/track [get]
func TrackOrder(c *gin.Context) {
	code := strings.TrimSpace(c.Query("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Tracking code is required"))
		return
	}

	order, err := store.Get().Ledger.FindByTrackingNumber(code)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No order found for that tracking code"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order retrieved", order))
}
