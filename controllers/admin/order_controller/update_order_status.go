package order_controller

import (
	"errors"
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// UpdateOrderStatus godoc
// @Summary Move an order along its lifecycle
// @Description Any status can be set from any status — the console dropdown is
// @Description free-form, there is no enforced progression.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Order}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order status"))
		return
	}

	order, err := store.Get().Ledger.SetStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order status"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", order))
}
