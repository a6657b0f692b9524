package order_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary All orders, newest first
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Order}
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders retrieved", store.Get().Ledger.List()))
}
