package product_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// SetStockStatus godoc
// @Summary Cycle a product's stock badge
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.SetStockStatusRequest true "New stock status"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id}/stock [patch]
func SetStockStatus(c *gin.Context) {
	var req models.SetStockStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid stock status"))
		return
	}

	catalog := store.Get().Catalog
	id := c.Param("id")
	if _, ok := catalog.Get(id); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	catalog.SetStockStatus(id, req.Status)

	product, _ := catalog.Get(id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock status updated", product))
}
