package catalog_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetProductByID godoc
// @Summary Get a single product
// @Tags Store - Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	product, ok := store.Get().Catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product retrieved", product))
}
