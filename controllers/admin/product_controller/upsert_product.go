package product_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// UpsertProduct godoc
// @Summary Create or replace a product
// @Description A product with a known ID is replaced wholesale; an empty ID
// @Description gets a generated one and the product is appended.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Product true "Product"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Router /admin/products [put]
func UpsertProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product: "+err.Error()))
		return
	}

	if product.StockStatus != "" && !product.StockStatus.Valid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid stock status"))
		return
	}

	saved := store.Get().Catalog.Upsert(product)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product saved", saved))
}
