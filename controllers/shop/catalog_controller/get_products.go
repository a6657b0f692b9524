package catalog_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Browse the collection
// @Description List products, optionally filtered by category page or featured flag
// @Tags Store - Catalog
// @Produce json
// @Param category query string false "Category (Men, Women, Unisex)"
// @Param featured query bool false "Only featured masterpieces"
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	catalog := store.Get().Catalog

	var products []models.Product
	switch {
	case c.Query("featured") == "true":
		products = catalog.Featured()
	default:
		products = catalog.ByCategory(c.Query("category"))
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved", products))
}
