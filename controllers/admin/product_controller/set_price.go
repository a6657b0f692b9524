package product_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// SetPrice godoc
// @Summary Inline price edit
// @Description Takes the raw text from the console's price cell. Unparseable
// @Description input leaves the price untouched — the edit is silently dropped,
// @Description matching the inline-edit UX where a bad keystroke just reverts.
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body models.SetPriceRequest true "Raw price text"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/products/{id}/price [patch]
func SetPrice(c *gin.Context) {
	var req models.SetPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	catalog := store.Get().Catalog
	id := c.Param("id")
	if _, ok := catalog.Get(id); !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	catalog.SetPrice(id, req.Price)

	product, _ := catalog.Get(id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price updated", product))
}
