package product_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// DeleteProduct godoc
// @Summary Remove a product from the catalog
// @Description Idempotent — deleting an unknown ID still returns 200. Placed
// @Description orders keep their frozen item snapshots; live carts simply stop
// @Description pricing the vanished line.
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	store.Get().Catalog.Delete(c.Param("id"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted", nil))
}
