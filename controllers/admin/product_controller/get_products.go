package product_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Full catalog for the console table
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products retrieved", store.Get().Catalog.List()))
}
