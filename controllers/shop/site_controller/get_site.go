package site_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetSiteSettings godoc
// @Summary Public site settings for the storefront shell
// @Tags Store - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SiteSettings}
// @Router /store/site/settings [get]
func GetSiteSettings(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Settings retrieved", store.Get().Site.Settings()))
}

// GetPolicies godoc
// @Summary Policy pages for the footer
// @Description Returns all pages with their enabled flags; the flag only
// @Description drives footer visibility, the content stays reachable.
// @Tags Store - Site
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.PolicyPage}
// @Router /store/site/policies [get]
func GetPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Policies retrieved", store.Get().Site.Policies()))
}

// GetPolicy godoc
// @Summary A single policy page by id
// @Tags Store - Site
// @Produce json
// @Param id path string true "Policy id (shipping, returns, privacy, terms)"
// @Success 200 {object} models.ApiResponse{data=models.PolicyPage}
// @Failure 404 {object} models.ApiResponse
// @Router /store/site/policies/{id} [get]
func GetPolicy(c *gin.Context) {
	policy, ok := store.Get().Site.Policy(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Policy not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Policy retrieved", policy))
}
