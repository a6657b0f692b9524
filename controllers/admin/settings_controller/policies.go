package settings_controller

import (
	"net/http"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/store"
	"github.com/gin-gonic/gin"
)

// GetPolicies godoc
// @Summary All policy pages for the console editor
// @Tags Admin - Policies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.PolicyPage}
// @Router /admin/policies [get]
func GetPolicies(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Policies retrieved", store.Get().Site.Policies()))
}

// UpdatePolicy godoc
// @Summary Replace a policy page's content
// @Description Saves the new content and stamps last_updated with today's date.
// @Tags Admin - Policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Policy id"
// @Param request body models.UpdatePolicyRequest true "New content"
// @Success 200 {object} models.ApiResponse{data=models.PolicyPage}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/policies/{id} [put]
func UpdatePolicy(c *gin.Context) {
	var req models.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Content is required"))
		return
	}

	site := store.Get().Site
	id := c.Param("id")
	if !site.UpdatePolicyContent(id, req.Content) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Policy not found"))
		return
	}

	policy, _ := site.Policy(id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Policy updated", policy))
}

// TogglePolicy godoc
// @Summary Toggle a policy's footer visibility
// @Tags Admin - Policies
// @Produce json
// @Security BearerAuth
// @Param id path string true "Policy id"
// @Success 200 {object} models.ApiResponse{data=models.PolicyPage}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/policies/{id}/toggle [patch]
func TogglePolicy(c *gin.Context) {
	site := store.Get().Site
	id := c.Param("id")
	if !site.TogglePolicy(id) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Policy not found"))
		return
	}

	policy, _ := site.Policy(id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Policy visibility toggled", policy))
}
