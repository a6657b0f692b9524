package consult_controller

import (
	"net/http"
	"strings"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// ConsultRequest is the visitor's free-form description of what they want.
type ConsultRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Consult godoc
// @Summary Ask the scent specialist for a recommendation
// @Description Free-form prompt in, a short recommendation drawn from the
// @Description current collection out. Always answers — the service degrades
// @Description to a concierge message when the model is unreachable.
// @Tags Store - Consult
// @Accept json
// @Produce json
// @Param request body ConsultRequest true "What the visitor is looking for"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/consult [post]
func Consult(c *gin.Context) {
	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Tell us what you're looking for"))
		return
	}

	reply := services.GetConsultService().Recommend(c.Request.Context(), req.Prompt)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recommendation ready", gin.H{"recommendation": reply}))
}
