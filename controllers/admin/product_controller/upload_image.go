package product_controller

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/models"
	"github.com/Montclaire-Parfums/montclaire-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10 MB

// UploadImage godoc
// @Summary Upload a product image
// @Description Pushes the file to the image CDN and returns the secure URL for
// @Description the console to store on the product.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file (max 10 MB)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse "Image hosting not configured"
// @Router /admin/products/upload-image [post]
func UploadImage(c *gin.Context) {
	svc := services.GetCloudinaryService()
	if svc == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image hosting is not configured"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No image file provided"))
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image exceeds the 10 MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read uploaded file"))
		return
	}
	defer file.Close()

	name := strings.TrimSuffix(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	url, err := svc.UploadProductImage(c.Request.Context(), file, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Image upload failed"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded", gin.H{"url": url}))
}
