package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// productImageFolder is where every console upload lands.
const productImageFolder = "montclaire/products"

// CloudinaryService hosts product imagery. The console uploads a file, gets a
// secure URL back, and stores that URL on the product.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var cloudinaryService *CloudinaryService

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// InitCloudinary wires the shared instance. Optional at boot: without
// credentials the console simply loses the upload endpoint.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	svc, err := NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = svc
	return nil
}

// GetCloudinaryService returns the shared instance, nil when not configured.
func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadProductImage pushes one image and returns its secure URL.
func (s *CloudinaryService) UploadProductImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         productImageFolder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		params.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteProductImage removes an uploaded asset by its public ID.
func (s *CloudinaryService) DeleteProductImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}
