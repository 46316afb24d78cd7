package mediaprovider

import (
	"context"
	"io"
)

// UploadResult represents the result of uploading a listing photo to a provider
type UploadResult struct {
	// ProviderAssetID is the provider-specific identifier (e.g., Cloudflare image ID)
	ProviderAssetID string
	// URL is the primary delivery URL used as the image's canonical address
	URL string
	// VariantURLs maps variant names to their URLs (e.g., {"thumbnail": "https://...", "public": "https://..."})
	VariantURLs map[string]string
}

// Provider defines the interface for listing photo storage providers
//
//go:generate mockgen -source=provider.go -destination=../../mocks/media_provider.go -package=mocks -mock_names=Provider=MockMediaProvider
type Provider interface {
	// UploadImage uploads a photo from a URL to the provider. Implementations
	// may download the photo and re-upload it when the provider cannot fetch
	// the URL itself
	UploadImage(ctx context.Context, sourceURL string, metadata map[string]interface{}) (*UploadResult, error)

	// UploadImageFromReader uploads a photo from an io.Reader to the provider
	UploadImageFromReader(ctx context.Context, reader io.Reader, filename, contentType string, metadata map[string]interface{}) (*UploadResult, error)

	// DeleteImage removes an uploaded photo
	DeleteImage(ctx context.Context, assetID string) error

	// Name returns the provider name
	Name() string
}
