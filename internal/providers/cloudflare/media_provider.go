package cloudflare

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cloudflare/cloudflare-go"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/downloader"
	"github.com/propsetu/estate-backend/internal/logger"
	mediaprovider "github.com/propsetu/estate-backend/internal/media/provider"
)

const providerName = "cloudflare"

// Preferred variants for the canonical image URL, in order.
var primaryVariants = []string{"public", "original"}

// Config holds configuration for Cloudflare Images
type Config struct {
	// AccountID is the Cloudflare account ID for Images
	AccountID string
	// APIToken is the API token for authentication
	APIToken string
}

// mediaProvider implements the mediaprovider.Provider interface for
// Cloudflare Images
type mediaProvider struct {
	cfClient   adapter.CloudflareClient
	config     *Config
	rc         *cloudflare.ResourceContainer
	downloader downloader.Downloader
}

// NewMediaProvider creates a new Cloudflare Images provider
func NewMediaProvider(cfClient adapter.CloudflareClient, config *Config, dl downloader.Downloader) mediaprovider.Provider {
	return &mediaProvider{
		cfClient:   cfClient,
		config:     config,
		downloader: dl,
		rc: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: config.AccountID,
		},
	}
}

// UploadImage uploads a listing photo to Cloudflare Images from a URL.
// URL-based upload is tried first; when Cloudflare cannot fetch the source
// itself the photo is downloaded and re-uploaded from the stream
func (p *mediaProvider) UploadImage(ctx context.Context, sourceURL string, metadata map[string]interface{}) (*mediaprovider.UploadResult, error) {
	if !isValidHTTPURL(sourceURL) {
		logger.WarnCtx(ctx, "Invalid image URL", zap.String("url", sourceURL))
		return nil, fmt.Errorf("invalid image url: %q", sourceURL)
	}

	if isCloudflareImageURL(sourceURL) {
		logger.WarnCtx(ctx, "Source already hosted on Cloudflare Images", zap.String("url", sourceURL))
		return nil, fmt.Errorf("image already hosted on cloudflare: %q", sourceURL)
	}

	logger.InfoCtx(ctx, "Uploading to Cloudflare Images", zap.String("url", sourceURL))

	image, err := p.uploadImageFromURL(ctx, sourceURL, metadata)
	if err != nil {
		logger.WarnCtx(ctx, "URL-based image upload failed, trying download fallback",
			zap.String("url", sourceURL),
			zap.Error(err),
		)

		image, err = p.uploadDownloadedImage(ctx, sourceURL, metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image: %w", err)
		}
	}

	return p.buildUploadResult(ctx, image), nil
}

// UploadImageFromReader uploads a listing photo from an io.Reader
func (p *mediaProvider) UploadImageFromReader(ctx context.Context, reader io.Reader, filename, contentType string, metadata map[string]interface{}) (*mediaprovider.UploadResult, error) {
	if filename == "" {
		filename = uuid.NewString()
	}
	if filepath.Ext(filename) == "" {
		filename += extensionForMimeType(contentType)
	}

	image, err := p.uploadWithRetry(ctx, cloudflare.UploadImageParams{
		File:     io.NopCloser(reader),
		Name:     filename,
		Metadata: metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image from reader: %w", err)
	}

	return p.buildUploadResult(ctx, image), nil
}

// DeleteImage removes an uploaded photo from Cloudflare Images
func (p *mediaProvider) DeleteImage(ctx context.Context, assetID string) error {
	if err := p.cfClient.DeleteImage(ctx, p.rc, assetID); err != nil {
		return fmt.Errorf("failed to delete image %q: %w", assetID, err)
	}
	return nil
}

// Name returns the provider name
func (p *mediaProvider) Name() string {
	return providerName
}

func (p *mediaProvider) uploadImageFromURL(ctx context.Context, sourceURL string, metadata map[string]interface{}) (*cloudflare.Image, error) {
	image, err := p.uploadWithRetry(ctx, cloudflare.UploadImageParams{
		URL:      sourceURL,
		Metadata: metadata,
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Successfully uploaded image via URL",
		zap.String("url", sourceURL),
		zap.String("imageID", image.ID),
	)

	return image, nil
}

// uploadDownloadedImage downloads the photo and uploads it as a stream
func (p *mediaProvider) uploadDownloadedImage(ctx context.Context, sourceURL string, metadata map[string]interface{}) (*cloudflare.Image, error) {
	downloadResult, err := p.downloader.Download(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer func() {
		if err := downloadResult.Close(); err != nil {
			logger.WarnCtx(ctx, "Failed to close download result", zap.Error(err))
		}
	}()

	filename := filepath.Base(sourceURL)
	if filepath.Ext(filename) == "" {
		filename += extensionForMimeType(downloadResult.ContentType())
	}

	image, err := p.uploadWithRetry(ctx, cloudflare.UploadImageParams{
		File:     downloadResult.Reader(),
		Name:     filename,
		Metadata: metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image from reader: %w", err)
	}

	logger.InfoCtx(ctx, "Successfully uploaded image using download fallback",
		zap.String("url", sourceURL),
		zap.String("imageID", image.ID),
	)

	return image, nil
}

// uploadWithRetry performs one upload call with exponential backoff for
// transient API failures. Reader-backed uploads are not retryable because
// the stream is consumed on the first attempt
func (p *mediaProvider) uploadWithRetry(ctx context.Context, params cloudflare.UploadImageParams) (*cloudflare.Image, error) {
	var image cloudflare.Image

	operation := func() error {
		var err error
		image, err = p.cfClient.UploadImage(ctx, p.rc, params)
		if err != nil {
			if params.File != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 1 * time.Minute
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return &image, nil
}

// buildUploadResult converts a Cloudflare Image to an UploadResult
func (p *mediaProvider) buildUploadResult(ctx context.Context, image *cloudflare.Image) *mediaprovider.UploadResult {
	variantURLs := make(map[string]string)
	for _, variantURL := range image.Variants {
		if name := path.Base(variantURL); name != "" {
			variantURLs[name] = variantURL
		}
	}

	// The canonical URL is the public-facing variant when Cloudflare
	// exposes one, otherwise any variant.
	primary := ""
	for _, name := range primaryVariants {
		if u, ok := variantURLs[name]; ok {
			primary = u
			break
		}
	}
	if primary == "" {
		for _, u := range variantURLs {
			primary = u
			break
		}
	}

	logger.InfoCtx(ctx, "Successfully uploaded to Cloudflare Images",
		zap.String("imageID", image.ID),
		zap.Int("variantCount", len(variantURLs)),
	)

	return &mediaprovider.UploadResult{
		ProviderAssetID: image.ID,
		URL:             primary,
		VariantURLs:     variantURLs,
	}
}

// isValidHTTPURL reports whether raw parses as an absolute http(s) URL
func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// isCloudflareImageURL checks if a URL is already a Cloudflare Images URL
func isCloudflareImageURL(url string) bool {
	return strings.HasPrefix(url, "https://imagedelivery.net/")
}

// extensionForMimeType returns a file extension for a given mime type
func extensionForMimeType(mimeType string) string {
	mtype := mimetype.Lookup(mimeType)
	if mtype != nil && mtype.Extension() != "" {
		return mtype.Extension()
	}

	if strings.HasPrefix(strings.TrimSpace(strings.Split(mimeType, ";")[0]), "image/") {
		return ".jpg"
	}

	return ""
}
