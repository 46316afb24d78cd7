package downloader

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/logger"
)

// DownloadResult is a streaming handle on a fetched listing photo
type DownloadResult struct {
	reader      io.ReadCloser
	contentType string
	size        int64
}

// Reader returns the io.ReadCloser for streaming the download
func (d *DownloadResult) Reader() io.ReadCloser {
	return d.reader
}

// ContentType returns the content type reported by the origin server
func (d *DownloadResult) ContentType() string {
	return d.contentType
}

// Size returns the size of the downloaded file (may be -1 if unknown)
func (d *DownloadResult) Size() int64 {
	return d.size
}

// Close closes the underlying reader
func (d *DownloadResult) Close() error {
	if d.reader != nil {
		return d.reader.Close()
	}
	return nil
}

// Downloader defines the interface for downloading listing photos
//
//go:generate mockgen -source=downloader.go -destination=../mocks/downloader.go -package=mocks -mock_names=Downloader=MockDownloader
type Downloader interface {
	// Download fetches a photo from a URL and returns a streaming reader
	Download(ctx context.Context, url string) (*DownloadResult, error)
}

type downloader struct {
	httpClient adapter.HTTPClient
}

func NewDownloader(httpClient adapter.HTTPClient) Downloader {
	return &downloader{
		httpClient: httpClient,
	}
}

// Download fetches a photo from a URL and returns a streaming reader
func (d *downloader) Download(ctx context.Context, url string) (*DownloadResult, error) {
	logger.DebugCtx(ctx, "Downloading file", zap.String("url", url))

	resp, err := d.httpClient.GetResponse(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close response body", zap.Error(err), zap.String("url", url))
		}
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return &DownloadResult{
		reader:      resp.Body,
		contentType: resp.Header.Get("Content-Type"),
		size:        resp.ContentLength,
	}, nil
}
