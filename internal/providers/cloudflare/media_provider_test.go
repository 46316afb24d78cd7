package cloudflare

import (
	"context"
	"errors"
	"testing"

	cf "github.com/cloudflare/cloudflare-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	m.Run()
}

func newTestProvider(ctrl *gomock.Controller) (*mediaProvider, *mocks.MockCloudflareClient, *mocks.MockDownloader) {
	cfClient := mocks.NewMockCloudflareClient(ctrl)
	dl := mocks.NewMockDownloader(ctrl)
	p := NewMediaProvider(cfClient, &Config{AccountID: "acct-1", APIToken: "token"}, dl)
	return p.(*mediaProvider), cfClient, dl
}

func TestUploadImageFromURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, cfClient, _ := newTestProvider(ctrl)

	cfClient.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc *cf.ResourceContainer, params cf.UploadImageParams) (cf.Image, error) {
			assert.Equal(t, "acct-1", rc.Identifier)
			assert.Equal(t, "https://example.com/photo.jpg", params.URL)
			return cf.Image{
				ID: "img-1",
				Variants: []string{
					"https://imagedelivery.net/hash/img-1/thumbnail",
					"https://imagedelivery.net/hash/img-1/public",
				},
			}, nil
		})

	result, err := p.UploadImage(context.Background(), "https://example.com/photo.jpg", nil)
	require.NoError(t, err)
	assert.Equal(t, "img-1", result.ProviderAssetID)
	assert.Equal(t, "https://imagedelivery.net/hash/img-1/public", result.URL)
	assert.Len(t, result.VariantURLs, 2)
}

func TestUploadImageRejectsInvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newTestProvider(ctrl)

	_, err := p.UploadImage(context.Background(), "not-a-url", nil)
	assert.Error(t, err)

	_, err = p.UploadImage(context.Background(), "https://imagedelivery.net/hash/img/public", nil)
	assert.Error(t, err)
}

func TestDeleteImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, cfClient, _ := newTestProvider(ctrl)

	cfClient.EXPECT().DeleteImage(gomock.Any(), gomock.Any(), "img-1").Return(nil)
	assert.NoError(t, p.DeleteImage(context.Background(), "img-1"))

	cfClient.EXPECT().DeleteImage(gomock.Any(), gomock.Any(), "img-2").Return(errors.New("not found"))
	assert.Error(t, p.DeleteImage(context.Background(), "img-2"))
}
