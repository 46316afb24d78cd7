package executor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/api/shared/dto"
	apierrors "github.com/propsetu/estate-backend/internal/api/shared/errors"
	"github.com/propsetu/estate-backend/internal/api/shared/executor"
	"github.com/propsetu/estate-backend/internal/approval"
	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	mediaprovider "github.com/propsetu/estate-backend/internal/media/provider"
	"github.com/propsetu/estate-backend/internal/mocks"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	m.Run()
}

type executorMocks struct {
	store    *mocks.MockStore
	approval *mocks.MockApprovalService
	media    *mocks.MockMediaProvider
	slugs    *mocks.MockSlugRegistry
}

func newTestExecutor(t *testing.T) (executor.Executor, executorMocks) {
	ctrl := gomock.NewController(t)
	m := executorMocks{
		store:    mocks.NewMockStore(ctrl),
		approval: mocks.NewMockApprovalService(ctrl),
		media:    mocks.NewMockMediaProvider(ctrl),
		slugs:    mocks.NewMockSlugRegistry(ctrl),
	}
	return executor.NewExecutor(m.store, m.approval, m.media, m.slugs), m
}

func uint64ptr(v uint64) *uint64 { return &v }
func intptr(v int) *int          { return &v }
func strptr(s string) *string    { return &s }

func requireAPIErrorCode(t *testing.T, err error, code apierrors.ErrorCode) {
	t.Helper()
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
}

func TestGetPublicPropertiesBuildsMeta(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.store.EXPECT().
		QueryProperties(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.PropertyQueryFilter) ([]schema.Property, int64, error) {
			require.NotNil(t, filter.ApprovalStatus)
			assert.Equal(t, domain.ApprovalStatusApproved, *filter.ApprovalStatus)
			assert.Equal(t, 20, filter.Limit)
			assert.Equal(t, 0, filter.Offset)
			return []schema.Property{{ID: 1}, {ID: 2}}, 45, nil
		})

	resp, err := exec.GetPublicProperties(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, 20, resp.Meta.Limit)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestGetPublicPropertiesClampsPageSize(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.store.EXPECT().
		QueryProperties(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.PropertyQueryFilter) ([]schema.Property, int64, error) {
			assert.Equal(t, 100, filter.Limit)
			assert.Equal(t, 200, filter.Offset)
			return nil, 0, nil
		})

	resp, err := exec.GetPublicProperties(context.Background(), nil, intptr(3), intptr(500))
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Meta.Page)
	assert.Equal(t, 100, resp.Meta.Limit)
}

func TestGetPublicPropertiesRejectsLongSearchTerm(t *testing.T) {
	exec, _ := newTestExecutor(t)

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	_, err := exec.GetPublicProperties(context.Background(), strptr(string(long)), nil, nil)
	requireAPIErrorCode(t, err, apierrors.ErrCodeValidationFailed)
}

func TestGetPropertiesByStatusRejectsUnknownStatus(t *testing.T) {
	exec, _ := newTestExecutor(t)

	_, err := exec.GetPropertiesByStatus(context.Background(), domain.ApprovalStatus("ARCHIVED"), nil, nil, nil)
	requireAPIErrorCode(t, err, apierrors.ErrCodeValidationFailed)
}

func TestCreatePropertyRetriesSlugCollisions(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.slugs.EXPECT().IsReserved("lake-view-villa").Return(false)

	var attempts []string
	m.store.EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreatePropertyInput) (*schema.Property, error) {
			attempts = append(attempts, input.Slug)
			if len(attempts) < 3 {
				return nil, domain.ErrSlugTaken
			}
			assert.Equal(t, domain.CreatedByAdmin, input.CreatedByType)
			require.NotNil(t, input.CreatedByAdminID)
			assert.Equal(t, uint64(9), *input.CreatedByAdminID)
			return &schema.Property{ID: 42, Title: input.Title, ApprovalStatus: domain.ApprovalStatusPending}, nil
		}).
		Times(3)

	resp, err := exec.CreateProperty(context.Background(), executor.Actor{AdminID: uint64ptr(9)}, dto.CreatePropertyRequest{
		Title:        "Lake View Villa",
		PropertyType: domain.PropertyTypeVilla,
		Price:        25_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), resp.ID)
	assert.Equal(t, []string{"lake-view-villa", "lake-view-villa-2", "lake-view-villa-3"}, attempts)
}

func TestCreatePropertySkipsReservedSlug(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.slugs.EXPECT().IsReserved("properties").Return(true)
	m.store.EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreatePropertyInput) (*schema.Property, error) {
			assert.Equal(t, "properties-1", input.Slug)
			return &schema.Property{ID: 7, Title: input.Title}, nil
		})

	_, err := exec.CreateProperty(context.Background(), executor.Actor{UserID: uint64ptr(3)}, dto.CreatePropertyRequest{
		Title:        "Properties",
		PropertyType: domain.PropertyTypePlot,
	})
	require.NoError(t, err)
}

func TestCreatePropertyGivesUpAfterRepeatedSlugCollisions(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.slugs.EXPECT().IsReserved(gomock.Any()).Return(false)
	m.store.EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrSlugTaken).
		Times(5)

	_, err := exec.CreateProperty(context.Background(), executor.Actor{AdminID: uint64ptr(1)}, dto.CreatePropertyRequest{
		Title:        "Lake View Villa",
		PropertyType: domain.PropertyTypeVilla,
	})
	requireAPIErrorCode(t, err, apierrors.ErrCodeDatabaseError)
}

func TestCreatePropertyUploadsImages(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.slugs.EXPECT().IsReserved(gomock.Any()).Return(false)
	m.media.EXPECT().
		UploadImage(gomock.Any(), "https://cdn.example.com/raw/front.jpg", gomock.Any()).
		Return(&mediaprovider.UploadResult{
			ProviderAssetID: "asset-1",
			URL:             "https://imagedelivery.net/acct/asset-1/public",
			VariantURLs: map[string]string{
				"public":    "https://imagedelivery.net/acct/asset-1/public",
				"thumbnail": "https://imagedelivery.net/acct/asset-1/thumbnail",
			},
		}, nil)
	m.store.EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreatePropertyInput) (*schema.Property, error) {
			require.Len(t, input.Images, 1)
			assert.Equal(t, "https://imagedelivery.net/acct/asset-1/public", input.Images[0].ImageURL)
			assert.Equal(t, "https://imagedelivery.net/acct/asset-1/thumbnail", input.Images[0].VariantURLs["thumbnail"])
			assert.True(t, input.Images[0].IsMain)
			return &schema.Property{ID: 11}, nil
		})

	_, err := exec.CreateProperty(context.Background(), executor.Actor{UserID: uint64ptr(5)}, dto.CreatePropertyRequest{
		Title:        "Corner Plot",
		PropertyType: domain.PropertyTypePlot,
		Images: []dto.CreateImageRequest{
			{SourceURL: "https://cdn.example.com/raw/front.jpg", IsMain: true},
		},
	})
	require.NoError(t, err)
}

func TestCreatePropertyFailsWhenImageUploadFails(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.media.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("cloudflare unavailable"))

	_, err := exec.CreateProperty(context.Background(), executor.Actor{UserID: uint64ptr(5)}, dto.CreatePropertyRequest{
		Title:        "Corner Plot",
		PropertyType: domain.PropertyTypePlot,
		Images: []dto.CreateImageRequest{
			{SourceURL: "https://cdn.example.com/raw/front.jpg"},
		},
	})
	requireAPIErrorCode(t, err, apierrors.ErrCodeServiceError)
}

func TestCreatePropertyValidation(t *testing.T) {
	exec, _ := newTestExecutor(t)
	ctx := context.Background()
	admin := executor.Actor{AdminID: uint64ptr(1)}

	_, err := exec.CreateProperty(ctx, admin, dto.CreatePropertyRequest{PropertyType: domain.PropertyTypeVilla})
	requireAPIErrorCode(t, err, apierrors.ErrCodeValidationFailed)

	_, err = exec.CreateProperty(ctx, admin, dto.CreatePropertyRequest{Title: "T", PropertyType: "castle"})
	requireAPIErrorCode(t, err, apierrors.ErrCodeValidationFailed)

	_, err = exec.CreateProperty(ctx, admin, dto.CreatePropertyRequest{Title: "T", PropertyType: domain.PropertyTypeVilla, Price: -1})
	requireAPIErrorCode(t, err, apierrors.ErrCodeValidationFailed)

	_, err = exec.CreateProperty(ctx, executor.Actor{}, dto.CreatePropertyRequest{Title: "T", PropertyType: domain.PropertyTypeVilla})
	requireAPIErrorCode(t, err, apierrors.ErrCodeUnauthenticated)
}

func TestApprovePropertyDelegates(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.approval.EXPECT().
		Approve(gomock.Any(), approval.Request{
			PropertyID: 101,
			AdminID:    9,
			Message:    strptr("Looks good"),
			IPAddress:  strptr("10.0.0.1"),
		}).
		Return(&schema.Property{ID: 101, ApprovalStatus: domain.ApprovalStatusApproved}, nil)

	resp, err := exec.ApproveProperty(context.Background(),
		executor.Actor{AdminID: uint64ptr(9), IPAddress: strptr("10.0.0.1")},
		dto.TransitionRequest{PropertyID: 101, Message: strptr("Looks good")})
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalStatusApproved, resp.ApprovalStatus)
}

func TestTransitionRequiresAdmin(t *testing.T) {
	exec, _ := newTestExecutor(t)

	_, err := exec.RejectProperty(context.Background(), executor.Actor{UserID: uint64ptr(3)}, dto.TransitionRequest{PropertyID: 101})
	requireAPIErrorCode(t, err, apierrors.ErrCodeForbidden)
}

func TestTransitionMapsDomainErrors(t *testing.T) {
	exec, m := newTestExecutor(t)
	actor := executor.Actor{AdminID: uint64ptr(9)}

	m.approval.EXPECT().
		Verify(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrPropertyNotFound)
	_, err := exec.VerifyProperty(context.Background(), actor, dto.TransitionRequest{PropertyID: 404})
	requireAPIErrorCode(t, err, apierrors.ErrCodeNotFound)

	m.approval.EXPECT().
		Verify(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrAdminNotFound)
	_, err = exec.VerifyProperty(context.Background(), actor, dto.TransitionRequest{PropertyID: 101})
	requireAPIErrorCode(t, err, apierrors.ErrCodeForbidden)
}

func TestSavePropertyRequiresExistingProperty(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.store.EXPECT().GetPropertyByID(gomock.Any(), uint64(404)).Return(nil, nil)

	err := exec.SaveProperty(context.Background(), 3, 404)
	requireAPIErrorCode(t, err, apierrors.ErrCodeNotFound)
}

func TestSaveProperty(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.store.EXPECT().GetPropertyByID(gomock.Any(), uint64(101)).Return(&schema.Property{ID: 101}, nil)
	m.store.EXPECT().SaveProperty(gomock.Any(), uint64(3), uint64(101)).Return(nil)

	require.NoError(t, exec.SaveProperty(context.Background(), 3, 101))
}

func TestGetMapPropertiesCapsLimit(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.store.EXPECT().
		QueryMapProperties(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.MapPropertyFilter) ([]store.MapProperty, error) {
			assert.Equal(t, 500, filter.Limit)
			require.NotNil(t, filter.Bounds)
			assert.Equal(t, 28.4, filter.Bounds.MinLatitude)
			return []store.MapProperty{}, nil
		})

	resp, err := exec.GetMapProperties(context.Background(),
		&dto.MapBoundsRequest{MinLat: 28.4, MaxLat: 28.9, MinLng: 76.8, MaxLng: 77.4},
		nil, intptr(10_000))
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestGetMapPropertiesRejectsInvertedBounds(t *testing.T) {
	exec, _ := newTestExecutor(t)

	_, err := exec.GetMapProperties(context.Background(),
		&dto.MapBoundsRequest{MinLat: 29.0, MaxLat: 28.0, MinLng: 76.8, MaxLng: 77.4},
		nil, nil)
	requireAPIErrorCode(t, err, apierrors.ErrCodeValidationFailed)
}

func TestMarkNotificationReadMapsNotFound(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.store.EXPECT().
		MarkNotificationRead(gomock.Any(), uint64(55), uint64(3)).
		Return(domain.ErrNotificationNotFound)

	err := exec.MarkNotificationRead(context.Background(), 55, 3)
	requireAPIErrorCode(t, err, apierrors.ErrCodeNotFound)
}

func TestGetBlogPostsFiltersPublished(t *testing.T) {
	exec, m := newTestExecutor(t)

	m.store.EXPECT().
		ListBlogPosts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.BlogPostFilter) ([]schema.BlogPost, int64, error) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, schema.BlogPostStatusPublished, *filter.Status)
			assert.Equal(t, 10, filter.Limit)
			return []schema.BlogPost{{ID: 1, Slug: "market-trends"}}, 1, nil
		})

	resp, err := exec.GetBlogPosts(context.Background(), true, nil, nil)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "market-trends", resp.Items[0].Slug)
}
