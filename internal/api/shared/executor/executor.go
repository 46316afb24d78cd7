package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/propsetu/estate-backend/internal/api/shared/constants"
	"github.com/propsetu/estate-backend/internal/api/shared/dto"
	apierrors "github.com/propsetu/estate-backend/internal/api/shared/errors"
	"github.com/propsetu/estate-backend/internal/api/shared/types"
	"github.com/propsetu/estate-backend/internal/approval"
	"github.com/propsetu/estate-backend/internal/domain"
	mediaprovider "github.com/propsetu/estate-backend/internal/media/provider"
	"github.com/propsetu/estate-backend/internal/registry"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

// Actor identifies the authenticated caller of a mutating operation
type Actor struct {
	AdminID   *uint64
	UserID    *uint64
	IPAddress *string
	UserAgent *string
}

// Executor is the interface for the API executor. It validates request
// values, drives the store and workflow services, and assembles DTOs
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetProperty retrieves a single listing by id, or nil when absent
	GetProperty(ctx context.Context, id uint64) (*dto.PropertyResponse, error)

	// GetPublicProperties retrieves one page of approved listings
	GetPublicProperties(ctx context.Context, search *string, page, limit *int) (*dto.PropertyListResponse, error)

	// GetPropertiesByStatus retrieves one page of listings in the given
	// approval state, with optional free-text search
	GetPropertiesByStatus(ctx context.Context, status domain.ApprovalStatus, search *string, page, limit *int) (*dto.PropertyListResponse, error)

	// GetMyProperties retrieves one page of listings submitted by the admin
	GetMyProperties(ctx context.Context, adminID uint64, page, limit *int) (*dto.PropertyListResponse, error)

	// GetUserProperties retrieves one page of listings submitted by the user
	GetUserProperties(ctx context.Context, userID uint64, page, limit *int) (*dto.PropertyListResponse, error)

	// GetMapProperties retrieves approved listings inside the viewport
	GetMapProperties(ctx context.Context, bounds *dto.MapBoundsRequest, userID *uint64, limit *int) ([]dto.MapPropertyResponse, error)

	// GetApprovalHistory retrieves a listing's audit trail, oldest first
	GetApprovalHistory(ctx context.Context, propertyID uint64) ([]dto.ApprovalHistoryResponse, error)

	// CreateProperty submits a new listing on behalf of the actor
	CreateProperty(ctx context.Context, actor Actor, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error)

	// ApproveProperty moves a listing to APPROVED
	ApproveProperty(ctx context.Context, actor Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error)

	// RejectProperty moves a listing to REJECTED
	RejectProperty(ctx context.Context, actor Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error)

	// VerifyProperty marks a listing verified and approves it
	VerifyProperty(ctx context.Context, actor Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error)

	// SaveProperty bookmarks a listing for the user
	SaveProperty(ctx context.Context, userID, propertyID uint64) error

	// UnsaveProperty removes the user's bookmark
	UnsaveProperty(ctx context.Context, userID, propertyID uint64) error

	// GetSavedProperties retrieves one page of the user's bookmarks
	GetSavedProperties(ctx context.Context, userID uint64, page, limit *int) (*dto.PropertyListResponse, error)

	// GetNotifications retrieves one page of the user's notifications
	GetNotifications(ctx context.Context, userID uint64, page, limit *int) (*dto.NotificationListResponse, error)

	// MarkNotificationRead flips a notification to read for its recipient
	MarkNotificationRead(ctx context.Context, notificationID, userID uint64) error

	// GetBlogPost retrieves a blog post by slug, or nil when absent
	GetBlogPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error)

	// GetBlogPosts retrieves one page of blog posts. Unauthenticated
	// callers only see published posts
	GetBlogPosts(ctx context.Context, publishedOnly bool, page, limit *int) (*dto.BlogPostListResponse, error)
}

type executor struct {
	store    store.Store
	approval approval.Service
	media    mediaprovider.Provider
	slugs    registry.SlugRegistry
}

func NewExecutor(st store.Store, approvalSvc approval.Service, media mediaprovider.Provider, slugs registry.SlugRegistry) Executor {
	return &executor{store: st, approval: approvalSvc, media: media, slugs: slugs}
}

func (e *executor) GetProperty(ctx context.Context, id uint64) (*dto.PropertyResponse, error) {
	property, err := e.store.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get property: %v", err))
	}
	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) GetPublicProperties(ctx context.Context, search *string, page, limit *int) (*dto.PropertyListResponse, error) {
	approved := domain.ApprovalStatusApproved
	return e.queryProperties(ctx, store.PropertyQueryFilter{ApprovalStatus: &approved}, search, page, limit)
}

func (e *executor) GetPropertiesByStatus(ctx context.Context, status domain.ApprovalStatus, search *string, page, limit *int) (*dto.PropertyListResponse, error) {
	if !status.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("Invalid approval status: %s", status))
	}
	return e.queryProperties(ctx, store.PropertyQueryFilter{ApprovalStatus: &status}, search, page, limit)
}

func (e *executor) GetMyProperties(ctx context.Context, adminID uint64, page, limit *int) (*dto.PropertyListResponse, error) {
	return e.queryProperties(ctx, store.PropertyQueryFilter{CreatedByAdminID: &adminID}, nil, page, limit)
}

func (e *executor) GetUserProperties(ctx context.Context, userID uint64, page, limit *int) (*dto.PropertyListResponse, error) {
	return e.queryProperties(ctx, store.PropertyQueryFilter{CreatedByUserID: &userID}, nil, page, limit)
}

// queryProperties is the shared page-assembly path for all listing queries
func (e *executor) queryProperties(ctx context.Context, filter store.PropertyQueryFilter, search *string, page, limit *int) (*dto.PropertyListResponse, error) {
	if search != nil {
		if len(*search) > constants.MAX_SEARCH_TERM_LENGTH {
			return nil, apierrors.NewValidationError("Search term too long")
		}
		filter.SearchTerm = *search
	}

	pageN, limitN, offset := types.NewPagination(page, limit).Normalize(constants.DEFAULT_PROPERTIES_LIMIT)
	filter.Limit = limitN
	filter.Offset = offset

	properties, total, err := e.store.QueryProperties(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to query properties: %v", err))
	}

	return &dto.PropertyListResponse{
		Items: mapProperties(properties),
		Meta: dto.Meta{
			Total:      total,
			Page:       pageN,
			Limit:      limitN,
			TotalPages: types.TotalPages(total, limitN),
		},
	}, nil
}

func (e *executor) GetMapProperties(ctx context.Context, bounds *dto.MapBoundsRequest, userID *uint64, limit *int) ([]dto.MapPropertyResponse, error) {
	filter := store.MapPropertyFilter{
		UserID: userID,
		Limit:  constants.DEFAULT_MAP_LIMIT,
	}
	if limit != nil && *limit > 0 {
		filter.Limit = *limit
	}
	if filter.Limit > constants.MAX_MAP_RESULTS {
		filter.Limit = constants.MAX_MAP_RESULTS
	}
	if bounds != nil {
		if bounds.MinLat > bounds.MaxLat || bounds.MinLng > bounds.MaxLng {
			return nil, apierrors.NewValidationError("Invalid map bounds")
		}
		filter.Bounds = &store.MapQueryBounds{
			MinLatitude:  bounds.MinLat,
			MaxLatitude:  bounds.MaxLat,
			MinLongitude: bounds.MinLng,
			MaxLongitude: bounds.MaxLng,
		}
	}

	results, err := e.store.QueryMapProperties(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to query map properties: %v", err))
	}

	resp := make([]dto.MapPropertyResponse, len(results))
	for i := range results {
		resp[i] = *dto.MapMapPropertyToDTO(&results[i])
	}
	return resp, nil
}

func (e *executor) GetApprovalHistory(ctx context.Context, propertyID uint64) ([]dto.ApprovalHistoryResponse, error) {
	history, err := e.store.ListApprovalHistory(ctx, propertyID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get approval history: %v", err))
	}

	resp := make([]dto.ApprovalHistoryResponse, len(history))
	for i := range history {
		resp[i] = *dto.MapApprovalHistoryToDTO(&history[i])
	}
	return resp, nil
}

func (e *executor) CreateProperty(ctx context.Context, actor Actor, req dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if req.Title == "" {
		return nil, apierrors.NewValidationError("Title is required")
	}
	if !req.PropertyType.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("Invalid property type: %s", req.PropertyType))
	}
	if req.Price < 0 {
		return nil, apierrors.NewValidationError("Price cannot be negative")
	}
	if len(req.Images) > constants.MAX_IMAGES_PER_PROPERTY {
		return nil, apierrors.NewValidationError(fmt.Sprintf("At most %d images per property", constants.MAX_IMAGES_PER_PROPERTY))
	}
	if actor.AdminID == nil && actor.UserID == nil {
		return nil, apierrors.NewUnauthenticatedError("Authentication required")
	}

	input := store.CreatePropertyInput{
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Price:        req.Price,
		Area:         req.Area,
		AreaUnit:     req.AreaUnit,

		Address:    req.Address,
		City:       req.City,
		District:   req.District,
		State:      req.State,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Boundary:   toBoundary(req.Boundary),

		KhasraNumber:  req.KhasraNumber,
		MurabbaNumber: req.MurabbaNumber,
		KhewatNumber:  req.KhewatNumber,

		OwnerName:  req.OwnerName,
		OwnerPhone: req.OwnerPhone,

		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
	}
	if actor.AdminID != nil {
		input.CreatedByType = domain.CreatedByAdmin
		input.CreatedByAdminID = actor.AdminID
	} else {
		input.CreatedByType = domain.CreatedByUser
		input.CreatedByUserID = actor.UserID
	}

	images, err := e.uploadImages(ctx, req.Images)
	if err != nil {
		return nil, err
	}
	input.Images = images

	// A generated slug can race another submission with the same title,
	// so collisions retry with a numeric suffix
	baseSlug := registry.Slugify(req.Title, 0)
	candidate := baseSlug
	if e.slugs != nil && e.slugs.IsReserved(candidate) {
		candidate = registry.WithSuffix(baseSlug, 1)
	}

	var property *schema.Property
	for attempt := 1; ; attempt++ {
		input.Slug = candidate
		property, err = e.store.CreateProperty(ctx, input)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrSlugTaken) || attempt >= constants.MAX_SLUG_ATTEMPTS {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create property: %v", err))
		}
		candidate = registry.WithSuffix(baseSlug, attempt+1)
	}

	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) uploadImages(ctx context.Context, images []dto.CreateImageRequest) ([]store.CreateImageInput, error) {
	if len(images) == 0 {
		return nil, nil
	}

	inputs := make([]store.CreateImageInput, 0, len(images))
	for _, img := range images {
		if img.SourceURL == "" {
			return nil, apierrors.NewValidationError("Image source URL is required")
		}

		uploaded, err := e.media.UploadImage(ctx, img.SourceURL, map[string]interface{}{
			"caption": img.Caption,
		})
		if err != nil {
			return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to upload image: %v", err))
		}

		inputs = append(inputs, store.CreateImageInput{
			ImageURL:    uploaded.URL,
			ImageType:   img.ImageType,
			Caption:     img.Caption,
			AltText:     img.AltText,
			SortOrder:   img.SortOrder,
			IsMain:      img.IsMain,
			VariantURLs: uploaded.VariantURLs,
		})
	}
	return inputs, nil
}

func (e *executor) ApproveProperty(ctx context.Context, actor Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error) {
	return e.transition(ctx, actor, req, e.approval.Approve)
}

func (e *executor) RejectProperty(ctx context.Context, actor Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error) {
	return e.transition(ctx, actor, req, e.approval.Reject)
}

func (e *executor) VerifyProperty(ctx context.Context, actor Actor, req dto.TransitionRequest) (*dto.PropertyResponse, error) {
	return e.transition(ctx, actor, req, e.approval.Verify)
}

func (e *executor) transition(ctx context.Context, actor Actor, req dto.TransitionRequest, op func(context.Context, approval.Request) (*schema.Property, error)) (*dto.PropertyResponse, error) {
	if actor.AdminID == nil {
		return nil, apierrors.NewForbiddenError("Admin privileges required")
	}
	if req.PropertyID == 0 {
		return nil, apierrors.NewValidationError("Property id is required")
	}

	property, err := op(ctx, approval.Request{
		PropertyID: req.PropertyID,
		AdminID:    *actor.AdminID,
		Message:    req.Message,
		AdminNotes: req.AdminNotes,
		Reason:     req.Reason,
		IPAddress:  actor.IPAddress,
		UserAgent:  actor.UserAgent,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			return nil, apierrors.NewNotFoundError("Property not found")
		case errors.Is(err, domain.ErrAdminNotFound):
			return nil, apierrors.NewForbiddenError("Unknown admin")
		default:
			return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to transition property: %v", err))
		}
	}

	return dto.MapPropertyToDTO(property), nil
}

func (e *executor) SaveProperty(ctx context.Context, userID, propertyID uint64) error {
	property, err := e.store.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get property: %v", err))
	}
	if property == nil {
		return apierrors.NewNotFoundError("Property not found")
	}

	if err := e.store.SaveProperty(ctx, userID, propertyID); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to save property: %v", err))
	}
	return nil
}

func (e *executor) UnsaveProperty(ctx context.Context, userID, propertyID uint64) error {
	if err := e.store.UnsaveProperty(ctx, userID, propertyID); err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to unsave property: %v", err))
	}
	return nil
}

func (e *executor) GetSavedProperties(ctx context.Context, userID uint64, page, limit *int) (*dto.PropertyListResponse, error) {
	pageN, limitN, offset := types.NewPagination(page, limit).Normalize(constants.DEFAULT_SAVED_LIMIT)

	properties, total, err := e.store.ListSavedProperties(ctx, userID, limitN, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list saved properties: %v", err))
	}

	return &dto.PropertyListResponse{
		Items: mapProperties(properties),
		Meta: dto.Meta{
			Total:      total,
			Page:       pageN,
			Limit:      limitN,
			TotalPages: types.TotalPages(total, limitN),
		},
	}, nil
}

func (e *executor) GetNotifications(ctx context.Context, userID uint64, page, limit *int) (*dto.NotificationListResponse, error) {
	pageN, limitN, offset := types.NewPagination(page, limit).Normalize(constants.DEFAULT_NOTIFICATIONS_LIMIT)

	notifications, total, err := e.store.ListNotifications(ctx, userID, limitN, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list notifications: %v", err))
	}

	items := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		items[i] = *dto.MapNotificationToDTO(&notifications[i])
	}

	return &dto.NotificationListResponse{
		Items: items,
		Meta: dto.Meta{
			Total:      total,
			Page:       pageN,
			Limit:      limitN,
			TotalPages: types.TotalPages(total, limitN),
		},
	}, nil
}

func (e *executor) MarkNotificationRead(ctx context.Context, notificationID, userID uint64) error {
	err := e.store.MarkNotificationRead(ctx, notificationID, userID)
	if errors.Is(err, domain.ErrNotificationNotFound) {
		return apierrors.NewNotFoundError("Notification not found")
	}
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to mark notification read: %v", err))
	}
	return nil
}

func (e *executor) GetBlogPost(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	post, err := e.store.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get blog post: %v", err))
	}
	return dto.MapBlogPostToDTO(post), nil
}

func (e *executor) GetBlogPosts(ctx context.Context, publishedOnly bool, page, limit *int) (*dto.BlogPostListResponse, error) {
	pageN, limitN, offset := types.NewPagination(page, limit).Normalize(constants.DEFAULT_BLOG_LIMIT)

	filter := store.BlogPostFilter{Limit: limitN, Offset: offset}
	if publishedOnly {
		published := schema.BlogPostStatusPublished
		filter.Status = &published
	}

	posts, total, err := e.store.ListBlogPosts(ctx, filter)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list blog posts: %v", err))
	}

	items := make([]dto.BlogPostResponse, len(posts))
	for i := range posts {
		items[i] = *dto.MapBlogPostToDTO(&posts[i])
	}

	return &dto.BlogPostListResponse{
		Items: items,
		Meta: dto.Meta{
			Total:      total,
			Page:       pageN,
			Limit:      limitN,
			TotalPages: types.TotalPages(total, limitN),
		},
	}, nil
}

func mapProperties(properties []schema.Property) []dto.PropertyResponse {
	items := make([]dto.PropertyResponse, len(properties))
	for i := range properties {
		items[i] = *dto.MapPropertyToDTO(&properties[i])
	}
	return items
}

func toBoundary(coords []dto.CoordinateResponse) schema.Boundary {
	if len(coords) == 0 {
		return nil
	}
	b := make(schema.Boundary, len(coords))
	for i, c := range coords {
		b[i] = schema.Coordinate{Latitude: c.Latitude, Longitude: c.Longitude}
	}
	return b
}
