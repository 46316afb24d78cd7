package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

// CreateImageInput describes one listing photo attached at creation time
type CreateImageInput struct {
	ImageURL    string
	ImageType   string
	Caption     string
	AltText     string
	SortOrder   int
	IsMain      bool
	VariantURLs schema.VariantURLs
}

// CreatePropertyInput describes a new listing. The store creates the
// property row, its SEO row, an unverified verification row, the submission
// history entry and any images in a single transaction
type CreatePropertyInput struct {
	Title        string
	Description  string
	PropertyType domain.PropertyType
	Price        int64
	Area         float64
	AreaUnit     string

	Address    string
	City       string
	District   string
	State      string
	Country    string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
	Boundary   schema.Boundary

	KhasraNumber  string
	MurabbaNumber string
	KhewatNumber  string

	CreatedByType    domain.CreatedByType
	CreatedByAdminID *uint64
	CreatedByUserID  *uint64
	OwnerName        string
	OwnerPhone       string

	Slug            string
	MetaTitle       string
	MetaDescription string
	Keywords        string
	SchemaData      datatypes.JSON

	Images []CreateImageInput
}

// VerificationUpdate carries the verification fields applied alongside a
// verify transition
type VerificationUpdate struct {
	Message string
	Notes   *string
}

// TransitionApprovalInput describes one approval-state transition
type TransitionApprovalInput struct {
	PropertyID uint64
	AdminID    uint64
	// Action names the transition for the audit log ("approve", "reject", "verify")
	Action string
	// NewStatus is the target approval status
	NewStatus  domain.ApprovalStatus
	Message    *string
	AdminNotes *string
	Reason     *string
	IPAddress  *string
	UserAgent  *string
	// Verification is set for verify transitions; the verification row is
	// upserted to verified in the same transaction
	Verification *VerificationUpdate
	Timestamp    time.Time
}

// TransitionApprovalResult is the outcome of a committed transition
type TransitionApprovalResult struct {
	Property       *schema.Property
	PreviousStatus domain.ApprovalStatus
}

// PropertyQueryFilter selects and pages listing rows. Zero values mean
// "no constraint"
type PropertyQueryFilter struct {
	ApprovalStatus   *domain.ApprovalStatus
	CreatedByAdminID *uint64
	CreatedByUserID  *uint64
	// SearchTerm is OR-matched as a case-insensitive substring across the
	// listing text columns, owner contact columns, land parcel identifiers
	// and the joined user's name and email
	SearchTerm string
	Limit      int
	Offset     int
}

// MapQueryBounds is a map viewport in degrees
type MapQueryBounds struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

// MapPropertyFilter selects approved listings for map rendering
type MapPropertyFilter struct {
	Bounds *MapQueryBounds
	// UserID enables the per-property saved flag when set
	UserID *uint64
	Limit  int
}

// MapProperty is a listing row decorated for map rendering
type MapProperty struct {
	Property schema.Property
	// DaysOnMarket counts whole days from creation to now
	DaysOnMarket int
	// Saved is set only when the filter carried a user id
	Saved *bool
}

// OwnerContact is the notification recipient for a user-submitted listing
type OwnerContact struct {
	UserID uint64
	Name   string
	Email  string
	Phone  string
}

// BlogPostFilter selects and pages blog posts
type BlogPostFilter struct {
	Status *schema.BlogPostStatus
	Limit  int
	Offset int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateProperty inserts a listing with its SEO row, verification row,
	// submission history entry and images in one transaction
	CreateProperty(ctx context.Context, input CreatePropertyInput) (*schema.Property, error)
	// GetPropertyByID retrieves a listing by id, or nil when absent
	GetPropertyByID(ctx context.Context, id uint64) (*schema.Property, error)
	// TransitionApproval atomically applies one approval-state transition:
	// update the property row, append the history row and, for verify,
	// upsert the verification row
	TransitionApproval(ctx context.Context, input TransitionApprovalInput) (*TransitionApprovalResult, error)
	// QueryProperties returns one page of listings matching the filter plus
	// the total count sharing the same predicate. Each row carries its SEO
	// row, verification row and image list
	QueryProperties(ctx context.Context, filter PropertyQueryFilter) ([]schema.Property, int64, error)
	// QueryMapProperties returns approved listings for map rendering
	QueryMapProperties(ctx context.Context, filter MapPropertyFilter) ([]MapProperty, error)
	// ListApprovalHistory returns the audit trail for a listing, oldest first
	ListApprovalHistory(ctx context.Context, propertyID uint64) ([]schema.PropertyApprovalHistory, error)
	// GetVerification retrieves the verification row for a listing, or nil when absent
	GetVerification(ctx context.Context, propertyID uint64) (*schema.PropertyVerification, error)
	// GetOwnerContact resolves the notification recipient for a
	// user-submitted listing, or nil for admin-submitted ones
	GetOwnerContact(ctx context.Context, propertyID uint64) (*OwnerContact, error)
	// ListStalePendingProperties returns listings stuck in PENDING since
	// before the cutoff, oldest first
	ListStalePendingProperties(ctx context.Context, cutoff time.Time, limit int) ([]schema.Property, error)

	// SaveProperty bookmarks a listing for a user; saving twice is a no-op
	SaveProperty(ctx context.Context, userID, propertyID uint64) error
	// UnsaveProperty removes a user's bookmark
	UnsaveProperty(ctx context.Context, userID, propertyID uint64) error
	// ListSavedProperties returns one page of a user's bookmarked listings
	// plus the total count, newest bookmark first
	ListSavedProperties(ctx context.Context, userID uint64, limit, offset int) ([]schema.Property, int64, error)

	// CreateApprovalNotification inserts a user-facing notification row.
	// Duplicate dispatch ids are silently skipped
	CreateApprovalNotification(ctx context.Context, notification *schema.PropertyApprovalNotification) error
	// ListNotifications returns one page of a user's notifications plus the
	// total count, newest first
	ListNotifications(ctx context.Context, userID uint64, limit, offset int) ([]schema.PropertyApprovalNotification, int64, error)
	// MarkNotificationRead flips a notification to read for its recipient
	MarkNotificationRead(ctx context.Context, notificationID, userID uint64) error

	// GetUserByID retrieves a user by id, or nil when absent
	GetUserByID(ctx context.Context, id uint64) (*schema.User, error)
	// GetAdminByID retrieves an admin by id, or nil when absent
	GetAdminByID(ctx context.Context, id uint64) (*schema.Admin, error)

	// CreateBlogPost inserts a blog post; domain.ErrSlugTaken on slug collision
	CreateBlogPost(ctx context.Context, post *schema.BlogPost) error
	// GetBlogPostBySlug retrieves a blog post by slug, or nil when absent
	GetBlogPostBySlug(ctx context.Context, slug string) (*schema.BlogPost, error)
	// ListBlogPosts returns one page of blog posts plus the total count
	ListBlogPosts(ctx context.Context, filter BlogPostFilter) ([]schema.BlogPost, int64, error)
	// UpdateBlogPost updates a blog post's mutable fields
	UpdateBlogPost(ctx context.Context, post *schema.BlogPost) error
	// DeleteBlogPost removes a blog post
	DeleteBlogPost(ctx context.Context, id uint64) error
}
