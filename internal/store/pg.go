package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. It accesses the underlying *sql.DB and sets the pool
// configuration. Zero settings fall back to defaults
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateProperty inserts a listing with its SEO row, verification row,
// submission history entry and images in one transaction
func (s *pgStore) CreateProperty(ctx context.Context, input CreatePropertyInput) (*schema.Property, error) {
	property := schema.Property{
		Title:            input.Title,
		Description:      input.Description,
		PropertyType:     input.PropertyType,
		Price:            input.Price,
		Area:             input.Area,
		AreaUnit:         input.AreaUnit,
		Address:          input.Address,
		City:             input.City,
		District:         input.District,
		State:            input.State,
		Country:          input.Country,
		PostalCode:       input.PostalCode,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		Boundary:         input.Boundary,
		KhasraNumber:     input.KhasraNumber,
		MurabbaNumber:    input.MurabbaNumber,
		KhewatNumber:     input.KhewatNumber,
		CreatedByType:    input.CreatedByType,
		CreatedByAdminID: input.CreatedByAdminID,
		CreatedByUserID:  input.CreatedByUserID,
		OwnerName:        input.OwnerName,
		OwnerPhone:       input.OwnerPhone,
		ApprovalStatus:   domain.ApprovalStatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return fmt.Errorf("failed to create property: %w", err)
		}

		seo := schema.PropertySeo{
			PropertyID:      property.ID,
			Slug:            input.Slug,
			MetaTitle:       input.MetaTitle,
			MetaDescription: input.MetaDescription,
			Keywords:        input.Keywords,
			SchemaData:      input.SchemaData,
		}
		if err := tx.Create(&seo).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrSlugTaken
			}
			return fmt.Errorf("failed to create property seo: %w", err)
		}

		verification := schema.PropertyVerification{
			PropertyID:          property.ID,
			IsVerified:          false,
			VerificationMessage: "Verification pending",
		}
		if err := tx.Create(&verification).Error; err != nil {
			return fmt.Errorf("failed to create property verification: %w", err)
		}

		history := schema.PropertyApprovalHistory{
			PropertyID: property.ID,
			Action:     "submitted",
			NewStatus:  domain.ApprovalStatusPending,
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to create submission history: %w", err)
		}

		for _, img := range input.Images {
			image := schema.PropertyImage{
				PropertyID:  property.ID,
				ImageURL:    img.ImageURL,
				ImageType:   img.ImageType,
				Caption:     img.Caption,
				AltText:     img.AltText,
				SortOrder:   img.SortOrder,
				IsMain:      img.IsMain,
				VariantURLs: img.VariantURLs,
			}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("failed to create property image: %w", err)
			}
		}

		property.Seo = &seo
		property.Verification = &verification
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &property, nil
}

// GetPropertyByID retrieves a listing by id
func (s *pgStore) GetPropertyByID(ctx context.Context, id uint64) (*schema.Property, error) {
	var property schema.Property
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// TransitionApproval atomically applies one approval-state transition.
// No row lock is taken: concurrent transitions on the same property are
// last-write-wins on the property row while each produces its own history
// entry. The history table is authoritative for the full trail
func (s *pgStore) TransitionApproval(ctx context.Context, input TransitionApprovalInput) (*TransitionApprovalResult, error) {
	now := input.Timestamp
	if now.IsZero() {
		now = time.Now().UTC()
	}

	var result TransitionApprovalResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var property schema.Property
		if err := tx.Where("id = ?", input.PropertyID).First(&property).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPropertyNotFound
			}
			return fmt.Errorf("failed to load property: %w", err)
		}

		previousStatus := property.ApprovalStatus

		updates := map[string]interface{}{
			"approval_status":  input.NewStatus,
			"last_reviewed_by": input.AdminID,
			"last_reviewed_at": now,
			"updated_at":       now,
		}

		switch input.NewStatus {
		case domain.ApprovalStatusApproved:
			updates["approval_message"] = input.Message
			updates["approved_by"] = input.AdminID
			updates["approved_at"] = now
		case domain.ApprovalStatusRejected:
			updates["rejection_reason"] = input.Reason
			updates["rejected_by"] = input.AdminID
			updates["rejected_at"] = now
		}

		// new notes win when provided, existing notes are kept otherwise
		if input.AdminNotes != nil {
			updates["admin_notes"] = input.AdminNotes
		}

		if err := tx.Model(&schema.Property{}).
			Where("id = ?", property.ID).
			Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update property status: %w", err)
		}

		history := schema.PropertyApprovalHistory{
			PropertyID:     property.ID,
			AdminID:        &input.AdminID,
			Action:         input.Action,
			PreviousStatus: previousStatus,
			NewStatus:      input.NewStatus,
			Message:        input.Message,
			AdminNotes:     input.AdminNotes,
			Reason:         input.Reason,
			IPAddress:      input.IPAddress,
			UserAgent:      input.UserAgent,
			CreatedAt:      now,
		}
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to create approval history: %w", err)
		}

		if input.Verification != nil {
			verification := schema.PropertyVerification{
				PropertyID:          property.ID,
				IsVerified:          true,
				VerificationMessage: input.Verification.Message,
				VerificationNotes:   input.Verification.Notes,
				VerifiedBy:          &input.AdminID,
				VerifiedAt:          &now,
				UpdatedAt:           now,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "property_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"is_verified", "verification_message", "verification_notes",
					"verified_by", "verified_at", "updated_at",
				}),
			}).Create(&verification).Error; err != nil {
				return fmt.Errorf("failed to upsert verification: %w", err)
			}
		}

		var updated schema.Property
		if err := tx.Where("id = ?", property.ID).First(&updated).Error; err != nil {
			return fmt.Errorf("failed to reload property: %w", err)
		}

		result = TransitionApprovalResult{
			Property:       &updated,
			PreviousStatus: previousStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// searchColumns are the property columns matched by the free-text search
var searchColumns = []string{
	"properties.title",
	"properties.city",
	"properties.district",
	"properties.state",
	"properties.address",
	"properties.owner_name",
	"properties.owner_phone",
	"properties.khasra_number",
	"properties.murabba_number",
	"properties.khewat_number",
}

// userSearchColumns are the joined owner columns matched by the free-text search
var userSearchColumns = []string{
	"users.first_name",
	"users.last_name",
	"users.email",
}

// buildPropertyQuery composes the shared WHERE predicate for listing
// queries. SEO and verification rows are inner-joined, so a property
// missing either never appears in results
func (s *pgStore) buildPropertyQuery(ctx context.Context, filter PropertyQueryFilter) *gorm.DB {
	query := s.db.WithContext(ctx).
		Model(&schema.Property{}).
		Joins("INNER JOIN property_seo ON property_seo.property_id = properties.id").
		Joins("INNER JOIN property_verifications ON property_verifications.property_id = properties.id")

	if filter.ApprovalStatus != nil {
		query = query.Where("properties.approval_status = ?", *filter.ApprovalStatus)
	}
	if filter.CreatedByAdminID != nil {
		query = query.Where("properties.created_by_admin_id = ?", *filter.CreatedByAdminID)
	}
	if filter.CreatedByUserID != nil {
		query = query.Where("properties.created_by_user_id = ?", *filter.CreatedByUserID)
	}

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		pattern := "%" + term + "%"

		conditions := make([]string, 0, len(searchColumns)+len(userSearchColumns))
		args := make([]interface{}, 0, len(searchColumns)+len(userSearchColumns))
		for _, col := range searchColumns {
			conditions = append(conditions, col+" ILIKE ?")
			args = append(args, pattern)
		}
		for _, col := range userSearchColumns {
			conditions = append(conditions, col+" ILIKE ?")
			args = append(args, pattern)
		}

		query = query.
			Joins("LEFT JOIN users ON users.id = properties.created_by_user_id").
			Where(strings.Join(conditions, " OR "), args...)
	}

	return query
}

// QueryProperties returns one page of listings matching the filter plus the
// total count sharing the same predicate
func (s *pgStore) QueryProperties(ctx context.Context, filter PropertyQueryFilter) ([]schema.Property, int64, error) {
	query := s.buildPropertyQuery(ctx, filter)

	// Count total before pagination so meta stays consistent with the
	// filtered set regardless of the LIMIT/OFFSET window
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query = query.Order("properties.created_at DESC").Order("properties.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var properties []schema.Property
	if err := query.Select("properties.*").Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query properties: %w", err)
	}

	if err := s.attachAssociations(ctx, properties); err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// attachAssociations batch-loads the SEO, verification and image rows for a
// page of properties and attaches them in place
func (s *pgStore) attachAssociations(ctx context.Context, properties []schema.Property) error {
	if len(properties) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(properties))
	index := make(map[uint64]*schema.Property, len(properties))
	for i := range properties {
		ids = append(ids, properties[i].ID)
		index[properties[i].ID] = &properties[i]
	}

	var seos []schema.PropertySeo
	if err := s.db.WithContext(ctx).Where("property_id IN ?", ids).Find(&seos).Error; err != nil {
		return fmt.Errorf("failed to load property seo rows: %w", err)
	}
	for i := range seos {
		if p, ok := index[seos[i].PropertyID]; ok {
			p.Seo = &seos[i]
		}
	}

	var verifications []schema.PropertyVerification
	if err := s.db.WithContext(ctx).Where("property_id IN ?", ids).Find(&verifications).Error; err != nil {
		return fmt.Errorf("failed to load property verifications: %w", err)
	}
	for i := range verifications {
		if p, ok := index[verifications[i].PropertyID]; ok {
			p.Verification = &verifications[i]
		}
	}

	var images []schema.PropertyImage
	if err := s.db.WithContext(ctx).
		Where("property_id IN ?", ids).
		Order("property_id ASC, sort_order ASC, id ASC").
		Find(&images).Error; err != nil {
		return fmt.Errorf("failed to load property images: %w", err)
	}
	for i := range properties {
		// zero images yields an empty array, not nil
		properties[i].Images = []schema.PropertyImage{}
	}
	for i := range images {
		if p, ok := index[images[i].PropertyID]; ok {
			p.Images = append(p.Images, images[i])
		}
	}

	return nil
}

// QueryMapProperties returns approved listings for map rendering with the
// days-on-market counter and, when a user id is supplied, the saved flag
func (s *pgStore) QueryMapProperties(ctx context.Context, filter MapPropertyFilter) ([]MapProperty, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Property{}).
		Where("properties.approval_status = ?", domain.ApprovalStatusApproved).
		Where("properties.latitude IS NOT NULL AND properties.longitude IS NOT NULL")

	if b := filter.Bounds; b != nil {
		query = query.
			Where("properties.latitude BETWEEN ? AND ?", b.MinLatitude, b.MaxLatitude).
			Where("properties.longitude BETWEEN ? AND ?", b.MinLongitude, b.MaxLongitude)
	}

	query = query.Order("properties.created_at DESC").Order("properties.id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var properties []schema.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to query map properties: %w", err)
	}

	var savedIDs map[uint64]bool
	if filter.UserID != nil && len(properties) > 0 {
		ids := make([]uint64, 0, len(properties))
		for i := range properties {
			ids = append(ids, properties[i].ID)
		}

		var saved []schema.SavedProperty
		if err := s.db.WithContext(ctx).
			Where("user_id = ? AND property_id IN ?", *filter.UserID, ids).
			Find(&saved).Error; err != nil {
			return nil, fmt.Errorf("failed to load saved properties: %w", err)
		}

		savedIDs = make(map[uint64]bool, len(saved))
		for i := range saved {
			savedIDs[saved[i].PropertyID] = true
		}
	}

	now := time.Now().UTC()
	results := make([]MapProperty, 0, len(properties))
	for i := range properties {
		mp := MapProperty{
			Property:     properties[i],
			DaysOnMarket: int(now.Sub(properties[i].CreatedAt).Hours() / 24),
		}
		if filter.UserID != nil {
			isSaved := savedIDs[properties[i].ID]
			mp.Saved = &isSaved
		}
		results = append(results, mp)
	}

	return results, nil
}

// ListApprovalHistory returns the audit trail for a listing, oldest first
func (s *pgStore) ListApprovalHistory(ctx context.Context, propertyID uint64) ([]schema.PropertyApprovalHistory, error) {
	var history []schema.PropertyApprovalHistory
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("created_at ASC, id ASC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approval history: %w", err)
	}
	return history, nil
}

// GetVerification retrieves the verification row for a listing
func (s *pgStore) GetVerification(ctx context.Context, propertyID uint64) (*schema.PropertyVerification, error) {
	var verification schema.PropertyVerification
	err := s.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&verification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get verification: %w", err)
	}
	return &verification, nil
}

// GetOwnerContact resolves the notification recipient for a user-submitted
// listing. Admin-submitted listings have no owner to notify and yield nil
func (s *pgStore) GetOwnerContact(ctx context.Context, propertyID uint64) (*OwnerContact, error) {
	property, err := s.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, domain.ErrPropertyNotFound
	}
	if property.CreatedByType != domain.CreatedByUser || property.CreatedByUserID == nil {
		return nil, nil
	}

	user, err := s.GetUserByID(ctx, *property.CreatedByUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	contact := OwnerContact{
		UserID: user.ID,
		Name:   user.FullName(),
		Email:  user.Email,
	}
	if user.Phone != nil {
		contact.Phone = *user.Phone
	}

	// Denormalized listing contact fields win when present
	if property.OwnerName != "" {
		contact.Name = property.OwnerName
	}
	if property.OwnerPhone != "" {
		contact.Phone = property.OwnerPhone
	}

	return &contact, nil
}

// ListStalePendingProperties returns listings stuck in PENDING since before
// the cutoff, oldest first
func (s *pgStore) ListStalePendingProperties(ctx context.Context, cutoff time.Time, limit int) ([]schema.Property, error) {
	query := s.db.WithContext(ctx).
		Where("approval_status = ?", domain.ApprovalStatusPending).
		Where("created_at < ?", cutoff).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var properties []schema.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list stale pending properties: %w", err)
	}
	return properties, nil
}

// SaveProperty bookmarks a listing for a user; saving twice is a no-op
func (s *pgStore) SaveProperty(ctx context.Context, userID, propertyID uint64) error {
	saved := schema.SavedProperty{
		UserID:     userID,
		PropertyID: propertyID,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
		DoNothing: true,
	}).Create(&saved).Error
	if err != nil {
		return fmt.Errorf("failed to save property: %w", err)
	}
	return nil
}

// UnsaveProperty removes a user's bookmark
func (s *pgStore) UnsaveProperty(ctx context.Context, userID, propertyID uint64) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&schema.SavedProperty{}).Error
	if err != nil {
		return fmt.Errorf("failed to unsave property: %w", err)
	}
	return nil
}

// ListSavedProperties returns one page of a user's bookmarked listings plus
// the total count, newest bookmark first
func (s *pgStore) ListSavedProperties(ctx context.Context, userID uint64, limit, offset int) ([]schema.Property, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Property{}).
		Joins("INNER JOIN saved_properties ON saved_properties.property_id = properties.id").
		Where("saved_properties.user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count saved properties: %w", err)
	}

	query = query.Order("saved_properties.created_at DESC").Order("properties.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var properties []schema.Property
	if err := query.Select("properties.*").Find(&properties).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list saved properties: %w", err)
	}

	if err := s.attachAssociations(ctx, properties); err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// CreateApprovalNotification inserts a user-facing notification row.
// Duplicate dispatch ids are silently skipped so a retried workflow call
// never produces a second inbox entry
func (s *pgStore) CreateApprovalNotification(ctx context.Context, notification *schema.PropertyApprovalNotification) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "dispatch_id"}},
		DoNothing: true,
	}).Create(notification).Error
	if err != nil {
		return fmt.Errorf("failed to create approval notification: %w", err)
	}
	return nil
}

// ListNotifications returns one page of a user's notifications plus the
// total count, newest first
func (s *pgStore) ListNotifications(ctx context.Context, userID uint64, limit, offset int) ([]schema.PropertyApprovalNotification, int64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.PropertyApprovalNotification{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var notifications []schema.PropertyApprovalNotification
	if err := query.Find(&notifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, total, nil
}

// MarkNotificationRead flips a notification to read for its recipient
func (s *pgStore) MarkNotificationRead(ctx context.Context, notificationID, userID uint64) error {
	now := time.Now().UTC()
	result := s.db.WithContext(ctx).
		Model(&schema.PropertyApprovalNotification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": now,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// GetUserByID retrieves a user by id
func (s *pgStore) GetUserByID(ctx context.Context, id uint64) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetAdminByID retrieves an admin by id
func (s *pgStore) GetAdminByID(ctx context.Context, id uint64) (*schema.Admin, error) {
	var admin schema.Admin
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

// CreateBlogPost inserts a blog post
func (s *pgStore) CreateBlogPost(ctx context.Context, post *schema.BlogPost) error {
	err := s.db.WithContext(ctx).Create(post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// GetBlogPostBySlug retrieves a blog post by slug
func (s *pgStore) GetBlogPostBySlug(ctx context.Context, slug string) (*schema.BlogPost, error) {
	var post schema.BlogPost
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error
	if err == nil {
		return &post, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("slug = ?", slug).
		First(&post).Error
	if err == nil {
		return &post, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get blog post: %w", err)
}

// ListBlogPosts returns one page of blog posts plus the total count
func (s *pgStore) ListBlogPosts(ctx context.Context, filter BlogPostFilter) ([]schema.BlogPost, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.BlogPost{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var posts []schema.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return posts, total, nil
}

// UpdateBlogPost updates a blog post's mutable fields
func (s *pgStore) UpdateBlogPost(ctx context.Context, post *schema.BlogPost) error {
	result := s.db.WithContext(ctx).
		Model(&schema.BlogPost{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":        post.Title,
			"slug":         post.Slug,
			"body":         post.Body,
			"status":       post.Status,
			"published_at": post.PublishedAt,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("failed to update blog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBlogPostNotFound
	}
	return nil
}

// DeleteBlogPost removes a blog post
func (s *pgStore) DeleteBlogPost(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.BlogPost{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBlogPostNotFound
	}
	return nil
}
