package schema

import (
	"time"
)

// SavedProperty represents the saved_properties table - a user's bookmark of
// a listing, tracked separately from approval and verification
type SavedProperty struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UserID is the bookmarking user
	UserID uint64 `gorm:"column:user_id;not null;uniqueIndex:idx_saved_properties_user_property,priority:1"`
	// PropertyID is the bookmarked property
	PropertyID uint64 `gorm:"column:property_id;not null;uniqueIndex:idx_saved_properties_user_property,priority:2"`
	// CreatedAt is the timestamp when the bookmark was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the SavedProperty model
func (SavedProperty) TableName() string {
	return "saved_properties"
}
