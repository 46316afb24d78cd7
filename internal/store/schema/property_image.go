package schema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// VariantURLs maps a size-variant name (thumbnail, medium, large, original)
// to its URL, stored as a JSONB column
type VariantURLs map[string]string

// Value implements driver.Valuer for JSONB storage
func (v VariantURLs) Value() (driver.Value, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner for JSONB storage
func (v *VariantURLs) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}

	var data []byte
	switch src := value.(type) {
	case []byte:
		data = src
	case string:
		data = []byte(src)
	default:
		return fmt.Errorf("unsupported variant_urls column type %T", value)
	}

	return json.Unmarshal(data, v)
}

// PropertyImage represents the property_images table - listing photos,
// many per property
type PropertyImage struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PropertyID references the property the image belongs to
	PropertyID uint64 `gorm:"column:property_id;not null;index:idx_property_images_property"`
	// ImageURL is the primary display URL
	ImageURL string `gorm:"column:image_url;not null;type:text"`
	// ImageType classifies the photo (exterior, interior, document, ...)
	ImageType string `gorm:"column:image_type;type:text"`
	// Caption is the visible photo caption
	Caption string `gorm:"column:caption;type:text"`
	// AltText is the accessibility alt text
	AltText string `gorm:"column:alt_text;type:text"`
	// SortOrder controls gallery ordering
	SortOrder int `gorm:"column:sort_order;not null;default:0"`
	// IsMain marks the cover photo; exactly one per property by convention, not enforced by the database
	IsMain bool `gorm:"column:is_main;not null;default:false"`
	// VariantURLs holds the size-variant URLs produced by the image storage provider
	VariantURLs VariantURLs `gorm:"column:variant_urls;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PropertyImage model
func (PropertyImage) TableName() string {
	return "property_images"
}
