package schema

import (
	"time"

	"gorm.io/datatypes"
)

// PropertySeo represents the property_seo table - the 1:1 SEO projection
// required for public listing pages. Created alongside the property;
// every listing query inner-joins this table
type PropertySeo struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PropertyID references the property this projection belongs to
	PropertyID uint64 `gorm:"column:property_id;not null;uniqueIndex"`
	// Slug is the URL path segment for the public listing page
	Slug string `gorm:"column:slug;not null;uniqueIndex;type:text"`
	// MetaTitle is the page title tag
	MetaTitle string `gorm:"column:meta_title;type:text"`
	// MetaDescription is the page meta description
	MetaDescription string `gorm:"column:meta_description;type:text"`
	// Keywords is the comma-separated keyword list
	Keywords string `gorm:"column:keywords;type:text"`
	// SchemaData is the open-ended schema.org structured-data blob rendered on the page
	SchemaData datatypes.JSON `gorm:"column:schema_data;type:jsonb"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PropertySeo model
func (PropertySeo) TableName() string {
	return "property_seo"
}
