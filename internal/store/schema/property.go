package schema

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/propsetu/estate-backend/internal/domain"
)

// Coordinate is a single point of a property boundary polygon
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Boundary is an ordered list of coordinates describing the property's
// polygon outline, stored as a JSONB column
type Boundary []Coordinate

// Value implements driver.Valuer for JSONB storage
func (b Boundary) Value() (driver.Value, error) {
	if len(b) == 0 {
		return nil, nil
	}
	return json.Marshal(b)
}

// Scan implements sql.Scanner for JSONB storage
func (b *Boundary) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported boundary column type %T", value)
	}

	return json.Unmarshal(data, b)
}

// Property represents the properties table - the central listing entity
type Property struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`

	// Descriptive fields
	// Title is the listing headline
	Title string `gorm:"column:title;not null;type:text"`
	// Description is the free-text listing body
	Description string `gorm:"column:description;type:text"`
	// PropertyType classifies the listing (agricultural, commercial, residential, ...)
	PropertyType domain.PropertyType `gorm:"column:property_type;not null;type:text;index:idx_properties_type"`
	// Price is the asking price in the smallest currency unit
	Price int64 `gorm:"column:price;not null;default:0"`
	// Area is the plot/built-up area size
	Area float64 `gorm:"column:area;not null;default:0"`
	// AreaUnit is the unit Area is expressed in (sqft, sqm, acre, ...)
	AreaUnit string `gorm:"column:area_unit;type:text"`

	// Location fields
	// Address is the free-text street address
	Address string `gorm:"column:address;type:text"`
	// City is the listing city
	City string `gorm:"column:city;type:text;index:idx_properties_city"`
	// District is the administrative district
	District string `gorm:"column:district;type:text"`
	// State is the listing state
	State string `gorm:"column:state;type:text"`
	// Country is the listing country
	Country string `gorm:"column:country;type:text"`
	// PostalCode is the listing postal code
	PostalCode string `gorm:"column:postal_code;type:text"`
	// Latitude is the center point latitude used for map rendering
	Latitude *float64 `gorm:"column:latitude"`
	// Longitude is the center point longitude used for map rendering
	Longitude *float64 `gorm:"column:longitude"`
	// Boundary is the optional polygon outline of the parcel
	Boundary Boundary `gorm:"column:boundary;type:jsonb"`

	// Land registry parcel identifiers
	// KhasraNumber is the land-registry khasra parcel identifier
	KhasraNumber string `gorm:"column:khasra_number;type:text"`
	// MurabbaNumber is the land-registry murabba parcel identifier
	MurabbaNumber string `gorm:"column:murabba_number;type:text"`
	// KhewatNumber is the land-registry khewat parcel identifier
	KhewatNumber string `gorm:"column:khewat_number;type:text"`

	// Ownership provenance
	// CreatedByType records which kind of account submitted the listing (ADMIN or USER)
	CreatedByType domain.CreatedByType `gorm:"column:created_by_type;not null;type:text"`
	// CreatedByAdminID is set when CreatedByType is ADMIN, never together with CreatedByUserID
	CreatedByAdminID *uint64 `gorm:"column:created_by_admin_id;index:idx_properties_created_by_admin"`
	// CreatedByUserID is set when CreatedByType is USER, never together with CreatedByAdminID
	CreatedByUserID *uint64 `gorm:"column:created_by_user_id;index:idx_properties_created_by_user"`
	// OwnerName is the listing contact name, denormalized for search
	OwnerName string `gorm:"column:owner_name;type:text"`
	// OwnerPhone is the listing contact number, denormalized for search
	OwnerPhone string `gorm:"column:owner_phone;type:text"`

	// Approval state
	// ApprovalStatus is the admin-review state of the listing (PENDING, APPROVED, REJECTED,
	// plus a legacy FLAGGED value that has no workflow transition)
	ApprovalStatus domain.ApprovalStatus `gorm:"column:approval_status;not null;type:text;default:'PENDING';index:idx_properties_approval_status"`
	// ApprovalMessage is the message recorded with the latest approval
	ApprovalMessage *string `gorm:"column:approval_message;type:text"`
	// ApprovedBy is the admin who last approved the listing
	ApprovedBy *uint64 `gorm:"column:approved_by"`
	// ApprovedAt is when the listing was last approved
	ApprovedAt *time.Time `gorm:"column:approved_at;type:timestamptz"`
	// RejectionReason is the reason recorded with the latest rejection
	RejectionReason *string `gorm:"column:rejection_reason;type:text"`
	// RejectedBy is the admin who last rejected the listing
	RejectedBy *uint64 `gorm:"column:rejected_by"`
	// RejectedAt is when the listing was last rejected
	RejectedAt *time.Time `gorm:"column:rejected_at;type:timestamptz"`
	// AdminNotes are internal reviewer notes, not shown to the owner
	AdminNotes *string `gorm:"column:admin_notes;type:text"`
	// LastReviewedBy is the admin who performed the most recent transition
	LastReviewedBy *uint64 `gorm:"column:last_reviewed_by"`
	// LastReviewedAt is when the most recent transition happened
	LastReviewedAt *time.Time `gorm:"column:last_reviewed_at;type:timestamptz"`

	// Timestamps
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_properties_created_at"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Seo             *PropertySeo                    `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Verification    *PropertyVerification           `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Images          []PropertyImage                 `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	ApprovalHistory []PropertyApprovalHistory       `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Notifications   []PropertyApprovalNotification  `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Property model
func (Property) TableName() string {
	return "properties"
}
