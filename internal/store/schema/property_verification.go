package schema

import (
	"time"
)

// PropertyVerification represents the property_verifications table - a 1:1
// record per property tracking authenticity verification. Verification is a
// separate axis from approval: a property can be approved but unverified.
// The row is created unverified at property creation time and updated in
// place when an admin verifies
type PropertyVerification struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PropertyID references the verified property
	PropertyID uint64 `gorm:"column:property_id;not null;uniqueIndex"`
	// IsVerified indicates whether an admin has confirmed the listing's legitimacy
	IsVerified bool `gorm:"column:is_verified;not null;default:false"`
	// VerificationMessage is the owner-facing verification message
	VerificationMessage string `gorm:"column:verification_message;type:text"`
	// VerificationNotes are internal reviewer notes
	VerificationNotes *string `gorm:"column:verification_notes;type:text"`
	// VerifiedBy is the admin who performed the verification
	VerifiedBy *uint64 `gorm:"column:verified_by"`
	// VerifiedAt is when the verification happened
	VerifiedAt *time.Time `gorm:"column:verified_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PropertyVerification model
func (PropertyVerification) TableName() string {
	return "property_verifications"
}
