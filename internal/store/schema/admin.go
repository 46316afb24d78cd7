package schema

import (
	"time"

	"github.com/propsetu/estate-backend/internal/domain"
)

// Admin represents the admins table - staff accounts that review and manage listings
type Admin struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the admin's display name
	Name string `gorm:"column:name;not null;type:text"`
	// Email is the admin's login email
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// Phone is the admin's contact number
	Phone *string `gorm:"column:phone;type:text"`
	// Role determines what the admin is allowed to do (SUPER_ADMIN, MODERATOR, CONTENT_EDITOR)
	Role domain.AdminRole `gorm:"column:role;not null;type:text;default:'MODERATOR'"`
	// IsActive indicates whether the account can sign in
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Admin model
func (Admin) TableName() string {
	return "admins"
}
