package schema

import (
	"time"
)

// User represents the users table - marketplace customers who list and browse properties
type User struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FirstName is the user's first name
	FirstName string `gorm:"column:first_name;not null;type:text"`
	// LastName is the user's last name
	LastName string `gorm:"column:last_name;type:text"`
	// Email is the user's login email
	Email string `gorm:"column:email;not null;uniqueIndex;type:text"`
	// Phone is the user's contact number, used for SMS notifications
	Phone *string `gorm:"column:phone;type:text"`
	// IsActive indicates whether the account can sign in
	IsActive bool `gorm:"column:is_active;not null;default:true"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
