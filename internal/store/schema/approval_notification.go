package schema

import (
	"time"

	"github.com/propsetu/estate-backend/internal/domain"
)

// PropertyApprovalNotification represents the property_approval_notifications
// table - one row per user-facing notification tied to a status change.
// Rows are created by the approval workflow and mutated only to flip IsRead
type PropertyApprovalNotification struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DispatchID is a unique key for the dispatch attempt, used for idempotency
	DispatchID string `gorm:"column:dispatch_id;not null;uniqueIndex;type:text"`
	// PropertyID references the property the notification is about
	PropertyID uint64 `gorm:"column:property_id;not null;index:idx_approval_notifications_property"`
	// UserID is the recipient; nil for admin-submitted properties
	UserID *uint64 `gorm:"column:user_id;index:idx_approval_notifications_user"`
	// Action is the workflow action that produced the notification
	Action domain.NotificationAction `gorm:"column:action;not null;type:text"`
	// Title is the short notification headline
	Title string `gorm:"column:title;not null;type:text"`
	// Message is the notification body
	Message string `gorm:"column:message;type:text"`
	// Priority ranks the notification (low, normal, high)
	Priority string `gorm:"column:priority;not null;type:text;default:'normal'"`
	// Category groups notifications in the user's inbox
	Category string `gorm:"column:category;not null;type:text;default:'approval'"`
	// IsRead indicates whether the recipient has opened the notification
	IsRead bool `gorm:"column:is_read;not null;default:false"`
	// ReadAt is when the recipient opened the notification
	ReadAt *time.Time `gorm:"column:read_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PropertyApprovalNotification model
func (PropertyApprovalNotification) TableName() string {
	return "property_approval_notifications"
}
