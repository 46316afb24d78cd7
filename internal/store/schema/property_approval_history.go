package schema

import (
	"time"

	"github.com/propsetu/estate-backend/internal/domain"
)

// PropertyApprovalHistory represents the property_approval_history table -
// the append-only audit log of every approval-state transition.
// Rows are never updated or deleted after insert; this table, not the
// property row, is authoritative for the full review trail
type PropertyApprovalHistory struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PropertyID references the property the transition applies to
	PropertyID uint64 `gorm:"column:property_id;not null;index:idx_approval_history_property"`
	// AdminID is the acting admin; zero for system-generated rows such as the submission entry
	AdminID *uint64 `gorm:"column:admin_id"`
	// Action names the transition ("approve", "reject", "verify", "submitted")
	Action string `gorm:"column:action;not null;type:text"`
	// PreviousStatus is the approval status before the transition; empty for the submission entry
	PreviousStatus domain.ApprovalStatus `gorm:"column:previous_status;type:text"`
	// NewStatus is the approval status after the transition
	NewStatus domain.ApprovalStatus `gorm:"column:new_status;not null;type:text"`
	// Message is the admin-facing message recorded with the transition
	Message *string `gorm:"column:message;type:text"`
	// AdminNotes are the internal notes recorded with the transition
	AdminNotes *string `gorm:"column:admin_notes;type:text"`
	// Reason is the stated reason for the transition
	Reason *string `gorm:"column:reason;type:text"`
	// IPAddress is the request origin captured for audit
	IPAddress *string `gorm:"column:ip_address;type:text"`
	// UserAgent is the request user agent captured for audit
	UserAgent *string `gorm:"column:user_agent;type:text"`
	// CreatedAt is the timestamp when the transition happened
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PropertyApprovalHistory model
func (PropertyApprovalHistory) TableName() string {
	return "property_approval_history"
}
