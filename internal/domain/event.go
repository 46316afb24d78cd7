package domain

import "time"

// PropertyEvent is the message published to the broker after a successful
// approval-workflow transition. Publication is best-effort and happens
// outside the transition transaction; the approval history table, not the
// event stream, is the system of record.
type PropertyEvent struct {
	// EventID is a ULID so events sort by emission time
	EventID string `json:"event_id"`
	// Type is one of the property.* lifecycle event types
	Type PropertyEventType `json:"type"`
	// PropertyID is the internal id of the affected property
	PropertyID uint64 `json:"property_id"`
	// PreviousStatus and NewStatus describe the transition
	PreviousStatus ApprovalStatus `json:"previous_status"`
	NewStatus      ApprovalStatus `json:"new_status"`
	// AdminID is the acting admin
	AdminID uint64 `json:"admin_id"`
	// Timestamp is when the transition committed
	Timestamp time.Time `json:"timestamp"`
}
