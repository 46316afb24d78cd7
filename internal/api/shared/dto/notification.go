package dto

import (
	"time"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

// NotificationResponse represents one in-app notification
type NotificationResponse struct {
	ID         uint64                    `json:"id"`
	PropertyID uint64                    `json:"property_id"`
	Action     domain.NotificationAction `json:"action"`
	Title      string                    `json:"title"`
	Message    string                    `json:"message,omitempty"`
	Priority   string                    `json:"priority"`
	Category   string                    `json:"category"`
	IsRead     bool                      `json:"is_read"`
	ReadAt     *time.Time                `json:"read_at,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// NotificationListResponse represents one page of notifications
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Meta  Meta                   `json:"meta"`
}

// MapNotificationToDTO maps a schema.PropertyApprovalNotification to NotificationResponse
func MapNotificationToDTO(n *schema.PropertyApprovalNotification) *NotificationResponse {
	return &NotificationResponse{
		ID:         n.ID,
		PropertyID: n.PropertyID,
		Action:     n.Action,
		Title:      n.Title,
		Message:    n.Message,
		Priority:   n.Priority,
		Category:   n.Category,
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}
