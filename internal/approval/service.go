// Package approval is the single authority for moving a property through
// its review lifecycle. Every transition is persisted atomically with its
// audit trail by the store; owner notification and event publication happen
// after commit and are best-effort.
package approval

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/messaging"
	"github.com/propsetu/estate-backend/internal/metrics"
	"github.com/propsetu/estate-backend/internal/notification"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

// verifyReason is recorded on the approve transition a verify performs.
const verifyReason = "Auto Approved when admin verified the property"

// Request carries one transition command from a resolver.
type Request struct {
	PropertyID uint64
	AdminID    uint64
	Message    *string
	AdminNotes *string
	Reason     *string
	IPAddress  *string
	UserAgent  *string
}

// Service transitions a property's approval and verification state.
// Authorization is the caller's responsibility; the workflow only requires
// that the property and acting admin exist.
//
//go:generate mockgen -source=service.go -destination=../mocks/approval.go -package=mocks -mock_names=Service=MockApprovalService
type Service interface {
	// Approve moves the property to APPROVED from any state
	Approve(ctx context.Context, req Request) (*schema.Property, error)
	// Reject moves the property to REJECTED from any state
	Reject(ctx context.Context, req Request) (*schema.Property, error)
	// Verify marks the property verified and approves it as a side effect
	Verify(ctx context.Context, req Request) (*schema.Property, error)
}

type service struct {
	store      store.Store
	dispatcher notification.Dispatcher
	publisher  messaging.Publisher
	clock      adapter.Clock
}

// NewService creates the approval workflow service.
func NewService(
	st store.Store,
	dispatcher notification.Dispatcher,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Service {
	return &service{
		store:      st,
		dispatcher: dispatcher,
		publisher:  publisher,
		clock:      clock,
	}
}

// Approve moves the property to APPROVED from any state
func (s *service) Approve(ctx context.Context, req Request) (*schema.Property, error) {
	return s.transition(ctx, req, transitionSpec{
		action:    "approve",
		newStatus: domain.ApprovalStatusApproved,
		notify:    domain.ActionApprove,
		event:     domain.EventPropertyApproved,
		reason:    req.Reason,
	})
}

// Reject moves the property to REJECTED from any state
func (s *service) Reject(ctx context.Context, req Request) (*schema.Property, error) {
	return s.transition(ctx, req, transitionSpec{
		action:    "reject",
		newStatus: domain.ApprovalStatusRejected,
		notify:    domain.ActionReject,
		event:     domain.EventPropertyRejected,
		reason:    req.Reason,
	})
}

// Verify marks the property verified. Verifying implies approving, so the
// transition also moves the property to APPROVED with a fixed reason; the
// reverse implication does not hold.
func (s *service) Verify(ctx context.Context, req Request) (*schema.Property, error) {
	reason := verifyReason
	message := ""
	if req.Message != nil {
		message = *req.Message
	}

	return s.transition(ctx, req, transitionSpec{
		action:    "verify",
		newStatus: domain.ApprovalStatusApproved,
		notify:    domain.ActionVerify,
		event:     domain.EventPropertyVerified,
		reason:    &reason,
		verification: &store.VerificationUpdate{
			Message: message,
			Notes:   req.AdminNotes,
		},
	})
}

// transitionSpec is the per-operation shape shared by all transitions.
type transitionSpec struct {
	action       string
	newStatus    domain.ApprovalStatus
	notify       domain.NotificationAction
	event        domain.PropertyEventType
	reason       *string
	verification *store.VerificationUpdate
}

func (s *service) transition(ctx context.Context, req Request, spec transitionSpec) (*schema.Property, error) {
	if req.PropertyID == 0 {
		return nil, errors.New("property id is required")
	}
	if req.AdminID == 0 {
		return nil, errors.New("admin id is required")
	}

	admin, err := s.store.GetAdminByID(ctx, req.AdminID)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin %d: %w", req.AdminID, err)
	}
	if admin == nil {
		return nil, domain.ErrAdminNotFound
	}

	result, err := s.store.TransitionApproval(ctx, store.TransitionApprovalInput{
		PropertyID:   req.PropertyID,
		AdminID:      req.AdminID,
		Action:       spec.action,
		NewStatus:    spec.newStatus,
		Message:      req.Message,
		AdminNotes:   req.AdminNotes,
		Reason:       spec.reason,
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
		Verification: spec.verification,
		Timestamp:    s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	metrics.ApprovalTransitionsTotal.WithLabelValues(spec.action).Inc()

	// Everything past the commit is best-effort. A lost notification or
	// event never undoes a recorded transition.
	s.notifyOwner(ctx, result, spec, admin, req.Message)
	s.publishEvent(ctx, result, spec, req.AdminID)

	return result.Property, nil
}

func (s *service) notifyOwner(ctx context.Context, result *store.TransitionApprovalResult, spec transitionSpec, admin *schema.Admin, reqMessage *string) {
	property := result.Property

	if property.CreatedByType != domain.CreatedByUser {
		return
	}

	contact, err := s.store.GetOwnerContact(ctx, property.ID)
	if err != nil {
		logger.WarnCtx(ctx, "failed to resolve owner contact, skipping notification",
			zap.Uint64("property_id", property.ID), zap.Error(err))
		return
	}
	if contact == nil {
		return
	}

	// The reloaded row's approval_message is only rewritten on approve, so
	// the dispatched message must come from this transition's request.
	message := ""
	if reqMessage != nil {
		message = *reqMessage
	}
	reason := ""
	if spec.reason != nil {
		reason = *spec.reason
	}

	title, body := notification.InboxContent(spec.notify, property.Title, message)
	if err := s.store.CreateApprovalNotification(ctx, &schema.PropertyApprovalNotification{
		DispatchID: uuid.NewString(),
		PropertyID: property.ID,
		UserID:     &contact.UserID,
		Action:     spec.notify,
		Title:      title,
		Message:    body,
	}); err != nil {
		logger.WarnCtx(ctx, "failed to record approval notification",
			zap.Uint64("property_id", property.ID), zap.Error(err))
	}

	s.dispatcher.Dispatch(ctx, notification.Descriptor{
		PropertyID: property.ID,
		Title:      property.Title,
		OwnerName:  contact.Name,
		OwnerEmail: contact.Email,
		OwnerPhone: contact.Phone,
		Price:      property.Price,
		Address:    property.Address,
		City:       property.City,
		State:      property.State,
		Action:     spec.notify,
		Message:    message,
		AdminName:  admin.Name,
		ReviewDate: property.LastReviewedAt,
		Reason:     reason,
	})
}

func (s *service) publishEvent(ctx context.Context, result *store.TransitionApprovalResult, spec transitionSpec, adminID uint64) {
	event := &domain.PropertyEvent{
		EventID:        ulid.Make().String(),
		Type:           spec.event,
		PropertyID:     result.Property.ID,
		PreviousStatus: result.PreviousStatus,
		NewStatus:      result.Property.ApprovalStatus,
		AdminID:        adminID,
		Timestamp:      s.clock.Now(),
	}

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish property event",
			zap.Uint64("property_id", result.Property.ID),
			zap.String("event_type", string(spec.event)),
			zap.Error(err))
	}
}
