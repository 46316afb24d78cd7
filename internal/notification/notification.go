package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/metrics"
)

// EmailMessage is one outbound transactional email
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// EmailSender delivers transactional email through an external provider
//
//go:generate mockgen -source=notification.go -destination=../mocks/notification.go -package=mocks -mock_names=EmailSender=MockEmailSender,SMSSender=MockSMSSender,Dispatcher=MockDispatcher
type EmailSender interface {
	// Send delivers one email and returns the provider message id
	Send(ctx context.Context, msg EmailMessage) (string, error)
}

// SMSSender delivers SMS through an external gateway
type SMSSender interface {
	// Send delivers one SMS to the given number
	Send(ctx context.Context, to string, body string) error
}

// Descriptor carries everything needed to notify a property owner about a
// status change
type Descriptor struct {
	PropertyID uint64
	Title      string
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
	Price      int64
	Address    string
	City       string
	State      string

	Action     domain.NotificationAction
	Message    string
	AdminName  string
	ReviewDate *time.Time
	Reason     string
}

// DispatchResult reports which channels succeeded for one descriptor
type DispatchResult struct {
	EmailSent bool
	SMSSent   bool
	Errors    []string
}

// BulkDispatchResult aggregates a sequential bulk send
type BulkDispatchResult struct {
	TotalSent  int
	EmailsSent int
	SMSSent    int
	Errors     []string
}

// Dispatcher translates a status-change event into an email and an SMS
type Dispatcher interface {
	// Dispatch makes exactly one email attempt and one SMS attempt.
	// Provider failures are captured in the result, never returned
	Dispatch(ctx context.Context, d Descriptor) DispatchResult
	// DispatchBulk sends descriptors sequentially with a pacing delay
	// between items. A failed item never aborts the rest
	DispatchBulk(ctx context.Context, descriptors []Descriptor) BulkDispatchResult
}

// Limiter gates outbound provider calls shared across instances
type Limiter interface {
	// Wait blocks until the named operation is allowed to proceed
	Wait(ctx context.Context, key string) error
}

type dispatcher struct {
	email   EmailSender
	sms     SMSSender
	limiter Limiter
	clock   adapter.Clock
	pacing  time.Duration
}

// NewDispatcher creates a dispatcher. The limiter may be nil when no
// distributed rate limit applies; pacing is the inter-item delay used by
// DispatchBulk
func NewDispatcher(email EmailSender, sms SMSSender, limiter Limiter, clock adapter.Clock, pacing time.Duration) Dispatcher {
	if pacing <= 0 {
		pacing = 500 * time.Millisecond
	}
	return &dispatcher{
		email:   email,
		sms:     sms,
		limiter: limiter,
		clock:   clock,
		pacing:  pacing,
	}
}

// Dispatch makes exactly one email attempt and one SMS attempt for the
// descriptor. All provider errors are swallowed into the result
func (d *dispatcher) Dispatch(ctx context.Context, desc Descriptor) DispatchResult {
	var result DispatchResult

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx, "notification:dispatch"); err != nil {
			logger.WarnCtx(ctx, "rate limiter unavailable, proceeding",
				zap.Error(err), zap.Uint64("property_id", desc.PropertyID))
		}
	}

	if desc.OwnerEmail == "" {
		result.Errors = append(result.Errors, "owner has no email address")
	} else {
		subject, htmlBody, textBody := buildEmail(desc)
		messageID, err := d.email.Send(ctx, EmailMessage{
			To:       desc.OwnerEmail,
			Subject:  subject,
			HTMLBody: htmlBody,
			TextBody: textBody,
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("email: %v", err))
			logger.WarnCtx(ctx, "failed to send notification email",
				zap.Error(err),
				zap.Uint64("property_id", desc.PropertyID),
				zap.String("action", string(desc.Action)))
		} else {
			result.EmailSent = true
			logger.DebugCtx(ctx, "notification email sent",
				zap.String("message_id", messageID),
				zap.Uint64("property_id", desc.PropertyID))
		}
		metrics.NotificationsSentTotal.WithLabelValues("email", outcomeLabel(result.EmailSent)).Inc()
	}

	if desc.OwnerPhone == "" {
		result.Errors = append(result.Errors, "owner has no phone number")
	} else {
		body := buildSMS(desc)
		if err := d.sms.Send(ctx, desc.OwnerPhone, body); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("sms: %v", err))
			logger.WarnCtx(ctx, "failed to send notification sms",
				zap.Error(err),
				zap.Uint64("property_id", desc.PropertyID),
				zap.String("action", string(desc.Action)))
		} else {
			result.SMSSent = true
		}
		metrics.NotificationsSentTotal.WithLabelValues("sms", outcomeLabel(result.SMSSent)).Inc()
	}

	return result
}

func outcomeLabel(sent bool) string {
	if sent {
		return "sent"
	}
	return "failed"
}

// DispatchBulk sends descriptors sequentially with a pacing delay between
// items to stay under provider rate limits. Item failures are aggregated,
// never fatal
func (d *dispatcher) DispatchBulk(ctx context.Context, descriptors []Descriptor) BulkDispatchResult {
	var result BulkDispatchResult

	for i, desc := range descriptors {
		if i > 0 {
			d.clock.Sleep(d.pacing)
		}

		itemResult := d.Dispatch(ctx, desc)
		if itemResult.EmailSent {
			result.EmailsSent++
		}
		if itemResult.SMSSent {
			result.SMSSent++
		}
		if itemResult.EmailSent || itemResult.SMSSent {
			result.TotalSent++
		}
		for _, e := range itemResult.Errors {
			result.Errors = append(result.Errors, fmt.Sprintf("property %d: %s", desc.PropertyID, e))
		}
	}

	return result
}
