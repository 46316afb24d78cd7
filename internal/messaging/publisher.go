package messaging

import (
	"context"

	"github.com/propsetu/estate-backend/internal/domain"
)

// Publisher defines the interface for publishing property lifecycle events
// to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a property lifecycle event
	PublishEvent(ctx context.Context, event *domain.PropertyEvent) error
	// Close closes the connection
	Close()
}
