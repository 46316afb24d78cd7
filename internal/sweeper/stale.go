package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/metrics"
	"github.com/propsetu/estate-backend/internal/notification"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/store/schema"
)

// reminderAction is not part of the workflow action set, so the dispatcher
// renders reminders with its neutral fallback content
const reminderAction = domain.NotificationAction("REMINDER")

// StalePendingSweeperConfig holds configuration for the stale-pending sweeper
type StalePendingSweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	OlderThan      time.Duration // Only remind about listings pending longer than this
	BatchSize      int           // Listings to process per cycle
	WorkerPoolSize int           // Concurrent owner-contact lookups
}

// stalePendingSweeper reminds owners about listings stuck in PENDING
type stalePendingSweeper struct {
	config     *StalePendingSweeperConfig
	store      store.Store
	dispatcher notification.Dispatcher
	pool       pond.Pool
	clock      adapter.Clock
	running    atomic.Bool
	stopChan   chan struct{}
	stoppedCh  chan struct{}
}

// NewStalePendingSweeper creates a new stale-pending sweeper
func NewStalePendingSweeper(
	config *StalePendingSweeperConfig,
	st store.Store,
	dispatcher notification.Dispatcher,
	clock adapter.Clock,
) Sweeper {
	return &stalePendingSweeper{
		config:     config,
		store:      st,
		dispatcher: dispatcher,
		clock:      clock,
		stopChan:   make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *stalePendingSweeper) Name() string {
	return "stale-pending-sweeper"
}

// Start begins the sweeper's main loop
func (s *stalePendingSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting stale-pending sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("older_than", s.config.OlderThan),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Stale-pending sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Stale-pending sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *stalePendingSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *stalePendingSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping stale-pending sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Stale-pending sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Stale-pending sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *stalePendingSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-s.config.OlderThan)

	properties, err := s.store.ListStalePendingProperties(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list stale pending properties: %w", err)
	}

	metrics.StalePendingProperties.Set(float64(len(properties)))

	if len(properties) == 0 {
		logger.InfoCtx(ctx, "No stale pending properties")
		if !s.sleep(ctx, s.config.Interval) {
			return ctx.Err()
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found stale pending properties", zap.Int("count", len(properties)))

	// Owner contact lookups run concurrently; the dispatch itself stays
	// sequential so bulk pacing applies
	var mu sync.Mutex
	var descriptors []notification.Descriptor

	for i := range properties {
		property := properties[i]
		s.pool.Submit(func() {
			desc, ok := s.buildReminder(ctx, &property)
			if !ok {
				return
			}
			mu.Lock()
			descriptors = append(descriptors, desc)
			mu.Unlock()
		})
	}

	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	var result notification.BulkDispatchResult
	if len(descriptors) > 0 {
		result = s.dispatcher.DispatchBulk(ctx, descriptors)
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("stale_properties", len(properties)),
		zap.Int("reminders", len(descriptors)),
		zap.Int("emails_sent", result.EmailsSent),
		zap.Int("sms_sent", result.SMSSent),
		zap.Int("errors", len(result.Errors)),
	)

	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err()
	}
	return nil
}

// buildReminder resolves the owner contact and composes the reminder
// descriptor; admin-submitted listings have no reminder recipient
func (s *stalePendingSweeper) buildReminder(ctx context.Context, property *schema.Property) (notification.Descriptor, bool) {
	if property.CreatedByType != domain.CreatedByUser {
		return notification.Descriptor{}, false
	}

	contact, err := s.store.GetOwnerContact(ctx, property.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve owner contact for reminder",
			zap.Error(err),
			zap.Uint64("property_id", property.ID),
		)
		return notification.Descriptor{}, false
	}
	if contact == nil {
		return notification.Descriptor{}, false
	}

	return notification.Descriptor{
		PropertyID: property.ID,
		Title:      property.Title,
		OwnerName:  contact.Name,
		OwnerEmail: contact.Email,
		OwnerPhone: contact.Phone,
		Price:      property.Price,
		Address:    property.Address,
		City:       property.City,
		State:      property.State,
		Action:     reminderAction,
		Message:    "It is still awaiting review. Our team will get to it as soon as possible.",
	}, true
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request
func (s *stalePendingSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
