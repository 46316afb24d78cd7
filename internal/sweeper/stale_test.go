package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/domain"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
	"github.com/propsetu/estate-backend/internal/notification"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/store/schema"
	"github.com/propsetu/estate-backend/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	dispatcher *mocks.MockDispatcher
	clock      *mocks.MockClock
	sweeper    sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:       ctrl,
		store:      mocks.NewMockStore(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}

	config := &sweeper.StalePendingSweeperConfig{
		Interval:       time.Hour,
		OlderThan:      72 * time.Hour,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}

	tm.sweeper = sweeper.NewStalePendingSweeper(
		config,
		tm.store,
		tm.dispatcher,
		tm.clock,
	)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// expectClock wires the standard clock expectations: a fixed now and an
// After channel that fires shortly so Stop gets a chance to run
func expectClock(tm *testSweeperMocks, now time.Time) {
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(now).Return(time.Second).AnyTimes()
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

func userID(v uint64) *uint64 { return &v }

func TestStalePendingSweeper_Name(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.Equal(t, "stale-pending-sweeper", mocks.sweeper.Name())
}

func TestStalePendingSweeper_SendsReminders(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Now()
	expectClock(tm, now)

	stale := []schema.Property{
		{
			ID:              101,
			Title:           "Lake View Villa",
			Price:           25_000_000,
			Address:         "12 Lake Road",
			City:            "Gurgaon",
			State:           "Haryana",
			CreatedByType:   domain.CreatedByUser,
			CreatedByUserID: userID(7),
			ApprovalStatus:  domain.ApprovalStatusPending,
		},
		{
			ID:             102,
			Title:          "Office Block",
			CreatedByType:  domain.CreatedByAdmin,
			ApprovalStatus: domain.ApprovalStatusPending,
		},
	}

	gomock.InOrder(
		tm.store.EXPECT().
			ListStalePendingProperties(gomock.Any(), now.Add(-72*time.Hour), 10).
			Return(stale, nil).
			Times(1),
		tm.store.EXPECT().
			ListStalePendingProperties(gomock.Any(), now.Add(-72*time.Hour), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	// Only the user-submitted listing has a reminder recipient
	tm.store.EXPECT().
		GetOwnerContact(gomock.Any(), uint64(101)).
		Return(&store.OwnerContact{
			UserID: 7,
			Name:   "Asha Verma",
			Email:  "asha@example.com",
			Phone:  "+919876543210",
		}, nil)

	tm.dispatcher.EXPECT().
		DispatchBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, descriptors []notification.Descriptor) notification.BulkDispatchResult {
			require.Len(t, descriptors, 1)
			assert.Equal(t, uint64(101), descriptors[0].PropertyID)
			assert.Equal(t, "Asha Verma", descriptors[0].OwnerName)
			assert.Equal(t, "asha@example.com", descriptors[0].OwnerEmail)
			assert.Equal(t, domain.NotificationAction("REMINDER"), descriptors[0].Action)
			return notification.BulkDispatchResult{TotalSent: 1, EmailsSent: 1, SMSSent: 1}
		})

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestStalePendingSweeper_ContactLookupFailureSkipsListing(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	ctx := context.Background()
	now := time.Now()
	expectClock(tm, now)

	stale := []schema.Property{
		{
			ID:              201,
			Title:           "Corner Plot",
			CreatedByType:   domain.CreatedByUser,
			CreatedByUserID: userID(3),
			ApprovalStatus:  domain.ApprovalStatusPending,
		},
	}

	gomock.InOrder(
		tm.store.EXPECT().
			ListStalePendingProperties(gomock.Any(), gomock.Any(), 10).
			Return(stale, nil).
			Times(1),
		tm.store.EXPECT().
			ListStalePendingProperties(gomock.Any(), gomock.Any(), 10).
			Return(nil, nil).
			MinTimes(1),
	)

	tm.store.EXPECT().
		GetOwnerContact(gomock.Any(), uint64(201)).
		Return(nil, errors.New("database down"))

	// No descriptors means no bulk dispatch

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = tm.sweeper.Stop(ctx)
	}()

	err := tm.sweeper.Start(ctx)
	require.NoError(t, err)
}

func TestStalePendingSweeper_StopBeforeStart(t *testing.T) {
	tm := setupTestSweeper(t)
	defer tearDownTestSweeper(tm)

	// Stopping a sweeper that never ran is a no-op
	require.NoError(t, tm.sweeper.Stop(context.Background()))
}
