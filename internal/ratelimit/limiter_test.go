package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	m.Run()
}

func pingResult(err error) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	}
	return cmd
}

func newTestLimiter(t *testing.T, ctrl *gomock.Controller, cfg Config, pingErr error) (*Limiter, *mocks.MockRedisRateLimiter, *mocks.MockClock) {
	t.Helper()

	rl := mocks.NewMockRedisRateLimiter(ctrl)
	rc := mocks.NewMockRedisClient(ctrl)
	rc.EXPECT().NewRateLimiter().Return(rl)
	rc.EXPECT().Ping(gomock.Any()).Return(pingResult(pingErr))
	rc.EXPECT().Close().Return(nil).AnyTimes()

	clock := mocks.NewMockClock(ctrl)

	l, err := New(cfg, rc, clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l, rl, clock
}

func TestNewRejectsNonPositiveRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rc := mocks.NewMockRedisClient(ctrl)
	rc.EXPECT().NewRateLimiter().Return(mocks.NewMockRedisRateLimiter(ctrl)).AnyTimes()

	_, err := New(Config{RatePerMinute: 0}, rc, mocks.NewMockClock(ctrl))
	assert.Error(t, err)
}

func TestWaitAllowedImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, rl, _ := newTestLimiter(t, ctrl, Config{RatePerMinute: 120}, nil)

	rl.EXPECT().
		Allow(gomock.Any(), "ratelimit:notify:email", redis_rate.PerMinute(120)).
		Return(&redis_rate.Result{Allowed: 1}, nil)

	assert.NoError(t, l.Wait(context.Background(), "email"))
}

func TestWaitRetriesAfterDeniedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, rl, clock := newTestLimiter(t, ctrl, Config{RatePerMinute: 60, KeyPrefix: "rl"}, nil)

	ch := make(chan time.Time, 1)
	ch <- time.Now()
	var fired <-chan time.Time = ch

	gomock.InOrder(
		rl.EXPECT().
			Allow(gomock.Any(), "rl:sms", redis_rate.PerMinute(60)).
			Return(&redis_rate.Result{Allowed: 0, RetryAfter: 20 * time.Millisecond}, nil),
		clock.EXPECT().After(gomock.Any()).Return(fired),
		rl.EXPECT().
			Allow(gomock.Any(), "rl:sms", redis_rate.PerMinute(60)).
			Return(&redis_rate.Result{Allowed: 1}, nil),
	)

	assert.NoError(t, l.Wait(context.Background(), "sms"))
}

func TestWaitFallsBackToLocalOnRedisError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, rl, _ := newTestLimiter(t, ctrl, Config{RatePerMinute: 120}, nil)

	rl.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	// First call trips the fallback, the second should not touch Redis.
	assert.NoError(t, l.Wait(context.Background(), "email"))
	assert.NoError(t, l.Wait(context.Background(), "email"))
}

func TestWaitUsesLocalLimitWhenRedisDownAtStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, _, _ := newTestLimiter(t, ctrl, Config{RatePerMinute: 120}, errors.New("dial tcp: refused"))

	assert.NoError(t, l.Wait(context.Background(), "email"))
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, rl, clock := newTestLimiter(t, ctrl, Config{RatePerMinute: 60}, nil)

	rl.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&redis_rate.Result{Allowed: 0, RetryAfter: time.Minute}, nil)
	var never <-chan time.Time = make(chan time.Time)
	clock.EXPECT().After(gomock.Any()).Return(never)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.Wait(ctx, "email"), context.Canceled)
}

func TestWaitAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l, _, _ := newTestLimiter(t, ctrl, Config{RatePerMinute: 60}, nil)

	require.NoError(t, l.Close())
	assert.ErrorIs(t, l.Wait(context.Background(), "email"), ErrLimiterClosed)
	assert.NoError(t, l.Close())
}
