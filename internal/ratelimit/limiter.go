// Package ratelimit throttles outbound notification traffic so provider
// quotas are respected across every running instance.
//
// Tokens are acquired from a Redis-backed sliding window shared by all
// instances. When Redis is unreachable the limiter degrades to a local
// token bucket scaled down by a fallback multiplier, and probes Redis in
// the background until it recovers.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/logger"
)

const (
	defaultKeyPrefix          = "ratelimit:notify"
	defaultFallbackMultiplier = 0.5
	redisHealthCheckInterval  = 10 * time.Second
	maxAcquireAttempts        = 5
)

// ErrLimiterClosed is returned by Wait after Close has been called.
var ErrLimiterClosed = errors.New("ratelimit: limiter closed")

// Config controls the shared notification rate limit.
type Config struct {
	// RatePerMinute is the number of sends allowed per key per minute
	// across all instances.
	RatePerMinute int

	// KeyPrefix namespaces the Redis keys. Defaults to "ratelimit:notify".
	KeyPrefix string

	// FallbackMultiplier scales the local limit applied while Redis is
	// unavailable. Defaults to 0.5 so that two detached instances stay
	// within the shared quota.
	FallbackMultiplier float64
}

// Limiter hands out send tokens, blocking until one is available or the
// context is done.
type Limiter struct {
	cfg         Config
	redisClient adapter.RedisClient
	distributed adapter.RedisRateLimiter
	local       *rate.Limiter
	clock       adapter.Clock

	redisAvailable atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
}

// New connects the limiter to Redis and starts the background health probe.
// A failed initial ping is not fatal; the limiter starts in local fallback
// mode and switches over once Redis responds.
func New(cfg Config, redisClient adapter.RedisClient, clock adapter.Clock) (*Limiter, error) {
	if cfg.RatePerMinute <= 0 {
		return nil, fmt.Errorf("ratelimit: rate per minute must be positive, got %d", cfg.RatePerMinute)
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	if cfg.FallbackMultiplier <= 0 || cfg.FallbackMultiplier > 1 {
		cfg.FallbackMultiplier = defaultFallbackMultiplier
	}

	localPerMinute := float64(cfg.RatePerMinute) * cfg.FallbackMultiplier
	localRate := rate.Limit(localPerMinute / 60)
	burst := int(localPerMinute)
	if burst < 1 {
		burst = 1
	}

	l := &Limiter{
		cfg:         cfg,
		redisClient: redisClient,
		distributed: redisClient.NewRateLimiter(),
		local:       rate.NewLimiter(localRate, burst),
		clock:       clock,
		done:        make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable at startup, using local rate limit",
			zap.Error(err))
	} else {
		l.redisAvailable.Store(true)
	}

	go l.monitorRedisHealth()
	return l, nil
}

// Wait blocks until a send token is available for key. It returns early
// when ctx is cancelled or the limiter is closed.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	select {
	case <-l.done:
		return ErrLimiterClosed
	default:
	}

	if !l.redisAvailable.Load() {
		return l.local.Wait(ctx)
	}

	limit := redis_rate.PerMinute(l.cfg.RatePerMinute)
	redisKey := fmt.Sprintf("%s:%s", l.cfg.KeyPrefix, key)

	for attempt := 0; attempt < maxAcquireAttempts; attempt++ {
		res, err := l.distributed.Allow(ctx, redisKey, limit)
		if err != nil {
			logger.WarnCtx(ctx, "redis rate limit check failed, falling back to local limit",
				zap.String("key", key), zap.Error(err))
			l.redisAvailable.Store(false)
			return l.local.Wait(ctx)
		}
		if res.Allowed > 0 {
			return nil
		}

		// Jitter the retry so detached instances do not stampede the
		// window the moment it reopens.
		retryAfter := res.RetryAfter
		if retryAfter <= 0 {
			retryAfter = time.Second
		}
		wait := time.Duration(float64(retryAfter) * (0.5 + rand.Float64()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return ErrLimiterClosed
		case <-l.clock.After(wait):
		}
	}

	return fmt.Errorf("ratelimit: no token for %q after %d attempts", key, maxAcquireAttempts)
}

// Close stops the health probe and releases the Redis connection. Safe to
// call more than once.
func (l *Limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)
		err = l.redisClient.Close()
	})
	return err
}

func (l *Limiter) monitorRedisHealth() {
	ticker := time.NewTicker(redisHealthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			err := l.redisClient.Ping(ctx).Err()
			cancel()

			healthy := err == nil
			if healthy != l.redisAvailable.Swap(healthy) {
				if healthy {
					logger.Info("redis recovered, resuming distributed rate limit")
				} else {
					logger.Warn("redis unreachable, switching to local rate limit",
						zap.Error(err))
				}
			}
		}
	}
}
