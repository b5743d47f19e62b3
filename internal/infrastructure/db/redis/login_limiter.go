package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	limiterKeyPrefix = "login_failures:"

	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per login key. Failures are
// counted in a TTL window; once the budget is exhausted, further attempts
// are rejected until the window expires or a successful login resets it.
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

func NewLoginLimiter(client *redis.Client) *LoginLimiter {
	return &LoginLimiter{
		client:      client,
		maxFailures: defaultMaxFailures,
		window:      defaultWindow,
	}
}

// NewLoginLimiterWithBudget overrides the default failure budget and window.
func NewLoginLimiterWithBudget(client *redis.Client, maxFailures int64, window time.Duration) *LoginLimiter {
	l := NewLoginLimiter(client)
	if maxFailures > 0 {
		l.maxFailures = maxFailures
	}
	if window > 0 {
		l.window = window
	}
	return l
}

func (l *LoginLimiter) key(loginKey string) string {
	return limiterKeyPrefix + loginKey
}

func (l *LoginLimiter) TooMany(ctx context.Context, loginKey string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(loginKey)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read failure count: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure increments the counter and starts the TTL window on the
// first failure. INCR followed by a conditional EXPIRE keeps racing
// failures from extending the window indefinitely.
func (l *LoginLimiter) RecordFailure(ctx context.Context, loginKey string) error {
	key := l.key(loginKey)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("increment failure count: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("set failure window: %w", err)
		}
	}
	return nil
}

func (l *LoginLimiter) Reset(ctx context.Context, loginKey string) error {
	if err := l.client.Del(ctx, l.key(loginKey)).Err(); err != nil {
		return fmt.Errorf("reset failure count: %w", err)
	}
	return nil
}
