// Package lock provides a best-effort per-key mutex across API instances.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotAcquired = errors.New("lock held by another request")

type (
	Locker interface {
		// Acquire returns a release func, or ErrNotAcquired when the key is held.
		Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context), error)
	}

	redisLocker struct {
		rdb *redis.Client
	}

	noopLocker struct{}
)

var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// NewLocker falls back to a no-op locker when redis is unavailable.
func NewLocker(rdb *redis.Client) Locker {
	if rdb == nil {
		return noopLocker{}
	}
	return &redisLocker{rdb: rdb}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context), error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	return func(ctx context.Context) {
		_ = releaseScript.Run(ctx, l.rdb, []string{key}, token).Err()
	}, nil
}

func (noopLocker) Acquire(context.Context, string, time.Duration) (func(context.Context), error) {
	return func(context.Context) {}, nil
}
