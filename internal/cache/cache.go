// Package cache stores recomputable dashboard results for a short time.
package cache

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a TTL key/value store of JSON-encodable values.
type Cache interface {
	// Get decodes the value under key into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
}

// Nop never stores anything; every Load recomputes.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }

func (Nop) Set(context.Context, string, any, time.Duration) error { return nil }

// Loader reads through a Cache and collapses concurrent recomputations of
// the same key into one call.
type Loader struct {
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
	group  singleflight.Group
}

func NewLoader(c Cache, ttl time.Duration, logger *slog.Logger) *Loader {
	if c == nil {
		c = Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{cache: c, ttl: ttl, logger: logger}
}

// Load returns the cached value for key or computes it with fn. Cache
// failures are logged and never fail the read.
//
// Concurrent callers share one fn call, which runs detached from any single
// caller's cancellation. Each caller still stops waiting when its own ctx is
// done.
func Load[T any](ctx context.Context, l *Loader, key string, fn func(context.Context) (T, error)) (T, error) {
	var cached T
	ok, err := l.cache.Get(ctx, key, &cached)
	if err != nil {
		l.logger.Warn("cache read failed", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		fresh, err := fn(shared)
		if err != nil {
			return nil, err
		}
		if err := l.cache.Set(shared, key, fresh, l.ttl); err != nil {
			l.logger.Warn("cache write failed", "key", key, "error", err)
		}
		return fresh, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// Generation returns the write generation of scope, or 0 when none has been
// recorded. Keys that embed it stop matching once Bump moves it on.
func (l *Loader) Generation(ctx context.Context, scope string) int64 {
	var gen int64
	if _, err := l.cache.Get(ctx, generationKey(scope), &gen); err != nil {
		l.logger.Warn("cache generation read failed", "scope", scope, "error", err)
	}
	return gen
}

// Bump starts a new generation for each scope.
func (l *Loader) Bump(ctx context.Context, scopes ...string) {
	gen := time.Now().UnixNano()
	for _, scope := range scopes {
		if err := l.cache.Set(ctx, generationKey(scope), gen, 0); err != nil {
			l.logger.Warn("cache generation write failed", "scope", scope, "error", err)
		}
	}
}

func generationKey(scope string) string {
	return "gen:" + scope
}
