package database

import (
	"context"
	"time"
)

type timeoutKey int

const (
	queryTimeoutKey timeoutKey = iota
	executeTimeoutKey
)

// WithQueryTimeout overrides the configured read timeout for calls made with ctx.
func WithQueryTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, queryTimeoutKey, d)
}

// WithExecuteTimeout overrides the configured write timeout for calls made with ctx.
func WithExecuteTimeout(ctx context.Context, d time.Duration) context.Context {
	return context.WithValue(ctx, executeTimeoutKey, d)
}

// bounded derives a context limited by the override under key, or by
// fallback. A zero fallback means no limit.
func bounded(ctx context.Context, key timeoutKey, fallback time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if d, ok := ctx.Value(key).(time.Duration); ok && d > 0 {
		fallback = d
	}
	if fallback <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, fallback)
}
