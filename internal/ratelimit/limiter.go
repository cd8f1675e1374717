// Package ratelimit provides the sliding-window request limiter used by
// both public endpoints. The window starts at the first request from a key
// and the whole window resets once the elapsed time exceeds the configured
// duration.
package ratelimit

import "context"

// Decision reports the outcome of a rate limit check.
type Decision struct {
	Allowed   bool
	Remaining int
}

// Limiter decides whether a request identified by key may proceed. Each
// call counts against the key's window.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
