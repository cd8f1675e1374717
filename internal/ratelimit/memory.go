package ratelimit

import (
	"context"
	"sync"
	"time"
)

type record struct {
	count        int
	firstRequest time.Time
}

// Memory is an in-process Limiter. State lives in a mutex-protected map for
// the lifetime of the process: limits are per-instance, not global, and
// reset on every restart. Use the redis-backed limiter when cross-instance
// correctness matters.
type Memory struct {
	window time.Duration
	max    int

	mu      sync.Mutex
	records map[string]*record
	now     func() time.Time
}

// NewMemory builds an in-process limiter allowing max requests per window.
func NewMemory(window time.Duration, max int) *Memory {
	return &Memory{
		window:  window,
		max:     max,
		records: make(map[string]*record),
		now:     time.Now,
	}
}

// Allow counts the request against key's window and reports whether it may
// proceed. Never returns an error.
func (m *Memory) Allow(_ context.Context, key string) (Decision, error) {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[key]
	if !ok || now.Sub(rec.firstRequest) > m.window {
		m.records[key] = &record{count: 1, firstRequest: now}
		return Decision{Allowed: true, Remaining: m.max - 1}, nil
	}
	if rec.count >= m.max {
		return Decision{Allowed: false, Remaining: 0}, nil
	}
	rec.count++
	return Decision{Allowed: true, Remaining: m.max - rec.count}, nil
}
