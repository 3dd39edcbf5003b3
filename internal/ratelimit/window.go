// Package ratelimit implements a lightweight, in-memory, fixed-window rate
// limiter with per-client counters and opportunistic garbage collection.
//
// It protects the art-transform endpoint from a single client burning the
// upstream image budget: each client identity gets a counter that resets when
// its window expires. The limiter is process-local; when the service runs as
// multiple replicas the effective ceiling is limit × replicas. That is an
// accepted trade-off for a low-traffic single-page site; swap the Limiter
// interface for a shared store if that ever changes.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether a request from the keyed client may proceed.
//
// Allow reports whether the request is admitted and, when it is not, the time
// at which the client's window resets. Implementations must be safe for
// concurrent use.
type Limiter interface {
	Allow(key string) (ok bool, resetAt time.Time)
}

// entry tracks one client's position inside the current window.
type entry struct {
	count   int
	resetAt time.Time
}

// FixedWindow is an in-memory Limiter counting requests per key within a
// fixed time window.
//
// State machine per key: absent → active(count=1, resetAt=now+window);
// active increments while now < resetAt and count < limit; once the window
// passes, the next request starts a fresh window. Expired entries are swept
// opportunistically during lookups to bound memory.
type FixedWindow struct {
	limit  int
	window time.Duration

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
	sweepN  uint64
}

// sweepEvery is the number of Allow calls between opportunistic sweeps.
const sweepEvery = 5000

// NewFixedWindow constructs a FixedWindow admitting at most limit requests
// per key per window. limit values < 1 are coerced to 1.
func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	if limit < 1 {
		limit = 1
	}
	return &FixedWindow{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Allow admits or rejects a request from key.
//
// The first request of a window (no entry, or an expired one) is always
// admitted and starts a new window. Requests beyond the limit inside an
// active window are rejected without mutating the counter; the returned
// resetAt tells the caller when to retry.
func (fw *FixedWindow) Allow(key string) (bool, time.Time) {
	now := fw.now()

	fw.mu.Lock()
	defer fw.mu.Unlock()

	// Sweep expired entries before touching the requested key so a stale
	// entry for this very key can be replaced rather than refreshed.
	fw.sweepN++
	if fw.sweepN >= sweepEvery {
		for k, e := range fw.entries {
			if !now.Before(e.resetAt) {
				delete(fw.entries, k)
			}
		}
		fw.sweepN = 0
	}

	e, ok := fw.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(fw.window)}
		fw.entries[key] = e
		return true, e.resetAt
	}

	if e.count >= fw.limit {
		return false, e.resetAt
	}
	e.count++
	return true, e.resetAt
}

// Len reports the number of tracked keys. Intended for tests and debugging.
func (fw *FixedWindow) Len() int {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return len(fw.entries)
}
