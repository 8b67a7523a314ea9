package ratelimit

import (
	"math/rand"
	"sync"
	"time"
)

// FixedWindowRateLimiter counts requests per key inside fixed windows. Unlike the
// token-bucket limiter it never smears the budget across the window: a client gets
// exactly `requests` attempts, then waits until the window rolls over.
//
// An empty key means the caller could not determine the client's identity; the
// limiter fails open in that case. Availability wins over strict abuse prevention
// for the low-stakes forms this guards.
type FixedWindowRateLimiter struct {
	requests       int
	window         time.Duration
	sweepThreshold int
	now            func() time.Time

	mu      sync.Mutex
	entries map[string]*windowEntry
	rng     *rand.Rand
}

type windowEntry struct {
	count         int
	windowResetAt time.Time
}

// NewFixedWindowRateLimiter returns a limiter allowing `requests` per `window` per
// key. A nil `now` uses the wall clock; tests inject a fake clock.
func NewFixedWindowRateLimiter(requests int, window time.Duration, sweepThreshold int, now func() time.Time) *FixedWindowRateLimiter {
	if now == nil {
		now = time.Now
	}

	return &FixedWindowRateLimiter{
		requests:       requests,
		window:         window,
		sweepThreshold: sweepThreshold,
		now:            now,
		entries:        make(map[string]*windowEntry),
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *FixedWindowRateLimiter) GetLimitDetails() (int, time.Duration) {
	return r.requests, r.window
}

// IsLimited performs the check-and-increment as one step under the lock so
// concurrent bursts from the same key cannot undercount.
func (r *FixedWindowRateLimiter) IsLimited(key string) (bool, error) {
	if key == "" {
		// Identity unknown: fail open.
		return false, nil
	}

	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.maybeSweep(now)

	entry, ok := r.entries[key]
	if !ok {
		r.entries[key] = &windowEntry{count: 1, windowResetAt: now.Add(r.window)}
		return false, nil
	}

	if now.After(entry.windowResetAt) {
		entry.count = 1
		entry.windowResetAt = now.Add(r.window)
		return false, nil
	}

	if entry.count >= r.requests {
		return true, nil
	}

	entry.count++
	return false, nil
}

// maybeSweep removes expired entries once the table has grown past the threshold.
// It runs with low probability per call so no request pays the full cost and no
// background timer is needed. Caller must hold the lock.
func (r *FixedWindowRateLimiter) maybeSweep(now time.Time) {
	if len(r.entries) <= r.sweepThreshold {
		return
	}

	if r.rng.Intn(100) != 0 {
		return
	}

	for key, entry := range r.entries {
		if now.After(entry.windowResetAt) {
			delete(r.entries, key)
		}
	}
}

// Size reports the current table size. Intended for tests and monitoring.
func (r *FixedWindowRateLimiter) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *FixedWindowRateLimiter) Close() error {
	return nil
}
