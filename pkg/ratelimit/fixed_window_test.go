package ratelimit

import (
	"testing"
	"time"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestLimiter(requests int, window time.Duration) (*FixedWindowRateLimiter, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	return NewFixedWindowRateLimiter(requests, window, 1000, clock.now), clock
}

func TestFixedWindowRateLimiter_AllowsUpToLimitThenRejects(t *testing.T) {
	limiter, clock := newTestLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		clock.advance(3 * time.Second)
		limited, err := limiter.IsLimited("1.2.3.4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if limited {
			t.Fatalf("request %d within the window should be allowed", i+1)
		}
	}

	limited, err := limiter.IsLimited("1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !limited {
		t.Fatal("4th request within the window should be rejected")
	}
}

func TestFixedWindowRateLimiter_ResetsAfterWindowExpires(t *testing.T) {
	limiter, clock := newTestLimiter(3, time.Minute)

	for i := 0; i < 4; i++ {
		limiter.IsLimited("1.2.3.4")
	}

	clock.advance(61 * time.Second)

	limited, err := limiter.IsLimited("1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limited {
		t.Fatal("request after the window elapsed should be allowed again")
	}

	// The elapsed window resets the count to 1, so two more fit before rejection.
	for i := 0; i < 2; i++ {
		if limited, _ := limiter.IsLimited("1.2.3.4"); limited {
			t.Fatalf("request %d of the fresh window should be allowed", i+2)
		}
	}
	if limited, _ := limiter.IsLimited("1.2.3.4"); !limited {
		t.Fatal("4th request of the fresh window should be rejected")
	}
}

func TestFixedWindowRateLimiter_IsPerKey(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)

	if limited, _ := limiter.IsLimited("client-a"); limited {
		t.Fatal("first request for client-a should not be limited")
	}
	if limited, _ := limiter.IsLimited("client-a"); !limited {
		t.Fatal("second request for client-a should be limited")
	}
	if limited, _ := limiter.IsLimited("client-b"); limited {
		t.Fatal("first request for client-b should not be limited (per-key limiter)")
	}
}

func TestFixedWindowRateLimiter_FailsOpenOnUnknownIdentity(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)

	for i := 0; i < 10; i++ {
		limited, err := limiter.IsLimited("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if limited {
			t.Fatal("requests without a client identity must never be limited")
		}
	}

	if limiter.Size() != 0 {
		t.Fatalf("unknown identities should not create entries, table size = %d", limiter.Size())
	}
}

func TestFixedWindowRateLimiter_SweepsExpiredEntriesAboveThreshold(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	limiter := NewFixedWindowRateLimiter(3, time.Minute, 100, clock.now)

	for i := 0; i < 150; i++ {
		limiter.IsLimited(string(rune('a'+i%26)) + "-" + time.Duration(i).String())
	}
	if limiter.Size() != 150 {
		t.Fatalf("expected 150 entries before sweep, got %d", limiter.Size())
	}

	clock.advance(2 * time.Minute)

	// The sweep fires with low probability per call; loop until it has run.
	// All 150 original windows expired, so once it fires the only survivors are
	// the fresh keys inserted while looping.
	swept := false
	for i := 0; i < 10000; i++ {
		limiter.IsLimited("fresh-key")
		if limiter.Size() < 150 {
			swept = true
			break
		}
	}

	if !swept {
		t.Fatal("expected an opportunistic sweep to remove expired entries")
	}
}

func TestFixedWindowRateLimiter_GetLimitDetails(t *testing.T) {
	limiter, _ := newTestLimiter(3, time.Minute)

	requests, window := limiter.GetLimitDetails()
	if requests != 3 || window != time.Minute {
		t.Fatalf("unexpected limit details: %d per %s", requests, window)
	}
}
