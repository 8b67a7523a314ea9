package constants

import "time"

// RFC 3339 date-time format string.
// Use this format for all date-time serialization and communication with external systems.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// Default rate limiting configuration
const (
	// DefaultRateLimitRequests is the default number of requests allowed per time window
	DefaultRateLimitRequests = 100
	// DefaultRateLimitWindow is the default time window for rate limiting
	DefaultRateLimitWindowMinutes = 1
)

// Registration intake limits. The submission pipeline enforces these on top of
// the router-wide defaults above.
const (
	// IntakeMaxRequests is the number of submissions one client may make per window.
	IntakeMaxRequests = 3
	// IntakeWindowSeconds is the fixed submission window length.
	IntakeWindowSeconds = 60
	// IntakeSweepThreshold is the rate-limit table size above which expired
	// entries become eligible for an opportunistic sweep.
	IntakeSweepThreshold = 1000
)

// DefaultRateLimitWindow returns the default rate limit window duration
func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}

// IntakeWindow returns the fixed submission window duration.
func IntakeWindow() time.Duration {
	return IntakeWindowSeconds * time.Second
}
