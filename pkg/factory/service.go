package factory

import (
	"time"

	"github.com/intellect-edu/edusite-api/pkg/constants"
	"github.com/intellect-edu/edusite-api/pkg/ratelimit"
	"github.com/go-redis/redis/v8"
)

type RateLimiterFactory interface {
	CreateRateLimiter() ratelimit.RateLimiter
}

// DefaultRateLimiterFactory builds the router-wide limiter: a Redis sliding
// window when a client is available, an in-memory token bucket otherwise.
type DefaultRateLimiterFactory struct {
	config *ratelimit.RateLimitConfig
}

func NewDefaultRateLimiterFactory(requests int, window time.Duration, redisClient *redis.Client, logger ratelimit.Logger) *DefaultRateLimiterFactory {
	return &DefaultRateLimiterFactory{
		config: &ratelimit.RateLimitConfig{
			Requests: requests,
			Window:   window,
			Redis:    redisClient,
			Logger:   logger,
		},
	}
}

func (f *DefaultRateLimiterFactory) CreateRateLimiter() ratelimit.RateLimiter {
	return ratelimit.NewRateLimiter(f.config)
}

// IntakeRateLimiterFactory builds the fixed-window counter guarding public
// form submissions. Process-local on purpose: the budget is small and the
// consequences of a second process granting a few extra requests are nil.
type IntakeRateLimiterFactory struct{}

func NewIntakeRateLimiterFactory() *IntakeRateLimiterFactory {
	return &IntakeRateLimiterFactory{}
}

func (f *IntakeRateLimiterFactory) CreateRateLimiter() ratelimit.RateLimiter {
	return ratelimit.NewFixedWindowRateLimiter(
		constants.IntakeMaxRequests,
		constants.IntakeWindow(),
		constants.IntakeSweepThreshold,
		nil,
	)
}
