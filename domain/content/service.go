package content

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/intellect-edu/edusite-api/config"
	"github.com/intellect-edu/edusite-api/internal/log"
	"github.com/intellect-edu/edusite-api/pkg/circuitbreaker"
	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
	"github.com/intellect-edu/edusite-api/pkg/retry"
)

// ContentService serves published CMS documents through a read-through cache.
// Upstream calls run behind a circuit breaker with bounded retries; when the
// circuit is open or retries are exhausted the caller gets a generic
// unavailability error, never upstream detail.
type ContentService interface {
	List(ctx context.Context, contentType string) (*DocumentList, error)
	Get(ctx context.Context, contentType, slug string) (*Document, error)
}

type contentService struct {
	logger   *log.Logger
	client   ContentClient
	cache    config.Cache
	cacheTTL time.Duration
	breaker  circuitbreaker.CircuitBreaker
	retrier  retry.RetryPolicy
}

func NewContentService(logger *log.Logger, client ContentClient, cache config.Cache, cacheTTL time.Duration) ContentService {
	return &contentService{
		logger:   logger,
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		breaker:  circuitbreaker.NewCircuitBreaker(nil),
		retrier: retry.NewExponentialBackoff(&retry.Config{
			MaxAttempts: 3,
			BaseDelay:   200 * time.Millisecond,
			MaxDelay:    2 * time.Second,
			Multiplier:  2.0,
		}),
	}
}

func (s *contentService) List(ctx context.Context, contentType string) (*DocumentList, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if !IsValidIdentifier(contentType) {
		return nil, apperrors.NewInvalidRequestError("Unknown content type", nil)
	}

	cacheKey := "content:" + contentType

	var list DocumentList
	if s.cacheRead(ctx, logger, cacheKey, &list) {
		return &list, nil
	}

	var documents []Document
	err := s.fetch(func() error {
		var fetchErr error
		documents, fetchErr = s.client.ListDocuments(ctx, contentType)
		return fetchErr
	})
	if err != nil {
		logger.Error("Failed to list content", "content_type", contentType, "error", err)
		return nil, err
	}

	list = DocumentList{Type: contentType, Documents: documents}
	s.cacheWrite(ctx, logger, cacheKey, &list)

	return &list, nil
}

func (s *contentService) Get(ctx context.Context, contentType, slug string) (*Document, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if !IsValidIdentifier(contentType) {
		return nil, apperrors.NewInvalidRequestError("Unknown content type", nil)
	}
	if !IsValidIdentifier(slug) {
		return nil, apperrors.NewNotFoundError("Content not found", nil)
	}

	cacheKey := "content:" + contentType + ":" + slug

	var document Document
	if s.cacheRead(ctx, logger, cacheKey, &document) {
		return &document, nil
	}

	var fetched *Document
	err := s.fetch(func() error {
		var fetchErr error
		fetched, fetchErr = s.client.GetDocument(ctx, contentType, slug)
		return fetchErr
	})
	if err != nil {
		if apperrors.GetErrorType(err) != apperrors.ErrorTypeNotFound {
			logger.Error("Failed to get content", "content_type", contentType, "slug", slug, "error", err)
		}
		return nil, err
	}

	s.cacheWrite(ctx, logger, cacheKey, fetched)

	return fetched, nil
}

// fetch runs fn behind the circuit breaker and retry policy. A not-found from
// the CMS is a normal answer, not an outage: it bypasses the retries and never
// counts against the breaker.
func (s *contentService) fetch(fn func() error) error {
	if s.client == nil {
		return apperrors.NewConfigurationError("Content is temporarily unavailable", nil)
	}

	var notFound error

	err := s.breaker.Call(func() error {
		return s.retrier.Execute(func() error {
			err := fn()
			if apperrors.GetErrorType(err) == apperrors.ErrorTypeNotFound {
				notFound = err
				return nil
			}
			return err
		})
	})

	if notFound != nil {
		return notFound
	}

	if errors.Is(err, circuitbreaker.ErrCircuitOpen) || retry.IsMaxRetriesExceeded(err) {
		return apperrors.NewUpstreamError("Content is temporarily unavailable", err)
	}

	return err
}

func (s *contentService) cacheRead(ctx context.Context, logger *log.Logger, key string, out any) bool {
	if s.cache == nil {
		return false
	}

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Content cache read failed", "key", key, "error", err)
		return false
	}
	if cached == "" {
		return false
	}

	if err := json.Unmarshal([]byte(cached), out); err != nil {
		logger.Warn("Discarding malformed content cache entry", "key", key, "error", err)
		return false
	}

	return true
}

func (s *contentService) cacheWrite(ctx context.Context, logger *log.Logger, key string, value any) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal content for cache", "key", key, "error", err)
		return
	}

	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		logger.Warn("Content cache write failed", "key", key, "error", err)
	}
}
