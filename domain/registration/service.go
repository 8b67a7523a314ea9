package registration

import (
	"context"
	"time"

	"github.com/intellect-edu/edusite-api/internal/i18n"
	"github.com/intellect-edu/edusite-api/internal/log"
	"github.com/intellect-edu/edusite-api/internal/models"
	"github.com/intellect-edu/edusite-api/pkg/ratelimit"
)

// RegistrationService runs the submission pipeline:
//
//	Received -> SpamCheck -> RateCheck -> Validating -> Dispatching -> Completed
//
// Every call returns a SubmissionResult; internal failures never propagate to
// the transport layer, and the only texts that reach an end user are the
// localized ones in the result.
type RegistrationService interface {
	Submit(ctx context.Context, req *SubmissionRequest, meta *SubmissionMeta) *SubmissionResult
}

type registrationService struct {
	logger     *log.Logger
	limiter    ratelimit.RateLimiter
	dispatcher NotificationDispatcher
	repository SubmissionRepository
	now        func() time.Time
}

func NewRegistrationService(
	logger *log.Logger,
	limiter ratelimit.RateLimiter,
	dispatcher NotificationDispatcher,
	repository SubmissionRepository,
) RegistrationService {
	return &registrationService{
		logger:     logger,
		limiter:    limiter,
		dispatcher: dispatcher,
		repository: repository,
		now:        time.Now,
	}
}

func (s *registrationService) Submit(ctx context.Context, req *SubmissionRequest, meta *SubmissionMeta) *SubmissionResult {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if meta == nil {
		meta = &SubmissionMeta{}
	}
	msgs := i18n.ForAcceptLanguage(meta.AcceptLanguage)

	if req == nil {
		logger.Error("Submit received empty request")
		return &SubmissionResult{Success: false, Error: msgs.ValidationFailed, Outcome: OutcomeInvalid}
	}

	// SpamCheck. A triggered honeypot is reported as success so the bot
	// learns nothing; no rate-limit increment, no persistence, no email.
	if IsHoneypotTriggered(req) {
		logger.Warn("Honeypot triggered, masking as success", "client_key", meta.ClientKey)
		return &SubmissionResult{Success: true, Message: msgs.SubmissionAccepted, Outcome: OutcomeSpam}
	}

	// RateCheck. The limiter fails open on an empty client key and on
	// infrastructure errors; availability wins for this low-stakes form.
	limited, err := s.limiter.IsLimited(meta.ClientKey)
	if err != nil {
		logger.Error("Rate limiter error, allowing request", "client_key", meta.ClientKey, "error", err)
	}
	if limited {
		logger.Warn("Submission rate limit exceeded", "client_key", meta.ClientKey)
		return &SubmissionResult{Success: false, Error: msgs.RateLimited, Outcome: OutcomeRateLimited}
	}

	// Validating. Field-level detail stays in the server log; the caller
	// only ever sees the generic validation message.
	if err := ValidateSubmission(req); err != nil {
		logger.Warn("Submission validation failed", "client_key", meta.ClientKey, "error", err)
		return &SubmissionResult{Success: false, Error: msgs.ValidationFailed, Outcome: OutcomeInvalid}
	}

	// Dispatching. Exactly one outbound notification per validated
	// submission, no retry.
	submittedAt := s.now()
	dispatchErr := s.dispatcher.Dispatch(ctx, req, submittedAt)

	status := models.DispatchStatusDispatched
	if dispatchErr != nil {
		status = models.DispatchStatusFailed
	}
	s.record(ctx, logger, req, meta.ClientKey, status)

	if dispatchErr != nil {
		// Configuration and delivery problems collapse into the same
		// generic apology; relay detail must never reach the caller.
		logger.Error("Notification dispatch failed", "client_key", meta.ClientKey, "error", dispatchErr)
		return &SubmissionResult{Success: false, Error: msgs.SubmissionFailed, Outcome: OutcomeDispatchFailed}
	}

	logger.Info("Registration submitted", "service_title", req.ServiceTitle)
	return &SubmissionResult{Success: true, Message: msgs.SubmissionAccepted, Outcome: OutcomeAccepted}
}

// record writes the audit row. Best-effort: a database failure is logged and
// never changes the result returned to the caller.
func (s *registrationService) record(ctx context.Context, logger *log.Logger, req *SubmissionRequest, clientIP, status string) {
	if s.repository == nil {
		return
	}

	if _, err := s.repository.CreateSubmission(ctx, ToSubmissionModel(req, clientIP, status)); err != nil {
		logger.Error("Failed to record submission", "error", err)
	}
}
