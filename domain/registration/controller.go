package registration

import (
	"strings"

	"github.com/intellect-edu/edusite-api/config/router"
	"github.com/intellect-edu/edusite-api/internal/i18n"
	"github.com/intellect-edu/edusite-api/internal/log"
	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
	"github.com/intellect-edu/edusite-api/pkg/factory"
	"github.com/intellect-edu/edusite-api/pkg/mailer"
	"github.com/intellect-edu/edusite-api/pkg/ratelimit"
	"gorm.io/gorm"
)

func NewRegistrationController(
	db *gorm.DB,
	logger *log.Logger,
	sender mailer.Sender,
) *router.RESTController {

	return router.NewVersionedRESTController(
		"RegistrationController",
		"v1",
		"/registrations",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewSubmissionRepository(db)
			dispatcher := NewEmailDispatcher(sender)

			service := NewRegistrationService(logger, newIntakeLimiter(), dispatcher, repository)

			rs.AddPostHandler(c, nil, "", submitRegistrationHandler(service))
		},
	)
}

// newIntakeLimiter builds the fixed-window counter guarding submissions. It
// lives inside the pipeline rather than in the router middleware: the spam
// check must run first so honeypot hits never consume a client's budget.
func newIntakeLimiter() ratelimit.RateLimiter {
	return factory.NewIntakeRateLimiterFactory().CreateRateLimiter()
}

func submitRegistrationHandler(service RegistrationService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		acceptLanguage := ctx.GetHeader("Accept-Language")

		var req SubmissionRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)
			msgs := i18n.ForAcceptLanguage(acceptLanguage)
			result := &SubmissionResult{Success: false, Error: msgs.ValidationFailed, Outcome: OutcomeInvalid}
			return router.BadRequestResult(msgs.ValidationFailed, result)
		}

		meta := &SubmissionMeta{
			ClientKey:      clientIdentity(ctx),
			AcceptLanguage: acceptLanguage,
		}

		result := service.Submit(ctx.Request.Context(), &req, meta)

		switch result.Outcome {
		case OutcomeRateLimited:
			return router.ErrorResult(apperrors.StatusTooManyRequests, result.Error, result)
		case OutcomeInvalid:
			return router.BadRequestResult(result.Error, result)
		case OutcomeDispatchFailed:
			return router.ErrorResult(apperrors.StatusInternalServerError, result.Error, result)
		default:
			return router.OKResult(result, result.Message)
		}
	}
}

// clientIdentity derives the rate-limit key from the forwarded-address chain:
// first non-empty candidate wins, then the socket address. An empty result
// means the identity is unknown and the limiter fails open.
func clientIdentity(ctx *router.RequestContext) string {
	if forwarded := ctx.GetHeader("X-Forwarded-For"); forwarded != "" {
		for _, candidate := range strings.Split(forwarded, ",") {
			if trimmed := strings.TrimSpace(candidate); trimmed != "" {
				return trimmed
			}
		}
	}

	if realIP := strings.TrimSpace(ctx.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}

	return ctx.ClientIP()
}
