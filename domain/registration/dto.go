package registration

import (
	"github.com/intellect-edu/edusite-api/internal/models"
)

// SubmissionRequest is the inbound contact/registration form payload. Binding
// tags are deliberately absent: the pipeline must see structurally complete but
// invalid payloads so the spam check runs before any validation.
type SubmissionRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Surname      string `json:"surname" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"required,min=10,max=30"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Message      string `json:"message" validate:"required,min=10,max=4000"`
	ServiceTitle string `json:"serviceTitle" validate:"required,max=255"`

	// HoneypotField is invisible to human users; bots auto-fill it.
	HoneypotField string `json:"honeypotField"`
}

// SubmissionMeta carries per-request transport metadata into the pipeline.
type SubmissionMeta struct {
	// ClientKey groups requests for rate limiting. Empty means the identity
	// could not be determined and the limiter fails open.
	ClientKey string
	// AcceptLanguage selects the localization of user-visible result texts.
	AcceptLanguage string
}

// Outcome identifies which pipeline stage decided a result. It is not part of
// the wire contract; the transport layer uses it to pick a status code.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeSpam
	OutcomeRateLimited
	OutcomeInvalid
	OutcomeDispatchFailed
)

// SubmissionResult is the uniform outcome returned for every submission.
// Exactly one of Message and Error is set.
type SubmissionResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Error   string  `json:"error,omitempty"`
	Outcome Outcome `json:"-"`
}

// ========================================
// Mappers
// ========================================

func ToSubmissionModel(req *SubmissionRequest, clientIP, dispatchStatus string) *models.RegistrationSubmission {
	if req == nil {
		return nil
	}
	return &models.RegistrationSubmission{
		Name:           req.Name,
		Surname:        req.Surname,
		Phone:          req.Phone,
		Email:          req.Email,
		Message:        req.Message,
		ServiceTitle:   req.ServiceTitle,
		ClientIP:       clientIP,
		DispatchStatus: dispatchStatus,
	}
}
