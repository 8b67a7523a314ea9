package registration

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// Deliberately permissive phone shape. International rigor is not a goal for
// this form; rejecting a reachable lead costs more than accepting a sloppy
// number.
var phonePattern = regexp.MustCompile(`^[+]?[0-9\s\-()]{10,}$`)

// Basic email shape for the pre-check. The schema pass applies the stricter
// validator rule afterwards.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var validate = validator.New()

// NormalizeSubmission trims surrounding whitespace and lowercases the email.
// The honeypot field is left untouched: any content there, including bare
// whitespace handling, belongs to the spam filter.
func NormalizeSubmission(req *SubmissionRequest) {
	if req == nil {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Surname = strings.TrimSpace(req.Surname)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)
	req.ServiceTitle = strings.TrimSpace(req.ServiceTitle)
}

// ValidateSubmission normalizes the request, short-circuits on the first field
// failing the manual pre-check, then runs the comprehensive schema pass as a
// second gate. The returned error carries field-level detail for server-side
// logs only; callers must collapse it to the generic validation message.
func ValidateSubmission(req *SubmissionRequest) error {
	if req == nil {
		return apperrors.NewInvalidRequestError("submission is nil", nil)
	}

	NormalizeSubmission(req)

	if err := precheckSubmission(req); err != nil {
		return err
	}

	if err := validate.Struct(req); err != nil {
		return apperrors.NewInvalidRequestError("schema validation failed", err)
	}

	return nil
}

func precheckSubmission(req *SubmissionRequest) error {
	checks := []struct {
		field string
		fail  bool
		why   string
	}{
		{"name", len(req.Name) < 2, "must be at least 2 characters"},
		{"surname", len(req.Surname) < 2, "must be at least 2 characters"},
		{"phone", len(req.Phone) < 10 || !phonePattern.MatchString(req.Phone), "must be a phone number of at least 10 characters"},
		{"email", !emailPattern.MatchString(req.Email), "must be a valid email address"},
		{"message", len(req.Message) < 10, "must be at least 10 characters"},
		{"serviceTitle", req.ServiceTitle == "", "must not be empty"},
	}

	for _, check := range checks {
		if check.fail {
			return apperrors.NewInvalidRequestError(fmt.Sprintf("field %q %s", check.field, check.why), nil)
		}
	}

	return nil
}
