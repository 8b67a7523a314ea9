package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateSubmission(t *testing.T) {
	mutate := func(fn func(*SubmissionRequest)) *SubmissionRequest {
		req := validSubmission()
		fn(req)
		return req
	}

	tests := []struct {
		name    string
		req     *SubmissionRequest
		wantErr bool
	}{
		{"valid submission", validSubmission(), false},
		{"nil request", nil, true},
		{"name too short", mutate(func(r *SubmissionRequest) { r.Name = "A" }), true},
		{"surname too short", mutate(func(r *SubmissionRequest) { r.Surname = "B" }), true},
		{"phone too short", mutate(func(r *SubmissionRequest) { r.Phone = "12345" }), true},
		{"phone with letters", mutate(func(r *SubmissionRequest) { r.Phone = "0501234abc567" }), true},
		{"phone with separators", mutate(func(r *SubmissionRequest) { r.Phone = "+38 (050) 123-45-67" }), false},
		{"invalid email", mutate(func(r *SubmissionRequest) { r.Email = "not-an-email" }), true},
		{"email missing domain dot", mutate(func(r *SubmissionRequest) { r.Email = "user@host" }), true},
		{"message too short", mutate(func(r *SubmissionRequest) { r.Message = "short" }), true},
		{"empty service title", mutate(func(r *SubmissionRequest) { r.ServiceTitle = "" }), true},
		{"whitespace-only name", mutate(func(r *SubmissionRequest) { r.Name = "   " }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				var appErr *apperrors.AppError
				assert.True(t, errors.As(err, &appErr))
				assert.Equal(t, apperrors.ErrorTypeInvalidRequest, appErr.Type)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeSubmission(t *testing.T) {
	req := &SubmissionRequest{
		Name:          "  Olena ",
		Surname:       " Kovalenko ",
		Phone:         " +380501234567 ",
		Email:         " Olena@Example.COM ",
		Message:       "  Please call me back about the program.  ",
		ServiceTitle:  " Chess Club ",
		HoneypotField: "  ",
	}

	NormalizeSubmission(req)

	assert.Equal(t, "Olena", req.Name)
	assert.Equal(t, "Kovalenko", req.Surname)
	assert.Equal(t, "+380501234567", req.Phone)
	assert.Equal(t, "olena@example.com", req.Email)
	assert.Equal(t, "Please call me back about the program.", req.Message)
	assert.Equal(t, "Chess Club", req.ServiceTitle)
	assert.Equal(t, "  ", req.HoneypotField, "the honeypot field belongs to the spam filter, not the validator")
}

func TestIsHoneypotTriggered(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \t", false},
		{"filled", "http://spam.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSubmission()
			req.HoneypotField = tt.value
			assert.Equal(t, tt.want, IsHoneypotTriggered(req))
		})
	}

	assert.False(t, IsHoneypotTriggered(nil))
}

type fakeSender struct {
	subject string
	body    string
	err     error
}

func (s *fakeSender) Send(ctx context.Context, subject, body string) error {
	s.subject = subject
	s.body = body
	return s.err
}

func TestEmailDispatcher_Dispatch(t *testing.T) {
	submittedAt := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

	t.Run("composes subject and body from the submission", func(t *testing.T) {
		sender := &fakeSender{}
		dispatcher := NewEmailDispatcher(sender)

		err := dispatcher.Dispatch(context.Background(), validSubmission(), submittedAt)

		assert.NoError(t, err)
		assert.Equal(t, "New registration: Early Development Group", sender.subject)
		assert.Contains(t, sender.body, "Olena Kovalenko")
		assert.Contains(t, sender.body, "+380501234567")
		assert.Contains(t, sender.body, "olena@example.com")
		assert.Contains(t, sender.body, "2025-03-10 12:30:00 UTC")
	})

	t.Run("nil sender yields a configuration error", func(t *testing.T) {
		dispatcher := NewEmailDispatcher(nil)

		err := dispatcher.Dispatch(context.Background(), validSubmission(), submittedAt)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrorTypeConfiguration, appErr.Type)
	})

	t.Run("sender failure yields a delivery error", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("connection refused")}
		dispatcher := NewEmailDispatcher(sender)

		err := dispatcher.Dispatch(context.Background(), validSubmission(), submittedAt)

		var appErr *apperrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrorTypeDelivery, appErr.Type)
	})
}
