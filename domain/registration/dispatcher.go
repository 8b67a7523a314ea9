package registration

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/intellect-edu/edusite-api/pkg/errors"
	"github.com/intellect-edu/edusite-api/pkg/mailer"
)

// NotificationDispatcher composes and delivers exactly one staff notification
// per validated submission. No retry: a transient delivery failure surfaces
// immediately as a failed result.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, req *SubmissionRequest, submittedAt time.Time) error
}

type emailDispatcher struct {
	sender mailer.Sender
}

// NewEmailDispatcher accepts a nil sender; dispatching then fails with a
// configuration error so the caller still gets a uniform result.
func NewEmailDispatcher(sender mailer.Sender) NotificationDispatcher {
	return &emailDispatcher{sender: sender}
}

func (d *emailDispatcher) Dispatch(ctx context.Context, req *SubmissionRequest, submittedAt time.Time) error {
	if d.sender == nil {
		return apperrors.NewConfigurationError("mail relay credentials are not configured", nil)
	}

	subject := fmt.Sprintf("New registration: %s", req.ServiceTitle)
	body := composeNotificationBody(req, submittedAt)

	if err := d.sender.Send(ctx, subject, body); err != nil {
		return apperrors.NewDeliveryError("mail relay rejected the notification", err)
	}

	return nil
}

func composeNotificationBody(req *SubmissionRequest, submittedAt time.Time) string {
	return fmt.Sprintf(
		"New registration request\n"+
			"------------------------\n"+
			"Service:   %s\n"+
			"Name:      %s %s\n"+
			"Phone:     %s\n"+
			"Email:     %s\n"+
			"Message:\n%s\n"+
			"------------------------\n"+
			"Submitted: %s\n",
		req.ServiceTitle,
		req.Name,
		req.Surname,
		req.Phone,
		req.Email,
		req.Message,
		submittedAt.UTC().Format("2006-01-02 15:04:05 MST"),
	)
}
