package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned by New when the relay credentials are absent.
var ErrNotConfigured = errors.New("mailer: sender identity or credential is not configured")

// DefaultSendTimeout bounds a single relay hand-off. SMTP has no useful partial
// progress, so we cut the whole attempt at once rather than per phase.
const DefaultSendTimeout = 10 * time.Second

// Config holds the mail-relay settings. SenderIdentity doubles as the SMTP
// account name and the From address; RecipientOverride falls back to the sender
// when empty.
type Config struct {
	Host              string
	Port              int
	SenderIdentity    string
	SenderCredential  string
	RecipientOverride string
	SendTimeout       time.Duration
}

// Sender is the outbound-notification contract the domain layer depends on.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// SMTPMailer delivers messages through an external SMTP relay.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	to      string
	timeout time.Duration
}

// New validates the configuration up front: a mailer without credentials is a
// construction-time failure, not a surprise at send time.
func New(cfg *Config) (*SMTPMailer, error) {
	if cfg == nil {
		return nil, ErrNotConfigured
	}
	if cfg.SenderIdentity == "" || cfg.SenderCredential == "" {
		return nil, ErrNotConfigured
	}

	host := cfg.Host
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}

	to := cfg.RecipientOverride
	if to == "" {
		to = cfg.SenderIdentity
	}

	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}

	return &SMTPMailer{
		dialer:  gomail.NewDialer(host, port, cfg.SenderIdentity, cfg.SenderCredential),
		from:    cfg.SenderIdentity,
		to:      to,
		timeout: timeout,
	}, nil
}

// Send hands one message to the relay. The attempt is bounded by the
// configured timeout and by ctx; no retry is performed here.
func (m *SMTPMailer) Send(ctx context.Context, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("mailer: send aborted: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: relay delivery failed: %w", err)
		}
		return nil
	}
}

// Recipient reports the configured destination address.
func (m *SMTPMailer) Recipient() string {
	return m.to
}
