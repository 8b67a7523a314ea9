package config

import (
	"os"
	"strconv"

	"github.com/intellect-edu/edusite-api/internal/log"
	"github.com/intellect-edu/edusite-api/pkg/mailer"
	"github.com/intellect-edu/edusite-api/pkg/utils"
)

// MailerConfig is the explicit configuration surface of the notification
// dispatcher: account identity, account credential and an optional destination
// override. Missing identity or credential disables the mailer component only;
// the rest of the application keeps running.
type MailerConfig struct {
	SenderIdentity    string
	SenderCredential  string
	RecipientOverride string
	Host              string
	Port              int
}

func NewMailerConfig() *MailerConfig {
	port := 587
	if raw := utils.GetEnvTrimmed("SMTP_PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			port = parsed
		}
	}

	return &MailerConfig{
		SenderIdentity:    os.Getenv("EMAIL_USER"),
		SenderCredential:  os.Getenv("EMAIL_PASS"),
		RecipientOverride: os.Getenv("EMAIL_TO"),
		Host:              utils.GetEnvTrimmedOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:              port,
	}
}

func (mc *MailerConfig) IsConfigured() bool {
	return mc.SenderIdentity != "" && mc.SenderCredential != ""
}

func (mc *MailerConfig) NewMailer(logger *log.Logger) (*mailer.SMTPMailer, error) {
	m, err := mailer.New(&mailer.Config{
		Host:              mc.Host,
		Port:              mc.Port,
		SenderIdentity:    mc.SenderIdentity,
		SenderCredential:  mc.SenderCredential,
		RecipientOverride: mc.RecipientOverride,
	})
	if err != nil {
		logger.Error("Failed to create mailer", "error", err)
		return nil, err
	}

	logger.Info("Mailer configured", "host", mc.Host, "recipient", m.Recipient())
	return m, nil
}

// NewMailerOrNil returns nil when the relay credentials are absent. Submissions
// will then fail at the dispatch step with a configuration error that surfaces
// to users as the generic failure message.
func (mc *MailerConfig) NewMailerOrNil(logger *log.Logger) *mailer.SMTPMailer {
	if !mc.IsConfigured() {
		logger.Warn("Mailer is not configured (EMAIL_USER/EMAIL_PASS missing); registration dispatch will fail")
		return nil
	}

	m, err := mc.NewMailer(logger)
	if err != nil {
		return nil
	}

	return m
}
