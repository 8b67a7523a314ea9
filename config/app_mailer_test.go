package config

import "testing"

func TestNewMailerConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("EMAIL_USER", "noreply@intellect.edu")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("EMAIL_TO", "admissions@intellect.edu")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "2525")

	cfg := NewMailerConfig()

	if !cfg.IsConfigured() {
		t.Fatal("expected mailer to be configured")
	}
	if cfg.SenderIdentity != "noreply@intellect.edu" {
		t.Fatalf("unexpected sender identity %q", cfg.SenderIdentity)
	}
	if cfg.RecipientOverride != "admissions@intellect.edu" {
		t.Fatalf("unexpected recipient override %q", cfg.RecipientOverride)
	}
	if cfg.Host != "smtp.example.com" || cfg.Port != 2525 {
		t.Fatalf("unexpected relay address %s:%d", cfg.Host, cfg.Port)
	}
}

func TestMailerConfig_NotConfiguredWithoutCredentials(t *testing.T) {
	t.Setenv("EMAIL_USER", "")
	t.Setenv("EMAIL_PASS", "")

	cfg := NewMailerConfig()

	if cfg.IsConfigured() {
		t.Fatal("expected mailer to be unconfigured without credentials")
	}
	if cfg.Port != 587 {
		t.Fatalf("expected default SMTP port, got %d", cfg.Port)
	}
}
