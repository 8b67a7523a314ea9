package mailer

import (
	"errors"
	"testing"
	"time"
)

func TestNew_FailsWithoutCredentials(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"missing identity", &Config{SenderCredential: "secret"}},
		{"missing credential", &Config{SenderIdentity: "noreply@example.com"}},
		{"both missing", &Config{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.cfg)
			if m != nil {
				t.Fatal("expected no mailer")
			}
			if !errors.Is(err, ErrNotConfigured) {
				t.Fatalf("expected ErrNotConfigured, got %v", err)
			}
		})
	}
}

func TestNew_AppliesDefaults(t *testing.T) {
	m, err := New(&Config{
		SenderIdentity:   "noreply@example.com",
		SenderCredential: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.to != "noreply@example.com" {
		t.Fatalf("recipient should fall back to the sender, got %q", m.to)
	}
	if m.timeout != DefaultSendTimeout {
		t.Fatalf("expected default send timeout, got %s", m.timeout)
	}
}

func TestNew_RecipientOverrideWins(t *testing.T) {
	m, err := New(&Config{
		SenderIdentity:    "noreply@example.com",
		SenderCredential:  "secret",
		RecipientOverride: "admissions@example.com",
		SendTimeout:       3 * time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Recipient() != "admissions@example.com" {
		t.Fatalf("expected override recipient, got %q", m.Recipient())
	}
	if m.timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", m.timeout)
	}
}
