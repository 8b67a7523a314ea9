package i18n

import "testing"

func TestForAcceptLanguage_DefaultsToEnglish(t *testing.T) {
	headers := []string{"", "garbage;;;", "de-DE,de;q=0.9", "fr"}

	for _, header := range headers {
		msgs := ForAcceptLanguage(header)
		if msgs.SubmissionAccepted != "Registration submitted successfully" {
			t.Fatalf("header %q: expected English messages, got %q", header, msgs.SubmissionAccepted)
		}
	}
}

func TestForAcceptLanguage_MatchesUkrainian(t *testing.T) {
	headers := []string{"uk", "uk-UA,uk;q=0.9,en;q=0.5"}

	for _, header := range headers {
		msgs := ForAcceptLanguage(header)
		if msgs.SubmissionAccepted != "Заявку успішно надіслано" {
			t.Fatalf("header %q: expected Ukrainian messages, got %q", header, msgs.SubmissionAccepted)
		}
	}
}

func TestForAcceptLanguage_AllFieldsPopulated(t *testing.T) {
	for _, header := range []string{"en", "uk"} {
		msgs := ForAcceptLanguage(header)
		if msgs.SubmissionAccepted == "" || msgs.RateLimited == "" ||
			msgs.ValidationFailed == "" || msgs.SubmissionFailed == "" {
			t.Fatalf("header %q: message set has empty fields: %+v", header, msgs)
		}
	}
}
