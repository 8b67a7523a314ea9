package i18n

import (
	"golang.org/x/text/language"
)

// Messages holds every string the registration pipeline may show an end user.
// Keeping the full set in one struct makes it impossible for a code path to
// leak an unlocalized (or internal) message by accident.
type Messages struct {
	SubmissionAccepted string
	RateLimited        string
	ValidationFailed   string
	SubmissionFailed   string
}

var supported = []language.Tag{
	language.English, // default
	language.Ukrainian,
}

var matcher = language.NewMatcher(supported)

var catalog = map[language.Tag]Messages{
	language.English: {
		SubmissionAccepted: "Registration submitted successfully",
		RateLimited:        "Too many requests. Please wait a moment and try again.",
		ValidationFailed:   "Form validation failed. Please check your inputs.",
		SubmissionFailed:   "Something went wrong. Please try again later.",
	},
	language.Ukrainian: {
		SubmissionAccepted: "Заявку успішно надіслано",
		RateLimited:        "Забагато запитів. Зачекайте хвилину та спробуйте ще раз.",
		ValidationFailed:   "Не вдалося перевірити форму. Перевірте введені дані.",
		SubmissionFailed:   "Сталася помилка. Спробуйте, будь ласка, пізніше.",
	},
}

// ForAcceptLanguage resolves the message set for an Accept-Language header.
// Unparseable or unsupported values fall back to English.
func ForAcceptLanguage(header string) Messages {
	if header == "" {
		return catalog[language.English]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return catalog[language.English]
	}

	_, index, _ := matcher.Match(tags...)
	return catalog[supported[index]]
}
