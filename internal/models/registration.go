package models

import "gorm.io/gorm"

// Dispatch statuses for registration submissions.
const (
	DispatchStatusDispatched = "DISPATCHED"
	DispatchStatusFailed     = "FAILED"
)

// RegistrationSubmission is the audit record of a validated form submission.
// The row is written best-effort after the notification outcome is known; the
// caller-visible result never depends on it.
type RegistrationSubmission struct {
	gorm.Model
	Name           string `gorm:"not null"`
	Surname        string `gorm:"not null"`
	Phone          string `gorm:"not null"`
	Email          string `gorm:"not null;index"`
	Message        string `gorm:"type:text;not null"`
	ServiceTitle   string `gorm:"not null"`
	ClientIP       string
	DispatchStatus string `gorm:"not null"`
}

// ModelRegistry lists every model --auto-migrate manages.
var ModelRegistry = []interface{}{
	&RegistrationSubmission{},
}
