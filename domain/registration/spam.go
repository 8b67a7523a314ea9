package registration

import "strings"

// IsHoneypotTriggered reports whether the hidden form field carries content.
// Human users never see the field; bots routinely auto-fill it.
func IsHoneypotTriggered(req *SubmissionRequest) bool {
	if req == nil {
		return false
	}
	return strings.TrimSpace(req.HoneypotField) != ""
}
