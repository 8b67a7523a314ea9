package content

import (
	"encoding/json"
	"regexp"
	"time"
)

// Document is one published CMS entry. Fields carries the type-specific
// attributes untouched; the proxy never interprets them.
type Document struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Fields      json.RawMessage `json:"fields,omitempty"`
	PublishedAt time.Time       `json:"publishedAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// DocumentList is the response payload for a content-type listing.
type DocumentList struct {
	Type      string     `json:"type"`
	Documents []Document `json:"documents"`
}

// Content types and slugs are caller-supplied path segments; restrict them to
// the shapes the CMS itself allows so they are safe to embed in upstream URLs
// and cache keys.
var identifierPattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_][a-z0-9]+)*$`)

func IsValidIdentifier(segment string) bool {
	return len(segment) <= 100 && identifierPattern.MatchString(segment)
}
