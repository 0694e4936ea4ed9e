package providers

import (
	"html"
	"regexp"
	"strings"
	"time"
)

var tagRe = regexp.MustCompile(`(?s)<[^>]*>`)

// StripHTML removes markup from a provider summary and collapses whitespace,
// returning plain text. An all-markup input yields the empty string, which
// the Article model treats as "no summary".
func StripHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

// parseTime tries the given layouts and returns nil when none match. A nil
// PublishedAt means "unknown recency" and is scored differently from any
// concrete timestamp, so failures must not be clamped to time.Now().
func parseTime(raw string, layouts ...string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
