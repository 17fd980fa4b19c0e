package feed

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips HTML markup from episode text down to plain text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Run removes all markup, decodes entities, and collapses whitespace.
func (s *Sanitizer) Run(text string) string {
	if text == "" {
		return ""
	}

	stripped := s.policy.Sanitize(text)
	stripped = html.UnescapeString(stripped)

	return strings.Join(strings.Fields(stripped), " ")
}
