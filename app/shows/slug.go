package shows

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccenter = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives the URL/filename-safe identifier for a display name:
// lowercase, diacritics folded, runs of non-alphanumerics collapsed to
// a single hyphen, leading and trailing hyphens trimmed. Deterministic
// for a given name; collision handling lives in the registry.
func Slugify(name string) string {
	folded, _, err := transform.String(deaccenter, name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	hyphen := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
