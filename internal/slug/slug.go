// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Make lowercases s, turns whitespace runs into single hyphens and keeps
// letters, digits and hyphens in any script. Punctuation is dropped.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsSpace(r):
			pendingHyphen = true
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		}
	}

	return b.String()
}

// WithSuffix joins base and suffix with a hyphen.
func WithSuffix(base, suffix string) string {
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// Unique appends eight hex characters of a fresh UUID to the slug of s.
func Unique(s string) string {
	return WithSuffix(Make(s), strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
