package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText folds a lemma for catalog lookups: surrounding whitespace is
// trimmed, the text is NFC-composed, letters are lowercased and runs of
// spaces collapse to one.
// Diacritics, hyphens and apostrophes are kept, so "-achtig" stays a bound form.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(norm.NFC.String(text))

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
