package domain

import (
	"strings"
)

// NormalizeText trims, lowercases and collapses runs of spaces. It is used
// for tags, which compare case-insensitively.
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' && prevSpace {
			continue
		}
		prevSpace = r == ' '
		b.WriteRune(r)
	}
	return b.String()
}
