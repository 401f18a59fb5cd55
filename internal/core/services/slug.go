package services

import (
	"strings"
	"unicode"
)

// slugMaxRunes caps destination identifiers so converter paths stay
// well inside provider path limits.
const slugMaxRunes = 64

// slugFallback names the destination when a title slugs down to
// nothing at all.
const slugFallback = "panseek-resource"

// SlugFromTitle derives a deterministic, filesystem-safe destination
// identifier from a result title. Letters and digits (including CJK)
// plus '-' and '_' pass through; every other run of characters
// collapses to a single '-'. Leading and trailing separators are
// trimmed and the result is capped at slugMaxRunes runes. An empty
// outcome is replaced by a fixed placeholder so every resolution has
// a usable destination path.
func SlugFromTitle(title string) string {
	var b strings.Builder
	pendingSep := false

	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if runes := []rune(slug); len(runes) > slugMaxRunes {
		slug = strings.Trim(string(runes[:slugMaxRunes]), "-")
	}
	if slug == "" {
		return slugFallback
	}
	return slug
}
