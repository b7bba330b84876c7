package seo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxMetaTitleLength       = 60
	maxMetaDescriptionLength = 160
)

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// truncateRunes cuts s to max runes, replacing the tail with an
// ellipsis marker when it does not fit. Lengths are counted in runes so
// multibyte text is never cut mid-character.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// MetaTitle builds a page title from the content title, prefixed with the
// top keyword when that still fits the length budget. Titles over the
// budget are cut to 57 characters plus an ellipsis marker.
func MetaTitle(title, topKeyword string) string {
	candidate := strings.TrimSpace(title)
	if topKeyword != "" && !strings.Contains(strings.ToLower(candidate), strings.ToLower(topKeyword)) {
		prefixed := capitalize(topKeyword) + " | " + candidate
		if utf8.RuneCountInString(prefixed) <= maxMetaTitleLength {
			candidate = prefixed
		}
	}
	return truncateRunes(candidate, maxMetaTitleLength)
}

// MetaDescription takes the first sentence-like chunk of the content.
// Descriptions over the budget are cut to 157 characters plus an
// ellipsis marker.
func MetaDescription(content string) string {
	text := strings.Join(strings.Fields(content), " ")

	if idx := strings.IndexAny(text, ".!?"); idx > 0 {
		text = text[:idx+1]
	}
	return truncateRunes(text, maxMetaDescriptionLength)
}
