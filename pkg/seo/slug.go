package seo

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9\s-]`)
var whitespace = regexp.MustCompile(`[\s-]+`)

// GenerateSlug turns a human-readable title into a URL-safe identifier:
// lowercase, punctuation stripped, whitespace runs collapsed to single
// hyphens, no leading or trailing hyphen.
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
