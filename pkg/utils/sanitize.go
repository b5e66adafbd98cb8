package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeToken cleans a short single-line input such as a time token or query value
func SanitizeToken(input string) string {
	// Trim whitespace
	trimmed := strings.TrimSpace(input)

	// Remove any HTML tags
	stripped := stripHTML(trimmed)

	return removeControlChars(stripped)
}

// stripHTML removes HTML tags from string
func stripHTML(input string) string {
	return htmlTagPattern.ReplaceAllString(input, "")
}

// removeControlChars removes control characters from string
func removeControlChars(input string) string {
	var result strings.Builder
	for _, r := range input {
		if unicode.IsPrint(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
