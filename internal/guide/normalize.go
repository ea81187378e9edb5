package guide

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UnknownDestination replaces a blank destination in generated guides.
const UnknownDestination = "Destination inconnue"

// NormalizeDestination trims raw and uppercases its first letter.
// Blank input yields UnknownDestination.
func NormalizeDestination(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UnknownDestination
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	if first == utf8.RuneError {
		return trimmed
	}
	return string(unicode.ToUpper(first)) + trimmed[size:]
}

// MaxCount is the largest number of spots an HTTP caller may request.
const MaxCount = 50

// ClampCount maps negative counts to 0. Zero means "use the default".
func ClampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
