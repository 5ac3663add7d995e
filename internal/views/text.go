package views

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// ConvertUnitText swaps the word "gallon" for the volume unit in use. Only
// the word changes; quantities are not converted.
func ConvertUnitText(text, volumeUnit string) string {
	if !strings.Contains(text, "gallon") {
		return text
	}
	switch volumeUnit {
	case "liters":
		return strings.ReplaceAll(text, "gallon", "liter")
	case "quarts":
		return strings.ReplaceAll(text, "gallon", "quart")
	}
	return text
}

// FormatBytes renders n as a binary-prefixed size such as "4.5 MiB".
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone accepts digits, spaces, dashes, plus signs and parentheses, with
// at least three digits.
func ValidPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 3
}

// Truncate shortens s to limit runes, appending "..." when it cuts. A
// negative limit counts as zero.
func Truncate(s string, limit int) string {
	limit = max(limit, 0)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

// Pluralize returns word, or word+"s" unless count is 1.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
