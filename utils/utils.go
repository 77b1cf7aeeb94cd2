package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizePhone reduces a phone number to its canonical 10-digit form.
// Leading zeros and the 90 country prefix are stripped, so "0535 109 10 02"
// and "+90 535 1091002" both normalize to "5351091002".
func NormalizePhone(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if len(digits) == 12 && strings.HasPrefix(digits, "90") {
		digits = digits[2:]
	}
	if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	return digits
}

// FormatPhone renders a canonical 10-digit number as "+90 5xx xxx xx xx".
// Anything that is not 10 digits is returned unchanged.
func FormatPhone(digits string) string {
	if len(digits) != 10 {
		return digits
	}
	return "+90 " + digits[0:3] + " " + digits[3:6] + " " + digits[6:8] + " " + digits[8:10]
}

// ValidEmail reports whether the value is an acceptable email address. The
// field is optional everywhere it appears, so an empty string is valid.
func ValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailRe.MatchString(email)
}
