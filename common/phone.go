package common

import (
	"regexp"
	"strings"
)

var phoneStripRegex = regexp.MustCompile(`[\s\-+]`)

var validPhonePrefixes = map[string]bool{
	"74": true,
	"75": true,
	"76": true,
	"77": true,
	"78": true,
	"68": true,
	"69": true,
	"71": true,
	"65": true,
	"67": true,
}

// NormalizePhone strips whitespace, dashes and a leading plus sign, and
// rewrites a leading 0 to the 255 country code.
func NormalizePhone(phone string) string {
	normalized := phoneStripRegex.ReplaceAllString(phone, "")
	if strings.HasPrefix(normalized, "0") {
		normalized = "255" + normalized[1:]
	}
	return normalized
}

// IsValidPhone reports whether a normalized phone number is a Tanzanian
// mobile number that Snippe can pay out to.
func IsValidPhone(phone string) bool {
	if len(phone) != 12 || !strings.HasPrefix(phone, "255") {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return validPhonePrefixes[phone[3:5]]
}
