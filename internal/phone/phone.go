// Package phone canonicalizes account phone numbers before they are used
// as session routing keys.
package phone

import (
	"regexp"
	"strings"

	"github.com/matheus3301/wppgw/internal/outcome"
)

// e164 is the canonical form: +, country code without leading zero,
// 2-15 digits total.
var e164 = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var separators = strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "", "-", "", "(", "", ")", "", "+", "")

// Normalize strips separators from raw, resolves the 00 international
// prefix, and validates the result against canonical form. Idempotent:
// feeding a normalized number back yields the same number.
func Normalize(raw string) (string, error) {
	s := separators.Replace(strings.TrimSpace(raw))
	if strings.HasPrefix(s, "00") {
		s = "+" + s[2:]
	} else {
		s = "+" + s
	}
	if !e164.MatchString(s) {
		return "", outcome.InvalidRequest("invalid international phone number format")
	}
	return s, nil
}
