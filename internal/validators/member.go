package validators

import (
	"fmt"
	"regexp"
	"strings"
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// FormatPhone strips every non-digit character from value and groups the
// first ten digits as "(XXX) XXX-XXXX". Partial input is formatted as far
// as it goes, so the function can run on every keystroke. It never fails.
func FormatPhone(value string) string {
	digits := stripNonDigits(value)

	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return fmt.Sprintf("(%s) %s", digits[:3], digits[3:])
	default:
		if len(digits) > 10 {
			digits = digits[:10]
		}
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
}

// NormalizePhone returns only the digits of value, the form stored in the
// database.
func NormalizePhone(value string) string {
	return stripNonDigits(value)
}

func stripNonDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateContact enforces that at least one of email/phone is provided.
func ValidateContact(email, phone string) error {
	if strings.TrimSpace(email) == "" && strings.TrimSpace(phone) == "" {
		return ErrContactRequired
	}
	return nil
}

// ValidateAddress enforces the all-or-none rule on the four address fields:
// an address is either absent entirely or complete.
func ValidateAddress(street, city, state, zip string) error {
	fields := []string{street, city, state, zip}

	hasAny := false
	hasAll := true
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			hasAny = true
		} else {
			hasAll = false
		}
	}

	if hasAny && !hasAll {
		return ErrIncompleteAddress
	}
	return nil
}

// ValidateZIP checks the US ZIP format: five digits, optionally followed by
// a dash and four more. An empty string passes — completeness is the concern
// of ValidateAddress.
func ValidateZIP(zip string) error {
	if zip == "" {
		return nil
	}
	if !zipPattern.MatchString(zip) {
		return ErrInvalidZIP
	}
	return nil
}
