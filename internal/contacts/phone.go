package contacts

import (
	"strings"
	"unicode"
)

// PhoneErrorKind identifies why a phone value failed validation.
type PhoneErrorKind string

const (
	PhoneRequired     PhoneErrorKind = "required"
	PhoneInvalidChars PhoneErrorKind = "invalid_characters"
	PhoneTooShort     PhoneErrorKind = "too_short"
	PhoneTooLong      PhoneErrorKind = "too_long"
)

const (
	// MinPhoneDigits and MaxPhoneDigits bound the digit count of an
	// acceptable number. Both bounds are inclusive.
	MinPhoneDigits = 9
	MaxPhoneDigits = 15
)

// PhoneResult is the outcome of normalizing a single raw phone value.
type PhoneResult struct {
	Valid   bool
	Cleaned string
	Err     PhoneErrorKind
}

// NormalizePhone strips separators from a raw phone string and validates
// the remainder. Whitespace, hyphens and parentheses are removed; digits
// and '+' are the only characters allowed to survive. Normalization is
// idempotent: feeding a cleaned value back in yields the same value.
func NormalizePhone(raw string) PhoneResult {
	if strings.TrimSpace(raw) == "" {
		return PhoneResult{Err: PhoneRequired}
	}

	var b strings.Builder
	digits := 0
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r), r == '-', r == '(', r == ')':
			// separator, drop
		case r >= '0' && r <= '9':
			digits++
			b.WriteRune(r)
		case r == '+':
			b.WriteRune(r)
		default:
			return PhoneResult{Err: PhoneInvalidChars}
		}
	}

	if digits < MinPhoneDigits {
		return PhoneResult{Err: PhoneTooShort}
	}
	if digits > MaxPhoneDigits {
		return PhoneResult{Err: PhoneTooLong}
	}

	return PhoneResult{Valid: true, Cleaned: b.String()}
}
