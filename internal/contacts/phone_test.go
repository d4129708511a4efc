package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantValid   bool
		wantCleaned string
		wantErr     PhoneErrorKind
	}{
		{"empty", "", false, "", PhoneRequired},
		{"whitespace only", "   ", false, "", PhoneRequired},
		{"separators stripped", "050 123 4567", true, "0501234567", ""},
		{"hyphens and parens", "(050)-123-4567", true, "0501234567", ""},
		{"international plus kept", "+966 50 123 4567", true, "+966501234567", ""},
		{"letters rejected", "abc", false, "", PhoneInvalidChars},
		{"mixed digits and letters", "05012345x7", false, "", PhoneInvalidChars},
		{"exactly 9 digits valid", "123456789", true, "123456789", ""},
		{"8 digits too short", "12345678", false, "", PhoneTooShort},
		{"exactly 15 digits valid", "123456789012345", true, "123456789012345", ""},
		{"16 digits too long", "1234567890123456", false, "", PhoneTooLong},
		{"plus does not count as digit", "+12345678", false, "", PhoneTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.raw)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantCleaned, got.Cleaned)
			assert.Equal(t, tt.wantErr, got.Err)
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"050 123 4567", "+966-50-123-4567", "(012) 345 6789"}
	for _, raw := range inputs {
		first := NormalizePhone(raw)
		assert.True(t, first.Valid, "input %q", raw)

		second := NormalizePhone(first.Cleaned)
		assert.True(t, second.Valid)
		assert.Equal(t, first.Cleaned, second.Cleaned, "normalize should be idempotent for %q", raw)
	}
}
