package logger

import "testing"

func TestRedactPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+966501234567", "+9665******67"},
		{"0501234567", "05012***67"},
		{"1234567", "*****"},
		{"", "*****"},
	}
	for _, tt := range tests {
		if got := RedactPhone(tt.in); got != tt.want {
			t.Errorf("RedactPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRedactPIIValue(t *testing.T) {
	tests := []struct {
		key  string
		val  string
		want string
	}{
		{"to", "+966501234567", "+9665******67"},
		{"recipient", "0501234567", "05012***67"},
		{"phone_number", "0501234567", "05012***67"},
		{"api_key", "sk-1234567890abcd", "****abcd"},
		// count fields stay readable
		{"recipients", "2", "2"},
		{"recipient_count", "2", "2"},
		{"total", "15", "15"},
	}
	for _, tt := range tests {
		if got := redactPIIValue(tt.key, tt.val); got != tt.want {
			t.Errorf("redactPIIValue(%q, %q) = %q, want %q", tt.key, tt.val, got, tt.want)
		}
	}
}

func TestRedactKey(t *testing.T) {
	if got := RedactKey("sk-1234567890abcd"); got != "****abcd" {
		t.Errorf("RedactKey = %q", got)
	}
	if got := RedactKey("abc"); got != "****" {
		t.Errorf("RedactKey short = %q", got)
	}
}
