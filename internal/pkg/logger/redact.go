package logger

import "strings"

// RedactPhone masks a phone number for safe logging, keeping the country
// prefix and the last two digits.
// "+966501234567" → "+9665*****67"; short values are fully masked.
func RedactPhone(phone string) string {
	p := strings.TrimSpace(phone)
	if len(p) < 8 {
		return "*****"
	}
	return p[:5] + strings.Repeat("*", len(p)-7) + p[len(p)-2:]
}

// RedactKey masks an API key, keeping only the last four characters.
func RedactKey(key string) string {
	k := strings.TrimSpace(key)
	if len(k) <= 4 {
		return "****"
	}
	return "****" + k[len(k)-4:]
}
