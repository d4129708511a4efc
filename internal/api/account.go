package api

import (
	"context"
	"net/http"
	"strings"
)

// accountContextKey is the context key for the resolved account ID.
type accountContextKey struct{}

// AccountContext resolves the account for every API request. Priority:
// X-Account-ID header, then the configured default. There is no auth
// layer in front of this; the header is trusted as-is.
func AccountContext(defaultAccount string) func(http.Handler) http.Handler {
	if defaultAccount == "" {
		defaultAccount = "default"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := strings.TrimSpace(r.Header.Get("X-Account-ID"))
			if account == "" {
				account = defaultAccount
			}
			ctx := context.WithValue(r.Context(), accountContextKey{}, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountFromContext returns the account ID resolved by AccountContext,
// or "" when the middleware did not run.
func AccountFromContext(ctx context.Context) string {
	if account, ok := ctx.Value(accountContextKey{}).(string); ok {
		return account
	}
	return ""
}
