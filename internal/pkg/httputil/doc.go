// Package httputil provides shared HTTP response/request utilities for
// handlers. Handlers use these instead of raw http.ResponseWriter calls
// so JSON formatting and error envelopes stay consistent across the API.
package httputil
