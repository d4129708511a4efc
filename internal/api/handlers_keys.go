package api

import (
	"net/http"
	"strings"

	"github.com/ignite/mersal-sms/internal/pkg/httputil"
	"github.com/ignite/mersal-sms/internal/pkg/logger"
)

type apiKeyView struct {
	Configured bool   `json:"configured"`
	MaskedKey  string `json:"masked_key,omitempty"`
}

type apiKeyRequest struct {
	APIKey string `json:"api_key"`
}

// GetAPIKey reports whether the account has a gateway key configured.
// The key itself never leaves the server unmasked.
//
//	GET /api/settings/api-key
func (h *Handlers) GetAPIKey(w http.ResponseWriter, r *http.Request) {
	account := AccountFromContext(r.Context())

	key, err := h.keys.ActiveKey(r.Context(), account)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if key == "" {
		httputil.OK(w, apiKeyView{Configured: false})
		return
	}
	httputil.OK(w, apiKeyView{Configured: true, MaskedKey: logger.RedactKey(key)})
}

// PutAPIKey stores a new gateway key for the account, replacing any
// previous one.
//
//	PUT /api/settings/api-key
func (h *Handlers) PutAPIKey(w http.ResponseWriter, r *http.Request) {
	account := AccountFromContext(r.Context())

	var req apiKeyRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		httputil.BadRequest(w, "api_key is required")
		return
	}

	if _, err := h.keys.Upsert(r.Context(), account, key); err != nil {
		httputil.InternalError(w, err)
		return
	}

	logger.Info("api key updated", "account", account, "api_key", key)
	httputil.OK(w, apiKeyView{Configured: true, MaskedKey: logger.RedactKey(key)})
}
