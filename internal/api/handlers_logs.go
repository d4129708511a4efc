package api

import (
	"net/http"
	"strconv"

	"github.com/ignite/mersal-sms/internal/pkg/httputil"
	"github.com/ignite/mersal-sms/internal/sender"
)

// ListLogs returns the account's recent send attempts, newest first.
//
//	GET /api/logs?limit=
func (h *Handlers) ListLogs(w http.ResponseWriter, r *http.Request) {
	if h.logs == nil {
		httputil.OK(w, map[string]any{"logs": []sender.SendLog{}})
		return
	}

	account := AccountFromContext(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.logs.List(r.Context(), account, limit)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if logs == nil {
		logs = []sender.SendLog{}
	}
	httputil.OK(w, map[string]any{"logs": logs})
}
