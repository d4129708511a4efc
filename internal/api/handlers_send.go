package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/mersal-sms/internal/hudhud"
	"github.com/ignite/mersal-sms/internal/pkg/httputil"
	"github.com/ignite/mersal-sms/internal/pkg/logger"
	"github.com/ignite/mersal-sms/internal/sender"
	"github.com/ignite/mersal-sms/internal/session"
)

type sendRequest struct {
	Message string `json:"message"`
}

type sendResponse struct {
	Success      bool   `json:"success"`
	SentCount    int    `json:"sent_count"`
	SkippedCount int    `json:"skipped_count"`
	Message      string `json:"message,omitempty"`
}

// Send submits the session's contact list to the gateway as one batch.
// Only one send may run per session at a time; concurrent attempts get
// a 409 until the running one finishes.
//
//	POST /api/uploads/{sessionID}/send
func (h *Handlers) Send(w http.ResponseWriter, r *http.Request) {
	account := AccountFromContext(r.Context())
	id := chi.URLParam(r, "sessionID")

	var req sendRequest
	if !httputil.Decode(w, r, &req) {
		return
	}

	s, err := h.sessions.Get(r.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		httputil.NotFound(w, "session not found or expired")
		return
	}
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	if err := h.sessions.BeginSend(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, session.ErrSendInFlight):
			httputil.Conflict(w, "a send is already in progress for this upload")
		case errors.Is(err, session.ErrNotFound):
			httputil.NotFound(w, "session not found or expired")
		default:
			httputil.InternalError(w, err)
		}
		return
	}

	// Once a send has started it runs to completion: a client disconnect
	// must not abort the gateway call mid-batch, and it must not stop
	// the lock release below (a failed DEL would keep the session
	// locked for the lock's full TTL).
	sendCtx := context.WithoutCancel(r.Context())

	defer func() {
		if err := h.sessions.EndSend(sendCtx, id); err != nil {
			logger.Warn("releasing send lock failed", "session", id, "error", err)
		}
	}()

	result, err := h.sender.Send(sendCtx, sender.Request{
		AccountID: account,
		Contacts:  s.Contacts,
		Template:  req.Message,
	})
	if err != nil {
		writeSendError(w, err)
		return
	}

	httputil.OK(w, sendResponse{
		Success:      true,
		SentCount:    result.SentCount,
		SkippedCount: result.SkippedCount,
	})
}

// writeSendError maps orchestrator errors to HTTP responses. The three
// precondition failures get distinct actionable messages; gateway
// rejections keep the gateway's wording; everything else is generic.
func writeSendError(w http.ResponseWriter, err error) {
	var apiErr *hudhud.APIError
	switch {
	case errors.Is(err, sender.ErrMissingAPIKey):
		httputil.BadRequest(w, "no API key configured; add one in settings before sending")
	case errors.Is(err, sender.ErrMissingMessage):
		httputil.BadRequest(w, "message text is required")
	case errors.Is(err, sender.ErrNoContacts):
		httputil.BadRequest(w, "no valid contacts to send to")
	case errors.As(err, &apiErr):
		httputil.Error(w, http.StatusBadGateway, apiErr.Message)
	default:
		logger.Error("send failed", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "sending failed, please try again")
	}
}
