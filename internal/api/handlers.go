// Package api exposes the upload-to-send pipeline over HTTP: spreadsheet
// upload, column mapping review, contact preview, batch send, and the
// per-account gateway key settings.
package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ignite/mersal-sms/internal/sender"
	"github.com/ignite/mersal-sms/internal/session"
)

// KeyManager is the settings-facing view of the API key store.
type KeyManager interface {
	ActiveKey(ctx context.Context, accountID string) (string, error)
	Upsert(ctx context.Context, accountID, key string) (uuid.UUID, error)
}

// LogLister reads back recorded send attempts.
type LogLister interface {
	List(ctx context.Context, accountID string, limit int) ([]sender.SendLog, error)
}

// Handlers holds all HTTP handlers and their collaborators.
type Handlers struct {
	sessions      session.Store
	sender        *sender.Service
	keys          KeyManager
	logs          LogLister
	maxUploadSize int64
	health        *HealthChecker
}

// NewHandlers creates the handler set. logs may be nil when send
// history is not persisted.
func NewHandlers(
	sessions session.Store,
	sendSvc *sender.Service,
	keys KeyManager,
	logs LogLister,
	maxUploadSize int64,
	health *HealthChecker,
) *Handlers {
	if maxUploadSize <= 0 {
		maxUploadSize = 10 << 20
	}
	return &Handlers{
		sessions:      sessions,
		sender:        sendSvc,
		keys:          keys,
		logs:          logs,
		maxUploadSize: maxUploadSize,
		health:        health,
	}
}

// HealthCheck reports process and dependency health.
//
//	GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.health == nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
		return
	}
	h.health.HandleHealth(w, r)
}
