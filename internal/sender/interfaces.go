package sender

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/mersal-sms/internal/hudhud"
)

// Gateway is the external SMS delivery collaborator. Its transport,
// authentication and per-recipient outcomes are entirely its own
// business; our contract ends at one batch call.
type Gateway interface {
	SendBatch(ctx context.Context, apiKey string, messages []hudhud.Message) (*hudhud.SendResponse, error)
}

// KeyStore looks up the stored gateway API key for an account. An empty
// key with a nil error means the account has no active key.
type KeyStore interface {
	ActiveKey(ctx context.Context, accountID string) (string, error)
}

// LogStore records one entry per send attempt.
type LogStore interface {
	Record(ctx context.Context, entry *SendLog) error
}

// SendLog is the persisted record of a single batch submission.
type SendLog struct {
	ID              uuid.UUID       `json:"id"`
	AccountID       string          `json:"account_id"`
	RecipientCount  int             `json:"recipient_count"`
	Status          string          `json:"status"` // "sent" or "failed"
	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
	TemplatePrefix  string          `json:"template_prefix,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)
