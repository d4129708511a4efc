// Package sender orchestrates batch SMS submission: precondition
// checks, per-contact message resolution, one synchronous gateway call,
// and the send log. No retries, no partial resubmission — the batch is
// atomic from this side of the wire.
package sender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/mersal-sms/internal/contacts"
	"github.com/ignite/mersal-sms/internal/hudhud"
	"github.com/ignite/mersal-sms/internal/pkg/logger"
)

// templatePrefixLen bounds the template snippet stored in the send log.
const templatePrefixLen = 255

// Service is the send orchestrator.
type Service struct {
	gateway   Gateway
	keys      KeyStore
	logs      LogStore
	templates *TemplateService
}

// NewService creates the orchestrator. logs may be nil (sends are then
// not recorded); templates may be nil (Liquid personalization off).
func NewService(gateway Gateway, keys KeyStore, logs LogStore, templates *TemplateService) *Service {
	return &Service{gateway: gateway, keys: keys, logs: logs, templates: templates}
}

// Request is one batch send: the extracted contacts plus the shared
// template typed by the user.
type Request struct {
	AccountID string
	Contacts  []contacts.Contact
	Template  string
}

// Result reports the aggregate outcome of a successful batch.
type Result struct {
	SentCount    int `json:"sent_count"`
	SkippedCount int `json:"skipped_count"`
}

// Send runs the full orchestration. Precondition failures come back as
// the sentinel errors in this package, gateway failures as
// *hudhud.APIError (message preserved for the user), and anything
// unexpected — including a panic below this frame — as ErrSendFailed.
func (s *Service) Send(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic during send", "account", req.AccountID, "panic", fmt.Sprintf("%v", r))
			result, err = nil, ErrSendFailed
		}
	}()

	key, err := s.keys.ActiveKey(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("fetching api key: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return nil, ErrMissingAPIKey
	}
	if !s.hasContent(req) {
		return nil, ErrMissingMessage
	}
	if len(req.Contacts) == 0 {
		return nil, ErrNoContacts
	}

	messages := make([]hudhud.Message, len(req.Contacts))
	for i, c := range req.Contacts {
		messages[i] = hudhud.Message{To: c.Phone, Message: s.resolve(req.Template, c)}
	}

	resp, sendErr := s.gateway.SendBatch(ctx, key, messages)
	s.record(ctx, req, resp, sendErr)

	if sendErr != nil {
		var apiErr *hudhud.APIError
		if errors.As(sendErr, &apiErr) && apiErr.Message != "" {
			// Surface the gateway's own wording.
			return nil, apiErr
		}
		logger.Error("gateway send failed", "account", req.AccountID,
			"recipients", len(messages), "error", sendErr)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, sendErr)
	}

	logger.Info("batch sent", "account", req.AccountID,
		"sent", resp.SentCount, "gateway_skipped", resp.SkippedCount)
	return &Result{SentCount: resp.SentCount, SkippedCount: resp.SkippedCount}, nil
}

// hasContent checks that at least the batch as a whole resolves to a
// non-empty message: a usable shared template, or at least one per-row
// custom message.
func (s *Service) hasContent(req Request) bool {
	if strings.TrimSpace(req.Template) != "" {
		return true
	}
	for _, c := range req.Contacts {
		if strings.TrimSpace(c.CustomMessage) != "" {
			return true
		}
	}
	return false
}

// resolve applies the legacy {name} substitution, then optional Liquid
// personalization for templates that carry Liquid markup. Custom
// per-row messages bypass both (verbatim by contract).
func (s *Service) resolve(template string, c contacts.Contact) string {
	text := ResolveMessage(template, c)
	if strings.TrimSpace(c.CustomMessage) != "" {
		return text
	}
	if s.templates != nil && HasLiquidMarkup(text) {
		text = s.templates.Render(text, c)
	}
	return text
}

// record writes the send log entry. Log failures are logged and
// swallowed — the user's send outcome must not depend on bookkeeping.
func (s *Service) record(ctx context.Context, req Request, resp *hudhud.SendResponse, sendErr error) {
	if s.logs == nil {
		return
	}

	status := StatusSent
	if sendErr != nil {
		status = StatusFailed
	}

	var snapshot json.RawMessage
	if resp != nil {
		snapshot, _ = json.Marshal(resp)
	} else if sendErr != nil {
		snapshot, _ = json.Marshal(map[string]string{"error": sendErr.Error()})
	}

	prefix := req.Template
	if r := []rune(prefix); len(r) > templatePrefixLen {
		prefix = string(r[:templatePrefixLen])
	}

	entry := &SendLog{
		ID:              uuid.New(),
		AccountID:       req.AccountID,
		RecipientCount:  len(req.Contacts),
		Status:          status,
		GatewayResponse: snapshot,
		TemplatePrefix:  prefix,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.logs.Record(ctx, entry); err != nil {
		logger.Warn("send log write failed", "account", req.AccountID, "error", err)
	}
}
