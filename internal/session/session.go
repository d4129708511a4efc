// Package session holds per-user pipeline state between requests: the
// parsed spreadsheet, the current column mapping, and the derived
// contact list. State is confined to one session and fully replaced on
// every upstream change — a mapping edit re-runs extraction over the
// stored raw rows rather than patching the previous contact list.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/mersal-sms/internal/contacts"
)

var (
	// ErrNotFound means the session does not exist or has expired.
	ErrNotFound = errors.New("session not found")
	// ErrSendInFlight means a send is already running for the session.
	ErrSendInFlight = errors.New("send already in progress")
)

// Session is one user's upload-to-send pipeline state.
type Session struct {
	ID           string                 `json:"id"`
	AccountID    string                 `json:"account_id"`
	Filename     string                 `json:"filename"`
	Headers      []string               `json:"headers"`
	Rows         []contacts.RawRow      `json:"rows"`
	Mapping      contacts.ColumnMapping `json:"mapping"`
	AutoDetected bool                   `json:"auto_detected"`
	Contacts     []contacts.Contact     `json:"contacts"`
	RejectedRows int                    `json:"rejected_rows"`
	Sending      bool                   `json:"sending"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// New creates a session for a freshly parsed upload: the mapping is
// auto-detected from the headers and the contact list derived once.
func New(accountID, filename string, headers []string, rows []contacts.RawRow) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Filename:  filename,
		Headers:   headers,
		Rows:      rows,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Mapping = contacts.AutoDetect(headers)
	s.AutoDetected = s.Mapping.Detected()
	s.extract()
	return s
}

// ApplyMapping installs a manual mapping override and re-derives the
// contact list from the raw rows. Manual edits always clear the
// auto-detected flag.
func (s *Session) ApplyMapping(m contacts.ColumnMapping) {
	s.Mapping = m
	s.AutoDetected = false
	s.extract()
}

func (s *Session) extract() {
	cs, stats := contacts.Extract(s.Rows, s.Mapping)
	s.Contacts = cs
	s.RejectedRows = stats.Rejected
	s.UpdatedAt = time.Now().UTC()
}

// Store persists pipeline sessions. BeginSend/EndSend arbitrate the
// one-send-at-a-time rule: BeginSend succeeds for exactly one caller
// until the matching EndSend.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	BeginSend(ctx context.Context, id string) error
	EndSend(ctx context.Context, id string) error
}
