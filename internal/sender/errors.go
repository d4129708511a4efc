package sender

import "errors"

// Precondition errors, checked in this exact order before any network
// call: key, then message, then contacts.
var (
	ErrMissingAPIKey  = errors.New("missing API key")
	ErrMissingMessage = errors.New("missing message")
	ErrNoContacts     = errors.New("no contacts")
)

// ErrSendFailed is the generic fallback when the gateway failed without
// a usable message of its own, or when something unexpected blew up
// inside the orchestrator.
var ErrSendFailed = errors.New("message sending failed")
