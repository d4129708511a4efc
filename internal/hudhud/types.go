package hudhud

import "fmt"

// Message is one recipient/text pair in a batch submission.
type Message struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// sendRequest is the gateway's batch payload. The API key travels in the
// body, not a header — that is the Hudhud contract.
type sendRequest struct {
	APIKey   string    `json:"api_key"`
	Messages []Message `json:"messages"`
}

// SendResponse is the gateway's answer to a batch submission. The batch
// is atomic from our side; SkippedCount reports gateway-side rejections
// of individual recipients.
type SendResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	SentCount    int    `json:"sentCount,omitempty"`
	SkippedCount int    `json:"skippedCount,omitempty"`
}

// APIError is a non-success response from the gateway. Message carries
// the gateway's own wording when it provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("hudhud API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("hudhud API error (status %d)", e.StatusCode)
}
