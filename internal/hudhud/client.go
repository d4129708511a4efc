// Package hudhud is a client for the Hudhud bulk SMS gateway. It covers
// the single endpoint this product uses: synchronous batch submission.
package hudhud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ignite/mersal-sms/internal/config"
)

const sendPath = "/api/sms/send"

// Client is a Hudhud SMS gateway client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Hudhud gateway client. The timeout is the only
// deadline on a send — batches are never retried, so the transport owns
// the failure.
func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
	}
}

// SendBatch submits the full message list in one synchronous call.
// A non-success HTTP status comes back as *APIError carrying whatever
// message the gateway provided.
func (c *Client) SendBatch(ctx context.Context, apiKey string, messages []Message) (*SendResponse, error) {
	payload, err := json.Marshal(sendRequest{APIKey: apiKey, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("encoding send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var out SendResponse
	// The error body is also JSON with a "message" field; a decode
	// failure on an error response is not itself fatal.
	decodeErr := json.Unmarshal(body, &out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: out.Message}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("parsing send response: %w", decodeErr)
	}

	out.Success = true
	if out.SentCount == 0 {
		out.SentCount = len(messages)
	}
	return &out, nil
}
