package hudhud

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/mersal-sms/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		baseURL: server.URL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient(config.GatewayConfig{
		BaseURL:        "https://www.hloov.com",
		TimeoutSeconds: 30,
	})

	assert.NotNil(t, client)
	assert.Equal(t, "https://www.hloov.com", client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestSendBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sms/send", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req sendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-api-key", req.APIKey)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "0501234567", req.Messages[0].To)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"sentCount":    2,
			"skippedCount": 0,
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.SendBatch(context.Background(), "test-api-key", []Message{
		{To: "0501234567", Message: "hello Ali"},
		{To: "0507654321", Message: "hello Sara"},
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.SentCount)
	assert.Equal(t, 0, resp.SkippedCount)
}

func TestSendBatchSkippedCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"sentCount": 1, "skippedCount": 1})
	}))
	defer server.Close()

	resp, err := newTestClient(server).SendBatch(context.Background(), "k", []Message{
		{To: "0501234567", Message: "hi"},
		{To: "0500000000", Message: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SentCount)
	assert.Equal(t, 1, resp.SkippedCount)
}

func TestSendBatchGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"message": "invalid api key"})
	}))
	defer server.Close()

	_, err := newTestClient(server).SendBatch(context.Background(), "bad", []Message{
		{To: "0501234567", Message: "hi"},
	})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid api key", apiErr.Message)
}

func TestSendBatchErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(server).SendBatch(context.Background(), "k", []Message{
		{To: "0501234567", Message: "hi"},
	})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
}

func TestSendBatchDefaultsSentCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Gateway acknowledged but sent no counts back.
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	resp, err := newTestClient(server).SendBatch(context.Background(), "k", []Message{
		{To: "0501234567", Message: "a"},
		{To: "0507654321", Message: "b"},
		{To: "0509999999", Message: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SentCount)
}
