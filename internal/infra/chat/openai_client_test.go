package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sip/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *openAIClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Chat = &config.ChatConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}

	client, ok := NewOpenAIClient(cfg, slog.Default()).(*openAIClient)
	require.True(t, ok)

	return client
}

func TestOpenAIClient_Complete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req completionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "what goes well with gin?", req.Messages[1].Content)

		resp := completionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: "Try a gin and tonic."}})
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	reply, err := client.Complete(context.Background(), "what goes well with gin?")
	assert.NoError(t, err)
	assert.Equal(t, "Try a gin and tonic.", reply)
}

func TestOpenAIClient_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	reply, err := client.Complete(context.Background(), "anything")
	assert.Error(t, err)
	assert.Empty(t, reply)
	assert.Contains(t, err.Error(), "non-success status: 429")
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		assert.NoError(t, json.NewEncoder(w).Encode(completionResponse{}))
	})

	_, err := client.Complete(context.Background(), "anything")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
