// Package chat implements the conversational recommendation service by
// proxying queries to an OpenAI-compatible chat completion endpoint.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sip/config"
	"sip/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second
	systemPrompt   = "You are a friendly drink expert. Recommend drinks and answer " +
		"questions about cocktails, coffee and other beverages concisely."
)

// openAIClient implements ChatService against the /chat/completions API.
type openAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewOpenAIClient creates a chat service backed by the configured provider.
func NewOpenAIClient(cfg *config.Config, logger *slog.Logger) service.ChatService {
	timeout := defaultTimeout
	baseURL := "https://api.openai.com/v1"
	apiKey := ""
	model := "gpt-4o-mini"

	if cfg.Chat != nil {
		if cfg.Chat.Timeout > 0 {
			timeout = cfg.Chat.Timeout
		}
		if cfg.Chat.BaseURL != "" {
			baseURL = cfg.Chat.BaseURL
		}
		apiKey = cfg.Chat.APIKey
		if cfg.Chat.Model != "" {
			model = cfg.Chat.Model
		}
	}

	return &openAIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Complete sends the user query upstream and returns the generated reply.
func (c *openAIClient) Complete(ctx context.Context, query string) (string, error) {
	payload := completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("chat completion request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("model", c.model),
		)

		return "", errors.Errorf("chat provider returned non-success status: %d", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", errors.WithStack(err)
	}
	if completion.Error != nil {
		return "", errors.Errorf("chat provider error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat provider returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
