// Package gateway talks to the upstream LLM gateway. The response body is
// handed back untouched so the relay can pipe the upstream's SSE bytes to
// the caller without parsing or re-serializing them.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"portfoliogo/internal/models"
)

// Client posts chat completions to an OpenAI-compatible gateway.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a gateway client. An empty API key is tolerated here and
// rejected per request, so misconfiguration surfaces as a request-time
// error rather than a crash at startup.
func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		model:      model,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

type chatCompletionRequest struct {
	Model    string               `json:"model"`
	Messages []models.ChatMessage `json:"messages"`
	Stream   bool                 `json:"stream"`
}

// StreamCompletion sends the full message list (system prompt included)
// with streaming enabled and returns the raw upstream response. The caller
// owns the response body. The request context governs the stream lifetime:
// a disconnected client cancels the upstream call.
func (c *Client) StreamCompletion(ctx context.Context, messages []models.ChatMessage) (*http.Response, error) {
	if c.apiKey == "" {
		return nil, errors.New("AI_GATEWAY_API_KEY is not configured")
	}
	body, err := json.Marshal(chatCompletionRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call ai gateway: %w", err)
	}
	return resp, nil
}
