// Package ai forwards issue text to the Perplexity chat-completions API and
// shapes the free-text response for the client.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/linkfolio-dev/linkfolio/internal/logger"
	"go.uber.org/zap"
)

const (
	defaultAPIURL  = "https://api.perplexity.ai/chat/completions"
	defaultModel   = "sonar"
	requestTimeout = 30 * time.Second

	// Returned verbatim to the caller when the upstream call fails, matching
	// the app's Polish-language UI.
	FailureMessage = "Nie udało się wygenerować analizy. Spróbuj ponownie później."
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type Client struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// NewClientWithURL exists for tests.
func NewClientWithURL(apiKey, apiURL string) *Client {
	c := NewClient(apiKey)
	c.apiURL = apiURL
	return c
}

// Complete sends one system+user exchange and returns the assistant text.
// No retries: a transient failure surfaces as an error and the handler
// degrades to FailureMessage.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("perplexity api key is not configured")
	}

	payload := chatRequest{
		Model: defaultModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Error("Perplexity request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("Perplexity returned non-200", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("perplexity returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("perplexity returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
