package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// #region generator

// Generator is the external text-generation collaborator. Given a role
// description and a task prompt it returns free-form text. Every returned
// string is untrusted; callers apply their own sanitization and parsing.
type Generator interface {
	Generate(ctx context.Context, role, task string) (string, error)
}

// #endregion generator

// #region chat-config

// ChatConfig holds connection parameters for an OpenAI-compatible
// chat-completions endpoint.
type ChatConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// DefaultChatConfig returns defaults matching a DeepSeek-style endpoint.
func DefaultChatConfig() ChatConfig {
	return ChatConfig{
		BaseURL:     "https://api.deepseek.com",
		Model:       "deepseek-chat",
		Temperature: 0.5,
		Timeout:     60 * time.Second,
	}
}

// #endregion chat-config

// #region wire-types

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// #endregion wire-types

// #region chat-client

// ChatClient talks to an OpenAI-compatible chat-completions service.
type ChatClient struct {
	httpClient *http.Client
	config     ChatConfig
}

// NewChatClient creates a client with a bounded per-call timeout.
func NewChatClient(config ChatConfig) *ChatClient {
	return &ChatClient{
		httpClient: &http.Client{Timeout: config.Timeout},
		config:     config,
	}
}

// NewChatClientWithHTTPClient injects a custom http.Client.
// Used for testing against httptest servers.
func NewChatClientWithHTTPClient(config ChatConfig, hc *http.Client) *ChatClient {
	return &ChatClient{httpClient: hc, config: config}
}

// #endregion chat-client

// #region generate

// Generate sends one chat-completion request: the role description as the
// system message, the task prompt as the user message.
func (c *ChatClient) Generate(ctx context.Context, role, task string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: role},
			{Role: "user", Content: task},
		},
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat request: status %d: %s", resp.StatusCode, truncate(payload, 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("chat service: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response has no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// #endregion generate

// #region helpers

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

// #endregion helpers
