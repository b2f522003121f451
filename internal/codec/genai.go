package codec

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// #region genai-client

// GenAIClient implements Generator against Google's Gemini API.
type GenAIClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGenAIClient creates a Gemini-backed generator.
func NewGenAIClient(ctx context.Context, apiKey, model string, temperature float32) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai api key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GenAIClient{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

// #endregion genai-client

// #region generate

// Generate sends the role description as the system instruction and the task
// prompt as the user content.
func (g *GenAIClient) Generate(ctx context.Context, role, task string) (string, error) {
	temp := g.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(role, genai.RoleUser),
		Temperature:       &temp,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(task), cfg)
	if err != nil {
		return "", fmt.Errorf("genai generate: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("genai response is empty")
	}
	return strings.TrimSpace(text), nil
}

// #endregion generate
