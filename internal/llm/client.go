package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client generates structured JSON from a prompt. Everything the analyzer
// asks a model for comes back as JSON, so that is the whole surface.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string, tier Tier) (string, error)
	Model(tier Tier) string
	Close() error
}

// GeminiClient is the Gemini-backed Client.
type GeminiClient struct {
	genai  *genai.Client
	config *Config
}

// NewClient dials Gemini. A nil config uses DefaultConfig.
func NewClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{genai: client, config: config}, nil
}

// GenerateJSON prompts the tier's model with a JSON response MIME type and
// returns the cleaned JSON payload.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, tier Tier) (string, error) {
	name := c.config.Model(tier)
	if name == "" {
		return "", fmt.Errorf("no model configured for tier %q", tier)
	}

	model := c.genai.GenerativeModel(name)
	model.SetTemperature(c.config.Temperature)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Model returns the model name the client would use for a tier.
func (c *GeminiClient) Model(tier Tier) string {
	return c.config.Model(tier)
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	if c.genai == nil {
		return nil
	}
	return c.genai.Close()
}

// responseText flattens the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", fmt.Errorf("gemini candidate carries no content")
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini candidate carries no text parts")
	}
	return b.String(), nil
}
