package gemini

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/genai"

	"gametracker/backend/internal/llm"
)

// Client is the Gemini generation backend. Every flow asks for JSON output,
// so the client requests an application/json response and unmarshals it into
// the caller's schema.
type Client struct {
	client *genai.Client
	config *Config
}

func NewClient(config *Config) (*Client, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeAPIKey,
			Message:  "Failed to create Gemini client",
			Err:      err,
		}
	}

	return &Client{client: client, config: config}, nil
}

func (c *Client) GenerateJSON(ctx context.Context, prompt string, requestID string, out any) error {
	result, err := c.client.Models.GenerateContent(
		ctx,
		c.config.Model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeServiceDown,
			Message:  "Failed to generate content",
			Err:      err,
		}
	}
	if result == nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidOutput,
			Message:  "No response generated",
		}
	}

	text, err := result.Text()
	if err != nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidOutput,
			Message:  "Failed to extract response text",
			Err:      err,
		}
	}
	if text == "" {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidOutput,
			Message:  "Empty response generated",
		}
	}

	if err := json.Unmarshal([]byte(stripFences(text)), out); err != nil {
		return &llm.ProviderError{
			Provider: "gemini",
			Code:     llm.ErrCodeInvalidOutput,
			Message:  "Response was not valid JSON",
			Err:      err,
		}
	}
	return nil
}

func (c *Client) GetProviderName() string {
	return "gemini"
}

// stripFences removes a markdown code fence the model sometimes wraps
// around its JSON despite the response MIME type.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
