package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API for single-shot text generation
type Client struct {
	client      *genai.Client
	ctx         context.Context
	model       string
	temperature float32
}

// NewClient creates a new Gemini API client
func NewClient(apiKey, model string, temperature float32) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &Client{
		client:      client,
		ctx:         ctx,
		model:       model,
		temperature: temperature,
	}, nil
}

// Generate sends one prompt to the model and returns the generated text
func (c *Client) Generate(prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(c.temperature)

	resp, err := m.GenerateContent(c.ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("model returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return b.String(), nil
}

// Close releases the underlying API connection
func (c *Client) Close() error {
	return c.client.Close()
}
