package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiDrafter implements Drafter using Gemini text generation.
type GeminiDrafter struct {
	client *genai.Client
	model  string
}

func NewGeminiDrafter(ctx context.Context, apiKey string, modelName string) (*GeminiDrafter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiDrafter{client: client, model: modelName}, nil
}

func (d *GeminiDrafter) Draft(ctx context.Context, p Prompt) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if p.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: p.System}},
		}
	}
	resp, err := d.client.Models.GenerateContent(ctx, d.model, genai.Text(p.User), cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
