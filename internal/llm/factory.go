package llm

import (
	"context"
	"fmt"
	"strings"
)

type DrafterOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewDrafter(ctx context.Context, opts DrafterOptions) (Drafter, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		return NewGeminiDrafter(ctx, opts.APIKey, opts.Model)
	case "openai":
		return NewOpenAIDrafter(opts.APIKey, opts.Model, opts.BaseURL), nil
	case "ollama":
		return NewOllamaDrafter(opts.Model, opts.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported drafter provider: %s", opts.Provider)
	}
}
