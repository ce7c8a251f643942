package llm

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

// OllamaDrafter implements Drafter against a local Ollama server.
type OllamaDrafter struct {
	client   *http.Client
	model    string
	endpoint string
}

type ollamaChatRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
	Format   string              `json:"format,omitempty"`
	Stream   bool                `json:"stream"`
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Message ollamaChatMessage `json:"message"`
}

func NewOllamaDrafter(model, baseURL string) *OllamaDrafter {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = "http://127.0.0.1:11434"
	}
	url = strings.TrimRight(url, "/")
	if !strings.HasSuffix(url, "/api/chat") {
		url += "/api/chat"
	}
	return &OllamaDrafter{
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
		model:    model,
		endpoint: url,
	}
}

func (d *OllamaDrafter) Draft(ctx context.Context, p Prompt) (string, error) {
	if strings.TrimSpace(d.model) == "" {
		return "", fmt.Errorf("ollama model is required")
	}

	messages := make([]ollamaChatMessage, 0, 2)
	if p.System != "" {
		messages = append(messages, ollamaChatMessage{Role: "system", Content: p.System})
	}
	messages = append(messages, ollamaChatMessage{Role: "user", Content: p.User})

	body, err := json.Marshal(ollamaChatRequest{
		Model:    d.model,
		Messages: messages,
		Format:   "json",
		Stream:   false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("ollama chat request failed (%d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed ollamaChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	return parsed.Message.Content, nil
}
