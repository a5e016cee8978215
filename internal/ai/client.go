// Package ai talks to OpenAI-compatible chat completion providers for garment
// analysis, outfit suggestions and material scoring. Every exported call
// fails open: provider errors are logged and replaced with safe defaults.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
)

var ErrNoProvider = errors.New("no AI provider available")

// Provider is one OpenAI-compatible chat completions endpoint.
type Provider struct {
	Name           string
	URL            string
	APIKey         string
	Model          string
	SupportsVision bool
	// JSONMode asks the provider for a JSON object response.
	JSONMode bool
}

type Client struct {
	providers []Provider
	http      *http.Client
}

// NewClient builds the provider chain from config: GLM vision first, then
// DeepSeek, then OpenAI. Providers without an API key are skipped.
func NewClient(cfg *config.Config) *Client {
	var providers []Provider
	if cfg.GLMAPIKey != "" {
		providers = append(providers, Provider{
			Name: "glm", URL: cfg.GLMAPIURL, APIKey: cfg.GLMAPIKey, Model: cfg.GLMVisionModel,
			SupportsVision: true, JSONMode: true,
		})
	}
	if cfg.DeepSeekAPIKey != "" {
		providers = append(providers, Provider{
			Name: "deepseek", URL: cfg.DeepSeekAPIURL, APIKey: cfg.DeepSeekAPIKey, Model: cfg.DeepSeekModel,
			JSONMode: true,
		})
	}
	if cfg.OpenAIAPIKey != "" {
		providers = append(providers, Provider{
			Name: "openai", URL: cfg.OpenAIAPIURL, APIKey: cfg.OpenAIAPIKey, Model: cfg.OpenAIModel,
			SupportsVision: true, JSONMode: true,
		})
	}
	return NewClientWithProviders(providers, cfg.AITimeout)
}

func NewClientWithProviders(providers []Provider, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{providers: providers, http: &http.Client{Timeout: timeout}}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content interface{} `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// prompt is one request to the provider chain.
type prompt struct {
	system string
	user   string
	// image is a base64 payload or data URL; only vision providers are tried when set.
	image string
}

// completeJSON walks the provider chain and decodes the first usable answer
// into out. It returns the name of the provider that answered.
func (c *Client) completeJSON(ctx context.Context, p prompt, out interface{}) (string, error) {
	tried := 0
	for _, provider := range c.providers {
		if p.image != "" && !provider.SupportsVision {
			continue
		}
		tried++
		content, err := c.chat(ctx, provider, p)
		if err == nil {
			err = decodeJSON(content, out)
		}
		if err == nil {
			return provider.Name, nil
		}
		slog.Warn("AI provider failed", "provider", provider.Name, "error", err)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	if tried == 0 {
		return "", ErrNoProvider
	}
	return "", fmt.Errorf("%w: all %d providers failed", ErrNoProvider, tried)
}

func (c *Client) chat(ctx context.Context, provider Provider, p prompt) (string, error) {
	var userContent interface{} = p.user
	if p.image != "" {
		imgURL := p.image
		if !strings.HasPrefix(imgURL, "data:") && !strings.HasPrefix(imgURL, "http") {
			imgURL = "data:image/jpeg;base64," + imgURL
		}
		userContent = []chatContentPart{
			{Type: "text", Text: p.user},
			{Type: "image_url", ImageURL: &chatImageURL{URL: imgURL, Detail: "auto"}},
		}
	}

	reqBody := chatRequest{
		Model: provider.Model,
		Messages: []chatMessage{
			{Role: "system", Content: p.system},
			{Role: "user", Content: userContent},
		},
		Temperature: 0.4,
	}
	if provider.JSONMode {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, provider.URL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+provider.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("AI API error: status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("no response from AI")
	}

	switch v := completion.Choices[0].Message.Content.(type) {
	case string:
		return v, nil
	case nil:
		return "", errors.New("empty AI response")
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to extract content from AI response")
		}
		return string(b), nil
	}
}

// decodeJSON parses a model answer. A direct decode is tried first; prose or
// markdown fences around the object fall back to the outermost {...} span.
func decodeJSON(content string, out interface{}) error {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	err := json.Unmarshal([]byte(content), out)
	if err == nil {
		return nil
	}
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("failed to parse AI result: %w", err)
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), out); err != nil {
		return fmt.Errorf("failed to parse AI result: %w", err)
	}
	return nil
}

func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
