package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/lead-scripter/internal/config"
)

// Client is an abstraction over chat-completion providers.
type Client interface {
	// GenerateCompletion sends one completion request carrying a system
	// instruction and a user prompt. It returns the first candidate's text,
	// or an empty string when the service returns no content.
	GenerateCompletion(ctx context.Context, systemInstruction, prompt string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// GeminiClient implements Client for Google Gemini. The underlying API client
// is created lazily on first use so that the credential is read from the
// environment at call time, matching the per-collaborator credential contract.
type GeminiClient struct {
	cfg *Config

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed completion client. Pass nil for
// production defaults. No network connection or credential read happens until
// the first GenerateCompletion call.
func NewGeminiClient(cfg *Config) *GeminiClient {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &GeminiClient{cfg: cfg}
}

// GenerateCompletion sends one completion request to Gemini with the fixed
// sampling temperature and output bound from the client configuration.
func (c *GeminiClient) GenerateCompletion(ctx context.Context, systemInstruction, prompt string) (string, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(c.cfg.Temperature)
	model.SetMaxOutputTokens(c.cfg.MaxOutputTokens)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemInstruction)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	return extractCandidateText(resp), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

// ensureClient lazily constructs the underlying API client. The credential is
// read at call time; its absence fails only this collaborator's call.
func (c *GeminiClient) ensureClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	apiKey, err := config.GeminiAPIKey()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	return client, nil
}

// extractCandidateText returns the text of the first candidate, or an empty
// string when the response carries no content. The caller decides how to
// handle an empty completion.
func extractCandidateText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	return strings.Join(parts, "")
}
