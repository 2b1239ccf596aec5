// Package ai implements the enhancement client against the OpenAI
// chat-completions API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/inkwell/pkg/core"
)

// Defaults for the provider call. Overridable via Config.
const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1500
	DefaultTimeout     = 30 * time.Second
)

const (
	systemPrompt = "You are an AI assistant that enhances and improves text content. " +
		"Make the text more professional, clear, and engaging without changing the " +
		"overall meaning. Add relevant details, improve structure, and fix any " +
		"grammatical issues."
	userPrefix = "Please enhance the following text:\n\n"
)

// KeySource resolves a stored credential when no explicit key is given.
// *credentials.Store satisfies it.
type KeySource interface {
	Get(ctx context.Context) (string, bool)
}

// Config holds the configuration for the enhancement client.
type Config struct {
	APIKey      string // explicit key; wins over Keys
	Keys        KeySource
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client calls the chat-completions endpoint to rewrite text.
type Client struct {
	apiKey      string
	keys        KeySource
	baseURL     string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates an enhancement client, filling unset fields with
// the defaults above.
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		apiKey:      config.APIKey,
		keys:        config.Keys,
		baseURL:     strings.TrimSuffix(config.BaseURL, "/"),
		model:       config.Model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
		httpClient:  httpClient,
		logger:      config.Logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Enhance rewrites text using the configured key, falling back to the
// key source. With neither, it fails with core.ErrMissingCredential
// before any network I/O. No retry is attempted.
func (c *Client) Enhance(ctx context.Context, text string) (string, error) {
	return c.EnhanceWithKey(ctx, text, "")
}

// EnhanceWithKey rewrites text using an explicit API key.
func (c *Client) EnhanceWithKey(ctx context.Context, text, key string) (string, error) {
	if key == "" {
		key = c.apiKey
	}
	if key == "" && c.keys != nil {
		key, _ = c.keys.Get(ctx)
	}
	if key == "" {
		return "", core.ErrMissingCredential
	}

	start := time.Now()
	if c.logger != nil {
		c.logger.Debug("enhancing text", "model", c.model, "input_len", len(text))
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrefix + text},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &core.EnhancementError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &core.EnhancementError{Message: "failed to read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &core.EnhancementError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(body),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", &core.EnhancementError{Message: "malformed response body", Err: err}
	}
	if chatResp.Error != nil {
		return "", &core.EnhancementError{Message: chatResp.Error.Message}
	}
	if len(chatResp.Choices) == 0 {
		return "", &core.EnhancementError{Message: "no completion returned"}
	}

	result := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if c.logger != nil {
		c.logger.Debug("enhancement completed", "elapsed", time.Since(start), "output_len", len(result))
	}
	return result, nil
}

// providerMessage extracts the human-readable message from a provider
// error body, falling back to a generic message.
func providerMessage(body []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return "failed to enhance text"
}

var _ core.Enhancer = (*Client)(nil)
