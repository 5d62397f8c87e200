// Package openaitranslator implements localization.Translator on top of an OpenAI-compatible
// chat-completion API.
package openaitranslator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/AntonStoeckl/library-coursework/localization"
)

const (
	defaultModel       = openai.GPT4oMini
	defaultTimeout     = 30 * time.Second
	defaultMaxTokens   = 200
	systemPromptFormat = "You translate user interface texts of a console program from English into %s (%s). " +
		"Reply with the translation only, without quotes or explanations. Keep punctuation and placeholders."
)

var (
	// ErrMissingAPIKey is returned when the translator is created without an API key.
	ErrMissingAPIKey = errors.New("openai translator: API key is required")

	// ErrEmptyResponse is returned when the API answers without any choice.
	ErrEmptyResponse = errors.New("openai translator: empty response")
)

// Config holds client settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float32
	MaxTokens   int
}

// Translator translates texts with one chat completion per text.
type Translator struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// New creates a Translator from config.
func New(cfg Config) (*Translator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	temperature := cfg.Temperature
	if temperature < 0 {
		temperature = 0
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	openaiCfg := openai.DefaultConfig(apiKey)
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		openaiCfg.BaseURL = baseURL
	}

	return &Translator{
		api:         openai.NewClientWithConfig(openaiCfg),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		timeout:     timeout,
	}, nil
}

// Translate sends text to the chat-completion endpoint and returns the trimmed answer.
func (t *Translator) Translate(ctx context.Context, text, targetLocale string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(targetLocale)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   t.maxTokens,
		Temperature: t.temperature,
	}

	resp, err := t.api.CreateChatCompletion(ctxWithTimeout, req)
	if err != nil {
		return "", fmt.Errorf("openai translator: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", localization.ErrEmptyTranslation
	}

	return translated, nil
}

// SystemPrompt returns the instruction sent along with every text.
func SystemPrompt(targetLocale string) string {
	return fmt.Sprintf(systemPromptFormat, localization.LanguageName(targetLocale), targetLocale)
}
