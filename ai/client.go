// Package ai holds the assistant flows of the dashboard. Three of them are
// deterministic templates; the classification and row-processing flows talk
// to an OpenAI-compatible chat endpoint through the Completer interface.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const defaultModel = "gpt-4o-mini"

// ErrNoAPIKey signals that no credentials are configured for the LLM flows.
var ErrNoAPIKey = errors.New("OPENAI_API_KEY is not set")

// Completer is a single request/response chat call. No retries, no
// streaming; failures surface as one error.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIClient implements Completer with the go-openai SDK against any
// OpenAI-compatible endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// ClientConfig carries the endpoint settings. Zero values fall back to the
// official API and a default model.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	Model     string
	TimeoutMS int
}

// ClientConfigFromEnv resolves endpoint settings from the environment.
func ClientConfigFromEnv() ClientConfig {
	return ClientConfig{
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   os.Getenv("OPENAI_MODEL"),
	}
}

// NewOpenAIClient creates an SDK-backed completer.
func NewOpenAIClient(cfg ClientConfig) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNoAPIKey
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	httpClient := &http.Client{}
	if cfg.TimeoutMS > 0 {
		httpClient.Timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	} else {
		httpClient.Timeout = 60 * time.Second
	}
	config.HTTPClient = httpClient

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}, nil
}

// Complete performs one chat completion and returns the assistant text.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
