package services

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/offerme/offerme-backend/internal/config"
)

// OpenRouterService calls an OpenAI-compatible chat-completion API
// (OpenRouter by default)
type OpenRouterService struct {
	client *openai.Client
	model  string
}

// NewOpenRouterService creates a new completion client against the configured
// base URL
func NewOpenRouterService(cfg *config.Config) (*OpenRouterService, error) {
	if cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("missing OPENROUTER_API_KEY in environment variables")
	}

	clientConfig := openai.DefaultConfig(cfg.OpenRouterAPIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.OpenRouterBaseURL, "/")

	return &OpenRouterService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenRouterModel,
	}, nil
}

// Complete sends a single-turn completion request: one system instruction and
// one user message carrying the flattened conversation context.
func (s *OpenRouterService) Complete(ctx context.Context, system string, user string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
