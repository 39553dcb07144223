package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/moodnote-ai/moodnote/pkg/ai"
	"github.com/moodnote-ai/moodnote/pkg/types"
)

const (
	NAME = "openai"

	defaultModel = "gpt-4o-mini"
)

// Driver talks to any OpenAI-compatible chat completion endpoint.
type Driver struct {
	client *openai.Client
	model  string
}

func New(token, endpoint, model string, client *http.Client) *Driver {
	cfg := openai.DefaultConfig(token)
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}
	if model == "" {
		model = defaultModel
	}
	if client != nil {
		cfg.HTTPClient = client
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) AnalyzeSentiment(ctx context.Context, text string) (*types.AnalysisResult, error) {
	slog.Debug("AnalyzeSentiment", slog.String("driver", NAME))

	raw, err := s.complete(ctx, ai.AnalyzePrompt(text))
	if err != nil {
		return nil, err
	}
	return ai.ParseAnalysisResult(raw)
}

func (s *Driver) GetAdvice(ctx context.Context, question, contextLine string) (string, error) {
	slog.Debug("GetAdvice", slog.String("driver", NAME))

	return s.complete(ctx, ai.AdvicePrompt(question, contextLine))
}

func (s *Driver) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
