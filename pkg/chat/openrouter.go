package chat

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/studybuddy-app/classroom-api/pkg/config"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

const observeTarget = "openrouter"

// Completer runs a single-turn chat completion. No streaming, no memory
// across calls.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, contextText, question string) (string, error)
}

// Observer records the duration of calls leaving the process.
type Observer interface {
	ObserveUpstream(target string, duration time.Duration)
}

// OpenRouterClient implements Completer against any OpenAI-compatible API.
type OpenRouterClient struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	observer Observer
}

// NewOpenRouter builds a completion client from config. A nil observer
// disables instrumentation.
func NewOpenRouter(cfg config.ChatConfig, observer Observer) *OpenRouterClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenRouterClient{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		observer: observer,
	}
}

// Complete sends system prompt, context and question as three messages and
// returns the first choice verbatim.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, contextText, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
	}
	if contextText != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: contextText})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: question})

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if c.observer != nil {
		c.observer.ObserveUpstream(observeTarget, time.Since(start))
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", appErrors.Wrap(err, appErrors.ErrUpstreamTimeout.Code, appErrors.ErrUpstreamTimeout.Status, "chat completion timed out")
		}
		return "", appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, "chat completion failed")
	}

	if len(resp.Choices) == 0 {
		return "", appErrors.Clone(appErrors.ErrUpstreamUnavailable, "chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
