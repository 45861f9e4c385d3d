// Package assistant sends extracted terminal interactions and free-form
// questions to an OpenAI-compatible chat-completion API.
package assistant

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nikocevicstefan/term-chat/internal/config"
	"github.com/nikocevicstefan/term-chat/internal/transcript"
)

// ErrNoCommand is returned by Explain when the interaction has no command
// to explain. Callers decide how to surface this to the user.
var ErrNoCommand = errors.New("no command found in transcript")

// Client answers questions about terminal activity.
type Client interface {
	// Explain asks the model to explain the given command and its output.
	Explain(ctx context.Context, in transcript.Interaction) (string, error)
	// Ask sends a free-form question.
	Ask(ctx context.Context, question string) (string, error)
}

// openAIClient talks to the OpenAI chat-completion API (or any server
// speaking the same protocol via a custom base URL).
type openAIClient struct {
	client *openai.Client
	model  string
}

// New builds a Client from the merged configuration.
func New(cfg config.Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("no API key configured — run 'term-chat setup' or set TERMCHAT_API_KEY")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

func (c *openAIClient) Explain(ctx context.Context, in transcript.Interaction) (string, error) {
	if !in.HasCommand() {
		return "", ErrNoCommand
	}
	return c.complete(ctx, explainSystemPrompt, BuildExplainPrompt(in))
}

func (c *openAIClient) Ask(ctx context.Context, question string) (string, error) {
	return c.complete(ctx, askSystemPrompt, question)
}

func (c *openAIClient) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
