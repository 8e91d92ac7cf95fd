// Package openrouter implements trendscout.Generator on the OpenRouter
// chat-completions API, which speaks the OpenAI wire protocol.
package openrouter

import (
	"context"

	"github.com/avoronin/trendscout"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is the OpenRouter API endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is the model used when none is configured.
const DefaultModel = "deepseek/deepseek-v3.2-exp"

// Ensure Generator implements trendscout.Generator at compile time.
var _ trendscout.Generator = (*Generator)(nil)

// Generator produces completions via OpenRouter. Without an API key it runs
// in stub mode: every call returns trendscout.StubCompletion, which lets the
// rest of the pipeline (parser and corpus included) run offline.
type Generator struct {
	client *openai.Client
	model  string
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the model identifier sent to OpenRouter.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// NewGenerator creates a Generator. An empty apiKey enables stub mode.
func NewGenerator(apiKey string, opts ...Option) *Generator {
	g := &Generator{model: DefaultModel}
	for _, opt := range opts {
		opt(g)
	}

	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		cfg.BaseURL = DefaultBaseURL
		g.client = openai.NewClientWithConfig(cfg)
	}

	return g
}

// Generate performs a single chat completion. No retries.
func (g *Generator) Generate(ctx context.Context, msgs []trendscout.Message, p trendscout.GenParams) (string, error) {
	if g.client == nil {
		return trendscout.StubCompletion, nil
	}

	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    toChatMessages(msgs),
		MaxTokens:   p.MaxTokens,
		Temperature: p.Temperature,
		TopP:        p.TopP,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", trendscout.Errorf(trendscout.EINTERNAL, "openrouter returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// toChatMessages converts domain messages to the OpenAI wire shape.
func toChatMessages(msgs []trendscout.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		role := openai.ChatMessageRoleUser
		if m.Role == trendscout.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}
