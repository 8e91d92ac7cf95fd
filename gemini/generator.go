// Package gemini implements trendscout.Generator using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/avoronin/trendscout"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements trendscout.Generator at compile time.
var _ trendscout.Generator = (*Generator)(nil)

// Generator produces completions via the Gemini API.
type Generator struct {
	client *genai.Client
	model  string
}

// Option configures a Generator.
type Option func(*Generator)

// WithModel overrides the Gemini model identifier.
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// NewGenerator creates a Generator backed by the given client.
// A nil client enables stub mode, mirroring the OpenRouter generator.
func NewGenerator(client *genai.Client, opts ...Option) *Generator {
	g := &Generator{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate performs a single content generation call. No retries.
func (g *Generator) Generate(ctx context.Context, msgs []trendscout.Message, p trendscout.GenParams) (string, error) {
	if g.client == nil {
		return trendscout.StubCompletion, nil
	}

	contents, config := BuildRequest(msgs, p)

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", trendscout.Errorf(trendscout.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildRequest maps role-tagged messages onto the Gemini request shape:
// system messages become the system instruction, the rest become contents.
func BuildRequest(msgs []trendscout.Message, p trendscout.GenParams) ([]*genai.Content, *genai.GenerateContentConfig) {
	var system []string
	var contents []*genai.Content
	for _, m := range msgs {
		if m.Role == trendscout.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		contents = append(contents, &genai.Content{
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}

	temp := p.Temperature
	topP := p.TopP
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		TopP:            &topP,
		MaxOutputTokens: int32(p.MaxTokens),
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n")}},
		}
	}

	return contents, config
}
