// Package openai implements rentscout.Generator using the OpenAI chat
// completions API or any endpoint compatible with it.
package openai

import (
	"context"

	"github.com/fwojciec/rentscout"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is used when neither the generator nor the request names one.
const DefaultModel = "gpt-4o-mini"

// Ensure Generator implements rentscout.Generator at compile time.
var _ rentscout.Generator = (*Generator)(nil)

// Generator implements rentscout.Generator using OpenAI.
type Generator struct {
	client openai.Client
	model  string
}

// NewGenerator creates a new Generator. Requests are sent once; opts may
// override that with option.WithMaxRetries.
func NewGenerator(model string, opts ...option.RequestOption) *Generator {
	if model == "" {
		model = DefaultModel
	}
	opts = append([]option.RequestOption{option.WithMaxRetries(0)}, opts...)
	return &Generator{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Name returns "openai".
func (g *Generator) Name() string {
	return "openai"
}

// Generate sends a system and a user message and returns the first choice.
func (g *Generator) Generate(ctx context.Context, req rentscout.GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.User))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", rentscout.Errorf(rentscout.EUPSTREAM, "openai: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", rentscout.Errorf(rentscout.EUPSTREAM, "openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
