// Package anthropic implements rentscout.Generator using the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/rentscout"
)

// DefaultModel is used when neither the generator nor the request names one.
const DefaultModel = "claude-3-haiku-20240307"

const defaultMaxTokens = 1000

// Ensure Generator implements rentscout.Generator at compile time.
var _ rentscout.Generator = (*Generator)(nil)

// Generator implements rentscout.Generator using Anthropic.
type Generator struct {
	client anthropic.Client
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
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Name returns "anthropic".
func (g *Generator) Name() string {
	return "anthropic"
}

// Generate sends a single message and returns the concatenated text blocks.
func (g *Generator) Generate(ctx context.Context, req rentscout.GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.User)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	resp, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", rentscout.Errorf(rentscout.EUPSTREAM, "anthropic: %v", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(b.Text)
		}
	}
	if sb.Len() == 0 {
		return "", rentscout.Errorf(rentscout.EUPSTREAM, "anthropic returned no text")
	}
	return sb.String(), nil
}
