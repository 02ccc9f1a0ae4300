// Package gemini implements rentscout.Generator using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/rentscout"
	"google.golang.org/genai"
)

// DefaultModel is used when neither the generator nor the request names one.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements rentscout.Generator at compile time.
var _ rentscout.Generator = (*Generator)(nil)

// Generator implements rentscout.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Name returns "gemini".
func (g *Generator) Name() string {
	return "gemini"
}

// Generate sends the user instruction with the system instruction set in
// the request config.
func (g *Generator) Generate(ctx context.Context, req rentscout.GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.User}},
		}},
		BuildConfig(req),
	)
	if err != nil {
		return "", rentscout.Errorf(rentscout.EUPSTREAM, "gemini: %v", err)
	}
	if result == nil {
		return "", rentscout.Errorf(rentscout.EUPSTREAM, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", rentscout.Errorf(rentscout.EUPSTREAM, "gemini returned no text")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for a request. Responses
// are requested as JSON.
func BuildConfig(req rentscout.GenerateRequest) *genai.GenerateContentConfig {
	temp := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	return config
}
