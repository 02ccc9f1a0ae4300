package extract

import (
	"context"
	"time"

	"github.com/fwojciec/rentscout"
)

// DefaultMaxTokens bounds the generated response length.
const DefaultMaxTokens = 1000

// Config controls semantic extraction.
type Config struct {
	// Model is passed through to the generator. Empty uses its default.
	Model       string
	MaxTokens   int
	Temperature float64
	// Timeout bounds a single generation call. Zero means no bound
	// beyond the caller's context.
	Timeout time.Duration
	// Fields defaults to DefaultFields.
	Fields []Field
}

// Ensure Semantic implements rentscout.SemanticExtractor.
var _ rentscout.SemanticExtractor = (*Semantic)(nil)

// Semantic extracts records by asking a text-generation service.
type Semantic struct {
	generator rentscout.Generator
	config    Config
}

// NewSemantic creates a semantic extractor backed by generator.
func NewSemantic(generator rentscout.Generator, config Config) *Semantic {
	if config.MaxTokens <= 0 {
		config.MaxTokens = DefaultMaxTokens
	}
	if len(config.Fields) == 0 {
		config.Fields = DefaultFields()
	}
	return &Semantic{generator: generator, config: config}
}

// ExtractSemantic sends one generation request and parses the response.
// Generator failures are returned as EUPSTREAM and unrecoverable responses
// as EUNPARSABLE. There are no retries.
func (s *Semantic) ExtractSemantic(ctx context.Context, fragments *rentscout.FragmentMap) (*rentscout.ExtractionResult, error) {
	if fragments == nil {
		return nil, rentscout.Errorf(rentscout.EINVALID, "fragments required")
	}
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	text, err := s.generator.Generate(ctx, rentscout.GenerateRequest{
		System:      SystemPrompt,
		User:        BuildUserPrompt(fragments, s.config.Fields),
		Model:       s.config.Model,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		switch rentscout.ErrorCode(err) {
		case rentscout.EUPSTREAM, rentscout.EUNPARSABLE:
			return nil, err
		}
		return nil, rentscout.Errorf(rentscout.EUPSTREAM, "%s: %v", s.generator.Name(), err)
	}

	obj, err := ParseResponse(text)
	if err != nil {
		return nil, err
	}
	return Coerce(obj), nil
}
