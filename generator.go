package rentscout

import "context"

// GenerateRequest is a single text-generation call.
type GenerateRequest struct {
	System      string
	User        string
	Model       string // empty selects the implementation's default
	MaxTokens   int
	Temperature float64
}

// Generator sends instructions to a text-generation service.
type Generator interface {
	// Generate returns the generated text.
	// Service or transport failures return EUPSTREAM.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// Name returns the service identifier (e.g., "anthropic").
	Name() string
}
