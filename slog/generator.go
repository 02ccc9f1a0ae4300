package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rentscout"
)

// Ensure LoggingGenerator implements rentscout.Generator.
var _ rentscout.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging. Prompts and responses
// are not logged.
type LoggingGenerator struct {
	next   rentscout.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next rentscout.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) Generate(ctx context.Context, req rentscout.GenerateRequest) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"provider", g.next.Name(),
			"model", req.Model,
			"prompt_bytes", len(req.System)+len(req.User),
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, req)
}

// Name delegates to the wrapped generator.
func (g *LoggingGenerator) Name() string {
	return g.next.Name()
}
