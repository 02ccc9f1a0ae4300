package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rentscout"
)

// Ensure LoggingSemanticExtractor implements rentscout.SemanticExtractor.
var _ rentscout.SemanticExtractor = (*LoggingSemanticExtractor)(nil)

// LoggingSemanticExtractor wraps a SemanticExtractor with logging.
type LoggingSemanticExtractor struct {
	next   rentscout.SemanticExtractor
	logger *slog.Logger
}

// NewLoggingSemanticExtractor creates a new LoggingSemanticExtractor.
func NewLoggingSemanticExtractor(next rentscout.SemanticExtractor, logger *slog.Logger) *LoggingSemanticExtractor {
	return &LoggingSemanticExtractor{next: next, logger: logger}
}

// ExtractSemantic logs the outcome, including whether the failure can be
// covered by the heuristic stage.
func (e *LoggingSemanticExtractor) ExtractSemantic(ctx context.Context, fragments *rentscout.FragmentMap) (result *rentscout.ExtractionResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Warn("semantic extraction",
				"code", rentscout.ErrorCode(err),
				"recoverable", rentscout.IsRecoverable(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Info("semantic extraction", "duration", time.Since(begin))
	}(time.Now())
	return e.next.ExtractSemantic(ctx, fragments)
}

// Ensure LoggingScraper implements rentscout.Scraper.
var _ rentscout.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   rentscout.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next rentscout.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// ScrapeAndExtract logs the address, whether the record is degraded and
// the error code on failure.
func (s *LoggingScraper) ScrapeAndExtract(ctx context.Context, address string) (result *rentscout.ExtractionResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("scrape",
			"url", address,
			"degraded", result != nil && result.Degraded,
			"code", rentscout.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ScrapeAndExtract(ctx, address)
}
