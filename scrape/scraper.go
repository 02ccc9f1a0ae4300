// Package scrape composes location, semantic extraction and the heuristic
// fallback into the listing pipeline.
package scrape

import (
	"context"

	"github.com/fwojciec/rentscout"
)

// Ensure Scraper implements rentscout.Scraper.
var _ rentscout.Scraper = (*Scraper)(nil)

// Scraper runs locate, then semantic extraction, then the heuristic when
// the semantic stage fails recoverably.
type Scraper struct {
	locator   rentscout.Locator
	semantic  rentscout.SemanticExtractor
	heuristic rentscout.HeuristicExtractor
}

// NewScraper creates a Scraper.
func NewScraper(
	locator rentscout.Locator,
	semantic rentscout.SemanticExtractor,
	heuristic rentscout.HeuristicExtractor,
) *Scraper {
	return &Scraper{
		locator:   locator,
		semantic:  semantic,
		heuristic: heuristic,
	}
}

// ScrapeAndExtract returns the semantic record when it succeeds and a
// degraded heuristic record when it fails with EUPSTREAM or EUNPARSABLE.
// Locator errors are returned unchanged and skip both extraction stages.
func (s *Scraper) ScrapeAndExtract(ctx context.Context, address string) (*rentscout.ExtractionResult, error) {
	fragments, err := s.locator.Locate(ctx, address)
	if err != nil {
		return nil, err
	}

	result, err := s.semantic.ExtractSemantic(ctx, fragments)
	if err == nil {
		return result, nil
	}
	if !rentscout.IsRecoverable(err) {
		return nil, err
	}
	return s.heuristic.ExtractHeuristic(fragments), nil
}
