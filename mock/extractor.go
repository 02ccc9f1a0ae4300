package mock

import (
	"context"

	"github.com/fwojciec/rentscout"
)

var _ rentscout.SemanticExtractor = (*SemanticExtractor)(nil)

// SemanticExtractor is a mock implementation of rentscout.SemanticExtractor.
type SemanticExtractor struct {
	ExtractSemanticFn func(ctx context.Context, fragments *rentscout.FragmentMap) (*rentscout.ExtractionResult, error)
}

func (e *SemanticExtractor) ExtractSemantic(ctx context.Context, fragments *rentscout.FragmentMap) (*rentscout.ExtractionResult, error) {
	return e.ExtractSemanticFn(ctx, fragments)
}

var _ rentscout.HeuristicExtractor = (*HeuristicExtractor)(nil)

// HeuristicExtractor is a mock implementation of rentscout.HeuristicExtractor.
type HeuristicExtractor struct {
	ExtractHeuristicFn func(fragments *rentscout.FragmentMap) *rentscout.ExtractionResult
}

func (e *HeuristicExtractor) ExtractHeuristic(fragments *rentscout.FragmentMap) *rentscout.ExtractionResult {
	return e.ExtractHeuristicFn(fragments)
}

var _ rentscout.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of rentscout.Scraper.
type Scraper struct {
	ScrapeAndExtractFn func(ctx context.Context, address string) (*rentscout.ExtractionResult, error)
}

func (s *Scraper) ScrapeAndExtract(ctx context.Context, address string) (*rentscout.ExtractionResult, error) {
	return s.ScrapeAndExtractFn(ctx, address)
}
