package extract

import (
	"regexp"

	"github.com/fwojciec/rentscout"
)

// bedBath matches summaries like "2BR / 1Ba" or "3 br / 1.5 ba".
var bedBath = regexp.MustCompile(`(?i)(\d+)\s*BR\s*/\s*(\d+(?:\.\d+)?)\s*Ba`)

// Ensure Heuristic implements rentscout.HeuristicExtractor.
var _ rentscout.HeuristicExtractor = (*Heuristic)(nil)

// Heuristic extracts a degraded record by pattern matching. It never fails.
type Heuristic struct{}

// NewHeuristic creates a heuristic extractor.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// ExtractHeuristic fills address from the map fragment, price from the
// price fragment and the bedroom and bathroom counts from the first
// bed/bath summary in the attributes. Pets are never assumed allowed.
func (h *Heuristic) ExtractHeuristic(fragments *rentscout.FragmentMap) *rentscout.ExtractionResult {
	result := &rentscout.ExtractionResult{Degraded: true}
	if fragments == nil {
		return result
	}
	result.Address = fragments.MapAddress
	result.Price = fragments.Price
	if m := bedBath.FindStringSubmatch(fragments.Attributes); m != nil {
		result.Bedrooms = m[1]
		result.Bathrooms = m[2]
	}
	return result
}
