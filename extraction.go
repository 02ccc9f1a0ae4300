package rentscout

import "context"

// ExtractionResult is the structured record extracted from a listing page.
// String fields are never absent; unknown values are the empty string.
// AllowsPets defaults to false.
type ExtractionResult struct {
	Address        string `json:"address"`
	ListingCreator string `json:"listingCreator"`
	ContactInfo    string `json:"contactInfo"`
	Price          string `json:"price"`
	Bedrooms       string `json:"bedrooms"`
	Bathrooms      string `json:"bathrooms"`
	AllowsPets     bool   `json:"allowsPets"`

	// Degraded is true when the record came from pattern matching instead of
	// the text-generation service.
	Degraded bool `json:"degraded"`
}

// SemanticExtractor extracts fields by delegating to a text-generation service.
type SemanticExtractor interface {
	// ExtractSemantic returns EUPSTREAM when the service fails and
	// EUNPARSABLE when no JSON object can be recovered from its response.
	ExtractSemantic(ctx context.Context, fragments *FragmentMap) (*ExtractionResult, error)
}

// HeuristicExtractor derives a best-effort record from fragments alone.
type HeuristicExtractor interface {
	// ExtractHeuristic never fails. The result is always marked Degraded.
	ExtractHeuristic(fragments *FragmentMap) *ExtractionResult
}

// Scraper runs the whole pipeline for one listing address.
type Scraper interface {
	// ScrapeAndExtract locates fragments and extracts a record from them.
	// Returns EINVALID, EFETCH or ENOCONTENT when the page cannot be located.
	// Semantic extraction failures are absorbed by the heuristic stage.
	ScrapeAndExtract(ctx context.Context, address string) (*ExtractionResult, error)
}
