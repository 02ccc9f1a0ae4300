// Package readability finds the main content of pages with unrecognized
// markup using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/rentscout"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements rentscout.ContentExtractor at compile time.
var _ rentscout.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractContent returns the page's main content.
func (e *Extractor) ExtractContent(rawHTML string) (*rentscout.MainContent, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, rentscout.Errorf(rentscout.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, rentscout.Errorf(rentscout.ENOCONTENT, "readability: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, rentscout.Errorf(rentscout.ENOCONTENT, "readability: no main content")
	}

	return &rentscout.MainContent{
		Title: strings.TrimSpace(article.Title),
		HTML:  article.Content,
	}, nil
}
