// Package trafilatura finds the main content of pages with unrecognized
// markup using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/rentscout"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements rentscout.ContentExtractor at compile time.
var _ rentscout.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
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

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, rentscout.Errorf(rentscout.ENOCONTENT, "trafilatura: %v", err)
	}
	if result.ContentNode == nil {
		return nil, rentscout.Errorf(rentscout.ENOCONTENT, "trafilatura: no main content")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, rentscout.Errorf(rentscout.EINTERNAL, "rendering content: %v", err)
	}

	return &rentscout.MainContent{
		Title: strings.TrimSpace(result.Metadata.Title),
		HTML:  buf.String(),
	}, nil
}
