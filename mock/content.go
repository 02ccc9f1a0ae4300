package mock

import "github.com/fwojciec/rentscout"

var _ rentscout.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of rentscout.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(html string) (*rentscout.MainContent, error)
}

func (e *ContentExtractor) ExtractContent(html string) (*rentscout.MainContent, error) {
	return e.ExtractContentFn(html)
}

var _ rentscout.Converter = (*Converter)(nil)

// Converter is a mock implementation of rentscout.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
