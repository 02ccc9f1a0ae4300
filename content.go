package rentscout

// MainContent is the main content of a page with boilerplate removed.
type MainContent struct {
	// Title comes from page metadata.
	Title string

	// HTML is the main content as clean HTML.
	HTML string
}

// ContentExtractor finds the main content of a page whose markup matched
// no selector for the listing body.
type ContentExtractor interface {
	// ExtractContent returns EINVALID for empty input and ENOCONTENT when
	// no main content can be identified.
	ExtractContent(html string) (*MainContent, error)
}

// Converter renders clean HTML as Markdown text.
type Converter interface {
	Convert(html string) (string, error)
}
