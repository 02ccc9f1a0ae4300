// Package goquery locates listing fragments in HTML using CSS selectors.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rentscout"
)

var _ rentscout.Locator = (*Locator)(nil)

// Locator fetches a listing page and reads its fragments with the selector
// set matching the page layout.
type Locator struct {
	fetcher  rentscout.Fetcher
	registry rentscout.SelectorRegistry
	domain   string

	content   rentscout.ContentExtractor
	converter rentscout.Converter
}

// LocatorOption configures a Locator.
type LocatorOption func(*Locator)

// WithBodyFallback fills an empty body from the page's main content when
// the selectors found attribute groups. A page with neither body nor
// attributes is still ENOCONTENT. The content HTML is rendered with conv,
// or as plain text when conv is nil.
func WithBodyFallback(content rentscout.ContentExtractor, conv rentscout.Converter) LocatorOption {
	return func(l *Locator) {
		l.content = content
		l.converter = conv
	}
}

// NewLocator creates a new Locator. Addresses must contain domain.
func NewLocator(fetcher rentscout.Fetcher, registry rentscout.SelectorRegistry, domain string, opts ...LocatorOption) *Locator {
	if domain == "" {
		domain = rentscout.DefaultDomain
	}
	l := &Locator{fetcher: fetcher, registry: registry, domain: domain}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate validates the address, fetches the page and extracts its fragments.
func (l *Locator) Locate(ctx context.Context, address string) (*rentscout.FragmentMap, error) {
	if err := rentscout.ValidateAddress(address, l.domain); err != nil {
		return nil, err
	}

	html, err := l.fetcher.Fetch(ctx, address)
	if err != nil {
		if rentscout.ErrorCode(err) == rentscout.EINTERNAL {
			return nil, rentscout.Errorf(rentscout.EFETCH, "fetching %s: %v", address, err)
		}
		return nil, err
	}

	fragments, err := ExtractFragments(html, l.registry.GetForHTML(html))
	if err != nil {
		return nil, err
	}
	if fragments.IsEmpty() {
		return nil, rentscout.Errorf(rentscout.ENOCONTENT, "could not extract content from %s", address)
	}
	if fragments.Body == "" && l.content != nil {
		l.fillBody(html, fragments)
	}
	return fragments, nil
}

// ExtractFragments reads the fragments addressed by set from html.
// A nil set uses GenericSelectorSet. Attribute groups are joined with
// newlines in document order; every other fragment reads the first match.
func ExtractFragments(html string, set *rentscout.SelectorSet) (*rentscout.FragmentMap, error) {
	if set == nil {
		set = GenericSelectorSet()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, rentscout.Errorf(rentscout.ENOCONTENT, "failed to parse HTML: %v", err)
	}

	body := find(doc, set.Body).First()
	for _, strip := range set.Strip {
		body.Find(strip).Remove()
	}

	var groups []string
	find(doc, set.Attributes).Each(func(_ int, sel *goquery.Selection) {
		if text := Text(sel); text != "" {
			groups = append(groups, text)
		}
	})

	return &rentscout.FragmentMap{
		Title:       Text(find(doc, set.Title).First()),
		Body:        Text(body),
		MapAddress:  Text(find(doc, set.MapAddress).First()),
		PostingInfo: Text(find(doc, set.PostingInfo).First()),
		Attributes:  strings.Join(groups, "\n"),
		Price:       Text(find(doc, set.Price).First()),
	}, nil
}

// find returns an empty selection for an empty selector.
func find(doc *goquery.Document, selector string) *goquery.Selection {
	if strings.TrimSpace(selector) == "" {
		return doc.Selection.Slice(0, 0)
	}
	return doc.Find(selector)
}

// fillBody is best effort: a page without identifiable main content keeps
// its empty body.
func (l *Locator) fillBody(html string, fragments *rentscout.FragmentMap) {
	content, err := l.content.ExtractContent(html)
	if err != nil || content == nil {
		return
	}
	if fragments.Title == "" {
		fragments.Title = content.Title
	}

	if l.converter != nil {
		if md, err := l.converter.Convert(content.HTML); err == nil && md != "" {
			fragments.Body = md
			return
		}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return
	}
	fragments.Body = Text(doc.Selection)
}
