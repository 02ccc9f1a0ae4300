package rentscout

import (
	"context"
	"strings"
)

// DefaultDomain is the classifieds domain listing addresses must belong to.
const DefaultDomain = "craigslist.org"

// ValidateAddress checks that address belongs to domain. The rule is a plain
// substring check, applied before any network access.
func ValidateAddress(address, domain string) error {
	if strings.TrimSpace(address) == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	if domain == "" {
		domain = DefaultDomain
	}
	if !strings.Contains(address, domain) {
		return Errorf(EINVALID, "invalid URL: please provide a valid %s URL", domain)
	}
	return nil
}

// Layout names a version of the listing page markup.
type Layout string

// Known listing page layouts.
const (
	LayoutUnknown          Layout = ""
	LayoutCraigslist       Layout = "craigslist"
	LayoutCraigslistLegacy Layout = "craigslist-legacy"
	LayoutGeneric          Layout = "generic"
)

// SelectorSet holds the CSS selectors addressing each fragment for one page
// layout. Selectors may be comma-separated alternatives.
type SelectorSet struct {
	Name Layout

	// Markers identify the layout: a page matches when any marker
	// selector is present.
	Markers []string

	Title       string
	Body        string
	MapAddress  string
	PostingInfo string
	Attributes  string
	Price       string

	// Strip lists elements removed from the body before its text is read.
	Strip []string
}

// Validate returns an error if the selector set cannot locate content.
func (s *SelectorSet) Validate() error {
	if s.Name == LayoutUnknown {
		return Errorf(EINVALID, "selector set name required")
	}
	if s.Body == "" && s.Attributes == "" {
		return Errorf(EINVALID, "selector set %q needs a body or attributes selector", s.Name)
	}
	return nil
}

// LayoutDetector identifies the page layout from HTML.
type LayoutDetector interface {
	// Detect returns LayoutUnknown if no layout matches.
	Detect(html string) Layout
}

// SelectorRegistry manages selector sets per layout.
type SelectorRegistry interface {
	// Get returns the selector set for a layout, or nil if none is registered.
	Get(layout Layout) *SelectorSet

	// GetForHTML detects the layout from HTML and returns its selector set.
	// Falls back to a generic set if the layout is unknown.
	GetForHTML(html string) *SelectorSet

	// Register adds or replaces the selector set for its layout.
	Register(set *SelectorSet)

	// List returns registered layouts in registration order.
	List() []Layout
}

// Locator turns a listing address into a fragment map.
type Locator interface {
	// Locate validates the address, fetches the page and reads its fragments.
	// Returns EINVALID before any network access when the address is outside
	// the supported domain, EFETCH when the page cannot be retrieved, and
	// ENOCONTENT when both body and attributes are empty.
	Locate(ctx context.Context, address string) (*FragmentMap, error)
}
