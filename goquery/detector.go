package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/rentscout"
)

var _ rentscout.LayoutDetector = (*Detector)(nil)

// Detector identifies listing page layouts from HTML content.
// Layouts are checked in the order given; the first selector set with a
// marker present in the document wins.
type Detector struct {
	sets []*rentscout.SelectorSet
}

// NewDetector creates a new Detector for the given selector sets.
func NewDetector(sets ...*rentscout.SelectorSet) *Detector {
	return &Detector{sets: sets}
}

// Detect analyzes HTML and returns the identified layout.
// Returns LayoutUnknown if the layout cannot be determined.
func (d *Detector) Detect(html string) rentscout.Layout {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return rentscout.LayoutUnknown
	}
	return d.detect(doc)
}

func (d *Detector) detect(doc *goquery.Document) rentscout.Layout {
	for _, set := range d.sets {
		for _, marker := range set.Markers {
			if hasSelector(doc, marker) {
				return set.Name
			}
		}
	}
	return rentscout.LayoutUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
