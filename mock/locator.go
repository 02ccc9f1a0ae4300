package mock

import (
	"context"

	"github.com/fwojciec/rentscout"
)

var _ rentscout.Locator = (*Locator)(nil)

// Locator is a mock implementation of rentscout.Locator.
type Locator struct {
	LocateFn func(ctx context.Context, address string) (*rentscout.FragmentMap, error)
}

func (l *Locator) Locate(ctx context.Context, address string) (*rentscout.FragmentMap, error) {
	return l.LocateFn(ctx, address)
}

var _ rentscout.LayoutDetector = (*LayoutDetector)(nil)

// LayoutDetector is a mock implementation of rentscout.LayoutDetector.
type LayoutDetector struct {
	DetectFn func(html string) rentscout.Layout
}

func (d *LayoutDetector) Detect(html string) rentscout.Layout {
	return d.DetectFn(html)
}

var _ rentscout.SelectorRegistry = (*SelectorRegistry)(nil)

// SelectorRegistry is a mock implementation of rentscout.SelectorRegistry.
type SelectorRegistry struct {
	GetFn        func(layout rentscout.Layout) *rentscout.SelectorSet
	GetForHTMLFn func(html string) *rentscout.SelectorSet
	RegisterFn   func(set *rentscout.SelectorSet)
	ListFn       func() []rentscout.Layout
}

func (r *SelectorRegistry) Get(layout rentscout.Layout) *rentscout.SelectorSet {
	return r.GetFn(layout)
}

func (r *SelectorRegistry) GetForHTML(html string) *rentscout.SelectorSet {
	return r.GetForHTMLFn(html)
}

func (r *SelectorRegistry) Register(set *rentscout.SelectorSet) {
	r.RegisterFn(set)
}

func (r *SelectorRegistry) List() []rentscout.Layout {
	return r.ListFn()
}
