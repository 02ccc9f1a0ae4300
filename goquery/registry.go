package goquery

import "github.com/fwojciec/rentscout"

var _ rentscout.SelectorRegistry = (*Registry)(nil)

// Registry manages layout-specific selector sets and auto-detects layouts
// from HTML content. It uses a LayoutDetector to identify the layout and
// returns the matching selector set, falling back to a generic set when the
// layout is unknown or no set is registered for it.
type Registry struct {
	detector rentscout.LayoutDetector
	fallback *rentscout.SelectorSet
	sets     map[rentscout.Layout]*rentscout.SelectorSet
	order    []rentscout.Layout
}

// NewRegistry creates a new Registry with the given detector and fallback set.
func NewRegistry(detector rentscout.LayoutDetector, fallback *rentscout.SelectorSet) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		sets:     make(map[rentscout.Layout]*rentscout.SelectorSet),
	}
}

// NewRegistryFromSets builds a Registry whose detector checks sets in order
// and falls back to GenericSelectorSet.
func NewRegistryFromSets(sets []*rentscout.SelectorSet) *Registry {
	r := NewRegistry(NewDetector(sets...), GenericSelectorSet())
	for _, set := range sets {
		r.Register(set)
	}
	return r
}

// Get returns the selector set for a specific layout.
// Returns nil if no set is registered for the layout.
func (r *Registry) Get(layout rentscout.Layout) *rentscout.SelectorSet {
	return r.sets[layout]
}

// GetForHTML detects the layout from HTML and returns the appropriate set.
func (r *Registry) GetForHTML(html string) *rentscout.SelectorSet {
	layout := r.detector.Detect(html)
	if set, ok := r.sets[layout]; ok {
		return set
	}
	return r.fallback
}

// Register adds a selector set for its layout.
// If a set is already registered for the layout, it is replaced.
func (r *Registry) Register(set *rentscout.SelectorSet) {
	if _, ok := r.sets[set.Name]; !ok {
		r.order = append(r.order, set.Name)
	}
	r.sets[set.Name] = set
}

// List returns all registered layouts in registration order.
func (r *Registry) List() []rentscout.Layout {
	layouts := make([]rentscout.Layout, len(r.order))
	copy(layouts, r.order)
	return layouts
}
