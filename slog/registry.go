package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/rentscout"
)

// Ensure LoggingRegistry implements rentscout.SelectorRegistry.
var _ rentscout.SelectorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a SelectorRegistry with logging for layout detection.
type LoggingRegistry struct {
	next   rentscout.SelectorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next rentscout.SelectorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(layout rentscout.Layout) *rentscout.SelectorSet {
	return r.next.Get(layout)
}

// GetForHTML logs the layout chosen for the page.
func (r *LoggingRegistry) GetForHTML(html string) *rentscout.SelectorSet {
	begin := time.Now()
	set := r.next.GetForHTML(html)
	layout := "(unknown)"
	if set != nil && set.Name != rentscout.LayoutUnknown {
		layout = string(set.Name)
	}
	r.logger.Info("layout detection",
		"layout", layout,
		"duration", time.Since(begin),
	)
	return set
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(set *rentscout.SelectorSet) {
	r.next.Register(set)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []rentscout.Layout {
	return r.next.List()
}
