// Package rod fetches listing pages through a headless Chrome browser for
// sites that render listings with JavaScript.
package rod

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/rentscout"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements rentscout.Fetcher at compile time.
var _ rentscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	maxPages     int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page load timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// WithRecycleAfter sets how many pages are loaded before the browser is
// restarted.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		fetchTimeout: DefaultFetchTimeout,
		maxPages:     DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages))
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// Failures are returned as EFETCH.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fetchError(url, err)
	}

	browser := f.manager.Browser()
	if browser == nil {
		return "", rentscout.Errorf(rentscout.EFETCH, "browser closed")
	}

	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fetchError(url, err)
	}
	defer func() { _ = page.Close() }()
	defer f.manager.IncrementPageCount()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fetchError(url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fetchError(url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fetchError(url, err)
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

func fetchError(url string, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return rentscout.Errorf(rentscout.EFETCH, "fetching %s: canceled", url)
	case errors.Is(err, context.DeadlineExceeded):
		return rentscout.Errorf(rentscout.EFETCH, "fetching %s: timed out", url)
	}
	return rentscout.Errorf(rentscout.EFETCH, "fetching %s: %v", url, err)
}

// LauncherPID returns the browser process ID.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
