package rentscout

import "context"

// Fetcher retrieves the raw markup of a page.
type Fetcher interface {
	// Fetch performs a single retrieval of the URL with no retry.
	// Transport failures, timeouts and non-success statuses return EFETCH.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
