package http

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/rentscout"
	"golang.org/x/time/rate"
)

// HostLimiter keeps one token bucket per host so that concurrent scrapes
// of the same site are spaced out while other hosts proceed.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host with the given burst. Burst values below 1 are raised to 1.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Wait blocks until a request to host is allowed or ctx is done.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

// Ensure LimitedFetcher implements rentscout.Fetcher at compile time.
var _ rentscout.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on the page host's bucket before each fetch.
type LimitedFetcher struct {
	next    rentscout.Fetcher
	limiter *HostLimiter
	timeout time.Duration
}

// LimitedOption configures a LimitedFetcher.
type LimitedOption func(*LimitedFetcher)

// WithDeadline bounds the wait and the fetch together by d.
func WithDeadline(d time.Duration) LimitedOption {
	return func(f *LimitedFetcher) {
		f.timeout = d
	}
}

// NewLimitedFetcher creates a LimitedFetcher.
func NewLimitedFetcher(next rentscout.Fetcher, limiter *HostLimiter, opts ...LimitedOption) *LimitedFetcher {
	f := &LimitedFetcher{next: next, limiter: limiter}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch waits for the host's turn, then delegates. A wait cut short by
// ctx or the deadline is an EFETCH error.
func (f *LimitedFetcher) Fetch(ctx context.Context, address string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	host := address
	if u, err := url.Parse(address); err == nil && u.Host != "" {
		host = u.Hostname()
	}
	if err := f.limiter.Wait(ctx, host); err != nil {
		return "", fetchError(address, err)
	}
	return f.next.Fetch(ctx, address)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}
