package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/rentscout"
	main "github.com/fwojciec/rentscout/cmd/rentscout"
	"github.com/fwojciec/rentscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scrapeLine struct {
	URL      string                      `json:"url"`
	Success  bool                        `json:"success"`
	Data     *rentscout.ExtractionResult `json:"data"`
	Fallback *bool                       `json:"fallback"`
	ID       string                      `json:"id"`
	Error    string                      `json:"error"`
}

func decodeLines(t *testing.T, out string) []scrapeLine {
	t.Helper()

	var lines []scrapeLine
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var l scrapeLine
		require.NoError(t, dec.Decode(&l))
		lines = append(lines, l)
	}
	return lines
}

func TestScrapeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints extraction result", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, address string) (*rentscout.ExtractionResult, error) {
				return &rentscout.ExtractionResult{Address: "123 Main St", Price: "$2,400"}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: scraper,
		}

		cmd := &main.ScrapeCmd{URLs: []string{"https://sfbay.craigslist.org/apa/1.html"}}
		require.NoError(t, cmd.Run(deps))

		lines := decodeLines(t, stdout.String())
		require.Len(t, lines, 1)
		assert.True(t, lines[0].Success)
		require.NotNil(t, lines[0].Fallback)
		assert.False(t, *lines[0].Fallback)
		assert.Equal(t, "123 Main St", lines[0].Data.Address)
		assert.Empty(t, lines[0].ID)
	})

	t.Run("reports fallback for degraded results", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, _ string) (*rentscout.ExtractionResult, error) {
				return &rentscout.ExtractionResult{Degraded: true}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Scraper: scraper}

		cmd := &main.ScrapeCmd{URLs: []string{"https://sfbay.craigslist.org/apa/1.html"}}
		require.NoError(t, cmd.Run(deps))

		lines := decodeLines(t, stdout.String())
		require.Len(t, lines, 1)
		require.NotNil(t, lines[0].Fallback)
		assert.True(t, *lines[0].Fallback)
	})

	t.Run("prints results in argument order", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, address string) (*rentscout.ExtractionResult, error) {
				if strings.HasSuffix(address, "/1.html") {
					time.Sleep(20 * time.Millisecond)
				}
				return &rentscout.ExtractionResult{Address: address}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Scraper: scraper}

		urls := []string{
			"https://sfbay.craigslist.org/apa/1.html",
			"https://sfbay.craigslist.org/apa/2.html",
			"https://sfbay.craigslist.org/apa/3.html",
		}
		cmd := &main.ScrapeCmd{URLs: urls, Concurrency: 3}
		require.NoError(t, cmd.Run(deps))

		lines := decodeLines(t, stdout.String())
		require.Len(t, lines, 3)
		for i, u := range urls {
			assert.Equal(t, u, lines[i].URL)
			assert.Equal(t, u, lines[i].Data.Address)
		}
	})

	t.Run("respects concurrency limit", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int32
		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, _ string) (*rentscout.ExtractionResult, error) {
				n := inFlight.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				inFlight.Add(-1)
				return &rentscout.ExtractionResult{}, nil
			},
		}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Scraper: scraper}

		urls := make([]string, 6)
		for i := range urls {
			urls[i] = "https://sfbay.craigslist.org/apa/x.html"
		}
		cmd := &main.ScrapeCmd{URLs: urls, Concurrency: 2}
		require.NoError(t, cmd.Run(deps))

		assert.LessOrEqual(t, peak.Load(), int32(2))
	})

	t.Run("continues past failures and returns first error", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, address string) (*rentscout.ExtractionResult, error) {
				if strings.Contains(address, "example.com") {
					return nil, rentscout.Errorf(rentscout.EINVALID, "invalid URL: please provide a valid craigslist.org URL")
				}
				return &rentscout.ExtractionResult{}, nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr, Scraper: scraper}

		cmd := &main.ScrapeCmd{URLs: []string{"https://example.com/x", "https://sfbay.craigslist.org/apa/1.html"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, rentscout.EINVALID, rentscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), "1 of 2 listings failed")

		lines := decodeLines(t, stdout.String())
		require.Len(t, lines, 2)
		assert.False(t, lines[0].Success)
		assert.Contains(t, lines[0].Error, "craigslist.org")
		assert.Nil(t, lines[0].Data)
		assert.True(t, lines[1].Success)
	})

	t.Run("hides internal error details", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, _ string) (*rentscout.ExtractionResult, error) {
				return nil, assert.AnError
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Scraper: scraper}

		cmd := &main.ScrapeCmd{URLs: []string{"https://sfbay.craigslist.org/apa/1.html"}}
		require.Error(t, cmd.Run(deps))

		lines := decodeLines(t, stdout.String())
		require.Len(t, lines, 1)
		assert.Equal(t, "Internal error.", lines[0].Error)
	})

	t.Run("saves listing with --save", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, _ string) (*rentscout.ExtractionResult, error) {
				return &rentscout.ExtractionResult{Address: "123 Main St", Bedrooms: "2"}, nil
			},
		}
		var saved *rentscout.Listing
		listings := &mock.ListingService{
			CreateListingFn: func(_ context.Context, l *rentscout.Listing) error {
				l.ID = "listing-1"
				saved = l
				return nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Scraper: scraper, Listings: listings}

		cmd := &main.ScrapeCmd{URLs: []string{"https://sfbay.craigslist.org/apa/1.html"}, Save: true}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "https://sfbay.craigslist.org/apa/1.html", saved.URL)
		assert.Equal(t, "123 Main St", saved.Address)
		assert.Equal(t, "2", saved.Bedrooms)

		lines := decodeLines(t, stdout.String())
		require.Len(t, lines, 1)
		assert.Equal(t, "listing-1", lines[0].ID)
	})

	t.Run("does not save failed scrapes", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, _ string) (*rentscout.ExtractionResult, error) {
				return nil, rentscout.Errorf(rentscout.EFETCH, "HTTP 404")
			},
		}
		var created atomic.Bool
		listings := &mock.ListingService{
			CreateListingFn: func(_ context.Context, _ *rentscout.Listing) error {
				created.Store(true)
				return nil
			},
		}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}, Scraper: scraper, Listings: listings}

		cmd := &main.ScrapeCmd{URLs: []string{"https://sfbay.craigslist.org/apa/1.html"}, Save: true}
		err := cmd.Run(deps)
		assert.Equal(t, rentscout.EFETCH, rentscout.ErrorCode(err))
		assert.False(t, created.Load(), "failed scrapes should not be saved")
	})

	t.Run("returns error when save fails", func(t *testing.T) {
		t.Parallel()

		scraper := &mock.Scraper{
			ScrapeAndExtractFn: func(_ context.Context, _ string) (*rentscout.ExtractionResult, error) {
				return &rentscout.ExtractionResult{}, nil
			},
		}
		listings := &mock.ListingService{
			CreateListingFn: func(_ context.Context, _ *rentscout.Listing) error {
				return rentscout.Errorf(rentscout.EINTERNAL, "disk full")
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Scraper: scraper, Listings: listings}

		cmd := &main.ScrapeCmd{URLs: []string{"https://sfbay.craigslist.org/apa/1.html"}, Save: true}
		require.Error(t, cmd.Run(deps))

		lines := decodeLines(t, stdout.String())
		require.Len(t, lines, 1)
		assert.False(t, lines[0].Success)
		assert.Equal(t, "disk full", lines[0].Error)
	})

	t.Run("requires at least one URL", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.ScrapeCmd{}).Run(deps)
		assert.Equal(t, rentscout.EINVALID, rentscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), "at least one URL")
	})
}
