package scrape_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/rentscout"
	"github.com/fwojciec/rentscout/extract"
	"github.com/fwojciec/rentscout/goquery"
	"github.com/fwojciec/rentscout/mock"
	"github.com/fwojciec/rentscout/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingURL = "https://sfbay.craigslist.org/sfc/apa/d/sunny-2br/7712345678.html"

const listingHTML = `<html><body>
<h1 class="postingtitle"><span class="postingtitletext">
  <span id="titletextonly">Sunny 2BR</span>
  <span class="price">$2,400</span>
</span></h1>
<div class="mapAndAttrs">
  <div class="mapbox"><div class="mapaddress">123 Main St</div></div>
  <div class="attrgroup"><span class="attr important">2 BR / 1 Ba</span></div>
</div>
<section id="postingbody">Bright unit, no pets.</section>
<div class="postinginfos"><p class="postinginfo">post id: 7712345678</p></div>
</body></html>`

func newLocator(fetchCalls *int) rentscout.Locator {
	fetcher := &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			*fetchCalls++
			return listingHTML, nil
		},
	}
	registry := goquery.NewRegistryFromSets(goquery.DefaultSelectorSets())
	return goquery.NewLocator(fetcher, registry, rentscout.DefaultDomain)
}

func staticGenerator(text string, err error, calls *int) *mock.Generator {
	return &mock.Generator{
		GenerateFn: func(ctx context.Context, req rentscout.GenerateRequest) (string, error) {
			*calls++
			return text, err
		},
	}
}

func TestScraper_ScrapeAndExtract(t *testing.T) {
	t.Parallel()

	t.Run("returns semantic record", func(t *testing.T) {
		t.Parallel()

		var fetches, generations int
		gen := staticGenerator(`{"address": "123 Main St", "price": "$2,400", "bedrooms": "2", "bathrooms": "1", "allowsPets": false}`, nil, &generations)
		s := scrape.NewScraper(newLocator(&fetches), extract.NewSemantic(gen, extract.Config{}), extract.NewHeuristic())

		got, err := s.ScrapeAndExtract(context.Background(), listingURL)

		require.NoError(t, err)
		assert.Equal(t, &rentscout.ExtractionResult{
			Address:   "123 Main St",
			Price:     "$2,400",
			Bedrooms:  "2",
			Bathrooms: "1",
		}, got)
		assert.Equal(t, 1, fetches)
		assert.Equal(t, 1, generations)
	})

	t.Run("falls back to heuristic on unparsable response", func(t *testing.T) {
		t.Parallel()

		var fetches, generations int
		gen := staticGenerator("Sorry, I cannot help with that.", nil, &generations)
		s := scrape.NewScraper(newLocator(&fetches), extract.NewSemantic(gen, extract.Config{}), extract.NewHeuristic())

		got, err := s.ScrapeAndExtract(context.Background(), listingURL)

		require.NoError(t, err)
		assert.Equal(t, "2", got.Bedrooms)
		assert.Equal(t, "1", got.Bathrooms)
		assert.False(t, got.AllowsPets)
		assert.True(t, got.Degraded)
	})

	t.Run("falls back to heuristic on upstream failure", func(t *testing.T) {
		t.Parallel()

		var fetches, generations int
		gen := staticGenerator("", errors.New("503 service unavailable"), &generations)
		s := scrape.NewScraper(newLocator(&fetches), extract.NewSemantic(gen, extract.Config{}), extract.NewHeuristic())

		got, err := s.ScrapeAndExtract(context.Background(), listingURL)

		require.NoError(t, err)
		assert.Equal(t, &rentscout.ExtractionResult{
			Address:   "123 Main St",
			Price:     "$2,400",
			Bedrooms:  "2",
			Bathrooms: "1",
			Degraded:  true,
		}, got)
		assert.Equal(t, 1, generations)
	})

	t.Run("produces identical degraded records for identical pages", func(t *testing.T) {
		t.Parallel()

		var fetches, generations int
		gen := staticGenerator("no json here", nil, &generations)
		s := scrape.NewScraper(newLocator(&fetches), extract.NewSemantic(gen, extract.Config{}), extract.NewHeuristic())

		first, err := s.ScrapeAndExtract(context.Background(), listingURL)
		require.NoError(t, err)
		second, err := s.ScrapeAndExtract(context.Background(), listingURL)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returns locator errors without extracting", func(t *testing.T) {
		t.Parallel()

		for _, code := range []string{rentscout.EINVALID, rentscout.EFETCH, rentscout.ENOCONTENT} {
			locator := &mock.Locator{
				LocateFn: func(ctx context.Context, address string) (*rentscout.FragmentMap, error) {
					return nil, rentscout.Errorf(code, "locate failed")
				},
			}
			semantic := &mock.SemanticExtractor{
				ExtractSemanticFn: func(ctx context.Context, f *rentscout.FragmentMap) (*rentscout.ExtractionResult, error) {
					t.Fatal("semantic stage must not run")
					return nil, nil
				},
			}
			heuristic := &mock.HeuristicExtractor{
				ExtractHeuristicFn: func(f *rentscout.FragmentMap) *rentscout.ExtractionResult {
					t.Fatal("heuristic stage must not run")
					return nil
				},
			}
			s := scrape.NewScraper(locator, semantic, heuristic)

			_, err := s.ScrapeAndExtract(context.Background(), listingURL)

			require.Error(t, err)
			assert.Equal(t, code, rentscout.ErrorCode(err))
		}
	})

	t.Run("rejects foreign address before fetching", func(t *testing.T) {
		t.Parallel()

		var fetches, generations int
		gen := staticGenerator("{}", nil, &generations)
		s := scrape.NewScraper(newLocator(&fetches), extract.NewSemantic(gen, extract.Config{}), extract.NewHeuristic())

		_, err := s.ScrapeAndExtract(context.Background(), "https://example.com/listing")

		assert.Equal(t, rentscout.EINVALID, rentscout.ErrorCode(err))
		assert.Zero(t, fetches)
		assert.Zero(t, generations)
	})

	t.Run("returns non-recoverable semantic errors", func(t *testing.T) {
		t.Parallel()

		locator := &mock.Locator{
			LocateFn: func(ctx context.Context, address string) (*rentscout.FragmentMap, error) {
				return &rentscout.FragmentMap{Title: "x"}, nil
			},
		}
		semantic := &mock.SemanticExtractor{
			ExtractSemanticFn: func(ctx context.Context, f *rentscout.FragmentMap) (*rentscout.ExtractionResult, error) {
				return nil, errors.New("boom")
			},
		}
		heuristic := &mock.HeuristicExtractor{
			ExtractHeuristicFn: func(f *rentscout.FragmentMap) *rentscout.ExtractionResult {
				t.Fatal("heuristic stage must not run")
				return nil
			},
		}
		s := scrape.NewScraper(locator, semantic, heuristic)

		_, err := s.ScrapeAndExtract(context.Background(), listingURL)

		assert.Equal(t, rentscout.EINTERNAL, rentscout.ErrorCode(err))
	})
}
