package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/rentscout"
	"github.com/fwojciec/rentscout/mock"
	rsslog "github.com/fwojciec/rentscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingScraper_ScrapeAndExtract(t *testing.T) {
	t.Parallel()

	t.Run("logs degraded result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeAndExtractFn: func(ctx context.Context, address string) (*rentscout.ExtractionResult, error) {
				return &rentscout.ExtractionResult{Bedrooms: "2", Degraded: true}, nil
			},
		}

		scraper := rsslog.NewLoggingScraper(inner, logger)
		result, err := scraper.ScrapeAndExtract(context.Background(), "https://sfbay.craigslist.org/apa/1.html")

		require.NoError(t, err)
		assert.Equal(t, "2", result.Bedrooms)
		output := buf.String()
		assert.Contains(t, output, "msg=scrape")
		assert.Contains(t, output, "url=https://sfbay.craigslist.org/apa/1.html")
		assert.Contains(t, output, "degraded=true")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Scraper{
			ScrapeAndExtractFn: func(ctx context.Context, address string) (*rentscout.ExtractionResult, error) {
				return nil, rentscout.Errorf(rentscout.ENOCONTENT, "empty page")
			},
		}

		scraper := rsslog.NewLoggingScraper(inner, logger)
		_, err := scraper.ScrapeAndExtract(context.Background(), "https://sfbay.craigslist.org/apa/1.html")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "code=no_content")
		assert.Contains(t, output, "degraded=false")
	})
}

func TestLoggingSemanticExtractor_ExtractSemantic(t *testing.T) {
	t.Parallel()

	t.Run("warns on recoverable failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SemanticExtractor{
			ExtractSemanticFn: func(ctx context.Context, f *rentscout.FragmentMap) (*rentscout.ExtractionResult, error) {
				return nil, rentscout.Errorf(rentscout.EUNPARSABLE, "no JSON object")
			},
		}

		extractor := rsslog.NewLoggingSemanticExtractor(inner, logger)
		_, err := extractor.ExtractSemantic(context.Background(), &rentscout.FragmentMap{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "code=unparsable")
		assert.Contains(t, output, "recoverable=true")
	})

	t.Run("logs success at info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SemanticExtractor{
			ExtractSemanticFn: func(ctx context.Context, f *rentscout.FragmentMap) (*rentscout.ExtractionResult, error) {
				return &rentscout.ExtractionResult{}, nil
			},
		}

		extractor := rsslog.NewLoggingSemanticExtractor(inner, logger)
		_, err := extractor.ExtractSemantic(context.Background(), &rentscout.FragmentMap{})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "level=INFO")
	})
}
