package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fwojciec/rentscout"
	"github.com/fwojciec/rentscout/anthropic"
	"github.com/fwojciec/rentscout/extract"
	"github.com/fwojciec/rentscout/gemini"
	"github.com/fwojciec/rentscout/goquery"
	"github.com/fwojciec/rentscout/htmltomarkdown"
	rshttp "github.com/fwojciec/rentscout/http"
	"github.com/fwojciec/rentscout/openai"
	"github.com/fwojciec/rentscout/readability"
	"github.com/fwojciec/rentscout/rod"
	"github.com/fwojciec/rentscout/scrape"
	rsslog "github.com/fwojciec/rentscout/slog"
	"github.com/fwojciec/rentscout/sqlite"
	"github.com/fwojciec/rentscout/trafilatura"
	"github.com/fwojciec/rentscout/yaml"
	openaiopt "github.com/openai/openai-go/option"
	"google.golang.org/genai"
)

func newListingService(db *sqlite.DB, logger *slog.Logger) rentscout.ListingService {
	return rsslog.NewLoggingListingService(sqlite.NewListingService(db), logger)
}

// newScraper assembles the pipeline from the CLI configuration. The
// returned function releases the fetcher.
func newScraper(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (rentscout.Scraper, func() error, error) {
	registry, err := newRegistry(cli.Selectors)
	if err != nil {
		return nil, nil, err
	}

	generator, err := newGenerator(ctx, cli)
	if err != nil {
		return nil, nil, err
	}

	fetcher, err := newFetcher(cli, stderr)
	if err != nil {
		return nil, nil, err
	}
	if cli.HostRate > 0 {
		fetcher = rshttp.NewLimitedFetcher(fetcher, rshttp.NewHostLimiter(cli.HostRate, 1),
			rshttp.WithDeadline(cli.FetchTimeout))
	}
	fetcher = rsslog.NewLoggingFetcher(fetcher, logger)

	var opts []goquery.LocatorOption
	if content := newContentExtractor(cli.BodyFallback); content != nil {
		opts = append(opts, goquery.WithBodyFallback(content, htmltomarkdown.NewConverter()))
	}
	locator := goquery.NewLocator(fetcher, rsslog.NewLoggingRegistry(registry, logger), cli.Domain, opts...)
	semantic := extract.NewSemantic(rsslog.NewLoggingGenerator(generator, logger), extract.Config{
		Model:       cli.Model,
		MaxTokens:   cli.MaxTokens,
		Temperature: cli.Temperature,
		Timeout:     cli.GenerateTimeout,
	})

	scraper := scrape.NewScraper(
		locator,
		rsslog.NewLoggingSemanticExtractor(semantic, logger),
		extract.NewHeuristic(),
	)
	return rsslog.NewLoggingScraper(scraper, logger), fetcher.Close, nil
}

// newRegistry registers the selector sets from path ahead of the built-in
// ones so configured layouts win detection.
func newRegistry(path string) (*goquery.Registry, error) {
	sets := goquery.DefaultSelectorSets()
	if path != "" {
		configured, err := yaml.LoadSelectorSetsFile(path)
		if err != nil {
			return nil, err
		}
		sets = append(configured, sets...)
	}
	return goquery.NewRegistryFromSets(sets), nil
}

func newContentExtractor(name string) rentscout.ContentExtractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	}
	return nil
}

func newFetcher(cli *CLI, stderr io.Writer) (rentscout.Fetcher, error) {
	switch cli.Engine {
	case "browser":
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.FetchTimeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	default:
		return rshttp.NewFetcher(rshttp.WithTimeout(cli.FetchTimeout)), nil
	}
}

func newGenerator(ctx context.Context, cli *CLI) (rentscout.Generator, error) {
	switch cli.Provider {
	case "anthropic":
		if cli.AnthropicAPIKey == "" {
			return nil, rentscout.Errorf(rentscout.EINVALID, "ANTHROPIC_API_KEY not set. Use --provider=none for pattern-only extraction")
		}
		return anthropic.NewGenerator(cli.Model, anthropicopt.WithAPIKey(cli.AnthropicAPIKey)), nil

	case "openai":
		if cli.OpenAIAPIKey == "" {
			return nil, rentscout.Errorf(rentscout.EINVALID, "OPENAI_API_KEY not set. Use --provider=none for pattern-only extraction")
		}
		opts := []openaiopt.RequestOption{openaiopt.WithAPIKey(cli.OpenAIAPIKey)}
		if cli.OpenAIBaseURL != "" {
			opts = append(opts, openaiopt.WithBaseURL(cli.OpenAIBaseURL))
		}
		return openai.NewGenerator(cli.Model, opts...), nil

	case "gemini":
		if cli.GeminiAPIKey == "" {
			return nil, rentscout.Errorf(rentscout.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, cli.Model), nil

	case "none":
		return offlineGenerator{}, nil
	}
	return nil, rentscout.Errorf(rentscout.EINVALID, "unknown provider %q", cli.Provider)
}

// offlineGenerator always fails recoverably, so every scrape is answered
// by the heuristic stage.
type offlineGenerator struct{}

func (offlineGenerator) Generate(context.Context, rentscout.GenerateRequest) (string, error) {
	return "", rentscout.Errorf(rentscout.EUPSTREAM, "no text-generation provider configured")
}

func (offlineGenerator) Name() string { return "none" }
