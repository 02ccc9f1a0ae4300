package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/rentscout"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scraper  rentscout.Scraper
	Listings rentscout.ListingService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"RENTSCOUT_DB" help:"Database path (default ~/.rentscout/rentscout.db)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Provider        string        `enum:"anthropic,openai,gemini,none" default:"anthropic" env:"RENTSCOUT_PROVIDER" help:"Text-generation provider (anthropic, openai, gemini, none)"`
	Model           string        `env:"RENTSCOUT_MODEL" help:"Model name (provider default when empty)"`
	MaxTokens       int           `default:"1000" help:"Maximum tokens in the generated response"`
	Temperature     float64       `default:"0" help:"Sampling temperature"`
	FetchTimeout    time.Duration `default:"10s" help:"Page fetch timeout"`
	GenerateTimeout time.Duration `default:"30s" help:"Text-generation timeout"`
	Domain          string        `default:"craigslist.org" env:"RENTSCOUT_DOMAIN" help:"Accepted listing domain"`
	Selectors       string        `env:"RENTSCOUT_SELECTORS" help:"YAML file with additional layout selector sets"`
	Engine          string        `enum:"http,browser" default:"http" env:"RENTSCOUT_ENGINE" help:"Page fetch engine (http, browser)"`
	HostRate        float64       `default:"0" help:"Page fetches per second per host (0 disables)"`
	BodyFallback    string        `enum:"readability,trafilatura,none" default:"readability" help:"Main-content extractor for pages whose body matches no selector (readability, trafilatura, none)"`

	AnthropicAPIKey string `name:"anthropic-api-key" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
	OpenAIAPIKey    string `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL   string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible endpoint"`
	GeminiAPIKey    string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`

	Serve  ServeCmd  `cmd:"" help:"Serve the scrape and listing API over HTTP"`
	Scrape ScrapeCmd `cmd:"" help:"Scrape and extract listing pages"`
	List   ListCmd   `cmd:"" help:"List saved listings"`
	Update UpdateCmd `cmd:"" help:"Update a saved listing"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved listing"`
	Export ExportCmd `cmd:"" help:"Export saved listings as Markdown notes"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr          string  `default:":3001" env:"RENTSCOUT_ADDR" help:"Listen address"`
	MaxConcurrent int64   `default:"8" help:"Concurrent scrapes before returning 503 (0 disables)"`
	Rate          float64 `default:"2" help:"Scrape requests per second before returning 429 (0 disables)"`
	Burst         int     `default:"4" help:"Scrape request burst"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Listing URLs"`
	Save        bool     `short:"s" help:"Save successful results as listings"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrapes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	ID     string  `arg:"" help:"Listing ID"`
	Status string  `enum:"applied,pending,keep" default:"keep" help:"Application status (applied, pending)"`
	Notes  *string `help:"Replace notes"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Listing ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory"`
}
