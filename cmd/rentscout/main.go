package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rentscout"
	"github.com/fwojciec/rentscout/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor RENTSCOUT_DB is set.
	DBPath string

	// EnvFile is loaded into the environment before flags are parsed.
	// A missing file is not an error.
	EnvFile string

	// SQLite database used by the listing store.
	DB *sqlite.DB

	// Listings is exposed for end-to-end testing.
	Listings rentscout.ListingService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	envFile := os.Getenv("RENTSCOUT_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	return &Main{
		DBPath:  defaultDBPath(),
		EnvFile: envFile,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rentscout"),
		kong.Description("Extract structured records from rental listing pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rentscout --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RENTSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.Listings = newListingService(m.DB, deps.Logger)
	deps.Listings = m.Listings

	if cmd == "serve" || cmd == "scrape" {
		scraper, closeFn, err := newScraper(ctx, cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		defer closeFn()
		deps.Scraper = scraper
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rentscout.db"
	}
	dir := filepath.Join(home, ".rentscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rentscout.db")
}
