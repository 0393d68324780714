package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/classify"
	"github.com/fwojciec/leadgen/fs"
	"github.com/fwojciec/leadgen/goquery"
	leadhttp "github.com/fwojciec/leadgen/http"
	"github.com/fwojciec/leadgen/resolve"
	"github.com/fwojciec/leadgen/rod"
	"github.com/fwojciec/leadgen/search"
	leadslog "github.com/fwojciec/leadgen/slog"
	"github.com/fwojciec/leadgen/sqlite"
	"github.com/fwojciec/leadgen/trafilatura"
)

// yellowPagesURL is the business directory used by the fallback source
// and by redirect resolution of directory detail pages.
const yellowPagesURL = "https://www.yellowpages.com"

// fetchRPS is the per-domain request rate toward external sites.
const fetchRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Directory for the JSON lead store. Set before calling Run().
	DataDir string

	// SQLite database path. When set, leads are stored in SQLite
	// instead of JSON files under DataDir.
	DBPath string

	// DB is the open SQLite database, if DBPath is set.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store leadgen.LeadStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataDir: defaultDataDir(),
		DBPath:  os.Getenv("LEADGEN_DB"),
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
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if os.Getenv("LEADGEN_DEBUG") != "" {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leadgen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leadgen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.openStore(); err != nil {
		return err
	}
	defer m.Close()
	deps.Store = m.Store

	if cmd == "search" || cmd == "enhance" {
		tax := classify.DefaultTaxonomy()
		if cmd == "search" && cli.Search.Taxonomy != "" {
			tax, err = classify.Load(cli.Search.Taxonomy)
			if err != nil {
				return fmt.Errorf("failed to load taxonomy from %q: %w", cli.Search.Taxonomy, err)
			}
		}

		// The plain HTTP fetcher always exists: even in browser mode
		// it serves website probes, which only need a HEAD request.
		httpFetcher := leadhttp.NewFetcher(leadhttp.WithRateLimit(fetchRPS))
		defer httpFetcher.Close()

		var fetcher leadgen.Fetcher = httpFetcher
		browser := (cmd == "search" && cli.Search.Browser) || (cmd == "enhance" && cli.Enhance.Browser)
		if browser {
			rodFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer rodFetcher.Close()
			fetcher = rodFetcher
		}
		fetcher = leadhttp.NewRetryFetcher(fetcher, leadhttp.DefaultRetryDelays())
		fetcher = leadslog.NewLoggingFetcher(fetcher, logger)

		resolver := leadslog.NewLoggingResolver(resolve.NewResolver(fetcher), logger)
		extractor := leadslog.NewLoggingContactExtractor(
			goquery.NewSiteExtractor(fetcher, trafilatura.NewExtractor()), logger)
		classifier := classify.New(tax)

		deps.Searcher = &search.Searcher{
			Primary:    goquery.NewSERPSource(fetcher, resolver),
			Fallback:   goquery.NewDirectorySource(fetcher, resolver, yellowPagesURL),
			Demo:       &search.DemoSource{Catalog: tax.Demo},
			Extractor:  extractor,
			Prober:     httpFetcher,
			Classifier: classifier,
			Logger:     logger,
		}
		deps.Enhancer = &search.Enhancer{
			Store:      m.Store,
			Extractor:  extractor,
			Classifier: classifier,
			Logger:     logger,
		}
	}

	return kongCtx.Run(deps)
}

// openStore opens the SQLite store when a database path is configured,
// falling back to the JSON file store under DataDir.
func (m *Main) openStore() error {
	if m.DBPath != "" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		m.Store = sqlite.NewStore(m.DB)
		return nil
	}

	store, err := fs.NewStore(m.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open lead store at %q: %w", m.DataDir, err)
	}
	m.Store = store
	return nil
}

func defaultDataDir() string {
	if dir := os.Getenv("LEADGEN_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leadgen-data"
	}
	return filepath.Join(home, ".leadgen")
}
