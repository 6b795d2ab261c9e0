package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"brandsight"
	"brandsight/competitor"
	"brandsight/gemini"
	"brandsight/goquery"
	"brandsight/htmltomarkdown"
	bhttp "brandsight/http"
	"brandsight/insight"
	bslog "brandsight/slog"
	"brandsight/sqlite"
	"brandsight/tavily"
	"brandsight/trafilatura"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the insight store.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store brandsight.InsightStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("brandsight"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'brandsight --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BRANDSIGHT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Store = sqlite.NewInsightStore(m.DB)
	deps.DB = m.DB
	deps.Insights = m.Store

	// The pipeline is only needed by fetch and serve.
	if cmd == "fetch" || cmd == "serve" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		service, err := buildService(ctx, logger, stderr)
		if err != nil {
			return err
		}
		deps.Service = service
		deps.Logger = logger
	}

	return kongCtx.Run(deps)
}

// buildService wires the extraction pipeline. The Gemini and Tavily
// keys are optional; a missing key degrades the corresponding feature
// instead of failing startup.
func buildService(ctx context.Context, logger *slog.Logger, stderr io.Writer) (*insight.Service, error) {
	extractor := goquery.NewExtractor()

	service := &insight.Service{
		Fetcher:   bslog.NewLoggingFetcher(bhttp.NewFetcher(), logger),
		Catalog:   bhttp.NewCatalogFetcher(),
		Links:     extractor,
		Social:    extractor,
		Heroes:    extractor,
		Contacts:  extractor,
		Texts:     trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		service.Structurer = bslog.NewLoggingStructurer(gemini.NewStructurer(client), logger)
	} else {
		fmt.Fprintln(stderr, "GEMINI_API_KEY not set; brand context and FAQ structuring disabled")
	}

	if apiKey := os.Getenv("TAVILY_API_KEY"); apiKey != "" {
		searcher := bslog.NewLoggingSearcher(tavily.NewSearcher(apiKey), logger)
		service.Competitors = competitor.NewFinder(searcher)
	} else {
		fmt.Fprintln(stderr, "TAVILY_API_KEY not set; competitor discovery disabled")
	}

	return service, nil
}

func defaultDBPath() string {
	if path := os.Getenv("BRANDSIGHT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "brandsight.db"
	}
	dir := filepath.Join(home, ".brandsight")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "brandsight.db")
}
