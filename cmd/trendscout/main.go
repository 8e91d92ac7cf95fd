package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/avoronin/trendscout"
	"github.com/avoronin/trendscout/agent"
	"github.com/avoronin/trendscout/crawl"
	"github.com/avoronin/trendscout/fs"
	"github.com/avoronin/trendscout/gemini"
	"github.com/avoronin/trendscout/goquery"
	tshttp "github.com/avoronin/trendscout/http"
	"github.com/avoronin/trendscout/openrouter"
	tsslog "github.com/avoronin/trendscout/slog"
	"github.com/avoronin/trendscout/sqlite"
	"github.com/avoronin/trendscout/trafilatura"
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

	// SQLite database used by the corpus service.
	DB *sqlite.DB

	// Corpus for end-to-end testing.
	Corpus trendscout.CorpusService
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
	logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("trendscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'trendscout --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The selected command comes from the parsed context, not args[0]:
	// global flags may precede the subcommand.
	cmd := strings.Fields(kongCtx.Command())[0]

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TRENDSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	auditLog := fs.NewAuditLog(auditLogPath(m.DBPath))
	m.Corpus = sqlite.NewCorpusService(m.DB, sqlite.WithAuditLog(auditLog))
	deps.Corpus = m.Corpus
	deps.Config = trendscout.DefaultConfig()
	deps.Config.RelaxedEvidence = cli.RelaxedEvidence

	if cmd == "ingest" || cmd == "demo" {
		langHint := cli.Ingest.LangHint
		concurrency := cli.Ingest.Concurrency
		if cmd == "demo" {
			langHint = "ru"
			concurrency = 3
		}
		fetcher := tsslog.NewLoggingFetcher(tshttp.NewFetcher(), logger)
		producer := &crawl.Producer{
			Fetcher:   fetcher,
			Extractor: trafilatura.NewExtractor(),
			LangHint:  langHint,
			Logger:    logger,
		}
		deps.Ingestor = &crawl.Ingestor{
			Producer:    producer,
			Links:       goquery.NewLinkCollector(fetcher),
			Corpus:      m.Corpus,
			Limiter:     crawl.NewDomainLimiter(1.0),
			Concurrency: concurrency,
			Logger:      logger,
		}
	}

	if cmd == "ask" || cmd == "demo" {
		engine := cli.Ask.Engine
		if cmd == "demo" {
			engine = cli.Demo.Engine
		}
		generator, err := buildGenerator(ctx, engine, stderr)
		if err != nil {
			return err
		}
		deps.Generator = tsslog.NewLoggingGenerator(generator, logger)
	}

	return kongCtx.Run(deps)
}

// buildGenerator creates the generation backend. A missing credential is
// not an error: the generator falls back to stub mode and the repair stage
// produces a local answer.
func buildGenerator(ctx context.Context, engine string, stderr io.Writer) (trendscout.Generator, error) {
	switch engine {
	case "openrouter":
		apiKey := os.Getenv("OPENROUTER_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENROUTER_API_KEY not set; running in stub mode")
		}
		return openrouter.NewGenerator(apiKey), nil
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set; running in stub mode")
			return gemini.NewGenerator(nil), nil
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client), nil
	default:
		return nil, fmt.Errorf("unknown engine %q (want openrouter or gemini)", engine)
	}
}

func defaultDBPath() string {
	if path := os.Getenv("TRENDSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "trendscout.db"
	}
	dir := filepath.Join(home, ".trendscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "trendscout.db")
}

// auditLogPath places the ingestion audit log next to the database.
func auditLogPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "ingest_audit.jsonl")
}

// newOrchestrator wires the query pipeline from the bound dependencies.
func newOrchestrator(deps *Dependencies) *agent.Orchestrator {
	return &agent.Orchestrator{
		Intake: &agent.Intake{
			Generator: deps.Generator,
			Location:  deps.Config.Location,
			Logger:    deps.Logger,
		},
		Synthesizer: &agent.Synthesizer{
			Corpus:    deps.Corpus,
			Generator: deps.Generator,
			Policy:    trendscout.EvidencePolicy{Relaxed: deps.Config.RelaxedEvidence},
			Config:    deps.Config,
			Logger:    deps.Logger,
		},
		Repairer: &agent.Repairer{},
		Ingestor: deps.Ingestor,
		Config:   deps.Config,
		Logger:   deps.Logger,
	}
}
