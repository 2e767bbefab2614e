package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/kmlstat"
	"github.com/fwojciec/kmlstat/etree"
	"github.com/fwojciec/kmlstat/fs"
	"github.com/fwojciec/kmlstat/goquery"
	"github.com/fwojciec/kmlstat/html"
	"github.com/fwojciec/kmlstat/htmltomarkdown"
	kmlhttp "github.com/fwojciec/kmlstat/http"
	kmlslog "github.com/fwojciec/kmlstat/slog"
	"github.com/fwojciec/kmlstat/sqlite"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService kmlstat.DocumentService
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kmlstat"),
		kong.Description("Extract geometry, lengths and counts from KML documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kmlstat --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	var logger *slog.Logger
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire file and extraction services
	var extractor kmlstat.ExtractionService = etree.NewExtractor()
	if logger != nil {
		extractor = kmlslog.NewLoggingExtractionService(extractor, logger)
	}
	deps.Reader = kmlhttp.NewReader(fs.NewReader())
	deps.Writer = fs.NewWriter()
	deps.Extractor = extractor
	deps.Renderer = html.NewMapRenderer()
	deps.Text = goquery.NewTextConverter()
	deps.Markdown = htmltomarkdown.NewConverter()

	// Only history commands touch the database
	if needsDB(cmd) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set KMLSTAT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.DocumentService = sqlite.NewDocumentService(m.DB)
		if logger != nil {
			m.DocumentService = kmlslog.NewLoggingDocumentService(m.DocumentService, logger)
		}
		deps.Documents = m.DocumentService
	}

	return kongCtx.Run(deps)
}

func needsDB(cmd string) bool {
	switch cmd {
	case "import", "list", "show", "delete":
		return true
	}
	return false
}

func defaultDBPath() string {
	if path := os.Getenv("KMLSTAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kmlstat.db"
	}
	dir := filepath.Join(home, ".kmlstat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "kmlstat.db")
}
