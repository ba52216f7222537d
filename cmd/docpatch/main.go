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
	"github.com/serenity-rs/docpatch"
	"github.com/serenity-rs/docpatch/fs"
	"github.com/serenity-rs/docpatch/goquery"
	docslog "github.com/serenity-rs/docpatch/slog"
	"github.com/serenity-rs/docpatch/sqlite"
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
	// Ledger database path. Set before calling Run().
	LedgerPath string

	// SQLite database used by the run ledger.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService docpatch.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		LedgerPath: defaultLedgerPath(),
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
		kong.Name("docpatch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) > 0 {
		cmd := args[0]
		if cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire core services into dependencies
	deps.Patcher = docslog.NewLoggingPatcher(fs.NewPatcher(), logger)
	deps.Inspector = goquery.NewInspector(goquery.NewDetector())

	// Open the run ledger only for commands that use it. A broken
	// ledger must not prevent patching, so the patch command degrades
	// to a warning while history fails outright.
	switch command(kongCtx) {
	case "patch":
		m.DB = sqlite.NewDB(m.LedgerPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "warning: run ledger unavailable at %q: %s\n", m.LedgerPath, err)
			fmt.Fprintf(stderr, "Hint: Set DOCPATCH_DB to use a different ledger path\n")
			m.DB = nil
		} else {
			m.RunService = sqlite.NewRunService(m.DB)
			deps.Runs = m.RunService
		}
	case "history":
		m.DB = sqlite.NewDB(m.LedgerPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCPATCH_DB to use a different ledger path\n")
			return fmt.Errorf("failed to open ledger at %q: %w", m.LedgerPath, err)
		}
		m.RunService = sqlite.NewRunService(m.DB)
		deps.Runs = m.RunService
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// command returns the leading command word from a parsed kong context.
func command(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func defaultLedgerPath() string {
	if path := os.Getenv("DOCPATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docpatch.db"
	}
	dir := filepath.Join(home, ".docpatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docpatch.db")
}
