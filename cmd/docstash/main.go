package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docstash"
	"github.com/fwojciec/docstash/fetch"
	"github.com/fwojciec/docstash/fs"
	"github.com/fwojciec/docstash/github"
	dslog "github.com/fwojciec/docstash/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docstash"),
		kong.Description("Cache and fetch upstream documentation files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docstash --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		TTL:    cli.TTL,
	}

	deps.Coordinator = func(name string) (*fetch.Coordinator, error) {
		category, err := docstash.CategoryByName(name)
		if err != nil {
			return nil, err
		}
		category = category.WithRef(cli.Ref)

		var source docstash.RemoteSource = github.NewSource(github.WithTimeout(cli.Timeout))
		if cli.Verbose {
			source = dslog.NewLoggingSource(source, logger)
		}

		dir := filepath.Join(cli.CacheDir, category.Name)
		return &fetch.Coordinator{
			Category:    category,
			Source:      source,
			Manifest:    fs.NewManifestStore(dir, category.Name),
			Artifacts:   fs.NewArtifactStore(filepath.Join(dir, "cache")),
			TTL:         cli.TTL,
			Concurrency: cli.Concurrency,
			Limiter:     fetch.NewLimiter(1.0, 1),
		}, nil
	}

	deps.Rebuild = func(name string) error {
		category, err := docstash.CategoryByName(name)
		if err != nil {
			return err
		}
		dir := filepath.Join(cli.CacheDir, category.Name)
		return fs.NewManifestStore(dir, category.Name).Rebuild(ctx)
	}

	return kongCtx.Run(deps)
}
