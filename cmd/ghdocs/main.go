package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ghdocs"
	"github.com/fwojciec/ghdocs/docs"
	"github.com/fwojciec/ghdocs/github"
	ghslog "github.com/fwojciec/ghdocs/slog"
	"github.com/fwojciec/ghdocs/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()
	m.Stdin = os.Stdin

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin carries protocol requests for the serve command.
	Stdin io.Reader

	// Contents overrides the GitHub accessor. Used for end-to-end testing.
	Contents ghdocs.ContentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
	if deps.Stdin == nil {
		deps.Stdin = eofReader{}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ghdocs"),
		kong.Description("Browse documentation folders of GitHub repositories over MCP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

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

	// Logs go to stderr; stdout belongs to the protocol.
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := ghdocs.DefaultConfig()
	if cli.Config != "" {
		if cfg, err = yaml.Load(cli.Config); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", ghdocs.ErrorMessage(err))
			return err
		}
	}

	contents := m.Contents
	if contents == nil {
		if cli.Token == "" {
			deps.Logger.Debug("no GitHub token configured, using unauthenticated access")
		}
		opts := []github.Option{github.WithToken(cli.Token)}
		if cli.APIURL != "" {
			opts = append(opts, github.WithBaseURL(cli.APIURL))
		}
		if cli.RateLimit > 0 {
			opts = append(opts, github.WithRateLimit(cli.RateLimit))
		}
		svc, err := github.NewContentService(opts...)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", ghdocs.ErrorMessage(err))
			return err
		}
		contents = svc
	}

	contents = ghslog.NewLoggingContentService(contents, deps.Logger)
	deps.Resolver = ghslog.NewLoggingResolver(docs.NewResolver(contents, cfg), deps.Logger)
	deps.Browser = ghslog.NewLoggingBrowser(docs.NewBrowser(deps.Resolver, contents), deps.Logger)

	return kongCtx.Run(deps)
}

// ReportError prints err to w unless it is an application error, which
// commands already print as "error: <message>".
func ReportError(w io.Writer, err error) {
	var appErr *ghdocs.Error
	if err == nil || errors.As(err, &appErr) {
		return
	}
	fmt.Fprintf(w, "error: %s\n", err)
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
