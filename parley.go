package parley

import (
	"context"
	_ "embed"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/parley/internal/cli"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/command"
	"github.com/aretw0/parley/pkg/runner"
	"github.com/aretw0/parley/pkg/state"
)

//go:embed VERSION
var version string

// Version is the release of this module.
var Version = strings.TrimSpace(version)

type settings struct {
	logger      *slog.Logger
	prompt      string
	historyFile string
	markdown    bool
	plain       bool
	runnerOpts  []runner.Option
}

// Option defines a functional option for Run.
type Option func(*settings)

// WithLogger sets the diagnostics logger. Without it nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithPrompt sets the top-level prompt (default ">> ").
func WithPrompt(prompt string) Option {
	return func(s *settings) {
		s.prompt = prompt
	}
}

// WithHistoryFile persists terminal line history to path.
func WithHistoryFile(path string) Option {
	return func(s *settings) {
		s.historyFile = path
	}
}

// WithMarkdown renders handler output as Markdown.
func WithMarkdown(enabled bool) Option {
	return func(s *settings) {
		s.markdown = enabled
	}
}

// WithPlain forces plain line I/O even on a terminal.
func WithPlain(enabled bool) Option {
	return func(s *settings) {
		s.plain = enabled
	}
}

// WithRunnerOptions passes options straight to the underlying runner.
// They are applied last and override anything Run configures.
func WithRunnerOptions(opts ...runner.Option) Option {
	return func(s *settings) {
		s.runnerOpts = append(s.runnerOpts, opts...)
	}
}

// Run starts a top-level loop over table on the process streams and returns
// when the user types exit. A nil st starts with an empty state.
func Run(ctx context.Context, table *command.Table, st *state.Context, opts ...Option) error {
	s := &settings{
		logger: logging.NewNop(),
		prompt: runner.DefaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(s.logger),
		runner.WithPrompt(s.prompt),
	}
	if s.markdown {
		runnerOpts = append(runnerOpts, runner.WithContentRenderer(tui.NewRenderer()))
	}

	if !s.plain && cli.IsTerminal(os.Stdin) && cli.IsTerminal(os.Stdout) {
		ioOpts, closeIO, err := cli.TerminalIO(s.historyFile, os.Stdout)
		if err != nil {
			return err
		}
		defer closeIO()
		runnerOpts = append(runnerOpts, ioOpts...)
		runnerOpts = append(runnerOpts, runner.WithExitFunc(func(code int) {
			closeIO()
			os.Exit(code)
		}))
	}

	runnerOpts = append(runnerOpts, s.runnerOpts...)
	return runner.NewRunner(runnerOpts...).Run(ctx, table, st)
}
