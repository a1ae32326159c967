package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/aretw0/parley/internal/adapters/readline"
	"github.com/aretw0/parley/internal/config"
	"github.com/aretw0/parley/internal/demo"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/observability"
	"github.com/aretw0/parley/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// Streams are the standard streams a session talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// RunSession runs the demo command set at the top level until the user exits.
// Terminal mode (line editing, scroll region) is used when both In and Out are
// terminals and cfg.Plain is false.
func RunSession(ctx context.Context, cfg *config.Config, version string, streams Streams) error {
	logger := createLogger(cfg.Debug, streams.Err)
	terminal := !cfg.Plain && IsTerminal(streams.In) && IsTerminal(streams.Out)

	if terminal && cfg.Banner {
		tui.PrintBanner(streams.Out, version)
	}

	opts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithPrompt(cfg.Prompt),
		runner.WithSanitizer(cfg.Sanitize),
		runner.WithMaxInputSize(cfg.MaxInputSize),
		runner.WithSuggestions(true),
	}
	if cfg.Debug {
		opts = append(opts, runner.WithHooks(createDebugHooks(logger)))
	}
	if cfg.Markdown {
		opts = append(opts, runner.WithContentRenderer(tui.NewRenderer()))
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)
		srv, err := startMetricsServer(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer srv.Stop()
		opts = append(opts, runner.WithHooks(metrics.Hooks()))
	}

	closeIO := func() {}
	if terminal {
		ioOpts, closer, err := TerminalIO(cfg.HistoryFile, streams.Out.(*os.File))
		if err != nil {
			return err
		}
		closeIO = closer
		opts = append(opts, ioOpts...)
	} else {
		opts = append(opts,
			runner.WithInput(runner.NewTextInput(streams.In, streams.Out)),
			runner.WithRenderer(runner.NewTextRenderer(streams.Out)),
		)
	}
	defer closeIO()

	exit := func(code int) {
		closeIO()
		os.Exit(code)
	}
	opts = append(opts, runner.WithExitFunc(exit))

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()
	go exitOnSignal(sigCtx, logger, exit)

	r := runner.NewRunner(opts...)
	logger.Debug("Session started", "terminal", terminal, "prompt", cfg.Prompt)

	return r.Run(sigCtx, demo.Commands(), nil)
}

// TerminalIO opens the line editor and the scroll region renderer on out.
// The returned func restores the terminal and may be called more than once.
func TerminalIO(historyFile string, out *os.File) ([]runner.Option, func(), error) {
	in, err := readline.New(readline.Options{HistoryFile: historyFile})
	if err != nil {
		return nil, nil, fmt.Errorf("terminal setup: %w", err)
	}
	scroll := tui.NewScrollRenderer(out)

	return []runner.Option{
		runner.WithInput(in),
		runner.WithRenderer(scroll),
		runner.WithScreen(scroll),
	}, sync.OnceFunc(func() { _ = in.Close() }), nil
}

// exitOnSignal ends the process when SIGINT or SIGTERM arrives while no
// prompt is reading. An interrupt at the prompt is reported by the input source.
func exitOnSignal(sc *SignalContext, logger *slog.Logger, exit func(int)) {
	<-sc.Done()
	sig := sc.Signal()
	if sig == nil {
		return
	}
	logger.Debug("Received signal", "signal", sig.String())
	exit(runner.ExitCodeInterrupt)
}
