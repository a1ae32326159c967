package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/parley/pkg/command"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/state"
	"github.com/google/uuid"
)

const (
	// ExitCodeInterrupt is the process exit status after Ctrl+C.
	ExitCodeInterrupt = 130

	usageHint = "type 'help' for a list of commands"
)

// Runner is the dispatch loop. It reads lines, matches them against a command
// table and writes handler output through its renderer.
// A Runner holds no per-loop state, so one value serves every nesting level.
type Runner struct {
	// Input supplies user lines. Defaults to a TextInput on stdin.
	Input InputSource

	// Renderer receives handler output. Defaults to a TextRenderer on stdout.
	Renderer OutputRenderer

	// Screen positions the prompt before each read. Defaults to NopScreen.
	Screen ScreenSetup

	// Content transforms handler output before rendering. Optional.
	Content ContentRenderer

	// Logger is used for diagnostics (handler errors, rejected input).
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Hooks are invoked for loop and command events.
	Hooks domain.LoopHooks

	Prompt string

	// Sanitize enables SanitizeInput on every line before tokenizing.
	// Off by default: handlers receive the tokens exactly as typed.
	Sanitize bool

	// MaxInputSize is the size limit applied when Sanitize is set.
	MaxInputSize int

	// Suggest logs the closest known command when input matches none.
	Suggest bool

	exit func(code int)
}

// NewRunner creates a Runner on stdin/stdout with the given options applied.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Prompt:       DefaultPrompt,
		MaxInputSize: DefaultMaxInputSize,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		exit:         os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resolve()
	return r
}

// Derive returns a copy of r with opts applied. The copy shares r's
// collaborators unless an option replaces them.
func (r *Runner) Derive(opts ...Option) *Runner {
	r.resolve()
	c := *r
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Run executes the loop until the user types exit, the input source fails or
// the renderer fails. A nil table behaves as an empty one; a nil st is
// replaced by a fresh, empty state.Context.
//
// An interrupt terminates the process through the exit function and never
// returns in production.
func (r *Runner) Run(ctx context.Context, table *command.Table, st *state.Context) error {
	r.resolve()
	if table == nil {
		table = command.NewTable()
	}
	if st == nil {
		st = state.New()
	}

	info := loopInfo{
		runner: r,
		id:     uuid.NewString(),
		level:  Level(ctx) + 1,
	}
	ctx = withLoop(ctx, info)
	logger := r.Logger.With("loop_id", info.id, "level", info.level)

	if err := r.Screen.SetupScreen(); err != nil {
		return fmt.Errorf("screen setup error: %w", err)
	}
	if err := r.Renderer.WriteOutput(usageHint, "info"); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	r.fireLoop(ctx, r.Hooks.OnLoopEnter, domain.EventLoopEnter, table, nil)
	logger.Debug("loop started", "commands", table.Len())

	err := r.loop(ctx, logger, table, st)

	r.fireLoop(ctx, r.Hooks.OnLoopExit, domain.EventLoopExit, table, err)
	logger.Debug("loop finished", "err", err)
	return err
}

func (r *Runner) loop(ctx context.Context, logger *slog.Logger, table *command.Table, st *state.Context) error {
	help := table.Help()

	for {
		if err := r.Screen.SetupScreen(); err != nil {
			logger.Error("error during screen setup", "err", err)
		}
		if c, ok := r.Input.(Completer); ok {
			c.SetCompletions(table.Names())
		}

		line, err := r.Input.Readline(r.Prompt)
		if err != nil {
			if errors.Is(err, domain.ErrInterrupted) {
				r.exit(ExitCodeInterrupt)
				// Only reached when exit is stubbed (tests).
				return fmt.Errorf("input error: %w", err)
			}
			logger.Error("error during readline", "err", err)
			return fmt.Errorf("input error: %w", err)
		}

		if r.Sanitize {
			line, err = SanitizeInput(line, r.MaxInputSize)
			if err != nil {
				logger.Warn("input rejected", "err", err)
				continue
			}
		}

		name, args, ok := Tokenize(line)
		if !ok {
			continue
		}

		// Built-ins are checked before the table, so they cannot be shadowed.
		switch name {
		case "help", "?":
			if err := r.Renderer.WriteOutput(help, ""); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		case "exit":
			return nil
		}

		if err := r.dispatch(ctx, logger, table, st, name, args); err != nil {
			return err
		}
	}
}

// dispatch runs every command matching name, in table order.
// Only a renderer failure is returned; handler errors are logged.
func (r *Runner) dispatch(ctx context.Context, logger *slog.Logger, table *command.Table, st *state.Context, name string, args []string) error {
	matches := table.Lookup(name)
	if len(matches) == 0 {
		r.unknown(ctx, logger, table, name, args)
		return nil
	}

	for _, cmd := range matches {
		if cmd.Handler == nil {
			logger.Error("command has no handler", "command", name)
			continue
		}

		start := time.Now()
		// Each handler gets its own copy so one cannot reorder another's args.
		out, err := cmd.Handler(ctx, append([]string{}, args...), st)
		r.fireCommand(ctx, r.Hooks.OnCommand, domain.EventCommand, name, args, time.Since(start), err)

		if err != nil {
			logger.Error("error executing command", "command", name, "err", err)
			continue
		}

		if err := r.Renderer.WriteOutput(r.render(logger, out), ""); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}

func (r *Runner) unknown(ctx context.Context, logger *slog.Logger, table *command.Table, name string, args []string) {
	logger.Debug("unknown command", "command", name)
	if r.Suggest {
		if suggestion, ok := table.Suggest(name); ok {
			logger.Info("unknown command", "command", name, "suggestion", suggestion)
		}
	}
	r.fireCommand(ctx, r.Hooks.OnUnknownCommand, domain.EventUnknownCommand, name, args, 0, nil)
}

func (r *Runner) render(logger *slog.Logger, out string) string {
	if r.Content == nil {
		return out
	}
	rendered, err := r.Content(out)
	if err != nil {
		logger.Debug("content renderer failed, using raw output", "err", err)
		return out
	}
	return rendered
}

func (r *Runner) fireLoop(ctx context.Context, hook func(context.Context, *domain.LoopEvent), typ domain.EventType, table *command.Table, err error) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.LoopEvent{
		EventBase: r.eventBase(ctx, typ),
		Commands:  table.Len(),
		Err:       err,
	})
}

func (r *Runner) fireCommand(ctx context.Context, hook func(context.Context, *domain.CommandEvent), typ domain.EventType, name string, args []string, d time.Duration, err error) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.CommandEvent{
		EventBase: r.eventBase(ctx, typ),
		Command:   name,
		Args:      args,
		Duration:  d,
		Err:       err,
	})
}

func (r *Runner) eventBase(ctx context.Context, typ domain.EventType) domain.EventBase {
	info, _ := loopFrom(ctx)
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      typ,
		LoopID:    info.id,
		Level:     info.level,
	}
}

// resolve fills unset collaborators with defaults. The stdin reader is
// memoized so nested loops keep reading from the same buffer.
func (r *Runner) resolve() {
	if r.Input == nil {
		r.Input = NewTextInput(os.Stdin, os.Stdout)
	}
	if r.Renderer == nil {
		r.Renderer = NewTextRenderer(os.Stdout)
	}
	if r.Screen == nil {
		r.Screen = NopScreen{}
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.exit == nil {
		r.exit = os.Exit
	}
}
