package runner

import (
	"log/slog"

	"github.com/aretw0/parley/pkg/domain"
)

// DefaultPrompt is shown in front of the input line.
const DefaultPrompt = ">> "

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInput configures where lines are read from.
func WithInput(input InputSource) Option {
	return func(r *Runner) {
		r.Input = input
	}
}

// WithRenderer configures where command output is written.
func WithRenderer(renderer OutputRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithScreen configures the prompt positioning collaborator.
func WithScreen(screen ScreenSetup) Option {
	return func(r *Runner) {
		r.Screen = screen
	}
}

// WithPrompt sets the prompt string.
func WithPrompt(prompt string) Option {
	return func(r *Runner) {
		r.Prompt = prompt
	}
}

// WithContentRenderer configures a transformation applied to handler output (e.g. Markdown).
func WithContentRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Content = renderer
	}
}

// WithHooks registers observability hooks. Hooks added later run after earlier ones.
func WithHooks(hooks domain.LoopHooks) Option {
	return func(r *Runner) {
		r.Hooks = r.Hooks.Merge(hooks)
	}
}

// WithSanitizer turns input sanitizing on or off. See SanitizeInput.
func WithSanitizer(enabled bool) Option {
	return func(r *Runner) {
		r.Sanitize = enabled
	}
}

// WithMaxInputSize sets the longest accepted input line in bytes.
// It only takes effect together with WithSanitizer(true).
func WithMaxInputSize(n int) Option {
	return func(r *Runner) {
		r.MaxInputSize = n
	}
}

// WithExitFunc replaces os.Exit for the interrupt path.
func WithExitFunc(exit func(code int)) Option {
	return func(r *Runner) {
		r.exit = exit
	}
}

// WithSuggestions enables "did you mean" diagnostics for unknown commands.
func WithSuggestions(enabled bool) Option {
	return func(r *Runner) {
		r.Suggest = enabled
	}
}
