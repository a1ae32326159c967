package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options configures a logger built by NewWithOptions.
type Options struct {
	Level slog.Leveler
	// Writer defaults to os.Stderr so diagnostics never mix with command output.
	Writer io.Writer
}

// New creates the application logger on stderr at the given level.
func New(level slog.Level) *slog.Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a text logger. The "error" key is renamed to "err"
// so handler failures and loop failures log under the same key.
func NewWithOptions(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: opts.Level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// LevelFor maps the --debug switch to a level.
func LevelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
