package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger on w.
// Debug mode lowers the level so unknown commands and loop events show up.
func createLogger(debug bool, w io.Writer) *slog.Logger {
	return logging.NewWithOptions(logging.Options{
		Level:  logging.LevelFor(debug),
		Writer: w,
	})
}

func createDebugHooks(logger *slog.Logger) domain.LoopHooks {
	return domain.LoopHooks{
		OnLoopEnter: func(ctx context.Context, e *domain.LoopEvent) {
			logger.Debug("Enter Loop", "loop_id", e.LoopID, "level", e.Level, "commands", e.Commands)
		},
		OnLoopExit: func(ctx context.Context, e *domain.LoopEvent) {
			logger.Debug("Leave Loop", "loop_id", e.LoopID, "level", e.Level, "err", e.Err)
		},
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			if e.Err != nil {
				logger.Debug("Command (Error)", "command", e.Command, "duration", e.Duration, "err", e.Err)
			} else {
				logger.Debug("Command (Success)", "command", e.Command, "duration", e.Duration)
			}
		},
	}
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
