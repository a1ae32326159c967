package runner

import (
	"context"

	"github.com/aretw0/parley/pkg/command"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/state"
)

type loopKey struct{}

// loopInfo is what a running loop publishes to its handlers.
type loopInfo struct {
	runner *Runner
	id     string
	level  int
}

func withLoop(ctx context.Context, info loopInfo) context.Context {
	return context.WithValue(ctx, loopKey{}, info)
}

func loopFrom(ctx context.Context) (loopInfo, bool) {
	info, ok := ctx.Value(loopKey{}).(loopInfo)
	return info, ok
}

// FromContext returns the runner executing the current handler.
func FromContext(ctx context.Context) (*Runner, bool) {
	info, ok := loopFrom(ctx)
	if !ok {
		return nil, false
	}
	return info.runner, true
}

// Level reports how deep the current handler is nested.
// It is 0 outside any loop and 1 inside the top-level loop.
func Level(ctx context.Context) int {
	info, _ := loopFrom(ctx)
	return info.level
}

// LoopID returns the identifier of the loop running the current handler.
func LoopID(ctx context.Context) string {
	info, _ := loopFrom(ctx)
	return info.id
}

// Nest runs a nested loop with table and st on the runner found in ctx.
// It blocks until the nested loop exits. opts adjust the nested runner only.
func Nest(ctx context.Context, table *command.Table, st *state.Context, opts ...Option) error {
	r, ok := FromContext(ctx)
	if !ok {
		return domain.ErrNoRunner
	}
	return r.Derive(opts...).Run(ctx, table, st)
}

// Notify writes a line through the renderer of the loop running the current
// handler. Handlers use it for output that precedes their return value.
func Notify(ctx context.Context, text, prefix string) error {
	r, ok := FromContext(ctx)
	if !ok {
		return domain.ErrNoRunner
	}
	return r.Renderer.WriteOutput(text, prefix)
}
