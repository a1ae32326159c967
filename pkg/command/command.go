package command

import (
	"context"

	"github.com/aretw0/parley/pkg/state"
)

// Handler implements one command.
// It receives the tokens that followed the command name and the loop's state slot,
// and returns the text to display. Handlers must not print; the loop owns output.
// ctx carries the running loop, which lets a handler start a nested loop.
type Handler func(ctx context.Context, args []string, st *state.Context) (string, error)

// Command binds a name to a handler and its one-line help.
type Command struct {
	Name    string
	Handler Handler
	Help    string
}
