// Package demo holds the sample conversation command set shipped with the
// parley binary.
package demo

import (
	"context"
	"fmt"

	"github.com/aretw0/parley/pkg/command"
	"github.com/aretw0/parley/pkg/runner"
	"github.com/aretw0/parley/pkg/state"
)

const (
	noName          = "no name provided"
	notConversation = "you are not in a conversation with a person"
)

// Commands returns the top-level table.
func Commands() *command.Table {
	return command.NewTable(
		command.Command{
			Name:    "converse",
			Handler: Converse,
			Help:    "converse <name> - interact with a person",
		},
	)
}

// ConversationCommands returns the table active while talking to someone.
func ConversationCommands() *command.Table {
	return command.NewTable(
		command.Command{
			Name:    "hello",
			Handler: Hello,
			Help:    "hello - say hello",
		},
		command.Command{
			Name:    "change",
			Handler: Change,
			Help:    "change <name> - change the name of the person with whom you're speaking",
		},
	)
}

// Converse opens a nested loop holding the person's name until the user
// types exit.
func Converse(ctx context.Context, args []string, _ *state.Context) (string, error) {
	if len(args) == 0 {
		return noName, nil
	}
	name := args[0]

	if err := runner.Notify(ctx, "interacting with: "+name, ""); err != nil {
		return "", err
	}

	st := state.With(name)
	err := runner.Nest(ctx, ConversationCommands(), st, runner.WithPrompt(name+">> "))
	if err != nil {
		if r, ok := runner.FromContext(ctx); ok {
			r.Logger.Error("error running conversation loop", "err", err)
		}
	}

	// The conversation may have renamed the person.
	if current, ok := state.Get[string](st); ok {
		name = current
	}
	return fmt.Sprintf("left conversation with %s", name), nil
}

// Hello greets whoever the conversation is with.
func Hello(_ context.Context, _ []string, st *state.Context) (string, error) {
	name, ok := state.Get[string](st)
	if !ok {
		return notConversation, nil
	}
	return fmt.Sprintf("You said hello to %s I guess", name), nil
}

// Change renames the person in the current conversation.
func Change(_ context.Context, args []string, st *state.Context) (string, error) {
	p, ok := state.GetMut[string](st)
	if !ok {
		return notConversation, nil
	}
	if len(args) == 0 {
		return noName, nil
	}
	*p = args[0]
	return fmt.Sprintf("you changed their name to %s", *p), nil
}
