/*
Package parley runs nested interactive command prompts in a terminal.

A prompt is a dispatch loop over a command table. Each line the user types is split
on single spaces; the first word selects every command with that name and the rest
are passed as arguments. Handlers share one state slot per loop, and a handler can
open a nested loop with its own table and state, which takes over the terminal
until the user types exit.

# Concept

The loop lives in pkg/runner and knows nothing about terminals: input, output and
screen handling are collaborators. This package wires the terminal ones (line
editing with history and tab completion, output kept above a fixed prompt line)
when stdin and stdout are terminals, and plain streams otherwise.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/parley"
		"github.com/aretw0/parley/pkg/command"
		"github.com/aretw0/parley/pkg/state"
	)

	func greet(ctx context.Context, args []string, st *state.Context) (string, error) {
		if len(args) == 0 {
			return "greet whom?", nil
		}
		return "hello " + args[0], nil
	}

	func main() {
		table := command.NewTable(
			command.Command{Name: "greet", Handler: greet, Help: "greet <name> - say hello"},
		)
		if err := parley.Run(context.Background(), table, nil); err != nil {
			log.Fatal(err)
		}
	}

Nested prompts are opened from a handler with runner.Nest, and state is read
with state.Get and state.GetMut.
*/
package parley
