/*
Package runner implements the dispatch loop and its I/O collaborators.

A Runner reads a line from its InputSource, splits it on spaces and runs every
command in the active table whose name equals the first token. Handler output
goes to the OutputRenderer; handler errors go to the logger and the loop carries
on. "help" (or "?") and "exit" are built in and take precedence over the table.

Handlers may enter a nested mode by calling Nest with a new table and a new
state.Context. The nested loop blocks the handler until the user types exit in
it, after which the outer loop resumes with its own table and state.

# Key Components

  - Runner: the loop. One value serves every nesting level.
  - InputSource, OutputRenderer, ScreenSetup: the terminal-facing collaborators.
  - TextInput, TextRenderer, NopScreen: plain-stream implementations for pipes and tests.
  - Nest, Notify, Level: helpers for handlers running inside a loop.

# Usage

	table := command.NewTable(
		command.Command{Name: "ping", Handler: ping, Help: "ping - reply with pong"},
	)

	r := runner.NewRunner(runner.WithLogger(logger))
	if err := r.Run(ctx, table, state.New()); err != nil {
		log.Fatal(err)
	}
*/
package runner
