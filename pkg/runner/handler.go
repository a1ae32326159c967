package runner

// InputSource supplies lines typed by the user.
// Readline blocks until a full line is available and returns it without the
// line terminator. A user interrupt must be reported as an error wrapping
// domain.ErrInterrupted; any other error ends the loop.
type InputSource interface {
	Readline(prompt string) (string, error)
}

// OutputRenderer appends a line of output to the user-visible scroll region.
// An empty prefix means none; otherwise the line reads "<prefix>: <text>".
type OutputRenderer interface {
	WriteOutput(text, prefix string) error
}

// ScreenSetup positions the input prompt. It is idempotent and called before
// every read, so it also recovers from terminal resizes.
type ScreenSetup interface {
	SetupScreen() error
}

// Completer is implemented by input sources that offer tab completion.
// The loop refreshes the names before every read so a nested loop advertises
// its own commands and the parent's come back when it returns.
type Completer interface {
	SetCompletions(names []string)
}

// ContentRenderer is a function that transforms handler output before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
