package runner

import (
	"context"
	"io"
	"strings"

	"github.com/aretw0/parley/pkg/command"
	"github.com/aretw0/parley/pkg/state"
)

// scriptedInput replays lines and then reports io.EOF (or err, when set).
type scriptedInput struct {
	lines   []string
	prompts []string
	err     error
	reads   int
}

func (s *scriptedInput) Readline(prompt string) (string, error) {
	s.reads++
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// recordingRenderer keeps every line written, with its prefix applied.
type recordingRenderer struct {
	lines []string
}

func (r *recordingRenderer) WriteOutput(text, prefix string) error {
	r.lines = append(r.lines, FormatLine(text, prefix))
	return nil
}

// outputs drops the usage hints written when loops start.
func (r *recordingRenderer) outputs() []string {
	var out []string
	for _, l := range r.lines {
		if strings.HasPrefix(l, "info: ") {
			continue
		}
		out = append(out, l)
	}
	return out
}

type countingScreen struct {
	calls int
	err   error
}

func (s *countingScreen) SetupScreen() error {
	s.calls++
	return s.err
}

// call records one handler invocation.
type call struct {
	name string
	args []string
}

func recorder(name, reply string, calls *[]call) command.Handler {
	return func(ctx context.Context, args []string, st *state.Context) (string, error) {
		*calls = append(*calls, call{name: name, args: args})
		return reply, nil
	}
}

func newTestRunner(in *scriptedInput, out *recordingRenderer, opts ...Option) *Runner {
	base := []Option{
		WithInput(in),
		WithRenderer(out),
		WithExitFunc(func(int) {}),
	}
	return NewRunner(append(base, opts...)...)
}
