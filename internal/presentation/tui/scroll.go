package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/parley/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// SizeFunc reports the terminal dimensions in cells.
type SizeFunc func() (width, height int, err error)

// ScrollRenderer writes output into a scrolling region that spans every row
// but the last, which stays reserved for the input prompt.
// It implements runner.OutputRenderer and runner.ScreenSetup.
type ScrollRenderer struct {
	w    *errWriter
	out  *termenv.Output
	size SizeFunc
}

// NewScrollRenderer creates a renderer for the terminal behind f (usually os.Stdout).
func NewScrollRenderer(f *os.File) *ScrollRenderer {
	fd := int(f.Fd())
	return newScrollRenderer(f, func() (int, int, error) {
		return term.GetSize(fd)
	})
}

func newScrollRenderer(w io.Writer, size SizeFunc, opts ...termenv.OutputOption) *ScrollRenderer {
	ew := &errWriter{w: w}
	return &ScrollRenderer{
		w:    ew,
		out:  termenv.NewOutput(ew, opts...),
		size: size,
	}
}

// WriteOutput appends text above the prompt row and puts the cursor back
// where the input source left it. Multi-line text scrolls once per line.
// The terminal size is read on every call so resizes are picked up.
func (s *ScrollRenderer) WriteOutput(text, prefix string) error {
	_, height, err := s.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	s.w.err = nil

	line := runner.FormatLine(text, prefix)
	if height < 2 {
		// No room for a region; fall back to plain lines.
		fmt.Fprintln(s.out, line)
		return s.w.err
	}

	bottom := height - 1
	s.out.SaveCursorPosition()
	s.out.ChangeScrollingRegion(1, bottom)
	s.out.MoveCursor(bottom, 1)
	for _, l := range strings.Split(line, "\n") {
		// A line feed on the region's last row scrolls the region up by one.
		io.WriteString(s.out, "\n")
		s.out.MoveCursor(bottom, 1)
		s.out.ClearLine()
		io.WriteString(s.out, l)
	}
	s.out.ChangeScrollingRegion(1, height)
	s.out.RestoreCursorPosition()
	return s.w.err
}

// SetupScreen moves the cursor to the first column of the last row.
func (s *ScrollRenderer) SetupScreen() error {
	_, height, err := s.size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	s.w.err = nil
	s.out.MoveCursor(height, 1)
	return s.w.err
}

// errWriter remembers the first write error, since termenv drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
