package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextInput reads lines from a plain stream. It is used when stdin is not a
// terminal (pipes, scripts) and in tests.
type TextInput struct {
	Reader *bufio.Reader
	// Writer receives the prompt. Nil disables it.
	Writer io.Writer
}

// NewTextInput creates an input source over r that prints prompts to w.
func NewTextInput(r io.Reader, w io.Writer) *TextInput {
	if r == nil {
		r = os.Stdin
	}
	return &TextInput{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

// Readline prints the prompt and reads one line.
// A final line without a newline is still returned; io.EOF follows on the next call.
func (h *TextInput) Readline(prompt string) (string, error) {
	if h.Writer != nil && prompt != "" {
		fmt.Fprint(h.Writer, prompt)
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && text != "" {
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// TextRenderer writes output lines to a plain stream.
type TextRenderer struct {
	Writer io.Writer
}

// NewTextRenderer creates a renderer writing to w (stdout when nil).
func NewTextRenderer(w io.Writer) *TextRenderer {
	if w == nil {
		w = os.Stdout
	}
	return &TextRenderer{Writer: w}
}

// WriteOutput writes one line, prefixed with "<prefix>: " when prefix is set.
func (h *TextRenderer) WriteOutput(text, prefix string) error {
	_, err := fmt.Fprintln(h.Writer, FormatLine(text, prefix))
	return err
}

// NopScreen is the ScreenSetup used when there is no terminal to arrange.
type NopScreen struct{}

func (NopScreen) SetupScreen() error { return nil }

// FormatLine applies the optional "<prefix>: " to text.
func FormatLine(text, prefix string) string {
	if prefix == "" {
		return text
	}
	return prefix + ": " + text
}
