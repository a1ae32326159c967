// Package readline adapts github.com/chzyer/readline to the runner's InputSource.
package readline

import (
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/chzyer/readline"
)

// builtins are always offered for completion.
var builtins = []string{"help", "exit"}

// Options configures the terminal line editor.
type Options struct {
	// HistoryFile persists entered lines. Empty keeps history in memory only.
	HistoryFile string
}

// Input reads lines from the terminal with editing, history and tab completion.
type Input struct {
	rl        *readline.Instance
	completer *completer
}

// New opens the terminal for line editing. Close must be called before exit.
func New(opts Options) (*Input, error) {
	c := &completer{}
	c.SetNames(nil)

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     opts.HistoryFile,
		AutoComplete:    c,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open line editor: %w", err)
	}
	return &Input{rl: rl, completer: c}, nil
}

// Readline shows prompt and blocks for one line.
func (i *Input) Readline(prompt string) (string, error) {
	i.rl.SetPrompt(prompt)
	line, err := i.rl.Readline()
	if err != nil {
		return "", mapError(err)
	}
	return line, nil
}

// SetCompletions replaces the command names offered on TAB.
func (i *Input) SetCompletions(names []string) {
	i.completer.SetNames(names)
}

// Close restores the terminal.
func (i *Input) Close() error {
	return i.rl.Close()
}

func mapError(err error) error {
	if errors.Is(err, readline.ErrInterrupt) {
		return fmt.Errorf("%w: %v", domain.ErrInterrupted, err)
	}
	return err
}

// completer completes the first word of the line against the active table.
// Tab completion runs on readline's goroutine, hence the lock.
type completer struct {
	mu     sync.RWMutex
	prefix *readline.PrefixCompleter
}

func (c *completer) SetNames(names []string) {
	items := make([]readline.PrefixCompleterInterface, 0, len(names)+len(builtins))
	for _, name := range append(append([]string{}, names...), builtins...) {
		if name == "" {
			continue
		}
		items = append(items, readline.PcItem(name))
	}

	c.mu.Lock()
	c.prefix = readline.NewPrefixCompleter(items...)
	c.mu.Unlock()
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	c.mu.RLock()
	p := c.prefix
	c.mu.RUnlock()
	return p.Do(line, pos)
}
