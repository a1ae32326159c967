package command

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	helpHeader = "---help output------------\n"
	exitHelp   = "exit - exit the current prompt"

	// maxSuggestDistance bounds how far a typo may be from a known name.
	maxSuggestDistance = 2
)

// Table is the ordered set of commands active at one loop level.
// It is immutable once built.
type Table struct {
	commands []Command
}

// NewTable creates a table from cmds, keeping their order.
// Names are neither validated nor deduplicated.
func NewTable(cmds ...Command) *Table {
	c := make([]Command, len(cmds))
	copy(c, cmds)
	return &Table{commands: c}
}

// Lookup returns every command named name, in table order.
// An empty result means the command is unknown.
func (t *Table) Lookup(name string) []Command {
	var matches []Command
	for _, cmd := range t.commands {
		if cmd.Name == name {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// Help renders the help text: a header, one line per command and a final
// line for the built-in exit command.
func (t *Table) Help() string {
	var b strings.Builder
	b.WriteString(helpHeader)
	for _, cmd := range t.commands {
		b.WriteString(cmd.Help)
		b.WriteByte('\n')
	}
	b.WriteString(exitHelp)
	return b.String()
}

// Names returns the distinct command names in first-seen order.
func (t *Table) Names() []string {
	seen := make(map[string]struct{}, len(t.commands))
	names := make([]string, 0, len(t.commands))
	for _, cmd := range t.commands {
		if _, ok := seen[cmd.Name]; ok {
			continue
		}
		seen[cmd.Name] = struct{}{}
		names = append(names, cmd.Name)
	}
	return names
}

// Len returns the number of entries, duplicates included.
func (t *Table) Len() int {
	return len(t.commands)
}

// Suggest returns the known name closest to name, if one is close enough to
// be a plausible typo.
func (t *Table) Suggest(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	best, bestDist := "", -1
	for _, candidate := range t.Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 || bestDist > maxSuggestDistance || bestDist >= len(name) {
		return "", false
	}
	return best, true
}
