package readline

import (
	"errors"
	"io"
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		interrupted bool
		same        bool
	}{
		{"Interrupt", readline.ErrInterrupt, true, false},
		{"EOF", io.EOF, false, true},
		{"Other", errors.New("tty gone"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			assert.Equal(t, tt.interrupted, errors.Is(got, domain.ErrInterrupted))
			if tt.same {
				assert.Equal(t, tt.err, got)
			}
		})
	}
}

func completions(c *completer, line string) []string {
	candidates, _ := c.Do([]rune(line), len(line))
	out := make([]string, 0, len(candidates))
	for _, r := range candidates {
		out = append(out, string(r))
	}
	return out
}

func TestCompleter_FollowsActiveTable(t *testing.T) {
	c := &completer{}
	c.SetNames([]string{"converse"})

	assert.Equal(t, []string{"nverse "}, completions(c, "co"))
	assert.Empty(t, completions(c, "zz"))

	c.SetNames([]string{"hello", "change"})
	assert.Empty(t, completions(c, "co"))
	assert.ElementsMatch(t, []string{"llo ", "lp "}, completions(c, "he"))
}

func TestCompleter_OffersBuiltins(t *testing.T) {
	c := &completer{}
	c.SetNames(nil)

	assert.Equal(t, []string{"xit "}, completions(c, "e"))
}
