package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for parley to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.EnvColorProfile()
	// Subtle gradient (Teal/Cyan)
	s1 := p.String("                  _             ").Foreground(p.Color("#2dd4bf"))
	s2 := p.String("  _ __   __ _ _ _| | ___ _   _ ").Foreground(p.Color("#22d3ee"))
	s3 := p.String(" | '_ \\ / _` | '_| |/ _ \\ | | |").Foreground(p.Color("#38bdf8"))
	s4 := p.String(" | |_) | (_| | | | |  __/ |_| |").Foreground(p.Color("#60a5fa"))
	s5 := p.String(" | .__/ \\__,_|_| |_|\\___|\\__, |").Foreground(p.Color("#818cf8"))
	s6 := p.String(" |_|                     |___/ ").Foreground(p.Color("#a78bfa"))

	fmt.Fprintln(w)
	for _, s := range []termenv.Style{s1, s2, s3, s4, s5, s6} {
		fmt.Fprintln(w, s)
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, p.String("  v"+v).Faint())
	}
	fmt.Fprintln(w)
}
