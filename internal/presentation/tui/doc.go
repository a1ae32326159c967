// Package tui holds the terminal presentation pieces: the scroll-region
// renderer that keeps the prompt pinned to the last row, the startup banner
// and the optional markdown renderer for command output.
package tui
