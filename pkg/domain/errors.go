package domain

import "errors"

// ErrInterrupted is reported by an input source when the user interrupts the
// prompt (Ctrl+C). The loop answers it by terminating the process.
var ErrInterrupted = errors.New("interrupted")

// ErrNoRunner is returned when a nested loop is requested from a context that
// is not running inside a dispatch loop.
var ErrNoRunner = errors.New("no dispatch loop in context")
