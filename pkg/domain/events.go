package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLoopEnter      EventType = "loop_enter"
	EventLoopExit       EventType = "loop_exit"
	EventCommand        EventType = "command"
	EventUnknownCommand EventType = "unknown_command"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	LoopID    string    `json:"loop_id"`
	Level     int       `json:"level"`
}

// LoopEvent represents a dispatch loop starting or returning.
type LoopEvent struct {
	EventBase
	Commands int   `json:"commands"`
	Err      error `json:"-"`
}

// CommandEvent represents one handler invocation, or an input line that
// matched no command (Type == EventUnknownCommand).
type CommandEvent struct {
	EventBase
	Command  string        `json:"command"`
	Args     []string      `json:"args,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LoopHooks defines callbacks for dispatch loop observability.
// Any field may be nil.
type LoopHooks struct {
	OnLoopEnter      func(context.Context, *LoopEvent)
	OnLoopExit       func(context.Context, *LoopEvent)
	OnCommand        func(context.Context, *CommandEvent)
	OnUnknownCommand func(context.Context, *CommandEvent)
}

// Merge returns hooks that call h first and then other.
func (h LoopHooks) Merge(other LoopHooks) LoopHooks {
	return LoopHooks{
		OnLoopEnter:      chain(h.OnLoopEnter, other.OnLoopEnter),
		OnLoopExit:       chain(h.OnLoopExit, other.OnLoopExit),
		OnCommand:        chain(h.OnCommand, other.OnCommand),
		OnUnknownCommand: chain(h.OnUnknownCommand, other.OnUnknownCommand),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
