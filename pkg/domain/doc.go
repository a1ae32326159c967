/*
Package domain contains the types shared by the dispatch loop, its collaborators
and its observers.

It holds no I/O. Input sources report interrupts with ErrInterrupted, and the loop
reports what it does through LoopHooks so that logging and metrics stay outside the
core.

# Key Entities

  - LoopEvent: a dispatch loop starting or returning, with its nesting level.
  - CommandEvent: one handler call (or an unmatched input line).
  - LoopHooks: optional callbacks fired for those events.
*/
package domain
