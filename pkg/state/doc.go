/*
Package state provides the single mutable slot that a dispatch loop threads into
every command handler.

A Context holds zero or one value of any type. The type is fixed when the value is
stored and checked again on every read: asking for a different type yields the same
"not found" answer as asking an empty Context. Handlers treat both cases as "not in
this state" rather than as a failure.

# Usage

	st := state.New()
	state.Set(st, "Ada")

	if name, ok := state.Get[string](st); ok {
		fmt.Println("talking to", name)
	}

	if p, ok := state.GetMut[string](st); ok {
		*p = "Grace" // visible to the next handler call
	}

Callers that do need to tell "empty" from "holds another type" use Empty and
TypeName.
*/
package state
