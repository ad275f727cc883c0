package engine

import "fmt"

// ErrInvalidTransition is returned when the requested target is not
// reachable from the current identifier per the transition table. The
// manager's state is untouched; the condition is non-fatal.
type ErrInvalidTransition struct {
	From StateID
	To   StateID
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("engine: no transition from %q to %q", e.From, e.To)
}

// ErrRedundantTransition is returned when the requested target equals the
// current identifier. Self-transitions are always rejected, even if the
// table would permit them, to prevent redundant exit/enter cycles.
type ErrRedundantTransition struct {
	State StateID
}

func (e *ErrRedundantTransition) Error() string {
	return fmt.Sprintf("engine: already in state %q", e.State)
}

// ErrNotRegistered is returned when a transition targets an identifier
// with no registered State instance.
type ErrNotRegistered struct {
	ID StateID
}

func (e *ErrNotRegistered) Error() string {
	return fmt.Sprintf("engine: no state registered for %q", e.ID)
}

// ErrUnknownState is returned when a table definition or config document
// references an identifier that does not exist.
type ErrUnknownState struct {
	Name string
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("engine: unknown state %q", e.Name)
}
