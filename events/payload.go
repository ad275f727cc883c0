package events

// Event names published by the core.
const (
	// EventStateChanged is published after a successful state transition.
	//
	// Payload keys:
	//   - KeyOld: name of the state that was exited
	//   - KeyNew: name of the state that was entered
	//   - plus every entry of the transition context (e.g. level, score)
	//
	// Ordering guarantee: delivery happens strictly after the new state's
	// Enter has completed, so subscribers observe a fully-entered state.
	EventStateChanged = "stateChanged"
)

// Well-known payload keys.
const (
	KeyOld = "old"
	KeyNew = "new"
)

// Payload is the key/value data attached to a published event.
// It is ephemeral: built at publish time, passed to handlers, never stored.
type Payload map[string]any

// Old returns the exited state name, or "" if absent.
func (p Payload) Old() string {
	return p.String(KeyOld)
}

// New returns the entered state name, or "" if absent.
func (p Payload) New() string {
	return p.String(KeyNew)
}

// String returns the string value under key, or "" if absent or not a string.
func (p Payload) String(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

// Int returns the int value under key, or 0 if absent or not an int.
func (p Payload) Int(key string) int {
	if v, ok := p[key].(int); ok {
		return v
	}
	return 0
}
