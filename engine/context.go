package engine

// Recognized context keys. The context is an open key/value map, but these
// are the entries the built-in states read, with documented defaults.
const (
	// KeyLevel selects the gameplay level. Default: DefaultLevel.
	KeyLevel = "level"
	// KeyScore carries the final score into the game-over state. Default: 0.
	KeyScore = "score"
)

// DefaultLevel is used when a transition into gameplay names no level.
const DefaultLevel = "plains"

// Context is the key/value data passed to a state's Enter and echoed into
// the transition event payload.
type Context map[string]any

// Level returns the level entry, or DefaultLevel when absent or mistyped.
func (c Context) Level() string {
	if v, ok := c[KeyLevel].(string); ok && v != "" {
		return v
	}
	return DefaultLevel
}

// Score returns the score entry, or 0 when absent or mistyped.
func (c Context) Score() int {
	if v, ok := c[KeyScore].(int); ok {
		return v
	}
	return 0
}
