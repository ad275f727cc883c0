// Package engine implements the game-state core: a closed set of state
// identifiers, a validated transition table, and the manager that owns the
// current state and drives the enter/exit/update lifecycle.
package engine

import "time"

// StateID identifies a node in the state graph.
type StateID int

const (
	// StateNone is the uninitialized identifier. The manager starts here
	// and the default table only permits leaving it for the main menu.
	StateNone StateID = iota
	StateMainMenu
	StateGameplay
	StatePaused
	StateGameOver
)

// String returns the stable name of the identifier, used in logs, event
// payloads and config files.
func (s StateID) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateMainMenu:
		return "main_menu"
	case StateGameplay:
		return "gameplay"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ParseStateID resolves a state name to its identifier.
func ParseStateID(name string) (StateID, bool) {
	switch name {
	case "none":
		return StateNone, true
	case "main_menu":
		return StateMainMenu, true
	case "gameplay":
		return StateGameplay, true
	case "paused":
		return StatePaused, true
	case "game_over":
		return StateGameOver, true
	default:
		return StateNone, false
	}
}

// State is the lifecycle contract every concrete state implements.
//
// Enter is called exactly once when the state becomes current and may
// acquire resources (e.g. request a scene load) using context entries.
// Exit is called exactly once when the state stops being current, before
// the next state's Enter runs, and must release what Enter acquired.
// Update is called at most once per frame while the state is current.
//
// States never call each other's methods directly; all transitions route
// through the Manager.
type State interface {
	Enter(ctx Context)
	Exit()
	Update(dt time.Duration)
}

// NoopUpdate can be embedded by states that need no per-frame logic.
type NoopUpdate struct{}

// Update implements State with no per-frame behavior.
func (NoopUpdate) Update(time.Duration) {}
