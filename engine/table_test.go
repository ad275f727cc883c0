package engine

import (
	"errors"
	"strings"
	"testing"
)

// TestDefaultTableEdges verifies the built-in graph edge by edge.
func TestDefaultTableEdges(t *testing.T) {
	table := DefaultTable()

	valid := []struct{ from, to StateID }{
		{StateNone, StateMainMenu},
		{StateMainMenu, StateGameplay},
		{StateGameplay, StatePaused},
		{StateGameplay, StateGameOver},
		{StatePaused, StateGameplay},
		{StatePaused, StateMainMenu},
		{StateGameOver, StateMainMenu},
		{StateGameOver, StateGameplay},
	}
	for _, e := range valid {
		if !table.IsValid(e.from, e.to) {
			t.Errorf("Expected %s -> %s to be valid", e.from, e.to)
		}
	}

	invalid := []struct{ from, to StateID }{
		{StateNone, StateGameplay},
		{StateMainMenu, StatePaused},
		{StateMainMenu, StateNone},
		{StateGameplay, StateMainMenu},
		{StatePaused, StateGameOver},
	}
	for _, e := range invalid {
		if table.IsValid(e.from, e.to) {
			t.Errorf("Expected %s -> %s to be invalid", e.from, e.to)
		}
	}
}

// TestTableUnknownKey verifies an identifier absent as a key yields false
// for every target.
func TestTableUnknownKey(t *testing.T) {
	table, err := NewTransitionTable(map[StateID][]StateID{
		StateMainMenu: {},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, to := range []StateID{StateNone, StateMainMenu, StateGameplay} {
		if table.IsValid(StateGameplay, to) {
			t.Errorf("Expected missing key to reject transition to %s", to)
		}
	}
}

// TestNewTransitionTableDanglingTarget verifies construction rejects a
// target that does not exist as a key.
func TestNewTransitionTableDanglingTarget(t *testing.T) {
	_, err := NewTransitionTable(map[StateID][]StateID{
		StateMainMenu: {StateGameplay},
	})
	if err == nil {
		t.Fatal("Expected error for dangling target")
	}

	var unknown *ErrUnknownState
	if !errors.As(err, &unknown) {
		t.Errorf("Expected ErrUnknownState, got %v", err)
	}
}

// TestNewTransitionTableTerminalSet verifies a key with an empty
// reachable set is legal.
func TestNewTransitionTableTerminalSet(t *testing.T) {
	table, err := NewTransitionTable(map[StateID][]StateID{
		StateMainMenu: {StateGameOver},
		StateGameOver: {},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !table.IsValid(StateMainMenu, StateGameOver) {
		t.Error("Expected main_menu -> game_over to be valid")
	}
	if got := table.Targets(StateGameOver); len(got) != 0 {
		t.Errorf("Expected terminal state to have no targets, got %v", got)
	}
}

// TestTableTargetsSorted verifies Targets returns a deterministic order.
func TestTableTargetsSorted(t *testing.T) {
	table := DefaultTable()

	targets := table.Targets(StateGameplay)
	if len(targets) != 2 {
		t.Fatalf("Expected 2 targets, got %d", len(targets))
	}
	if targets[0] != StatePaused || targets[1] != StateGameOver {
		t.Errorf("Expected sorted [paused game_over], got %v", targets)
	}
}

// TestTableToDOT verifies the Graphviz export lists edges and marks
// terminal states.
func TestTableToDOT(t *testing.T) {
	table, err := NewTransitionTable(map[StateID][]StateID{
		StateMainMenu: {StateGameOver},
		StateGameOver: {},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	dot := table.ToDOT()
	if !strings.Contains(dot, `"main_menu" -> "game_over";`) {
		t.Errorf("Expected edge in DOT output:\n%s", dot)
	}
	if !strings.Contains(dot, `"game_over" [shape=doublecircle];`) {
		t.Errorf("Expected terminal marker in DOT output:\n%s", dot)
	}
}

// TestParseStateID verifies name resolution round-trips the enum.
func TestParseStateID(t *testing.T) {
	for _, id := range []StateID{StateNone, StateMainMenu, StateGameplay, StatePaused, StateGameOver} {
		got, ok := ParseStateID(id.String())
		if !ok || got != id {
			t.Errorf("Expected %q to parse to %d, got %d (ok=%v)", id.String(), id, got, ok)
		}
	}

	if _, ok := ParseStateID("loading"); ok {
		t.Error("Expected unknown name to fail")
	}
}
