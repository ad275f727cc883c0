package engine

import (
	"errors"
	"testing"
)

const validConfig = `
initial: main_menu
transitions:
  none: [main_menu]
  main_menu: [gameplay]
  gameplay: [paused, game_over]
  paused: [gameplay, main_menu]
  game_over: [main_menu, gameplay]
`

// TestLoadTableConfig verifies a full graph definition parses into a
// working table with the declared initial state.
func TestLoadTableConfig(t *testing.T) {
	table, initial, err := LoadTableConfig([]byte(validConfig))
	if err != nil {
		t.Fatalf("LoadTableConfig failed: %v", err)
	}

	if initial != StateMainMenu {
		t.Errorf("Expected initial main_menu, got %s", initial)
	}
	if !table.IsValid(StateGameplay, StatePaused) {
		t.Error("Expected gameplay -> paused to be valid")
	}
	if table.IsValid(StateMainMenu, StatePaused) {
		t.Error("Expected main_menu -> paused to be invalid")
	}
}

// TestLoadTableConfigDefaultInitial verifies an omitted initial falls
// back to main_menu.
func TestLoadTableConfigDefaultInitial(t *testing.T) {
	cfg := `
transitions:
  none: [main_menu]
  main_menu: []
`
	_, initial, err := LoadTableConfig([]byte(cfg))
	if err != nil {
		t.Fatalf("LoadTableConfig failed: %v", err)
	}
	if initial != StateMainMenu {
		t.Errorf("Expected default initial main_menu, got %s", initial)
	}
}

// TestLoadTableConfigUnknownNames verifies unresolvable state names are
// rejected wherever they appear.
func TestLoadTableConfigUnknownNames(t *testing.T) {
	cases := []struct {
		name string
		cfg  string
	}{
		{"unknown source", "transitions:\n  loading: [main_menu]\n  main_menu: []\n"},
		{"unknown target", "transitions:\n  main_menu: [loading]\n"},
		{"unknown initial", "initial: loading\ntransitions:\n  main_menu: []\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadTableConfig([]byte(tc.cfg))
			if err == nil {
				t.Fatal("Expected error")
			}

			var unknown *ErrUnknownState
			if !errors.As(err, &unknown) {
				t.Errorf("Expected ErrUnknownState, got %v", err)
			}
			if unknown.Name != "loading" {
				t.Errorf("Expected offending name 'loading', got %q", unknown.Name)
			}
		})
	}
}

// TestLoadTableConfigDanglingTarget verifies table validation applies to
// config-built graphs as well.
func TestLoadTableConfigDanglingTarget(t *testing.T) {
	cfg := `
transitions:
  main_menu: [gameplay]
`
	_, _, err := LoadTableConfig([]byte(cfg))
	if err == nil {
		t.Fatal("Expected error for target missing as key")
	}
}

// TestLoadTableConfigMalformed verifies empty and unparseable documents
// are rejected.
func TestLoadTableConfigMalformed(t *testing.T) {
	if _, _, err := LoadTableConfig([]byte("")); err == nil {
		t.Error("Expected error for empty document")
	}
	if _, _, err := LoadTableConfig([]byte("transitions: [not, a, map]")); err == nil {
		t.Error("Expected error for wrong document shape")
	}
}
