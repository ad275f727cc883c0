package engine

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// tableConfig is the YAML shape of a state-graph definition:
//
//	initial: main_menu
//	transitions:
//	  none: [main_menu]
//	  main_menu: [gameplay]
//	  gameplay: [paused, game_over]
//	  paused: [gameplay, main_menu]
//	  game_over: [main_menu, gameplay]
type tableConfig struct {
	Initial     string              `yaml:"initial"`
	Transitions map[string][]string `yaml:"transitions"`
}

// LoadTableConfig parses a YAML state-graph definition into a validated
// TransitionTable plus the initial identifier to hand to Initialize.
// Unknown state names and dangling targets are rejected.
func LoadTableConfig(data []byte) (*TransitionTable, StateID, error) {
	var cfg tableConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, StateNone, fmt.Errorf("failed to unmarshal state config: %w", err)
	}

	if len(cfg.Transitions) == 0 {
		return nil, StateNone, fmt.Errorf("state config defines no transitions")
	}

	edges := make(map[StateID][]StateID, len(cfg.Transitions))
	for fromName, targetNames := range cfg.Transitions {
		from, ok := ParseStateID(fromName)
		if !ok {
			return nil, StateNone, &ErrUnknownState{Name: fromName}
		}

		targets := make([]StateID, 0, len(targetNames))
		for _, toName := range targetNames {
			to, ok := ParseStateID(toName)
			if !ok {
				return nil, StateNone, fmt.Errorf("state %q: %w",
					fromName, &ErrUnknownState{Name: toName})
			}
			targets = append(targets, to)
		}
		edges[from] = targets
	}

	table, err := NewTransitionTable(edges)
	if err != nil {
		return nil, StateNone, err
	}

	initial := StateMainMenu
	if cfg.Initial != "" {
		id, ok := ParseStateID(cfg.Initial)
		if !ok {
			return nil, StateNone, fmt.Errorf("initial: %w",
				&ErrUnknownState{Name: cfg.Initial})
		}
		initial = id
	}

	return table, initial, nil
}
