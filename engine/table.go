package engine

import (
	"fmt"
	"sort"
	"strings"
)

// TransitionTable declares, once, the legal edges of the state graph.
// Built at startup and immutable thereafter.
type TransitionTable struct {
	edges map[StateID]map[StateID]struct{}
}

// NewTransitionTable builds a table from a mapping of each identifier to
// the set of identifiers reachable from it. Every transition target must
// itself exist as a key; terminal identifiers may map to an empty set.
func NewTransitionTable(edges map[StateID][]StateID) (*TransitionTable, error) {
	t := &TransitionTable{
		edges: make(map[StateID]map[StateID]struct{}, len(edges)),
	}

	for from, targets := range edges {
		set := make(map[StateID]struct{}, len(targets))
		for _, to := range targets {
			set[to] = struct{}{}
		}
		t.edges[from] = set
	}

	// Dangling targets make later transitions dead ends; reject at build time.
	for from, set := range t.edges {
		for to := range set {
			if _, ok := t.edges[to]; !ok {
				return nil, fmt.Errorf("transition %q -> %q: %w",
					from, to, &ErrUnknownState{Name: to.String()})
			}
		}
	}

	return t, nil
}

// DefaultTable returns the built-in state graph:
//
//	none      -> main_menu
//	main_menu -> gameplay
//	gameplay  -> paused, game_over
//	paused    -> gameplay, main_menu
//	game_over -> main_menu, gameplay
func DefaultTable() *TransitionTable {
	t, err := NewTransitionTable(map[StateID][]StateID{
		StateNone:     {StateMainMenu},
		StateMainMenu: {StateGameplay},
		StateGameplay: {StatePaused, StateGameOver},
		StatePaused:   {StateGameplay, StateMainMenu},
		StateGameOver: {StateMainMenu, StateGameplay},
	})
	if err != nil {
		// The built-in graph is closed over the enum; failure is a bug.
		panic(err)
	}
	return t
}

// IsValid reports whether to is reachable from from. An identifier absent
// as a key yields false for every target.
func (t *TransitionTable) IsValid(from, to StateID) bool {
	set, ok := t.edges[from]
	if !ok {
		return false
	}
	_, ok = set[to]
	return ok
}

// Targets returns the identifiers reachable from from, sorted for
// deterministic logs and rendering.
func (t *TransitionTable) Targets(from StateID) []StateID {
	set, ok := t.edges[from]
	if !ok {
		return nil
	}

	targets := make([]StateID, 0, len(set))
	for to := range set {
		targets = append(targets, to)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

// states returns all identifiers appearing in the table, sorted.
func (t *TransitionTable) states() []StateID {
	ids := make([]StateID, 0, len(t.edges))
	for id := range t.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ToDOT renders the table as a Graphviz digraph for visualization.
func (t *TransitionTable) ToDOT() string {
	var b strings.Builder

	b.WriteString("digraph states {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle, fontname=\"Helvetica\"];\n\n")

	for _, from := range t.states() {
		targets := t.Targets(from)
		if len(targets) == 0 {
			fmt.Fprintf(&b, "  %q [shape=doublecircle];\n", from.String())
			continue
		}
		for _, to := range targets {
			fmt.Fprintf(&b, "  %q -> %q;\n", from.String(), to.String())
		}
	}

	b.WriteString("}\n")
	return b.String()
}
