package engine

import (
	"log/slog"
	"time"

	"github.com/tarwick/emberfall/events"
)

// Manager owns the current state identifier and instance, validates
// requested transitions against the table, invokes lifecycle hooks in
// order, and publishes a stateChanged event on success.
//
// The manager is single-threaded by contract: ChangeState runs to
// completion, including all lifecycle calls and event delivery, before
// returning. It is not designed for concurrent mutation.
type Manager struct {
	table *TransitionTable
	bus   *events.Bus
	log   *slog.Logger

	states map[StateID]State

	current      StateID
	previous     StateID
	currentState State
	timeInState  time.Duration
}

// NewManager creates a manager in the uninitialized state (current
// identifier StateNone, no current instance). A nil bus disables event
// publication; a nil logger falls back to slog.Default.
func NewManager(table *TransitionTable, bus *events.Bus, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		table:    table,
		bus:      bus,
		log:      log,
		states:   make(map[StateID]State),
		current:  StateNone,
		previous: StateNone,
	}
}

// Register binds the pre-built instance for id. Instances are constructed
// once at startup and live for the process lifetime; registering twice
// replaces the earlier binding.
func (m *Manager) Register(id StateID, s State) {
	m.states[id] = s
}

// Initialize performs the first transition out of the uninitialized
// state. It must be called before Update delegates to anything.
func (m *Manager) Initialize(id StateID, ctx Context) error {
	return m.ChangeState(id, ctx)
}

// ChangeState requests a transition to target.
//
// A target equal to the current identifier is rejected with
// *ErrRedundantTransition and no side effects. A target not reachable per
// the table is rejected with *ErrInvalidTransition, leaving the current
// state untouched. Both rejections are logged and non-fatal.
//
// On success the old state's Exit runs first, then the swap, then the new
// state's Enter with ctx, and only after Enter completes is
// events.EventStateChanged published with {old, new} plus the context.
func (m *Manager) ChangeState(target StateID, ctx Context) error {
	if target == m.current {
		m.log.Warn("redundant transition rejected", "state", m.current.String())
		return &ErrRedundantTransition{State: target}
	}

	if !m.table.IsValid(m.current, target) {
		m.log.Error("invalid transition rejected",
			"from", m.current.String(), "to", target.String())
		return &ErrInvalidTransition{From: m.current, To: target}
	}

	next, ok := m.states[target]
	if !ok {
		m.log.Error("transition to unregistered state rejected",
			"from", m.current.String(), "to", target.String())
		return &ErrNotRegistered{ID: target}
	}

	// Exit-before-enter is strict. The current instance is absent only on
	// the first transition out of the uninitialized state.
	if m.currentState != nil {
		m.currentState.Exit()
	}

	m.previous = m.current
	m.current = target
	m.currentState = next
	m.timeInState = 0

	m.currentState.Enter(ctx)

	m.log.Info("state changed",
		"from", m.previous.String(), "to", m.current.String())
	m.publishChange(ctx)

	return nil
}

// publishChange emits the transition event: context entries first, then
// the authoritative old/new identifiers.
func (m *Manager) publishChange(ctx Context) {
	if m.bus == nil {
		return
	}

	payload := make(events.Payload, len(ctx)+2)
	for k, v := range ctx {
		payload[k] = v
	}
	payload[events.KeyOld] = m.previous.String()
	payload[events.KeyNew] = m.current.String()

	m.bus.Publish(events.EventStateChanged, payload)
}

// Update delegates to the current state and advances the time-in-state
// counter. Before Initialize there is no current state and Update is a
// no-op.
func (m *Manager) Update(dt time.Duration) {
	if m.currentState == nil {
		return
	}

	m.timeInState += dt
	m.currentState.Update(dt)
}

// Current returns the current identifier (StateNone before Initialize).
func (m *Manager) Current() StateID {
	return m.current
}

// Previous returns the identifier that was current before the last
// successful transition.
func (m *Manager) Previous() StateID {
	return m.previous
}

// TimeInState returns how long the current state has been active, as
// accumulated from Update deltas. Resets on every successful transition.
func (m *Manager) TimeInState() time.Duration {
	return m.timeInState
}
