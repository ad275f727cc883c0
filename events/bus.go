// Package events provides the publish/subscribe bus that decouples
// state-transition notifications from their consumers.
//
// Event Flow Pattern:
//  1. Producer publishes: bus.Publish(events.EventStateChanged, payload)
//  2. Bus snapshots the handler list for that event name
//  3. Handlers run synchronously, in subscription order
//
// The snapshot means a handler that subscribes or unsubscribes during
// delivery never affects the current delivery pass. A handler that panics
// is recovered and logged so the remaining handlers still run.
//
// The bus is an explicitly constructed instance passed by reference to its
// consumers. There is no package-level singleton.
package events

import (
	"log/slog"
	"reflect"
	"sync"
)

// Handler processes a single event payload.
// Handlers are invoked synchronously during Publish.
type Handler func(Payload)

// subscriber pairs a handler with its identity key for idempotent
// registration and removal.
type subscriber struct {
	key uintptr
	fn  Handler
}

// Bus dispatches named events to registered handlers.
//
// The core runs single-threaded, but subscribe/unsubscribe/publish are
// guarded by a mutex so a host that adds background goroutines does not
// corrupt the handler map. Handlers themselves run outside the lock.
type Bus struct {
	mu       sync.Mutex
	handlers map[string][]subscriber
	log      *slog.Logger
}

// NewBus creates an empty bus. A nil logger falls back to slog.Default.
func NewBus(log *slog.Logger) *Bus {
	if log == nil {
		log = slog.Default()
	}
	return &Bus{
		handlers: make(map[string][]subscriber),
		log:      log,
	}
}

// handlerKey returns the identity of a handler's underlying function.
// Identity is the code pointer: references to the same function value
// share a key, and so do closures built from the same function literal.
// Consumers needing several instances of one literal under one event
// name must use distinct named handlers.
func handlerKey(h Handler) uintptr {
	return reflect.ValueOf(h).Pointer()
}

// Subscribe registers handler under name. Registering the same handler
// twice for the same name is a no-op.
func (b *Bus) Subscribe(name string, h Handler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := handlerKey(h)
	for _, s := range b.handlers[name] {
		if s.key == key {
			b.log.Debug("handler already subscribed", "event", name)
			return
		}
	}

	b.handlers[name] = append(b.handlers[name], subscriber{key: key, fn: h})
}

// Unsubscribe removes handler from name. Removing a handler that is not
// registered logs a warning and does not fail.
func (b *Bus) Unsubscribe(name string, h Handler) {
	if h == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := handlerKey(h)
	subs := b.handlers[name]
	for i, s := range subs {
		if s.key == key {
			b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}

	b.log.Warn("unsubscribe of unregistered handler", "event", name)
}

// Publish synchronously invokes every handler currently registered for
// name, in subscription order. Publishing to a name with zero handlers is
// a no-op. The handler list is snapshotted before iteration, so handlers
// added or removed during delivery do not affect this pass.
func (b *Bus) Publish(name string, payload Payload) {
	b.mu.Lock()
	subs := b.handlers[name]
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		b.deliver(name, s.fn, payload)
	}
}

// deliver runs one handler, recovering a panic so one subscriber cannot
// abort delivery to the rest.
func (b *Bus) deliver(name string, h Handler, payload Payload) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panicked", "event", name, "panic", r)
		}
	}()

	h(payload)
}

// HandlerCount returns the number of handlers registered for name.
func (b *Bus) HandlerCount(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.handlers[name])
}
