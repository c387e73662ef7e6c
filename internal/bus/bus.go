// Package bus is a synchronous in-process event bus decoupling swipe
// outcomes from their observers (counters, list refreshes, UI redraws).
package bus

import "sync"

// Event names published by the core.
const (
	EventUndoSwipe          = "undoSwipe"
	EventRefreshJobs        = "refreshJobs"
	EventJobSwiped          = "jobSwiped"
	EventSwipeUndone        = "swipeUndone"
	EventApplicationCreated = "applicationCreated"
)

// Handler receives the payload passed to Emit.
type Handler func(payload any)

// Bus dispatches events to subscribers synchronously, in subscription
// order, on the emitting goroutine.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[string][]subscription
}

type subscription struct {
	id int
	fn Handler
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]subscription)}
}

// On subscribes h to event and returns a func that removes the
// subscription. Unsubscribing twice is harmless.
func (b *Bus) On(event string, h Handler) (off func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.handlers[event] = append(b.handlers[event], subscription{id: id, fn: h})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[event]
		for i, s := range subs {
			if s.id == id {
				b.handlers[event] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every handler subscribed to event with payload before
// returning.
func (b *Bus) Emit(event string, payload any) {
	b.mu.Lock()
	subs := make([]subscription, len(b.handlers[event]))
	copy(subs, b.handlers[event])
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(payload)
	}
}
