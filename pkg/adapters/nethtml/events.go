package nethtml

import (
	"github.com/aretw0/domkit/pkg/core"
)

// The host tree has no native event loop, so the adapter keeps its own
// per-node registry. Dispatch is synchronous: handlers run in
// registration order on the dispatching goroutine. There is no
// deregistration primitive; listeners die with their node (or a reload).

// Listen registers a handler for synthetic events of the given type on n.
func (t *Tree) Listen(n core.Node, event string, h core.Handler) {
	hn := elem(n)
	if hn == nil || h == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	byEvent, ok := t.listeners[hn]
	if !ok {
		byEvent = make(map[string][]core.Handler)
		t.listeners[hn] = byEvent
	}
	byEvent[event] = append(byEvent[event], h)
}

// Dispatch synthesizes an event of the given type on n and invokes its
// handlers in registration order.
func (t *Tree) Dispatch(n core.Node, event string) {
	hn := elem(n)
	if hn == nil {
		return
	}
	t.mu.RLock()
	handlers := append([]core.Handler(nil), t.listeners[hn][event]...)
	t.mu.RUnlock()

	e := core.Event{Type: event, Target: hn}
	for _, h := range handlers {
		h(e)
	}
}
