package nethtml

import (
	"sync"
	"time"

	"github.com/aretw0/domkit/pkg/core"
)

// debouncer coalesces bursts of source events: editors commonly emit
// several writes per save, but callers only care about the last one.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(event) after the debounce window, replacing any
// pending timer for the same path and event type.
func (d *debouncer) add(event core.SourceEvent, fire func(core.SourceEvent)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	key := event.Path + "|" + string(event.Type)
	if t, ok := d.timers[key]; ok {
		t.Reset(d.window)
		return
	}

	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fire(event)
	})
}

// stopAndWait rejects new events and waits for in-flight timers, up to
// the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
