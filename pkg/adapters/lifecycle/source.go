package lifecycle

import (
	"context"
	"time"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/domkit/pkg/core"
)

// sourceEvent decorates a document source event with a readable
// timestamp for supervisor logs.
type sourceEvent struct {
	core.SourceEvent
}

func (e sourceEvent) String() string {
	ts := time.Unix(e.Timestamp, 0).UTC().Format(time.RFC3339)
	return string(e.Type) + " " + e.Path + " at " + ts
}

// domkitSource adapts a domkit watch channel to the lifecycle Source
// contract. The out channel is buffered so a briefly slow supervisor
// does not stall the document watcher.
type domkitSource struct {
	events <-chan core.SourceEvent
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits document source
// events, each decorated with its reload timestamp.
func NewSource(events <-chan core.SourceEvent) lifecycle.Source {
	return &domkitSource{
		events: events,
		out:    make(chan lifecycle.Event, 16),
	}
}

func (s *domkitSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *domkitSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge itself is tracked and safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- sourceEvent{e}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
