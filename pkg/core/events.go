package core

// Handler is a callback registered for synthetic events. Handlers run
// synchronously, in registration order, on the goroutine that dispatches.
type Handler func(Event)

// Event is a synthetic event delivered to handlers.
type Event struct {
	// Type is the event name the handler was registered for.
	Type string
	// Target is the node the event was dispatched on.
	Target Node
}

// SourceEventType represents the type of change in a watched source.
type SourceEventType string

const (
	SourceReload SourceEventType = "RELOAD"
	SourceRemove SourceEventType = "REMOVE"
)

// SourceEvent represents a change in the backing source of a tree.
type SourceEvent struct {
	Type      SourceEventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event so source events can be bridged to a
// lifecycle supervisor.
func (e SourceEvent) String() string {
	return string(e.Type) + " " + e.Path
}
