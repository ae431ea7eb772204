package nethtml

import (
	"github.com/aretw0/introspection"
)

// TreeState exposes internal state for observability.
type TreeState struct {
	Path          string `json:"path,omitempty"`
	ListenerNodes int    `json:"listener_nodes"`
	Focused       bool   `json:"focused"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (t *Tree) State() any {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return TreeState{
		Path:          t.config.Path,
		ListenerNodes: len(t.listeners),
		Focused:       t.focused != nil,
		WatcherActive: t.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (t *Tree) ComponentType() string {
	return "nethtml-tree"
}

var _ introspection.Introspectable = (*Tree)(nil)
var _ introspection.Component = (*Tree)(nil)
