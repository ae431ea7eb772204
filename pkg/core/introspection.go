package core

import (
	"github.com/aretw0/introspection"
)

// DOMState exposes internal state for observability.
type DOMState struct {
	HiddenClass  string `json:"hidden_class"`
	DisabledAttr string `json:"disabled_attr"`
	TreeType     string `json:"tree_type"`
	Scoped       bool   `json:"scoped"`
}

// State implements introspection.Introspectable.
func (d *DOM) State() any {
	treeType := "unknown"
	if d.tree != nil {
		treeType = "tree"
		if comp, ok := d.tree.(introspection.Component); ok {
			treeType = comp.ComponentType()
		}
	}

	return DOMState{
		HiddenClass:  d.hiddenClass,
		DisabledAttr: d.disabledAttr,
		TreeType:     treeType,
		Scoped:       d.scope != nil,
	}
}

// ComponentType implements introspection.Component.
func (d *DOM) ComponentType() string {
	return "dom"
}

var _ introspection.Introspectable = (*DOM)(nil)
var _ introspection.Component = (*DOM)(nil)
