package nethtml

import (
	"strings"

	"github.com/aretw0/domkit/pkg/core"
)

// Class-set membership is stored in the class attribute as a
// whitespace-separated token list, matching DOMTokenList semantics:
// adding an existing token is a no-op, removing a missing one too.

// HasClass reports membership of class in the node's class set.
func (t *Tree) HasClass(n core.Node, class string) bool {
	v, _ := t.Attr(n, "class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds class to the node's class set.
func (t *Tree) AddClass(n core.Node, class string) {
	if class == "" || t.HasClass(n, class) {
		return
	}
	v, _ := t.Attr(n, "class")
	classes := append(strings.Fields(v), class)
	t.SetAttr(n, "class", strings.Join(classes, " "))
}

// RemoveClass removes class from the node's class set.
func (t *Tree) RemoveClass(n core.Node, class string) {
	v, ok := t.Attr(n, "class")
	if !ok {
		return
	}
	fields := strings.Fields(v)
	classes := fields[:0]
	for _, c := range fields {
		if c != class {
			classes = append(classes, c)
		}
	}
	t.SetAttr(n, "class", strings.Join(classes, " "))
}
