package core

import "fmt"

// Node is an opaque handle to one element in the host document tree.
// It is owned by the adapter; the core never allocates or dereferences one.
type Node any

// targetKind discriminates the Target union.
type targetKind int

const (
	targetRoot targetKind = iota
	targetSelector
	targetRef
	targetRefs
)

// Target identifies zero or more nodes in the tree. It is a tagged union:
// a selector string, an already-resolved node reference, an explicit list
// of references, or the document root. Using an explicit union (instead of
// sniffing argument types) prevents a non-node truthy value from being
// mistaken for a selector.
type Target struct {
	kind     targetKind
	selector string
	node     Node
	nodes    []Node
}

// Sel targets the first node (or, for collection operations, all nodes)
// matching a structural selector, scoped to the configured root.
func Sel(selector string) Target {
	return Target{kind: targetSelector, selector: selector}
}

// Ref targets an already-resolved node. Resolution is the identity function.
func Ref(n Node) Target {
	return Target{kind: targetRef, node: n}
}

// Refs targets an explicit ordered list of nodes.
func Refs(nodes ...Node) Target {
	return Target{kind: targetRefs, nodes: nodes}
}

// Root targets the document root itself.
func Root() Target {
	return Target{kind: targetRoot}
}

// String describes the target for diagnostics.
func (t Target) String() string {
	switch t.kind {
	case targetSelector:
		return fmt.Sprintf("selector %q", t.selector)
	case targetRef:
		return "node reference"
	case targetRefs:
		return fmt.Sprintf("list of %d nodes", len(t.nodes))
	default:
		return "document root"
	}
}

// Position is one of the four canonical structural insertion points
// relative to a target node.
type Position string

const (
	// Before inserts immediately before the target, as a preceding sibling.
	Before Position = "beforebegin"
	// FirstChild inserts as the target's first child.
	FirstChild Position = "afterbegin"
	// LastChild inserts as the target's last child. This is the default.
	LastChild Position = "beforeend"
	// After inserts immediately after the target, as a following sibling.
	After Position = "afterend"
)

// ContentType selects how Update interprets its content argument.
type ContentType string

const (
	// ContentHTML replaces the target's markup subtree. This is the default.
	ContentHTML ContentType = "html"
	// ContentText replaces the target's plain text content. Markup
	// significant characters are escaped, never interpreted.
	ContentText ContentType = "text"
)

// OptionItem is one entry of a select-control option list. Bare string
// values coerce to an OptionItem with Label == Value.
type OptionItem struct {
	Value string
	Label string
}
