package core

import (
	"context"
	"io"
)

// Tree defines the contract for the host document tree. Adhering to this
// interface keeps the core independent of the underlying representation
// (net/html, a headless browser session, a test double).
//
// Every method takes already-resolved node handles; target resolution is
// the DOM facade's job. Methods receiving a nil or foreign handle must
// no-op (or return zero values) rather than panic.
type Tree interface {
	// Root returns the document root. Selector queries with a nil scope
	// are resolved against it.
	Root() Node

	// Head returns the document head element, or nil if the tree has none.
	Head() Node

	// QueryOne returns the first node matching selector among the
	// descendants of scope (document order). A nil scope means the root.
	// No match returns (nil, nil); only a malformed selector is an error.
	QueryOne(scope Node, selector string) (Node, error)

	// QueryAll returns every node matching selector among the descendants
	// of scope, in document order.
	QueryAll(scope Node, selector string) ([]Node, error)

	// ElementByID returns the element whose id attribute equals id, or
	// nil. Matching is literal string comparison, never selector
	// interpretation, so ids carrying selector-significant characters
	// still resolve.
	ElementByID(id string) Node

	// CreateElement constructs a detached element of the given kind.
	CreateElement(tag string) Node

	// TagName returns the lower-case element name, or "" for non-elements.
	TagName(n Node) string

	Text(n Node) string
	SetText(n Node, text string)
	InnerHTML(n Node) (string, error)
	SetInnerHTML(n Node, markup string) error

	Attr(n Node, name string) (string, bool)
	SetAttr(n Node, name, value string)
	RemoveAttr(n Node, name string)

	HasClass(n Node, class string) bool
	AddClass(n Node, class string)
	RemoveClass(n Node, class string)

	// SetStyle writes one property of the node's inline style set. An
	// empty value removes the property.
	SetStyle(n Node, prop, value string)

	// Insert places child at the structural position relative to target,
	// detaching it from any previous parent first.
	Insert(target Node, pos Position, child Node) error

	// InsertMarkup parses markup and places the resulting nodes at the
	// structural position relative to target.
	InsertMarkup(target Node, pos Position, markup string) error

	// Detach removes n from its parent. Already-detached nodes no-op.
	Detach(n Node)

	// Listen registers a handler for synthetic events of the given type
	// on n. There is no deregistration primitive.
	Listen(n Node, event string, h Handler)

	// Dispatch synthesizes an event of the given type on n and invokes
	// its handlers in registration order.
	Dispatch(n Node, event string)

	// Focus requests focus for n if it supports focus acquisition.
	// Returns whether focus was acquired.
	Focus(n Node) bool

	// Focused returns the currently focused node, or nil.
	Focused() Node

	// IsFormControl reports whether n is an input-like control whose
	// content is a value, never markup.
	IsFormControl(n Node) bool

	Value(n Node) string
	SetValue(n Node, value string)

	// IsChecked reports whether n is a checkbox-like control in the
	// checked state.
	IsChecked(n Node) bool

	// Render writes the serialized document to w.
	Render(w io.Writer) error

	// RenderNode writes the serialized subtree rooted at n to w.
	RenderNode(w io.Writer, n Node) error
}

// XPathQuerier is an optional capability for trees that also resolve
// XPath expressions.
type XPathQuerier interface {
	// QueryXPath returns every node matched by expr among the descendants
	// of scope. A nil scope means the root.
	QueryXPath(scope Node, expr string) ([]Node, error)
}

// Watchable is an optional capability for trees bound to a reloadable
// source (e.g. an HTML file on disk). Watch re-parses the source on
// change and emits a SourceEvent per reload.
type Watchable interface {
	Watch(ctx context.Context) (<-chan SourceEvent, error)
}
