package domkit

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/domkit/internal/platform"
	"github.com/aretw0/domkit/pkg/core"
)

// --- Types ---

// DOM is the utility facade over a host document tree.
type DOM = core.DOM

// Node is an opaque handle to one element in the host document tree.
type Node = core.Node

// Target identifies zero or more nodes: a selector, a node reference, a
// node list, or the document root.
type Target = core.Target

// AttrMap is the attribute map accepted by Create, with the special keys
// text, html, child and handler values.
type AttrMap = core.AttrMap

// OptionItem is one entry of a select-control option list.
type OptionItem = core.OptionItem

// Handler is a callback registered for synthetic events.
type Handler = core.Handler

// Event is a synthetic event delivered to handlers.
type Event = core.Event

// SourceEvent represents a change in the backing source of a tree.
type SourceEvent = core.SourceEvent

// ErrNotFound signals that target resolution matched nothing.
var ErrNotFound = core.ErrNotFound

// --- Targets ---

// Sel targets the first node (or all nodes, for collection operations)
// matching a structural selector.
func Sel(selector string) Target { return core.Sel(selector) }

// Ref targets an already-resolved node.
func Ref(n Node) Target { return core.Ref(n) }

// Refs targets an explicit ordered list of nodes.
func Refs(nodes ...Node) Target { return core.Refs(nodes...) }

// Root targets the document root.
func Root() Target { return core.Root() }

// --- Positions and content types ---

const (
	Before     = core.Before
	FirstChild = core.FirstChild
	LastChild  = core.LastChild
	After      = core.After

	ContentHTML = core.ContentHTML
	ContentText = core.ContentText
)

// --- Configuration ---

// Option defines a functional option for configuring domkit.
type Option = platform.Option

// WithLogger sets the logger receiving not-found diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithHiddenClass overrides the marker class used by Show/Hide/Toggle.
func WithHiddenClass(class string) Option {
	return platform.WithHiddenClass(class)
}

// WithDisabledAttr overrides the marker attribute used by Disable/Enable.
func WithDisabledAttr(name string) Option {
	return platform.WithDisabledAttr(name)
}

// WithTree allows injecting a custom tree adapter.
func WithTree(tree core.Tree) Option {
	return platform.WithTree(tree)
}

// WithScope restricts default selector resolution to the first node
// matching the given selector.
func WithScope(selector string) Option {
	return platform.WithScope(selector)
}

// --- Factories ---

// Open parses the HTML file at path and returns a facade over it. The
// resulting tree can be watched for changes to its backing file.
func Open(path string, opts ...Option) (*DOM, error) {
	return platform.Open(path, opts...)
}

// Parse builds a facade over markup read from r.
func Parse(r io.Reader, opts ...Option) (*DOM, error) {
	return platform.Parse(r, opts...)
}

// ParseString builds a facade over a markup string.
func ParseString(markup string, opts ...Option) (*DOM, error) {
	return platform.Parse(strings.NewReader(markup), opts...)
}

// New wires an existing tree adapter into a facade.
func New(tree core.Tree, opts ...Option) (*DOM, error) {
	return platform.New(tree, opts...)
}
