// Package nethtml implements core.Tree over golang.org/x/net/html.
//
// Selector targets are resolved with cascadia on every call; no resolved
// node is ever cached between calls, so a node removed between two calls
// simply stops matching.
package nethtml

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/aretw0/domkit/pkg/core"
)

// Config holds the configuration for the net/html tree.
type Config struct {
	// Path is the backing file, if any. Required for Watch.
	Path   string
	Logger *slog.Logger
}

// Tree implements core.Tree over a parsed net/html document.
type Tree struct {
	config Config

	// mu guards doc swaps (reload worker), the listener registry and the
	// focused node. Plain tree mutation is the caller's to serialize, as
	// with any single-threaded document.
	mu            sync.RWMutex
	doc           *html.Node
	listeners     map[*html.Node]map[string][]core.Handler
	focused       *html.Node
	watcherActive bool
}

// Parse builds a tree from a reader.
func Parse(r io.Reader, config Config) (*Tree, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Tree{
		config:    config,
		doc:       doc,
		listeners: make(map[*html.Node]map[string][]core.Handler),
	}, nil
}

// ParseString builds a tree from a markup string.
func ParseString(markup string, config Config) (*Tree, error) {
	return Parse(strings.NewReader(markup), config)
}

// Open builds a tree from a file on disk, remembering the path so the
// tree can be watched for changes.
func Open(path string, config Config) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()
	config.Path = path
	return Parse(f, config)
}

// elem coerces an opaque handle back to a *html.Node. Foreign or nil
// handles yield nil, which every method treats as a no-op.
func elem(n core.Node) *html.Node {
	h, _ := n.(*html.Node)
	return h
}

// Root returns the document node. Selector queries scoped to it search
// the entire tree, including the <html> element.
func (t *Tree) Root() core.Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.doc
}

// Head returns the <head> element, or nil.
func (t *Tree) Head() core.Node {
	h := t.findElement(atom.Head)
	if h == nil {
		return nil
	}
	return h
}

// Body returns the <body> element, or nil.
func (t *Tree) Body() core.Node {
	b := t.findElement(atom.Body)
	if b == nil {
		return nil
	}
	return b
}

// ElementByID returns the element whose id attribute equals id, by
// literal comparison. Selector engines would reinterpret ids like
// "app.v2"; this walk does not.
func (t *Tree) ElementByID(id string) core.Node {
	if id == "" {
		return nil
	}
	t.mu.RLock()
	doc := t.doc
	t.mu.RUnlock()

	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = n
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		return nil
	}
	return found
}

func (t *Tree) findElement(a atom.Atom) *html.Node {
	t.mu.RLock()
	doc := t.doc
	t.mu.RUnlock()

	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

// CreateElement constructs a detached element of the given kind.
func (t *Tree) CreateElement(tag string) core.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// TagName returns the lower-case element name, or "" for non-elements.
func (t *Tree) TagName(n core.Node) string {
	h := elem(n)
	if h == nil || h.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(h.Data)
}

// Detach removes n from its parent. Detaching an already-detached node is
// a no-op. A detached focused node loses focus.
func (t *Tree) Detach(n core.Node) {
	h := elem(n)
	if h == nil {
		return
	}
	if h.Parent != nil {
		h.Parent.RemoveChild(h)
	}
	t.mu.Lock()
	if t.focused == h {
		t.focused = nil
	}
	t.mu.Unlock()
}

// Attr reads an attribute; the boolean reports presence.
func (t *Tree) Attr(n core.Node, name string) (string, bool) {
	h := elem(n)
	if h == nil {
		return "", false
	}
	for _, a := range h.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr writes an attribute, replacing any existing value.
func (t *Tree) SetAttr(n core.Node, name, value string) {
	h := elem(n)
	if h == nil {
		return
	}
	for i, a := range h.Attr {
		if a.Key == name {
			h.Attr[i].Val = value
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute if present.
func (t *Tree) RemoveAttr(n core.Node, name string) {
	h := elem(n)
	if h == nil {
		return
	}
	for i, a := range h.Attr {
		if a.Key == name {
			h.Attr = append(h.Attr[:i], h.Attr[i+1:]...)
			return
		}
	}
}

// swapDoc replaces the parsed document, dropping listeners and focus that
// pointed into the old tree. Used by the reload worker.
func (t *Tree) swapDoc(doc *html.Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.doc = doc
	t.listeners = make(map[*html.Node]map[string][]core.Handler)
	t.focused = nil
}

func (t *Tree) setWatcherActive(active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.watcherActive = active
}

var _ core.Tree = (*Tree)(nil)
