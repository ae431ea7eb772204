package nethtml

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/aretw0/domkit/pkg/core"
)

// QueryOne returns the first descendant of scope matching selector, in
// document order. No match returns (nil, nil); only a malformed selector
// is an error. The selector is compiled on every call.
func (t *Tree) QueryOne(scope core.Node, selector string) (core.Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	n := cascadia.Query(t.scopeOrRoot(scope), sel)
	if n == nil {
		return nil, nil
	}
	return n, nil
}

// QueryAll returns every descendant of scope matching selector, in
// document order.
func (t *Tree) QueryAll(scope core.Node, selector string) ([]core.Node, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	matches := cascadia.QueryAll(t.scopeOrRoot(scope), sel)
	nodes := make([]core.Node, len(matches))
	for i, m := range matches {
		nodes[i] = m
	}
	return nodes, nil
}

func (t *Tree) scopeOrRoot(scope core.Node) *html.Node {
	if h := elem(scope); h != nil {
		return h
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.doc
}
