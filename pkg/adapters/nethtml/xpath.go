package nethtml

import (
	"fmt"

	"github.com/antchfx/htmlquery"

	"github.com/aretw0/domkit/pkg/core"
)

// QueryXPath returns every node matched by expr among the descendants of
// scope. It implements the optional core.XPathQuerier capability.
func (t *Tree) QueryXPath(scope core.Node, expr string) ([]core.Node, error) {
	matches, err := htmlquery.QueryAll(t.scopeOrRoot(scope), expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath %q: %w", expr, err)
	}
	nodes := make([]core.Node, len(matches))
	for i, m := range matches {
		nodes[i] = m
	}
	return nodes, nil
}

var _ core.XPathQuerier = (*Tree)(nil)
