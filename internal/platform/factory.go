package platform

import (
	"fmt"
	"io"

	"github.com/aretw0/domkit/pkg/adapters/nethtml"
	"github.com/aretw0/domkit/pkg/core"
)

// New wires a tree adapter into a DOM facade.
func New(tree core.Tree, opts ...Option) (*core.DOM, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.tree != nil {
		tree = o.tree
	}
	return assemble(tree, o)
}

// Open parses the HTML file at path into the default net/html adapter.
func Open(path string, opts ...Option) (*core.DOM, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.tree != nil {
		return assemble(o.tree, o)
	}

	tree, err := nethtml.Open(path, nethtml.Config{Logger: o.logger})
	if err != nil {
		return nil, err
	}
	return assemble(tree, o)
}

// Parse builds a facade over markup read from r.
func Parse(r io.Reader, opts ...Option) (*core.DOM, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.tree != nil {
		return assemble(o.tree, o)
	}

	tree, err := nethtml.Parse(r, nethtml.Config{Logger: o.logger})
	if err != nil {
		return nil, err
	}
	return assemble(tree, o)
}

// assemble applies the configured scope and builds the facade.
func assemble(tree core.Tree, o *options) (*core.DOM, error) {
	cfg := core.Config{
		Logger:       o.logger,
		HiddenClass:  o.hiddenClass,
		DisabledAttr: o.disabledAttr,
	}

	if o.scope != "" {
		n, err := tree.QueryOne(nil, o.scope)
		if err != nil {
			return nil, fmt.Errorf("invalid scope: %w", err)
		}
		if n == nil {
			return nil, fmt.Errorf("scope %s: %w", o.scope, core.ErrNotFound)
		}
		cfg.Scope = n
	}

	return core.NewDOM(tree, cfg), nil
}
