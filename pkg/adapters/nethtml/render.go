package nethtml

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/aretw0/domkit/pkg/core"
)

// Render writes the serialized document to w.
func (t *Tree) Render(w io.Writer) error {
	t.mu.RLock()
	doc := t.doc
	t.mu.RUnlock()
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	return nil
}

// RenderNode writes the serialized subtree rooted at n to w.
func (t *Tree) RenderNode(w io.Writer, n core.Node) error {
	h := elem(n)
	if h == nil {
		return nil
	}
	if err := html.Render(w, h); err != nil {
		return fmt.Errorf("failed to render node: %w", err)
	}
	return nil
}

// OuterHTML returns the serialized subtree rooted at n.
func (t *Tree) OuterHTML(n core.Node) (string, error) {
	var b bytes.Buffer
	if err := t.RenderNode(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
