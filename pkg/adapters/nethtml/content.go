package nethtml

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/aretw0/domkit/pkg/core"
)

// Text returns the concatenated text content of the subtree rooted at n.
func (t *Tree) Text(n core.Node) string {
	h := elem(n)
	if h == nil {
		return ""
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(h)
	return b.String()
}

// SetText replaces the node's children with a single text node. The text
// is escaped on render, never interpreted as markup.
func (t *Tree) SetText(n core.Node, text string) {
	h := elem(n)
	if h == nil {
		return
	}
	removeChildren(h)
	if text == "" {
		return
	}
	h.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// InnerHTML returns the serialized markup of the node's children.
func (t *Tree) InnerHTML(n core.Node) (string, error) {
	h := elem(n)
	if h == nil {
		return "", nil
	}
	var b bytes.Buffer
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("failed to render markup: %w", err)
		}
	}
	return b.String(), nil
}

// SetInnerHTML replaces the node's markup subtree with the parsed markup.
func (t *Tree) SetInnerHTML(n core.Node, markup string) error {
	h := elem(n)
	if h == nil {
		return nil
	}
	children, err := parseFragment(h, markup)
	if err != nil {
		return err
	}
	removeChildren(h)
	for _, c := range children {
		h.AppendChild(c)
	}
	return nil
}

func removeChildren(h *html.Node) {
	for c := h.FirstChild; c != nil; {
		next := c.NextSibling
		h.RemoveChild(c)
		c = next
	}
}

// parseFragment parses markup as if it were the children of ctx. The
// returned nodes are detached and ready for insertion.
func parseFragment(ctx *html.Node, markup string) ([]*html.Node, error) {
	// The fragment parser requires a parentless element context, so a
	// fresh stand-in mirrors the live node's kind.
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	if ctx != nil && ctx.Type == html.ElementNode {
		context = &html.Node{Type: html.ElementNode, Data: ctx.Data, DataAtom: ctx.DataAtom}
	}

	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return nodes, nil
}
