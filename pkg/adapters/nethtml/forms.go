package nethtml

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/aretw0/domkit/pkg/core"
)

// IsFormControl reports whether n is an input-like control whose content
// is a value, never markup.
func (t *Tree) IsFormControl(n core.Node) bool {
	h := elem(n)
	if h == nil || h.Type != html.ElementNode {
		return false
	}
	switch h.DataAtom {
	case atom.Input, atom.Textarea, atom.Select:
		return true
	}
	return false
}

// Value reads a form control's current value: the value attribute for
// inputs, the text content for textareas, the selected option's value for
// selects (falling back to the first option).
func (t *Tree) Value(n core.Node) string {
	h := elem(n)
	if h == nil {
		return ""
	}
	switch h.DataAtom {
	case atom.Input:
		v, _ := t.Attr(n, "value")
		return v
	case atom.Textarea:
		return t.Text(n)
	case atom.Select:
		var first, selected *html.Node
		for _, opt := range t.options(h) {
			if first == nil {
				first = opt
			}
			if _, ok := t.Attr(opt, "selected"); ok {
				selected = opt
				break
			}
		}
		if selected == nil {
			selected = first
		}
		return t.optionValue(selected)
	}
	return ""
}

// SetValue writes a form control's value. On a select it marks the option
// whose value matches as selected and clears the others.
func (t *Tree) SetValue(n core.Node, value string) {
	h := elem(n)
	if h == nil {
		return
	}
	switch h.DataAtom {
	case atom.Input:
		t.SetAttr(n, "value", value)
	case atom.Textarea:
		t.SetText(n, value)
	case atom.Select:
		for _, opt := range t.options(h) {
			if t.optionValue(opt) == value {
				t.SetAttr(opt, "selected", "selected")
			} else {
				t.RemoveAttr(opt, "selected")
			}
		}
	}
}

// IsChecked reports whether n is a checkbox-like input in the checked
// state.
func (t *Tree) IsChecked(n core.Node) bool {
	h := elem(n)
	if h == nil || h.DataAtom != atom.Input {
		return false
	}
	typ, _ := t.Attr(n, "type")
	if typ != "checkbox" && typ != "radio" {
		return false
	}
	_, checked := t.Attr(n, "checked")
	return checked
}

// Focus requests focus for n. Only focusable kinds acquire it; anything
// else is a no-op. Returns whether focus moved.
func (t *Tree) Focus(n core.Node) bool {
	h := elem(n)
	if h == nil || !focusable(h) {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.focused = h
	return true
}

// Focused returns the currently focused node, or nil.
func (t *Tree) Focused() core.Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.focused == nil {
		return nil
	}
	return t.focused
}

func focusable(h *html.Node) bool {
	if h.Type != html.ElementNode {
		return false
	}
	switch h.DataAtom {
	case atom.Input, atom.Textarea, atom.Select, atom.Button:
		return true
	case atom.A:
		for _, a := range h.Attr {
			if a.Key == "href" {
				return true
			}
		}
		return false
	}
	for _, a := range h.Attr {
		if a.Key == "tabindex" {
			return true
		}
	}
	return false
}

func (t *Tree) options(sel *html.Node) []*html.Node {
	var opts []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Option {
			opts = append(opts, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := sel.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return opts
}

// optionValue mirrors the option element's value resolution: the value
// attribute when present, the text content otherwise.
func (t *Tree) optionValue(opt *html.Node) string {
	if opt == nil {
		return ""
	}
	if v, ok := t.Attr(opt, "value"); ok {
		return v
	}
	return t.Text(opt)
}
