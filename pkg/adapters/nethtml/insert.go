package nethtml

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/aretw0/domkit/pkg/core"
)

// Insert places child at the structural position relative to target,
// detaching it from any previous parent first.
func (t *Tree) Insert(target core.Node, pos core.Position, child core.Node) error {
	th := elem(target)
	if th == nil {
		return errors.New("insert target is not a node")
	}
	ch := elem(child)
	if ch == nil {
		return errors.New("inserted child is not a node")
	}
	if ch.Parent != nil {
		ch.Parent.RemoveChild(ch)
	}
	return insertAt(th, pos, ch)
}

// InsertMarkup parses markup and places the resulting nodes at the
// structural position relative to target, preserving source order.
func (t *Tree) InsertMarkup(target core.Node, pos core.Position, markup string) error {
	th := elem(target)
	if th == nil {
		return errors.New("insert target is not a node")
	}

	// Sibling positions parse in the parent's context, child positions in
	// the target's own.
	ctx := th
	if pos == core.Before || pos == core.After {
		ctx = th.Parent
	}
	nodes, err := parseFragment(ctx, markup)
	if err != nil {
		return err
	}

	// Multi-node fragments must keep their source order at every position.
	if pos == core.FirstChild {
		ref := th.FirstChild
		for _, n := range nodes {
			if ref != nil {
				th.InsertBefore(n, ref)
			} else {
				th.AppendChild(n)
			}
		}
		return nil
	}

	anchor := th
	for _, n := range nodes {
		if err := insertAt(anchor, pos, n); err != nil {
			return err
		}
		if pos == core.After {
			anchor = n
		}
	}
	return nil
}

// insertAt implements the four canonical positions over html.Node
// pointer surgery.
func insertAt(target *html.Node, pos core.Position, child *html.Node) error {
	switch pos {
	case core.Before:
		if target.Parent == nil {
			return errors.New("target has no parent to insert before")
		}
		target.Parent.InsertBefore(child, target)
	case core.FirstChild:
		if target.FirstChild != nil {
			target.InsertBefore(child, target.FirstChild)
		} else {
			target.AppendChild(child)
		}
	case core.After:
		if target.Parent == nil {
			return errors.New("target has no parent to insert after")
		}
		if target.NextSibling != nil {
			target.Parent.InsertBefore(child, target.NextSibling)
		} else {
			target.Parent.AppendChild(child)
		}
	case core.LastChild, "":
		target.AppendChild(child)
	default:
		return fmt.Errorf("unknown position %q", pos)
	}
	return nil
}
