package patch

import (
	"fmt"

	"github.com/aretw0/domkit/pkg/core"
)

// Apply runs every operation of the manifest, in order, against the
// facade. It returns the number of operations applied; on the first
// failure it stops and reports the offending op.
func (m *Manifest) Apply(d *core.DOM) (int, error) {
	for i, op := range m.Ops {
		if err := apply(d, op); err != nil {
			return i, fmt.Errorf("op %d (%s): %w", i, op.Do, err)
		}
	}
	return len(m.Ops), nil
}

func apply(d *core.DOM, op Op) error {
	target := core.Sel(op.Target)

	switch op.Do {
	case "update":
		var content any = op.Content
		if len(op.Options) > 0 {
			content = op.Options
		}
		_, err := d.Update(target, content, contentType(op.As))
		return err

	case "set-attr":
		_, err := d.SetAttr(target, op.Name, op.Value)
		return err

	case "remove-attr":
		_, err := d.RemoveAttr(target, op.Name)
		return err

	case "add-class":
		if op.Class == "" {
			return fmt.Errorf("add-class requires a class")
		}
		_, err := d.Toggle(target, op.Class, true)
		return err

	case "remove-class":
		if op.Class == "" {
			return fmt.Errorf("remove-class requires a class")
		}
		_, err := d.Toggle(target, op.Class, false)
		return err

	case "toggle":
		var err error
		if op.Force != nil {
			_, err = d.Toggle(target, op.Class, *op.Force)
		} else {
			_, err = d.Toggle(target, op.Class)
		}
		return err

	case "show":
		_, err := d.Show(target)
		return err

	case "hide":
		_, err := d.Hide(target)
		return err

	case "style":
		_, err := d.SetStyles(target, op.Styles)
		return err

	case "append":
		_, err := d.Append(target, op.Markup, position(op.Position))
		return err

	case "create":
		if op.Tag == "" {
			return fmt.Errorf("create requires a tag")
		}
		parent := core.Root()
		if op.Parent != "" {
			parent = core.Sel(op.Parent)
		}
		attrs := make(core.AttrMap, len(op.Attrs))
		for k, v := range op.Attrs {
			attrs[k] = v
		}
		_, err := d.CreateIn(parent, position(op.Position), op.Tag, attrs)
		return err

	case "remove":
		return d.Remove(target)

	case "disable":
		_, err := d.Disable(target)
		return err

	case "enable":
		_, err := d.Enable(target)
		return err

	case "load":
		props := core.AttrMap{}
		if op.ID != "" {
			props["id"] = op.ID
		}
		var err error
		if op.Parent != "" {
			_, err = d.LoadIn(core.Sel(op.Parent), op.Src, props)
		} else {
			_, err = d.Load(op.Src, props)
		}
		return err

	default:
		return fmt.Errorf("unknown operation %q", op.Do)
	}
}

func contentType(as string) core.ContentType {
	if as == "text" {
		return core.ContentText
	}
	return core.ContentHTML
}

// position accepts both the canonical position names and short aliases.
func position(p string) core.Position {
	switch p {
	case "before", string(core.Before):
		return core.Before
	case "first", "prepend", string(core.FirstChild):
		return core.FirstChild
	case "after", string(core.After):
		return core.After
	default:
		return core.LastChild
	}
}
