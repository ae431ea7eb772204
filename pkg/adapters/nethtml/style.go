package nethtml

import (
	"strings"

	"github.com/aretw0/domkit/pkg/core"
)

// styleDecl is one property of an inline style attribute. Declarations
// keep their textual order so rewrites stay minimal diffs.
type styleDecl struct {
	prop  string
	value string
}

func parseStyle(v string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(v, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		decls = append(decls, styleDecl{prop: prop, value: value})
	}
	return decls
}

func serializeStyle(decls []styleDecl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value
	}
	return strings.Join(parts, "; ")
}

// SetStyle writes one property of the node's inline style set, replacing
// an existing declaration for the same property. An empty value removes
// the declaration; an emptied style attribute is removed entirely.
func (t *Tree) SetStyle(n core.Node, prop, value string) {
	prop = strings.TrimSpace(prop)
	if prop == "" {
		return
	}

	current, _ := t.Attr(n, "style")
	decls := parseStyle(current)

	if value == "" {
		kept := decls[:0]
		for _, d := range decls {
			if d.prop != prop {
				kept = append(kept, d)
			}
		}
		decls = kept
	} else {
		replaced := false
		for i, d := range decls {
			if d.prop == prop {
				decls[i].value = value
				replaced = true
				break
			}
		}
		if !replaced {
			decls = append(decls, styleDecl{prop: prop, value: value})
		}
	}

	if len(decls) == 0 {
		t.RemoveAttr(n, "style")
		return
	}
	t.SetAttr(n, "style", serializeStyle(decls))
}
