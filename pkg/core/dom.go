package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// AttrMap is the attribute map accepted by Create. Most keys set literal
// attributes; a few are interpreted specially:
//   - a Handler value registers an event listener, with the key (stripped
//     of a leading "on") as the event name;
//   - "text" sets plain text content;
//   - "html" sets markup content;
//   - "child" appends an already-constructed node as a child.
type AttrMap map[string]any

// Default marker conventions. Callers must ensure a stylesheet rule binds
// the hidden class to non-rendering; the library only manages membership.
const (
	DefaultHiddenClass  = "hidden"
	DefaultDisabledAttr = "disabled"
)

// Config holds the immutable configuration of a DOM facade. Defaults are
// threaded through this value explicitly; there is no ambient global scope.
type Config struct {
	// Logger receives soft not-found diagnostics. Nil disables them.
	Logger *slog.Logger
	// HiddenClass is the marker class used by Show/Hide/Toggle.
	HiddenClass string
	// DisabledAttr is the marker attribute used by Disable/Enable.
	DisabledAttr string
	// Scope, when set, replaces the tree root as the default resolution
	// scope for selector targets.
	Scope Node
}

// DOM is the utility facade over a host document tree. It holds no state
// across calls beyond its immutable configuration; every call re-resolves
// its target, so staleness manifests as not-found, never as a stale handle.
type DOM struct {
	tree         Tree
	scope        Node
	logger       *slog.Logger
	hiddenClass  string
	disabledAttr string
}

// NewDOM creates a facade over the given tree.
func NewDOM(tree Tree, cfg Config) *DOM {
	d := &DOM{
		tree:         tree,
		scope:        cfg.Scope,
		logger:       cfg.Logger,
		hiddenClass:  cfg.HiddenClass,
		disabledAttr: cfg.DisabledAttr,
	}
	if d.hiddenClass == "" {
		d.hiddenClass = DefaultHiddenClass
	}
	if d.disabledAttr == "" {
		d.disabledAttr = DefaultDisabledAttr
	}
	return d
}

// Tree exposes the underlying tree collaborator.
func (d *DOM) Tree() Tree { return d.tree }

func (d *DOM) scopeNode() Node {
	if d.scope != nil {
		return d.scope
	}
	return d.tree.Root()
}

// resolve returns the first node the target identifies, without logging.
func (d *DOM) resolve(t Target) (Node, error) {
	switch t.kind {
	case targetRoot:
		return d.scopeNode(), nil
	case targetRef:
		if t.node == nil {
			return nil, fmt.Errorf("%s: %w", t, ErrNotFound)
		}
		return t.node, nil
	case targetRefs:
		if len(t.nodes) == 0 || t.nodes[0] == nil {
			return nil, fmt.Errorf("%s: %w", t, ErrNotFound)
		}
		return t.nodes[0], nil
	default:
		n, err := d.tree.QueryOne(d.scopeNode(), t.selector)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", t, err)
		}
		if n == nil {
			return nil, fmt.Errorf("%s: %w", t, ErrNotFound)
		}
		return n, nil
	}
}

// lookup resolves for a mutating or reading operation, emitting a
// diagnostic naming the unresolved target on failure.
func (d *DOM) lookup(op string, t Target) (Node, error) {
	n, err := d.resolve(t)
	if err != nil && d.logger != nil {
		if errors.Is(err, ErrNotFound) {
			d.logger.Warn("target not found", "op", op, "target", t.String())
		} else {
			d.logger.Warn("target resolution failed", "op", op, "target", t.String(), "error", err)
		}
	}
	return n, err
}

// --- Resolution ---

// Get resolves the target to its first matching node. A selector that
// matches nothing logs a diagnostic and returns a wrapped ErrNotFound.
// Get never mutates the tree and is idempotent.
func (d *DOM) Get(t Target) (Node, error) {
	return d.lookup("get", t)
}

// GetAll resolves the target to the full ordered set of matches. A
// selector matching nothing yields an empty collection, not an error.
func (d *DOM) GetAll(t Target) ([]Node, error) {
	switch t.kind {
	case targetRefs:
		return t.nodes, nil
	case targetRef:
		if t.node == nil {
			return nil, fmt.Errorf("%s: %w", t, ErrNotFound)
		}
		return []Node{t.node}, nil
	case targetRoot:
		return []Node{d.scopeNode()}, nil
	default:
		nodes, err := d.tree.QueryAll(d.scopeNode(), t.selector)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", t, err)
		}
		return nodes, nil
	}
}

// Within returns a facade whose selector resolution is scoped to the
// resolved target instead of the document root. Configuration is shared.
func (d *DOM) Within(t Target) (*DOM, error) {
	n, err := d.lookup("within", t)
	if err != nil {
		return nil, err
	}
	scoped := *d
	scoped.scope = n
	return &scoped, nil
}

// --- Visibility ---

// Show removes the hidden marker class from the target's class set.
// Passing force == false adds it instead (what Hide does). Inline display
// styles are never touched; visibility is modeled purely as membership.
func (d *DOM) Show(t Target, force ...bool) (Node, error) {
	n, err := d.lookup("show", t)
	if err != nil {
		return nil, err
	}
	if len(force) > 0 && !force[0] {
		d.tree.AddClass(n, d.hiddenClass)
	} else {
		d.tree.RemoveClass(n, d.hiddenClass)
	}
	return n, nil
}

// Hide adds the hidden marker class to the target's class set.
func (d *DOM) Hide(t Target) (Node, error) {
	return d.Show(t, false)
}

// Toggle flips membership of class on the target's class set. An empty
// class name means the configured hidden marker class. An explicit force
// value pins the outcome: true always adds, false always removes.
func (d *DOM) Toggle(t Target, class string, force ...bool) (Node, error) {
	n, err := d.lookup("toggle", t)
	if err != nil {
		return nil, err
	}
	if class == "" {
		class = d.hiddenClass
	}
	switch {
	case len(force) > 0 && force[0]:
		d.tree.AddClass(n, class)
	case len(force) > 0:
		d.tree.RemoveClass(n, class)
	case d.tree.HasClass(n, class):
		d.tree.RemoveClass(n, class)
	default:
		d.tree.AddClass(n, class)
	}
	return n, nil
}

// --- Content ---

// Update replaces the target's content. Form controls receive content as
// their value, never as markup. Select controls accept a []string,
// []OptionItem or []any, coerced into an option list. Otherwise the
// content type decides: ContentHTML replaces the markup subtree,
// ContentText replaces the text content with markup-significant
// characters escaped. The default is ContentHTML.
func (d *DOM) Update(t Target, content any, typ ...ContentType) (Node, error) {
	n, err := d.lookup("update", t)
	if err != nil {
		return nil, err
	}

	if d.tree.TagName(n) == "select" {
		if items, ok := coerceOptions(content); ok {
			return n, d.setOptions(n, items)
		}
	}

	if d.tree.IsFormControl(n) {
		d.tree.SetValue(n, asString(content))
		return n, nil
	}

	ct := ContentHTML
	if len(typ) > 0 {
		ct = typ[0]
	}
	switch ct {
	case ContentText:
		d.tree.SetText(n, asString(content))
	default:
		if err := d.tree.SetInnerHTML(n, asString(content)); err != nil {
			return nil, fmt.Errorf("update %s: %w", t, err)
		}
	}
	return n, nil
}

// Text returns the target's plain text content.
func (d *DOM) Text(t Target) (string, error) {
	n, err := d.lookup("text", t)
	if err != nil {
		return "", err
	}
	return d.tree.Text(n), nil
}

// HTML returns the target's inner markup.
func (d *DOM) HTML(t Target) (string, error) {
	n, err := d.lookup("html", t)
	if err != nil {
		return "", err
	}
	return d.tree.InnerHTML(n)
}

func coerceOptions(content any) ([]OptionItem, bool) {
	switch v := content.(type) {
	case []OptionItem:
		return v, true
	case []string:
		items := make([]OptionItem, len(v))
		for i, s := range v {
			items[i] = OptionItem{Value: s, Label: s}
		}
		return items, true
	case []any:
		items := make([]OptionItem, 0, len(v))
		for _, e := range v {
			switch o := e.(type) {
			case OptionItem:
				items = append(items, o)
			case string:
				items = append(items, OptionItem{Value: o, Label: o})
			default:
				s := fmt.Sprint(o)
				items = append(items, OptionItem{Value: s, Label: s})
			}
		}
		return items, true
	}
	return nil, false
}

func (d *DOM) setOptions(n Node, items []OptionItem) error {
	if err := d.tree.SetInnerHTML(n, ""); err != nil {
		return err
	}
	for _, it := range items {
		opt := d.tree.CreateElement("option")
		label := it.Label
		if label == "" {
			label = it.Value
		}
		d.tree.SetAttr(opt, "value", it.Value)
		d.tree.SetText(opt, label)
		if err := d.tree.Insert(n, LastChild, opt); err != nil {
			return err
		}
	}
	return nil
}

func asString(content any) string {
	if s, ok := content.(string); ok {
		return s
	}
	return fmt.Sprint(content)
}

// --- Attributes and styles ---

// Attr reads an attribute. The boolean reports presence, distinguishing
// an unset attribute from one set to the empty string. Reads and writes
// are split into Attr/SetAttr; there is no arity-based dual.
func (d *DOM) Attr(t Target, name string) (string, bool, error) {
	n, err := d.lookup("attr", t)
	if err != nil {
		return "", false, err
	}
	v, ok := d.tree.Attr(n, name)
	return v, ok, nil
}

// SetAttr writes an attribute and returns the resolved node.
func (d *DOM) SetAttr(t Target, name, value string) (Node, error) {
	n, err := d.lookup("set-attr", t)
	if err != nil {
		return nil, err
	}
	d.tree.SetAttr(n, name, value)
	return n, nil
}

// RemoveAttr deletes an attribute and returns the resolved node.
func (d *DOM) RemoveAttr(t Target, name string) (Node, error) {
	n, err := d.lookup("remove-attr", t)
	if err != nil {
		return nil, err
	}
	d.tree.RemoveAttr(n, name)
	return n, nil
}

// SetStyle writes one property of the target's inline style set.
func (d *DOM) SetStyle(t Target, prop, value string) (Node, error) {
	n, err := d.lookup("set-style", t)
	if err != nil {
		return nil, err
	}
	d.tree.SetStyle(n, prop, value)
	return n, nil
}

// SetStyles applies every entry of the map onto the target's inline style
// set. Entries are applied in sorted key order so output is deterministic.
func (d *DOM) SetStyles(t Target, styles map[string]string) (Node, error) {
	n, err := d.lookup("set-style", t)
	if err != nil {
		return nil, err
	}
	props := make([]string, 0, len(styles))
	for p := range styles {
		props = append(props, p)
	}
	sort.Strings(props)
	for _, p := range props {
		d.tree.SetStyle(n, p, styles[p])
	}
	return n, nil
}

// --- Structural mutation ---

// Create constructs a detached element of the given kind and applies the
// attribute map, interpreting the special keys documented on AttrMap.
// Keys are applied in sorted order so creation is deterministic.
func (d *DOM) Create(tag string, attrs AttrMap) (Node, error) {
	n := d.tree.CreateElement(tag)
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := attrs[k]
		if h, ok := asHandler(v); ok {
			d.tree.Listen(n, strings.TrimPrefix(k, "on"), h)
			continue
		}
		switch k {
		case "text":
			d.tree.SetText(n, asString(v))
		case "html":
			if err := d.tree.SetInnerHTML(n, asString(v)); err != nil {
				return nil, fmt.Errorf("create <%s>: %w", tag, err)
			}
		case "child":
			if err := d.tree.Insert(n, LastChild, v); err != nil {
				return nil, fmt.Errorf("create <%s>: %w", tag, err)
			}
		default:
			d.tree.SetAttr(n, k, asString(v))
		}
	}
	return n, nil
}

// CreateIn constructs an element and inserts it at the structural
// position relative to the resolved parent. It returns the new node.
func (d *DOM) CreateIn(parent Target, pos Position, tag string, attrs AttrMap) (Node, error) {
	n, err := d.Create(tag, attrs)
	if err != nil {
		return nil, err
	}
	if _, err := d.Append(parent, n, pos); err != nil {
		return nil, err
	}
	return n, nil
}

func asHandler(v any) (Handler, bool) {
	switch h := v.(type) {
	case Handler:
		return h, true
	case func(Event):
		return h, true
	}
	return nil, false
}

// Append inserts content at a structural position relative to the target:
// a string is parsed as markup, anything else is treated as a node
// reference. The default position is LastChild. It returns the resolved
// target, not the inserted content.
func (d *DOM) Append(t Target, content any, pos ...Position) (Node, error) {
	n, err := d.lookup("append", t)
	if err != nil {
		return nil, err
	}
	p := LastChild
	if len(pos) > 0 {
		p = pos[0]
	}
	if s, ok := content.(string); ok {
		if err := d.tree.InsertMarkup(n, p, s); err != nil {
			return nil, fmt.Errorf("append to %s: %w", t, err)
		}
		return n, nil
	}
	if err := d.tree.Insert(n, p, content); err != nil {
		return nil, fmt.Errorf("append to %s: %w", t, err)
	}
	return n, nil
}

// Remove detaches the target from its parent. A target that does not
// resolve is reported through the diagnostic path; detaching an
// already-detached node is a no-op.
func (d *DOM) Remove(t Target) error {
	n, err := d.lookup("remove", t)
	if err != nil {
		return err
	}
	d.tree.Detach(n)
	return nil
}

// --- Existence and enablement ---

// Exists reports whether the target resolves. It never errors and never
// logs; absence is conveyed purely through the return value.
func (d *DOM) Exists(t Target) bool {
	n, err := d.resolve(t)
	return err == nil && n != nil
}

// Disable sets the disabled marker attribute on the target.
func (d *DOM) Disable(t Target) (Node, error) {
	return d.SetAttr(t, d.disabledAttr, d.disabledAttr)
}

// Enable clears the disabled marker attribute on the target.
func (d *DOM) Enable(t Target) (Node, error) {
	return d.RemoveAttr(t, d.disabledAttr)
}

// Focus requests focus for the target if it supports focus acquisition,
// and is a no-op otherwise.
func (d *DOM) Focus(t Target) (Node, error) {
	n, err := d.lookup("focus", t)
	if err != nil {
		return nil, err
	}
	d.tree.Focus(n)
	return n, nil
}

// Checked returns the values of the checked members of a checkbox-like
// collection, preserving collection order. A checked control with no
// value attribute reports the default value "on", as browsers do.
func (d *DOM) Checked(t Target) ([]string, error) {
	nodes, err := d.GetAll(t)
	if err != nil {
		return nil, err
	}
	var values []string
	for _, n := range nodes {
		if !d.tree.IsChecked(n) {
			continue
		}
		v, ok := d.tree.Attr(n, "value")
		if !ok {
			v = "on"
		}
		values = append(values, v)
	}
	return values, nil
}

// --- Events ---

// On registers a handler for event on the target. A failed resolution is
// reported and registration is silently skipped.
func (d *DOM) On(t Target, event string, h Handler) (Node, error) {
	n, err := d.lookup("on", t)
	if err != nil {
		return nil, err
	}
	d.tree.Listen(n, event, h)
	return n, nil
}

// OnRoot registers a handler at the document root. It never fails.
func (d *DOM) OnRoot(event string, h Handler) {
	d.tree.Listen(d.scopeNode(), event, h)
}

// Fire synthesizes an event of the given name on the resolved target and
// invokes its handlers in registration order.
func (d *DOM) Fire(t Target, event string) error {
	n, err := d.lookup("fire", t)
	if err != nil {
		return err
	}
	d.tree.Dispatch(n, event)
	return nil
}

// FireRoot synthesizes an event on the document root.
func (d *DOM) FireRoot(event string) {
	d.tree.Dispatch(d.scopeNode(), event)
}

// Each invokes fn(node, index) for every member of the resolved
// collection, in document/collection order, and returns the collection.
func (d *DOM) Each(t Target, fn func(Node, int)) ([]Node, error) {
	nodes, err := d.GetAll(t)
	if err != nil {
		return nil, err
	}
	for i, n := range nodes {
		fn(n, i)
	}
	return nodes, nil
}

// --- Resource loading ---

// Load injects an external resource node under the document head, at most
// once: when props carries an id that already resolves anywhere in the
// tree, the existing node is returned untouched. A ".css" source yields a
// stylesheet link node; anything else yields a script node.
func (d *DOM) Load(src string, props AttrMap) (Node, error) {
	head := d.tree.Head()
	if head == nil {
		head = d.tree.Root()
	}
	return d.LoadIn(Ref(head), src, props)
}

// LoadIn is Load with an explicit parent.
func (d *DOM) LoadIn(parent Target, src string, props AttrMap) (Node, error) {
	if id, ok := props["id"].(string); ok && id != "" {
		if n := d.tree.ElementByID(id); n != nil {
			return n, nil
		}
	}
	attrs := make(AttrMap, len(props)+2)
	for k, v := range props {
		attrs[k] = v
	}
	tag := "script"
	if strings.HasSuffix(src, ".css") {
		tag = "link"
		attrs["rel"] = "stylesheet"
		attrs["href"] = src
	} else {
		attrs["src"] = src
	}
	return d.CreateIn(parent, LastChild, tag, attrs)
}

// --- Capabilities ---

// XPath resolves an XPath expression if the underlying tree supports it.
func (d *DOM) XPath(expr string) ([]Node, error) {
	q, ok := d.tree.(XPathQuerier)
	if !ok {
		return nil, errors.New("tree does not support xpath queries")
	}
	return q.QueryXPath(d.scopeNode(), expr)
}

// Watch observes changes in the tree's backing source if supported.
func (d *DOM) Watch(ctx context.Context) (<-chan SourceEvent, error) {
	w, ok := d.tree.(Watchable)
	if !ok {
		return nil, errors.New("tree does not support watching")
	}
	return w.Watch(ctx)
}

// Render writes the serialized document to w.
func (d *DOM) Render(w io.Writer) error {
	return d.tree.Render(w)
}
