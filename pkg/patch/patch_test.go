package patch

import (
	"strings"
	"testing"

	"github.com/aretw0/domkit/pkg/adapters/nethtml"
	"github.com/aretw0/domkit/pkg/core"
)

func newDOM(t *testing.T, markup string) *core.DOM {
	t.Helper()
	tree, err := nethtml.ParseString(markup, nethtml.Config{})
	if err != nil {
		t.Fatalf("Failed to parse markup: %v", err)
	}
	return core.NewDOM(tree, core.Config{})
}

func mustLoad(t *testing.T, manifest string) *Manifest {
	t.Helper()
	m, err := Load(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("Failed to load manifest: %v", err)
	}
	return m
}

func TestLoad(t *testing.T) {
	t.Run("Parses Ops In Order", func(t *testing.T) {
		m := mustLoad(t, `
ops:
  - do: update
    target: "#msg"
    content: hello
  - do: hide
    target: "#spinner"
`)
		if len(m.Ops) != 2 {
			t.Fatalf("Expected 2 ops, got %d", len(m.Ops))
		}
		if m.Ops[0].Do != "update" || m.Ops[1].Do != "hide" {
			t.Error("Expected source order preserved")
		}
	})

	t.Run("Malformed Yaml Is An Error", func(t *testing.T) {
		if _, err := Load(strings.NewReader("ops: [")); err == nil {
			t.Error("Expected error for malformed yaml")
		}
	})

	t.Run("Missing File Is An Error", func(t *testing.T) {
		if _, err := LoadFile("/nonexistent/manifest.yaml"); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("Runs Every Op", func(t *testing.T) {
		d := newDOM(t, `
			<div id="msg">old</div>
			<div id="spinner">...</div>
			<button id="go">Go</button>
			<ul id="list"><li>a</li></ul>`)

		m := mustLoad(t, `
ops:
  - do: update
    target: "#msg"
    content: "<b>new</b>"
  - do: hide
    target: "#spinner"
  - do: disable
    target: "#go"
  - do: append
    target: "#list"
    markup: "<li>b</li>"
  - do: set-attr
    target: "#msg"
    name: role
    value: status
  - do: style
    target: "#msg"
    styles:
      color: red
`)
		applied, err := m.Apply(d)
		if err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if applied != 6 {
			t.Errorf("Expected 6 ops applied, got %d", applied)
		}

		if txt, _ := d.Text(core.Sel("#msg")); txt != "new" {
			t.Errorf("Expected updated content, got %q", txt)
		}
		if !d.Exists(core.Sel("#spinner.hidden")) {
			t.Error("Expected spinner hidden")
		}
		if !d.Exists(core.Sel("#go[disabled]")) {
			t.Error("Expected button disabled")
		}
		if !d.Exists(core.Sel("#list li:nth-child(2)")) {
			t.Error("Expected appended item")
		}
		if v, ok, _ := d.Attr(core.Sel("#msg"), "role"); !ok || v != "status" {
			t.Errorf("Expected role=status, got %q", v)
		}
		if v, _, _ := d.Attr(core.Sel("#msg"), "style"); v != "color: red" {
			t.Errorf("Expected inline style, got %q", v)
		}
	})

	t.Run("Fail Fast Reports Op Index", func(t *testing.T) {
		d := newDOM(t, `<div id="a">x</div>`)
		m := mustLoad(t, `
ops:
  - do: hide
    target: "#a"
  - do: hide
    target: "#missing"
  - do: show
    target: "#a"
`)
		applied, err := m.Apply(d)
		if err == nil {
			t.Fatal("Expected failure on the second op")
		}
		if applied != 1 {
			t.Errorf("Expected 1 op applied before failure, got %d", applied)
		}
		if !strings.Contains(err.Error(), "op 1") {
			t.Errorf("Expected the op index in the error, got %q", err)
		}
		// The later show op must not have run.
		if !d.Exists(core.Sel("#a.hidden")) {
			t.Error("Expected the first hide to stick")
		}
	})

	t.Run("Unknown Op Is An Error", func(t *testing.T) {
		d := newDOM(t, "<p></p>")
		m := mustLoad(t, "ops:\n  - do: explode\n")
		if _, err := m.Apply(d); err == nil {
			t.Error("Expected error for unknown op")
		}
	})

	t.Run("Update With Options Fills Select", func(t *testing.T) {
		d := newDOM(t, `<select id="s"></select>`)
		m := mustLoad(t, `
ops:
  - do: update
    target: "#s"
    options: ["a", "b"]
`)
		if _, err := m.Apply(d); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		opts, err := d.GetAll(core.Sel("#s option"))
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(opts) != 2 {
			t.Errorf("Expected 2 options, got %d", len(opts))
		}
	})

	t.Run("Create Under Parent", func(t *testing.T) {
		d := newDOM(t, `<div id="host"></div>`)
		m := mustLoad(t, `
ops:
  - do: create
    tag: span
    parent: "#host"
    attrs:
      class: badge
`)
		if _, err := m.Apply(d); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if !d.Exists(core.Sel("#host > span.badge")) {
			t.Error("Expected created element under the parent")
		}
	})

	t.Run("Create Without Tag Fails", func(t *testing.T) {
		d := newDOM(t, "<p></p>")
		m := mustLoad(t, "ops:\n  - do: create\n")
		if _, err := m.Apply(d); err == nil {
			t.Error("Expected error for create without tag")
		}
	})

	t.Run("Load Is Idempotent", func(t *testing.T) {
		d := newDOM(t, "<html><head></head><body></body></html>")
		m := mustLoad(t, `
ops:
  - do: load
    src: /app.js
    id: app
  - do: load
    src: /app.js
    id: app
`)
		if _, err := m.Apply(d); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		scripts, err := d.GetAll(core.Sel("script#app"))
		if err != nil {
			t.Fatalf("GetAll failed: %v", err)
		}
		if len(scripts) != 1 {
			t.Errorf("Expected a single injected script, got %d", len(scripts))
		}
	})

	t.Run("Class Ops Require A Class", func(t *testing.T) {
		d := newDOM(t, `<div id="a">x</div>`)
		for _, do := range []string{"add-class", "remove-class"} {
			m := mustLoad(t, "ops:\n  - do: "+do+"\n    target: \"#a\"\n")
			_, err := m.Apply(d)
			if err == nil {
				t.Errorf("Expected %s without a class to fail", do)
			}
			if d.Exists(core.Sel("#a.hidden")) {
				t.Errorf("Expected %s not to touch the hidden marker", do)
			}
		}
	})

	t.Run("Toggle Honors Explicit Force", func(t *testing.T) {
		d := newDOM(t, `<div id="a" class="on">x</div>`)
		m := mustLoad(t, `
ops:
  - do: toggle
    target: "#a"
    class: "on"
    force: true
`)
		if _, err := m.Apply(d); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
		if !d.Exists(core.Sel("#a.on")) {
			t.Error("Expected forced toggle to keep the class")
		}
	})
}
