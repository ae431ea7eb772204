package nethtml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/domkit/pkg/core"
)

func mustParse(t *testing.T, markup string) *Tree {
	t.Helper()
	tree, err := ParseString(markup, Config{})
	if err != nil {
		t.Fatalf("Failed to parse markup: %v", err)
	}
	return tree
}

func mustQuery(t *testing.T, tree *Tree, selector string) core.Node {
	t.Helper()
	n, err := tree.QueryOne(nil, selector)
	if err != nil {
		t.Fatalf("Query %q failed: %v", selector, err)
	}
	if n == nil {
		t.Fatalf("Query %q matched nothing", selector)
	}
	return n
}

func TestParse(t *testing.T) {
	t.Run("Minimal Document", func(t *testing.T) {
		tree := mustParse(t, "<p>hi</p>")
		if tree.Root() == nil {
			t.Fatal("Expected a document root")
		}
		// The parser normalizes into a full document.
		if tree.Head() == nil {
			t.Error("Expected a synthesized head")
		}
		if tree.Body() == nil {
			t.Error("Expected a synthesized body")
		}
	})

	t.Run("Open Remembers Path", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "doc.html")
		if err := os.WriteFile(file, []byte("<p>hi</p>"), 0644); err != nil {
			t.Fatal(err)
		}
		tree, err := Open(file, Config{})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if tree.config.Path != file {
			t.Errorf("Expected path %q remembered, got %q", file, tree.config.Path)
		}
	})

	t.Run("Open Missing File", func(t *testing.T) {
		if _, err := Open(filepath.Join(t.TempDir(), "absent.html"), Config{}); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

func TestCreateElement(t *testing.T) {
	tree := mustParse(t, "<p></p>")

	n := tree.CreateElement("DIV")
	if got := tree.TagName(n); got != "div" {
		t.Errorf("Expected lower-case tag, got %q", got)
	}

	// Unknown elements still construct.
	custom := tree.CreateElement("x-widget")
	if got := tree.TagName(custom); got != "x-widget" {
		t.Errorf("Expected x-widget, got %q", got)
	}
}

func TestElementByID(t *testing.T) {
	tree := mustParse(t, `<div id="plain">x</div><script id="app.v2"></script>`)

	t.Run("Literal Match", func(t *testing.T) {
		n := tree.ElementByID("plain")
		if n == nil || tree.TagName(n) != "div" {
			t.Fatal("Expected the div resolved by id")
		}
	})

	t.Run("Selector-Significant Characters", func(t *testing.T) {
		n := tree.ElementByID("app.v2")
		if n == nil || tree.TagName(n) != "script" {
			t.Fatal("Expected a dotted id resolved literally")
		}
		// The selector engine reads the same string as id + class.
		if m, err := tree.QueryOne(nil, "#app.v2"); err != nil || m != nil {
			t.Errorf("Expected the selector form not to match, got %v (err=%v)", m, err)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		if tree.ElementByID("absent") != nil {
			t.Error("Expected nil for an unknown id")
		}
		if tree.ElementByID("") != nil {
			t.Error("Expected nil for an empty id")
		}
	})
}

func TestTagName(t *testing.T) {
	tree := mustParse(t, "<p>hi</p>")

	if got := tree.TagName(mustQuery(t, tree, "p")); got != "p" {
		t.Errorf("Expected p, got %q", got)
	}
	if got := tree.TagName(nil); got != "" {
		t.Errorf("Expected empty tag for nil handle, got %q", got)
	}
	if got := tree.TagName("not a node"); got != "" {
		t.Errorf("Expected empty tag for foreign handle, got %q", got)
	}
}

func TestAttrOps(t *testing.T) {
	tree := mustParse(t, `<a href="" id="link">x</a>`)
	link := mustQuery(t, tree, "#link")

	t.Run("Empty Value Is Present", func(t *testing.T) {
		v, ok := tree.Attr(link, "href")
		if !ok || v != "" {
			t.Errorf("Expected present empty href, got %q (ok=%v)", v, ok)
		}
	})

	t.Run("Unset Is Absent", func(t *testing.T) {
		if _, ok := tree.Attr(link, "title"); ok {
			t.Error("Expected absent title")
		}
	})

	t.Run("Set Replaces In Place", func(t *testing.T) {
		tree.SetAttr(link, "href", "/a")
		tree.SetAttr(link, "href", "/b")
		v, _ := tree.Attr(link, "href")
		if v != "/b" {
			t.Errorf("Expected /b, got %q", v)
		}
	})

	t.Run("Remove Clears Presence", func(t *testing.T) {
		tree.RemoveAttr(link, "href")
		if _, ok := tree.Attr(link, "href"); ok {
			t.Error("Expected href removed")
		}
		// Removing again is a no-op.
		tree.RemoveAttr(link, "href")
	})
}

func TestDetach(t *testing.T) {
	tree := mustParse(t, `<ul><li id="a">A</li><li id="b">B</li></ul>`)

	item := mustQuery(t, tree, "#a")
	tree.Detach(item)

	if n, _ := tree.QueryOne(nil, "#a"); n != nil {
		t.Error("Expected detached node to stop matching")
	}
	if n, _ := tree.QueryOne(nil, "#b"); n == nil {
		t.Error("Expected sibling to survive")
	}

	// Detaching again is a no-op.
	tree.Detach(item)

	t.Run("Detached Node Loses Focus", func(t *testing.T) {
		tree := mustParse(t, `<input id="q">`)
		input := mustQuery(t, tree, "#q")
		if !tree.Focus(input) {
			t.Fatal("Expected input to acquire focus")
		}
		tree.Detach(input)
		if tree.Focused() != nil {
			t.Error("Expected focus cleared on detach")
		}
	})
}
