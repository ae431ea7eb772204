package nethtml

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/domkit/pkg/core"
)

func writeDoc(t *testing.T, path, markup string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		t.Fatalf("Failed to write document: %v", err)
	}
}

func waitForEvent(t *testing.T, events <-chan core.SourceEvent, want core.SourceEventType) core.SourceEvent {
	t.Helper()
	select {
	case e := <-events:
		if e.Type != want {
			t.Fatalf("Expected %s event, got %s", want, e.Type)
		}
		return e
	case <-time.After(5 * time.Second):
		t.Fatalf("Timed out waiting for %s event", want)
		return core.SourceEvent{}
	}
}

func TestWatch(t *testing.T) {
	t.Run("Requires Backing File", func(t *testing.T) {
		tree := mustParse(t, "<p>hi</p>")
		if _, err := tree.Watch(context.Background()); err == nil {
			t.Error("Expected error for a tree without a backing file")
		}
	})

	t.Run("Reloads On Write", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "doc.html")
		writeDoc(t, file, `<p id="msg">before</p>`)

		tree, err := Open(file, Config{})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		events, err := tree.Watch(ctx)
		if err != nil {
			t.Fatalf("Watch failed: %v", err)
		}

		writeDoc(t, file, `<p id="msg">after</p>`)
		e := waitForEvent(t, events, core.SourceReload)
		if e.Path != file {
			t.Errorf("Expected event path %q, got %q", file, e.Path)
		}

		msg, err := tree.QueryOne(nil, "#msg")
		if err != nil || msg == nil {
			t.Fatalf("Expected the reloaded node, got err=%v", err)
		}
		if got := tree.Text(msg); got != "after" {
			t.Errorf("Expected reloaded content, got %q", got)
		}
	})

	t.Run("Reload Drops Listeners And Focus", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "doc.html")
		writeDoc(t, file, `<input id="q">`)

		tree, err := Open(file, Config{})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		input := mustQuery(t, tree, "#q")
		tree.Focus(input)
		tree.Listen(input, "change", func(core.Event) {
			t.Error("Stale handler must not survive a reload")
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		events, err := tree.Watch(ctx)
		if err != nil {
			t.Fatalf("Watch failed: %v", err)
		}

		writeDoc(t, file, `<input id="q" value="new">`)
		waitForEvent(t, events, core.SourceReload)

		if tree.Focused() != nil {
			t.Error("Expected focus dropped with the old document")
		}
		fresh := mustQuery(t, tree, "#q")
		tree.Dispatch(fresh, "change")
	})

	t.Run("Remove Emits Remove Event", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "doc.html")
		writeDoc(t, file, "<p>hi</p>")

		tree, err := Open(file, Config{})
		if err != nil {
			t.Fatalf("Open failed: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		events, err := tree.Watch(ctx)
		if err != nil {
			t.Fatalf("Watch failed: %v", err)
		}

		if err := os.Remove(file); err != nil {
			t.Fatal(err)
		}
		waitForEvent(t, events, core.SourceRemove)
	})
}
