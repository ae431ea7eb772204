package nethtml

import (
	"testing"

	"github.com/aretw0/domkit/pkg/core"
)

func TestListenDispatch(t *testing.T) {
	tree := mustParse(t, `<button id="go">Go</button>`)
	btn := mustQuery(t, tree, "#go")

	t.Run("Handlers Run In Registration Order", func(t *testing.T) {
		var order []int
		tree.Listen(btn, "click", func(core.Event) { order = append(order, 1) })
		tree.Listen(btn, "click", func(core.Event) { order = append(order, 2) })
		tree.Dispatch(btn, "click")
		if len(order) != 2 || order[0] != 1 || order[1] != 2 {
			t.Errorf("Expected [1 2], got %v", order)
		}
	})

	t.Run("Event Carries Type And Target", func(t *testing.T) {
		var got core.Event
		tree.Listen(btn, "change", func(e core.Event) { got = e })
		tree.Dispatch(btn, "change")
		if got.Type != "change" {
			t.Errorf("Expected change, got %q", got.Type)
		}
		if got.Target != btn {
			t.Error("Expected the dispatching node as target")
		}
	})

	t.Run("Other Event Types Are Isolated", func(t *testing.T) {
		fired := false
		tree.Listen(btn, "focus", func(core.Event) { fired = true })
		tree.Dispatch(btn, "blur")
		if fired {
			t.Error("Expected no cross-type dispatch")
		}
	})

	t.Run("Dispatch Without Listeners Is A No-Op", func(t *testing.T) {
		other := mustParse(t, "<p id=\"p\">x</p>")
		tree.Dispatch(mustQuery(t, other, "#p"), "click")
	})

	t.Run("Nil Handler Is Ignored", func(t *testing.T) {
		tree.Listen(btn, "submit", nil)
		tree.Dispatch(btn, "submit")
	})

	t.Run("Handler May Register During Dispatch", func(t *testing.T) {
		tree := mustParse(t, `<button id="b">x</button>`)
		b := mustQuery(t, tree, "#b")
		late := false
		tree.Listen(b, "click", func(core.Event) {
			tree.Listen(b, "click", func(core.Event) { late = true })
		})
		tree.Dispatch(b, "click")
		if late {
			t.Error("Expected late handler not to run in the same dispatch")
		}
		tree.Dispatch(b, "click")
		if !late {
			t.Error("Expected late handler to run on the next dispatch")
		}
	})
}
