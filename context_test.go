package htree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScopeFlushOrdering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	div := Div("first")
	c.Enter(div)
	Register(c, Span("second"))
	Register(c, NewText("third"))
	c.Exit()
	if div.ChildCount() != 3 {
		t.Fatalf("expected 3 children after flush, have %d", div.ChildCount())
	}
	got := div.Display(false, "", "")
	want := "<div>first<span>second</span>third</div>"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestScopeHelper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	p := c.Scope(P(), func() {
		Register(c, NewText("inside"))
	})
	if p.ChildCount() != 1 {
		t.Errorf("expected scope body content to be flushed, have %d children", p.ChildCount())
	}
	if c.Depth() != 0 {
		t.Errorf("expected all scopes closed, depth is %d", c.Depth())
	}
}

func TestNestedScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	outer := Div()
	c.Enter(outer)
	inner := Register(c, Ul())
	c.Enter(inner)
	Register(c, Li("a"))
	Register(c, Li("b"))
	c.Exit()
	c.Exit()
	got := outer.Display(false, "", "")
	want := "<div><ul><li>a</li><li>b</li></ul></div>"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestExplicitAddClaimsPending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	div := Div()
	c.Enter(div)
	sp := Register(c, Span("once"))
	wrapper := Register(c, P(sp)) // consumes the pending span
	c.Exit()
	if div.ChildCount() != 1 {
		t.Fatalf("expected only the wrapper to be flushed, have %d children", div.ChildCount())
	}
	if wrapper.ChildCount() != 1 {
		t.Errorf("expected the span inside the wrapper, have %d children", wrapper.ChildCount())
	}
}

func TestClaimOnlySearchesInnermostScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	outer := Div()
	c.Enter(outer)
	sp := Register(c, Span("outer-pending"))
	inner := Register(c, P())
	c.Enter(inner)
	Register(c, sp) // re-register in the inner scope, claimed from there
	c.Exit()
	c.Exit()
	// the span was flushed into inner only once, outer kept its own entry
	if inner.ChildCount() != 1 {
		t.Errorf("expected span flushed into inner scope, have %d children", inner.ChildCount())
	}
}

func TestRegisterWithoutScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	sp := Register(c, Span("free"))
	if sp.pendingCtx() != nil {
		t.Error("expected registration without open scope to be a no-op")
	}
}

func TestExitWithoutScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	expectPanic(t, ErrNoScope, func() {
		c.Exit()
	})
}

func TestIndependentContexts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c1, c2 := NewCtx(), NewCtx()
	d1, d2 := Div(), Div()
	c1.Enter(d1)
	c2.Enter(d2)
	Register(c1, NewText("one"))
	Register(c2, NewText("two"))
	c2.Exit()
	c1.Exit()
	if d1.Display(false, "", "") != "<div>one</div>" {
		t.Errorf("context 1 leaked, got %s", d1.Display(false, "", ""))
	}
	if d2.Display(false, "", "") != "<div>two</div>" {
		t.Errorf("context 2 leaked, got %s", d2.Display(false, "", ""))
	}
}

func TestFindDetachesPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	c := NewCtx()
	div := Div(P("hit"))
	c.Enter(div)
	pattern := Register(c, P())
	hits := Find(div, pattern)
	c.Exit()
	if len(hits) != 1 {
		t.Errorf("expected 1 match, have %d", len(hits))
	}
	// probe must not have been flushed into the scope owner
	if div.ChildCount() != 1 {
		t.Errorf("expected probe to stay out of the tree, have %d children", div.ChildCount())
	}
}
