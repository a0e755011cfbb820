package htmldbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/htree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	tree := htree.Div(
		htree.ID("main"),
		htree.P("hello"),
		htree.Hr(),
	)
	dump := Dump(tree)
	t.Logf("dump =\n%s", dump)
	for _, want := range []string{`<div id="main">`, "<p>", `"hello"`, "<hr>"} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %s", want)
		}
	}
}

func TestDumpGroupAndComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	tree := htree.Container(htree.CondComment("lt IE 9", htree.P("x")))
	dump := Dump(tree)
	if !strings.Contains(dump, "(group)") {
		t.Errorf("expected group label in dump:\n%s", dump)
	}
	if !strings.Contains(dump, "<!--[if lt IE 9]>") {
		t.Errorf("expected conditional comment label in dump:\n%s", dump)
	}
}

func TestDiff(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	a := htree.P("same")
	b := htree.P("same")
	if d := Diff(a, b); d != "" {
		t.Errorf("expected empty diff for identical trees, got %q", d)
	}
	c := htree.P("different")
	if d := Diff(a, c); d == "" {
		t.Error("expected non-empty diff for differing trees")
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	if !Equal(htree.Div(htree.P("x")), htree.Div(htree.P("x"))) {
		t.Error("expected structurally identical trees to be equal")
	}
	if Equal(htree.Div(htree.P("x")), htree.Div(htree.P("y"))) {
		t.Error("expected differing trees to be unequal")
	}
}
