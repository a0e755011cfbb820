package htree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderEmptyElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	if got := P().String(); got != "<p>\n</p>" {
		t.Errorf("expected <p>\\n</p>, got %q", got)
	}
}

func TestRenderTextChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	if got := P("Paragraph").String(); got != "<p>\n  Paragraph\n</p>" {
		t.Errorf("unexpected pretty rendering %q", got)
	}
}

func TestRenderNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	div := Div(P("a"), P("b"))
	want := "<div>\n  <p>\n    a\n  </p>\n  <p>\n    b\n  </p>\n</div>"
	if got := div.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderContainerSiblings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	grp := Em("emphasized").Concat(Hr())
	want := "<em>\n  emphasized\n</em>\n<hr>"
	if got := grp.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	in := Input(Type("text"), Required(BoolRepeated), Data("row", 1))
	want := `<input type="text" required="required" data-row="1">`
	if got := in.Display(false, "", ""); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRenderConditionalComment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	cc := CondComment("lt IE 9", P("Paragraph"))
	want := "<!--[if lt IE 9]><p>Paragraph</p><![endif]-->"
	if got := cc.Display(false, "", ""); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRenderCommentPretty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	cmt := Comment("note")
	want := "<!--\n  note\n-->"
	if got := cmt.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got := Comment().String(); got != "<!---->" {
		t.Errorf("expected empty comment to stay on one line, got %q", got)
	}
}

func TestPrettyCompactEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	trees := []*Element{
		P("Paragraph"),
		Div(P("a"), Em("b").Concat(Hr())),
		NewTable([][]any{{"h"}, {"v"}}, HeaderRow),
		CondComment("lt IE 9", P("x")),
	}
	for _, tree := range trees {
		compact := tree.Display(false, "\n", "  ")
		pretty := tree.Display(true, "", "")
		if compact != pretty {
			t.Errorf("compact %q differs from pretty-with-empty-strings %q", compact, pretty)
		}
	}
}

func TestRenderCustomWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	p := P("x")
	if got := p.Display(true, "|", "."); got != "<p>|.x|</p>" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestRenderDoctype(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	if got := Doctype().Display(false, "", ""); got != "<!DOCTYPE HTML>" {
		t.Errorf("expected <!DOCTYPE HTML>, got %q", got)
	}
	got := Doctype(XHTML11).Display(false, "", "")
	if !strings.HasPrefix(got, "<!DOCTYPE html PUBLIC") {
		t.Errorf("unexpected declaration %q", got)
	}
}

func TestDocumentSkeleton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	doc := NewDocument(P("content"))
	got := doc.Display(false, "", "")
	want := `<!DOCTYPE HTML><html><head><meta charset="utf-8"><title>Title of the page</title></head>` +
		`<body><p>content</p></body></html>`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDocumentAddGoesToBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	doc := NewDocument()
	doc.Add(H1("Hi"))
	if doc.Body().ChildCount() != 1 {
		t.Errorf("expected added content in body, have %d children", doc.Body().ChildCount())
	}
	if doc.Head().ChildCount() != 2 {
		t.Errorf("expected head untouched, have %d children", doc.Head().ChildCount())
	}
}

func TestDocumentSetters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree")
	defer teardown()
	//
	doc := NewDocument().SetTitle("My page").SetLang("en").SetDoctype(HTML401Strict)
	got := doc.Display(false, "", "")
	if !strings.Contains(got, "<title>My page</title>") {
		t.Errorf("expected replaced title, got %s", got)
	}
	if !strings.Contains(got, `<html lang="en">`) {
		t.Errorf("expected lang on html element, got %s", got)
	}
	if !strings.HasPrefix(got, "<!DOCTYPE HTML PUBLIC") {
		t.Errorf("expected strict doctype, got %s", got)
	}
}
