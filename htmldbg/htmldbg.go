/*
Package htmldbg provides debugging helpers for htree trees: a textual
tree dump and a rendered-markup diff, intended for test failure output
and interactive inspection.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldbg

import (
	"strconv"
	"strings"

	"github.com/npillmayer/htree"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/xlab/treeprint"
)

// Dump formats the tree under n as an indented ASCII tree, one line per
// node, text values quoted.
func Dump(n htree.Node) string {
	tp := treeprint.New()
	addNode(tp, n)
	return tp.String()
}

func addNode(tr treeprint.Tree, n htree.Node) {
	switch x := n.(type) {
	case *htree.Text:
		tr.AddNode(strconv.Quote(x.Value()))
	case *htree.Element:
		if x.ChildCount() == 0 {
			tr.AddNode(label(x))
			return
		}
		br := tr.AddBranch(label(x))
		for _, c := range x.Children() {
			addNode(br, c)
		}
	}
}

func label(e *htree.Element) string {
	switch e.Kind() {
	case htree.KindGrouping:
		return "(group)"
	case htree.KindComment:
		if cond := e.Condition(); cond != "" {
			return "<!--[if " + cond + "]>"
		}
		return "<!-- -->"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Tag())
	for _, a := range e.Attrs() {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte('>')
	return b.String()
}

// Diff compares the pretty renderings of two trees and returns a
// character-level diff, or the empty string if they render identically.
func Diff(want, got htree.Node) string {
	w := htree.Render(want, "\n", "  ")
	g := htree.Render(got, "\n", "  ")
	if w == g {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(w, g, false)
	return dmp.DiffPrettyText(diffs)
}

// Equal reports whether two trees render to identical markup.
func Equal(a, b htree.Node) bool {
	return htree.Render(a, "", "") == htree.Render(b, "", "")
}
