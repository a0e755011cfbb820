/*
Package selector runs CSS selector queries against htree trees.

Queries are compiled with the cascadia selector engine. The tree is
mirrored into the node type of golang.org/x/net/html for matching, and
matches are mapped back onto the original htree nodes, so callers receive
the very *htree.Element values they built. Containers are transparent to
selectors: their children count as children of the enclosing element.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/htree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces to key 'htree.selector'.
func tracer() tracing.Trace {
	return tracing.Select("htree.selector")
}

// QueryAll returns every node in the subtree under root matching the CSS
// selector query, in document order. An invalid selector returns an error.
func QueryAll(root htree.Node, query string) ([]htree.Node, error) {
	sel, err := cascadia.Compile(query)
	if err != nil {
		return nil, err
	}
	index := make(map[*html.Node]htree.Node)
	doc := &html.Node{Type: html.DocumentNode}
	appendMirrored(doc, root, index)
	var hits []htree.Node
	for _, m := range sel.MatchAll(doc) {
		if n, ok := index[m]; ok {
			hits = append(hits, n)
		}
	}
	tracer().Debugf("query %q matched %d nodes", query, len(hits))
	return hits, nil
}

// Query returns the first node matching the CSS selector query, or nil.
func Query(root htree.Node, query string) (htree.Node, error) {
	hits, err := QueryAll(root, query)
	if err != nil || len(hits) == 0 {
		return nil, err
	}
	return hits[0], nil
}

// appendMirrored appends the mirror image of n to parent, recording the
// mapping from mirror to original in index. Containers contribute their
// children without a node of their own.
func appendMirrored(parent *html.Node, n htree.Node, index map[*html.Node]htree.Node) {
	switch x := n.(type) {
	case *htree.Text:
		m := &html.Node{Type: html.TextNode, Data: htree.Unescape(x.Value())}
		index[m] = n
		parent.AppendChild(m)
	case *htree.Element:
		switch x.Kind() {
		case htree.KindGrouping:
			for _, c := range x.Children() {
				appendMirrored(parent, c, index)
			}
		case htree.KindComment:
			m := &html.Node{Type: html.CommentNode, Data: commentText(x)}
			index[m] = n
			parent.AppendChild(m)
		default:
			if strings.HasPrefix(x.Tag(), "!") {
				m := &html.Node{Type: html.DoctypeNode, Data: x.Tag()}
				index[m] = n
				parent.AppendChild(m)
				return
			}
			m := &html.Node{
				Type:     html.ElementNode,
				Data:     x.Tag(),
				DataAtom: atom.Lookup([]byte(x.Tag())),
			}
			for _, a := range x.Attrs() {
				m.Attr = append(m.Attr, html.Attribute{
					Key: a.Name(),
					Val: htree.Unescape(a.Value()),
				})
			}
			index[m] = n
			parent.AppendChild(m)
			for _, c := range x.Children() {
				appendMirrored(m, c, index)
			}
		}
	}
}

func commentText(e *htree.Element) string {
	var b strings.Builder
	for _, c := range e.Children() {
		if t, ok := c.(*htree.Text); ok {
			b.WriteString(htree.Unescape(t.Value()))
		}
	}
	return b.String()
}
