package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Render serializes a tree to markup text. nl is written before every node
// except the very first, indent is repeated once per nesting depth after
// each newline. Rendering with both set to the empty string yields compact
// output; there is no other difference between pretty and compact mode.
func Render(n Node, nl, indent string) string {
	var b strings.Builder
	n.prepare(&b, nl, indent, 0)
	return b.String()
}

// Display renders the element. With pretty set, nl and indent are used as
// given; otherwise they are ignored and the output is compact.
func (e *Element) Display(pretty bool, nl, indent string) string {
	if !pretty {
		nl, indent = "", ""
	}
	return Render(e, nl, indent)
}

func (e *Element) String() string {
	return e.Display(true, "\n", "  ")
}

// writePrefix writes the newline/indent prefix for a node at the given
// depth. The newline is suppressed at the very start of the output, so
// that sibling nodes at depth 0 are separated but the first is not
// preceded by an empty line.
func writePrefix(b *strings.Builder, nl, indent string, depth int) {
	if b.Len() > 0 {
		b.WriteString(nl)
	}
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

func (t *Text) prepare(b *strings.Builder, nl, indent string, depth int) {
	writePrefix(b, nl, indent, depth)
	b.WriteString(t.value)
}

func (e *Element) prepare(b *strings.Builder, nl, indent string, depth int) {
	switch e.kind {
	case KindGrouping:
		for _, c := range e.children {
			c.prepare(b, nl, indent, depth)
		}
	case KindComment:
		writePrefix(b, nl, indent, depth)
		if e.condition != "" {
			b.WriteString("<!--[if " + e.condition + "]>")
		} else {
			b.WriteString("<!--")
		}
		for _, c := range e.children {
			c.prepare(b, nl, indent, depth+1)
		}
		if len(e.children) > 0 {
			writePrefix(b, nl, indent, depth)
		}
		if e.condition != "" {
			b.WriteString("<![endif]-->")
		} else {
			b.WriteString("-->")
		}
	case KindVoid:
		writePrefix(b, nl, indent, depth)
		e.openTag(b)
	default:
		writePrefix(b, nl, indent, depth)
		e.openTag(b)
		for _, c := range e.children {
			c.prepare(b, nl, indent, depth+1)
		}
		writePrefix(b, nl, indent, depth)
		b.WriteString("</" + e.tag + ">")
	}
}

func (e *Element) openTag(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		a.render(b)
	}
	b.WriteByte('>')
}
