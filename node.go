package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Buildable is anything that can be registered with a builder context:
// elements, text nodes and attributes. A buildable has at most one logical
// owner at any time: either it is pending in an open scope, or it has been
// claimed as a child/attribute of exactly one element, never both.
type Buildable interface {
	pendingCtx() *Ctx
	setPendingCtx(*Ctx)
}

// scoped carries the pending-context stamp shared by all node types.
type scoped struct {
	pending *Ctx
}

func (s *scoped) pendingCtx() *Ctx     { return s.pending }
func (s *scoped) setPendingCtx(c *Ctx) { s.pending = c }

// Node is a unit of the tree that can be rendered: an *Element or a *Text.
// Attributes are buildable but are not tree nodes.
type Node interface {
	Buildable
	fmt.Stringer
	// Clone returns a deep copy, detached from any context.
	Clone() Node
	prepare(b *strings.Builder, nl, indent string, depth int)
}

// Escape replaces the characters & < > ' " by their character references.
// All text and attribute values are escaped on write.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Unescape is the exact inverse of Escape.
func Unescape(s string) string {
	return html.UnescapeString(s)
}

// textValue coerces a scalar into its text form. The boolean result is
// false for unsupported types.
func textValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case *Text:
		return Unescape(x.value), true
	}
	return "", false
}

// --- Text ------------------------------------------------------------

// Text is a leaf node wrapping an escaped string value.
type Text struct {
	scoped
	value string
}

// NewText creates a text node from a scalar (string, int, float64), an
// existing *Text, or nil (empty text). The value is escaped on write.
// Unsupported types panic with ErrBadValue.
func NewText(v any) *Text {
	s, ok := textValue(v)
	if !ok {
		panic(fmt.Errorf("%w: type %T for text node value", ErrBadValue, v))
	}
	return &Text{value: Escape(s)}
}

// Append appends further text to the node, escaping scalar input. Only
// scalars and *Text may be appended; anything else panics with ErrBadValue.
func (t *Text) Append(vals ...any) *Text {
	for _, v := range vals {
		if other, ok := v.(*Text); ok {
			t.value += other.value // already escaped
			continue
		}
		s, ok := textValue(v)
		if !ok {
			panic(fmt.Errorf("%w: into a text node you can only add more text, got %T", ErrBadValue, v))
		}
		t.value += Escape(s)
	}
	return t
}

// Value returns the escaped text value.
func (t *Text) Value() string {
	return t.value
}

// Len returns the length of the escaped value.
func (t *Text) Len() int {
	return len(t.value)
}

// Clone is part of interface Node.
func (t *Text) Clone() Node {
	return &Text{value: t.value}
}

func (t *Text) String() string {
	return t.value
}
