package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/htree/catalog"
)

// ElemKind discriminates the structural behavior of an element.
type ElemKind uint8

const (
	KindNormal   ElemKind = iota // open tag, children, closing tag
	KindVoid                     // self-closing, no children, no closing tag
	KindGrouping                 // no tags of its own, children at the same depth
	KindComment                  // comment delimiters, optional condition
)

// Element is an inner node of the tree: a tag, an ordered attribute list
// and an ordered child list. Elements are created with New or one of the
// tag constructors (Div, P, Span, …) and grow by ingesting content.
type Element struct {
	scoped
	tag       string
	kind      ElemKind
	condition string // conditional comment, e.g. "lt IE 9"
	children  []Node
	attrs     []*Attribute
}

// New creates an element for the given tag and ingests content (see Add).
// The tag name is normalized and resolved against the catalog, which
// decides whether the element is self-closing; unknown tags panic with
// ErrUnknownTag.
func New(tag string, content ...any) *Element {
	key := normalizeKey(tag)
	spec, ok := catalog.LookupTag(key)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownTag, key))
	}
	kind := KindNormal
	if spec.Void {
		kind = KindVoid
	}
	e := &Element{tag: key, kind: kind}
	return e.Add(content...)
}

// Container creates a grouping element: it has no tag and no attributes
// and renders its children at its own depth. Containers hold multi-node
// results, e.g. the two operands of Concat.
func Container(content ...any) *Element {
	e := &Element{kind: KindGrouping}
	return e.Add(content...)
}

// Comment creates a comment node, rendered as <!-- … -->.
func Comment(content ...any) *Element {
	e := &Element{kind: KindComment}
	return e.Add(content...)
}

// CondComment creates a conditional comment,
// rendered as <!--[if condition]> … <![endif]-->.
func CondComment(condition string, content ...any) *Element {
	e := &Element{kind: KindComment, condition: condition}
	return e.Add(content...)
}

// Add ingests content into the element and returns the element. Each item
// may be
//
//   - an *Element or *Text, appended as a child,
//   - an *Attribute, attached to the element,
//   - a scalar (string, int, float64), wrapped in a text node,
//   - a []any or []Node, flattened and ingested item by item,
//   - nil, which is skipped.
//
// Items pending in an open scope are claimed, so the enclosing scope will
// not flush them a second time. Adding an element to itself appends a deep
// copy. Add validates structure as it goes and panics with one of the
// sentinel errors: child content on a self-closing element and attributes
// on a container or comment are ErrIllegalComposition, a repeated
// attribute key is ErrDuplicateAttribute, an attribute outside its allowed
// tags is ErrAttributeNotAllowed, anything else is ErrBadValue.
func (e *Element) Add(content ...any) *Element {
	for _, item := range content {
		e.ingest(item)
	}
	return e
}

func (e *Element) ingest(item any) {
	switch x := item.(type) {
	case nil:
		return
	case *Element:
		claimPending(x)
		if x == e {
			x = x.Clone().(*Element)
		}
		e.appendChild(x)
	case *Text:
		claimPending(x)
		e.appendChild(x)
	case *Attribute:
		claimPending(x)
		if err := e.attach(x); err != nil {
			panic(err)
		}
	case []any:
		for _, sub := range x {
			e.ingest(sub)
		}
	case []Node:
		for _, sub := range x {
			e.ingest(sub)
		}
	default:
		s, ok := textValue(item)
		if !ok {
			panic(fmt.Errorf("%w: type %T as element content", ErrBadValue, item))
		}
		e.appendChild(&Text{value: Escape(s)})
	}
}

func (e *Element) appendChild(n Node) {
	if e.kind == KindVoid {
		panic(fmt.Errorf("%w: self-closing <%s> cannot have content", ErrIllegalComposition, e.tag))
	}
	e.children = append(e.children, n)
}

// attach adds an attribute, keeping keys unique. Distinct suffixed keys of
// a dashed family may coexist.
func (e *Element) attach(a *Attribute) error {
	if e.kind == KindGrouping || e.kind == KindComment {
		return fmt.Errorf("%w: attribute %q on an element without a tag", ErrIllegalComposition, a.Name())
	}
	if !a.allowedIn(e.tag) {
		return fmt.Errorf("%w: %q in <%s>", ErrAttributeNotAllowed, a.Name(), e.tag)
	}
	key := a.Name()
	for _, present := range e.attrs {
		if present.Name() == key {
			return fmt.Errorf("%w: %q in <%s>", ErrDuplicateAttribute, key, e.tag)
		}
	}
	e.attrs = append(e.attrs, a)
	return nil
}

// --- Accessors --------------------------------------------------------

// Tag returns the normalized tag name; it is empty for containers and
// comments.
func (e *Element) Tag() string {
	return e.tag
}

// Kind returns the structural kind of the element.
func (e *Element) Kind() ElemKind {
	return e.kind
}

// Condition returns the condition string of a conditional comment; it is
// empty for all other kinds.
func (e *Element) Condition() string {
	return e.condition
}

// ChildCount returns the number of child nodes.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// ChildAt returns the child at index i, or ErrIndexRange.
func (e *Element) ChildAt(i int) (Node, error) {
	if i < 0 || i >= len(e.children) {
		return nil, fmt.Errorf("%w: %d with %d children", ErrIndexRange, i, len(e.children))
	}
	return e.children[i], nil
}

// ChildRange returns a copy of the children in [i, j), or ErrIndexRange.
func (e *Element) ChildRange(i, j int) ([]Node, error) {
	if i < 0 || j < i || j > len(e.children) {
		return nil, fmt.Errorf("%w: [%d:%d] with %d children", ErrIndexRange, i, j, len(e.children))
	}
	return append([]Node(nil), e.children[i:j]...), nil
}

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	return append([]Node(nil), e.children...)
}

// Attr returns the attribute stored under the given key, or ErrNoAttribute.
func (e *Element) Attr(name string) (*Attribute, error) {
	key := normalizeKey(name)
	for _, a := range e.attrs {
		if a.Name() == key {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q in <%s>", ErrNoAttribute, key, e.tag)
}

// Attrs returns a copy of the attribute list, in insertion order.
func (e *Element) Attrs() []*Attribute {
	return append([]*Attribute(nil), e.attrs...)
}

// --- Mutators ---------------------------------------------------------
//
// The mutators return errors instead of panicking; they are the API for
// callers transforming trees from unchecked input.

// SetAttr sets an attribute, replacing any attribute stored under the same
// key. Structural rules still apply.
func (e *Element) SetAttr(a *Attribute) error {
	claimPending(a)
	key := a.Name()
	for i, present := range e.attrs {
		if present.Name() == key {
			e.attrs[i] = a
			return nil
		}
	}
	return e.attach(a)
}

// RemoveAttr deletes the attribute stored under the given key, or returns
// ErrNoAttribute.
func (e *Element) RemoveAttr(name string) error {
	key := normalizeKey(name)
	for i, a := range e.attrs {
		if a.Name() == key {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q in <%s>", ErrNoAttribute, key, e.tag)
}

// SetChildAt replaces the child at index i.
func (e *Element) SetChildAt(i int, n Node) error {
	if i < 0 || i >= len(e.children) {
		return fmt.Errorf("%w: %d with %d children", ErrIndexRange, i, len(e.children))
	}
	claimPending(n)
	e.children[i] = n
	return nil
}

// InsertChildAt inserts a child before index i; i may equal ChildCount,
// which appends.
func (e *Element) InsertChildAt(i int, n Node) error {
	if i < 0 || i > len(e.children) {
		return fmt.Errorf("%w: %d with %d children", ErrIndexRange, i, len(e.children))
	}
	if e.kind == KindVoid {
		return fmt.Errorf("%w: self-closing <%s> cannot have content", ErrIllegalComposition, e.tag)
	}
	claimPending(n)
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = n
	return nil
}

// RemoveChildAt deletes the child at index i.
func (e *Element) RemoveChildAt(i int) error {
	if i < 0 || i >= len(e.children) {
		return fmt.Errorf("%w: %d with %d children", ErrIndexRange, i, len(e.children))
	}
	e.children = append(e.children[:i], e.children[i+1:]...)
	return nil
}

// RemoveChildRange deletes the children in [i, j), or returns ErrIndexRange.
func (e *Element) RemoveChildRange(i, j int) error {
	if i < 0 || j < i || j > len(e.children) {
		return fmt.Errorf("%w: [%d:%d] with %d children", ErrIndexRange, i, j, len(e.children))
	}
	e.children = append(e.children[:i], e.children[j:]...)
	return nil
}

// --- Composition ------------------------------------------------------

// Concat composes the element with a second operand. An element operand
// produces a container holding both, side by side; text nodes, attributes
// and scalars are ingested into the receiver, which is returned.
func (e *Element) Concat(v any) *Element {
	if x, ok := v.(*Element); ok {
		claimPending(x)
		return Container(e, x)
	}
	return e.Add(v)
}

// Repeat returns a container holding n deep copies of the element.
// A negative count panics with ErrBadValue.
func (e *Element) Repeat(n int) *Element {
	if n < 0 {
		panic(fmt.Errorf("%w: repetition count %d", ErrBadValue, n))
	}
	grp := Container()
	for i := 0; i < n; i++ {
		grp.appendChild(e.Clone())
	}
	return grp
}

// Clone is part of interface Node. The copy is deep and detached from any
// context.
func (e *Element) Clone() Node {
	dup := &Element{tag: e.tag, kind: e.kind, condition: e.condition}
	for _, c := range e.children {
		dup.children = append(dup.children, c.Clone())
	}
	for _, a := range e.attrs {
		dup.attrs = append(dup.attrs, a.Clone())
	}
	return dup
}
