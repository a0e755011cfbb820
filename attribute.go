package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/htree/catalog"
)

// BoolMode selects the serialized form of a boolean attribute.
type BoolMode uint8

const (
	BoolShort    BoolMode = iota // bare key
	BoolEmpty                    // key=""
	BoolRepeated                 // key="key"
	BoolLiteral                  // key="literal"
)

// Attribute is a named value attached to an element. Attributes are
// buildable (they may be registered in a scope) but are not tree nodes.
//
// The attribute's kind is fixed by the catalog entry for its key and
// controls value coercion and serialization; see Attr, Bool, Multi and
// Dashed. Values are HTML-escaped on write.
type Attribute struct {
	scoped
	name    string // normalized base key
	suffix  string // suffix of a dashed-family key, may be empty
	kind    catalog.AttrKind
	value   string // escaped
	mode    BoolMode
	literal string // escaped, for BoolLiteral
	sep     string // value separator for multi-valued attributes
	parents []string
}

// normalizeKey maps an attribute or tag name to its catalog key:
// lower-case, trimmed, inner underscores become dashes.
func normalizeKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Trim(key, "_")
	return strings.ReplaceAll(key, "_", "-")
}

// resolveAttr looks up a (not yet normalized) attribute name in the
// catalog. Unknown names panic with ErrUnknownAttribute.
func resolveAttr(name string) (spec catalog.AttrSpec, suffix string) {
	key := normalizeKey(name)
	if family, sfx, ok := catalog.SplitDashed(key); ok {
		spec, _ = catalog.LookupAttr(family)
		return spec, sfx
	}
	spec, ok := catalog.LookupAttr(key)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownAttribute, key))
	}
	return spec, ""
}

// Attr creates an attribute from a name and a scalar value. The name is
// normalized ("Http_equiv" resolves to "http-equiv") and looked up in the
// catalog, which fixes the attribute's kind; unknown names panic with
// ErrUnknownAttribute, unsupported value types with ErrBadValue.
//
// For a key of boolean kind an empty value selects the short form and a
// non-empty value the literal form; use Bool to pick other display modes.
func Attr(name string, value any) *Attribute {
	spec, suffix := resolveAttr(name)
	s, ok := textValue(value)
	if !ok {
		panic(fmt.Errorf("%w: type %T for attribute %q", ErrBadValue, value, spec.Key))
	}
	a := &Attribute{
		name:    spec.Key,
		suffix:  suffix,
		kind:    spec.Kind,
		value:   Escape(s),
		sep:     " ",
		parents: spec.Parents,
	}
	if spec.Kind == catalog.Boolean && s != "" {
		a.mode = BoolLiteral
		a.literal = a.value
	}
	return a
}

// Bool creates a boolean attribute with an explicit display mode.
// The named catalog entry must be of boolean kind.
func Bool(name string, mode BoolMode) *Attribute {
	spec, _ := resolveAttr(name)
	if spec.Kind != catalog.Boolean {
		panic(fmt.Errorf("%w: %q is not a boolean attribute", ErrBadValue, spec.Key))
	}
	return &Attribute{name: spec.Key, kind: spec.Kind, mode: mode, parents: spec.Parents}
}

// BoolLit creates a boolean attribute serialized as key="literal".
func BoolLit(name string, literal string) *Attribute {
	a := Bool(name, BoolLiteral)
	a.literal = Escape(literal)
	return a
}

// Multi creates a multi-valued attribute with values joined by a single
// space. The named catalog entry must be of multi-valued kind.
func Multi(name string, values ...any) *Attribute {
	return MultiSep(name, " ", values...)
}

// MultiSep is Multi with an explicit value separator.
func MultiSep(name string, sep string, values ...any) *Attribute {
	spec, _ := resolveAttr(name)
	if spec.Kind != catalog.Multi {
		panic(fmt.Errorf("%w: %q is not a multi-valued attribute", ErrBadValue, spec.Key))
	}
	a := &Attribute{name: spec.Key, kind: spec.Kind, sep: sep, parents: spec.Parents}
	a.Append(values...)
	return a
}

// Dashed creates an attribute of a dashed family, e.g.
//
//	htree.Dashed("data", "row", 1)   // data-row="1"
//
// The family must be a dashed catalog entry; the suffix may be empty, in
// which case the key is the bare family name.
func Dashed(family string, suffix string, value any) *Attribute {
	key := normalizeKey(family)
	spec, ok := catalog.LookupAttr(key)
	if !ok || spec.Kind != catalog.Dashed {
		panic(fmt.Errorf("%w: %q is not a dashed attribute family", ErrUnknownAttribute, key))
	}
	s, ok := textValue(value)
	if !ok {
		panic(fmt.Errorf("%w: type %T for attribute %q", ErrBadValue, value, key))
	}
	return &Attribute{
		name:   spec.Key,
		suffix: normalizeKey(suffix),
		kind:   spec.Kind,
		value:  Escape(s),
	}
}

// Style creates a style attribute from CSS declarations. The declarations
// are parsed and re-serialized in canonical "property: value;" form;
// malformed CSS panics with ErrBadValue.
func Style(css string) *Attribute {
	src := strings.TrimSpace(css)
	if src != "" && !strings.HasSuffix(src, ";") {
		// the parser drops the value of a declaration without a terminator
		src += ";"
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		panic(fmt.Errorf("%w: style %q: %v", ErrBadValue, css, err))
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		if d.Property == "" || d.Value == "" {
			panic(fmt.Errorf("%w: style %q: incomplete declaration", ErrBadValue, css))
		}
		parts[i] = d.String()
	}
	spec, _ := catalog.LookupAttr("style")
	return &Attribute{
		name:    "style",
		kind:    spec.Kind,
		value:   Escape(strings.Join(parts, " ")),
		parents: spec.Parents,
	}
}

// Name returns the serialized attribute key, including the suffix of a
// dashed-family attribute.
func (a *Attribute) Name() string {
	if a.suffix != "" {
		return a.name + "-" + a.suffix
	}
	return a.name
}

// Value returns the escaped attribute value.
func (a *Attribute) Value() string {
	return a.value
}

// Append appends further values to the attribute, escaping scalar input.
// Multi-valued attributes join with their separator, all others
// concatenate. Non-scalar values panic with ErrBadValue.
func (a *Attribute) Append(values ...any) *Attribute {
	for _, v := range values {
		s, ok := textValue(v)
		if !ok {
			panic(fmt.Errorf("%w: into an attribute you can only add text, got %T", ErrBadValue, v))
		}
		if a.kind == catalog.Multi && a.value != "" {
			a.value += a.sep
		}
		a.value += Escape(s)
	}
	return a
}

// Clone returns a deep copy, detached from any context.
func (a *Attribute) Clone() *Attribute {
	dup := *a
	dup.pending = nil
	dup.parents = append([]string(nil), a.parents...)
	return &dup
}

// allowedIn reports whether the attribute may attach to the given tag.
// An empty parent set allows any tag.
func (a *Attribute) allowedIn(tag string) bool {
	if len(a.parents) == 0 {
		return true
	}
	for _, p := range a.parents {
		if p == tag {
			return true
		}
	}
	return false
}

// render writes the serialized form, without a leading space.
func (a *Attribute) render(b *strings.Builder) {
	key := a.Name()
	if a.kind == catalog.Boolean {
		switch a.mode {
		case BoolShort:
			b.WriteString(key)
		case BoolEmpty:
			b.WriteString(key)
			b.WriteString(`=""`)
		case BoolRepeated:
			b.WriteString(key + `="` + key + `"`)
		case BoolLiteral:
			b.WriteString(key + `="` + a.literal + `"`)
		default:
			panic(fmt.Errorf("%w: boolean display mode %d", ErrBadValue, a.mode))
		}
		return
	}
	b.WriteString(key + `="` + a.value + `"`)
}

func (a *Attribute) String() string {
	var b strings.Builder
	a.render(&b)
	return b.String()
}
