/*
Package htree provides programmatic construction of HTML trees.

Clients build a tree of typed nodes (elements, text nodes and
attributes) using ordinary constructors and builder contexts, instead of
concatenating markup strings. The package validates structural rules
(self-closing elements stay empty, attribute keys stay unique, attributes
attach only to tags that allow them) and renders the tree to indented or
compact text.

Status

API is stable for the operations documented here. Selector queries live in
the selector subpackage, debugging helpers in htmldbg, YAML outlines in
outline.

Overview

Trees are built bottom-up from constructors:

	div := htree.Div(
		htree.Class("panel"),
		htree.P("Hello, ", htree.Em("world")),
	)
	fmt.Println(div.Display(false, "", ""))
	// <div class="panel"><p>Hello, <em>world</em></p></div>

or top-down through a builder context, where registered nodes are collected
and flushed into the owner of the enclosing scope:

	c := htree.NewCtx()
	p := htree.P("Text")
	c.Scope(p, func() {
		htree.Register(c, htree.Class("note"))
		htree.Register(c, htree.Span("inner"))
	})

Each Ctx is independent; use one per goroutine. Construction errors
(illegal composition, duplicate attributes, unsupported value types) are
programmer errors and panic with one of the sentinel errors in this
package; the fine-grained mutators (SetAttr, SetChildAt, …) return them
instead.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to key 'htree'.
func tracer() tracing.Trace {
	return tracing.Select("htree")
}
