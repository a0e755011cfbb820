/*
Package outline builds htree documents from YAML outlines.

An outline is a declarative page description: a doctype selector, title
and language, and a body given as nested tag/text/attrs nodes. Outlines
come from files or any reader and are turned into a ready-to-render
htree.Document. Malformed outlines (unknown tags or attributes, illegal
compositions) are reported as errors, never as panics.

A minimal outline:

	title: Landing page
	lang: en
	body:
	  - tag: h1
	    text: Welcome
	  - tag: p
	    attrs:
	      class: intro
	    children:
	      - text: "Hello, world"

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package outline

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/npillmayer/htree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to key 'htree.outline'.
func tracer() tracing.Trace {
	return tracing.Select("htree.outline")
}

// Spec is the top level of a YAML outline.
type Spec struct {
	Doctype string `yaml:"doctype"` // html5 (default), html4-strict, xhtml11, …
	Title   string `yaml:"title"`
	Lang    string `yaml:"lang"`
	Body    []Node `yaml:"body"`
}

// Node is one element or text node of an outline. A node carries either a
// tag (with optional attrs and children) or bare text.
type Node struct {
	Tag      string            `yaml:"tag"`
	Text     string            `yaml:"text"`
	Attrs    map[string]string `yaml:"attrs"`
	Children []Node            `yaml:"children"`
}

var doctypes = map[string]htree.Declaration{
	"":                    htree.HTML5,
	"html5":               htree.HTML5,
	"html4-strict":        htree.HTML401Strict,
	"html4-transitional":  htree.HTML401Transitional,
	"html4-frameset":      htree.HTML401Frameset,
	"xhtml1-strict":       htree.XHTML10Strict,
	"xhtml1-transitional": htree.XHTML10Transitional,
	"xhtml1-frameset":     htree.XHTML10Frameset,
	"xhtml11":             htree.XHTML11,
	"xhtml11-basic":       htree.XHTML11Basic,
}

// Load reads a YAML outline and builds the document it describes.
func Load(r io.Reader) (*htree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds the document described by a YAML outline.
func Parse(data []byte) (*htree.Document, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	return Build(spec)
}

// Build turns an outline spec into a document.
func Build(spec Spec) (*htree.Document, error) {
	decl, ok := doctypes[spec.Doctype]
	if !ok {
		return nil, fmt.Errorf("outline: unknown doctype %q", spec.Doctype)
	}
	doc := htree.NewDocument()
	doc.SetDoctype(decl)
	if spec.Title != "" {
		doc.SetTitle(spec.Title)
	}
	err := capture(func() {
		if spec.Lang != "" {
			doc.SetLang(spec.Lang)
		}
		for _, n := range spec.Body {
			doc.Add(build(n))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	tracer().Debugf("outline built, %d top level nodes", len(spec.Body))
	return doc, nil
}

func build(n Node) htree.Node {
	if n.Tag == "" {
		return htree.NewText(n.Text)
	}
	e := htree.New(n.Tag)
	// sorted keys keep attribute order deterministic across runs
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.Add(htree.Attr(k, n.Attrs[k]))
	}
	if n.Text != "" {
		e.Add(n.Text)
	}
	for _, c := range n.Children {
		e.Add(build(c))
	}
	return e
}

// capture converts the construction panics of the htree DSL into ordinary
// errors; unrelated panics propagate.
func capture(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	f()
	return nil
}
