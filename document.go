package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Document is a complete HTML page: a doctype declaration followed by an
// <html> element with a prepared head and body. Content added to the
// document goes into the body; the head starts out with a utf-8 charset
// declaration and a placeholder title.
type Document struct {
	root *Element // container holding doctype and <html>
	html *Element
	head *Element
	body *Element
}

// NewDocument creates a document with an HTML5 doctype and ingests content
// into its body.
func NewDocument(content ...any) *Document {
	head := Head(Meta(Attr("charset", "utf-8")), Title("Title of the page"))
	body := Body(content...)
	html := HTML(head, body)
	return &Document{
		root: Container(Doctype(), html),
		html: html,
		head: head,
		body: body,
	}
}

// Head returns the document's <head> element.
func (d *Document) Head() *Element {
	return d.head
}

// Body returns the document's <body> element.
func (d *Document) Body() *Element {
	return d.body
}

// Root returns the container holding the doctype and the <html> element.
func (d *Document) Root() *Element {
	return d.root
}

// Add ingests content into the document's body and returns the document.
func (d *Document) Add(content ...any) *Document {
	d.body.Add(content...)
	return d
}

// SetDoctype replaces the document type declaration.
func (d *Document) SetDoctype(decl Declaration) *Document {
	// root child 0 is always the doctype node
	_ = d.root.SetChildAt(0, Doctype(decl))
	return d
}

// SetTitle replaces the text of the document's <title> element; a missing
// title element is created.
func (d *Document) SetTitle(title string) *Document {
	for _, c := range d.head.children {
		if e, ok := c.(*Element); ok && e.tag == "title" {
			e.children = []Node{NewText(title)}
			return d
		}
	}
	d.head.Add(Title(title))
	return d
}

// SetLang sets the lang attribute on the <html> element.
func (d *Document) SetLang(lang string) *Document {
	if err := d.html.SetAttr(Attr("lang", lang)); err != nil {
		panic(err)
	}
	return d
}

// Find locates nodes matching pattern anywhere in the document.
func (d *Document) Find(pattern Node) []Node {
	return Find(d.root, pattern)
}

// Display renders the document; see Element.Display.
func (d *Document) Display(pretty bool, nl, indent string) string {
	return d.root.Display(pretty, nl, indent)
}

func (d *Document) String() string {
	return d.root.String()
}
