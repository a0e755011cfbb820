package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Declaration is a document type declaration literal. Doctype output is
// the declaration wrapped in angle brackets, without a closing tag.
type Declaration string

const (
	HTML5                Declaration = "!DOCTYPE HTML"
	HTML401Strict        Declaration = "!DOCTYPE HTML PUBLIC \"-//W3C//DTD HTML 4.01//EN\"\n\"http://www.w3.org/TR/html4/strict.dtd\""
	HTML401Transitional  Declaration = "!DOCTYPE HTML PUBLIC \"-//W3C//DTD HTML 4.01 Transitional//EN\"\n\"http://www.w3.org/TR/html4/loose.dtd\""
	HTML401Frameset      Declaration = "!DOCTYPE HTML PUBLIC \"-//W3C//DTD HTML 4.01 Frameset//EN\"\n\"http://www.w3.org/TR/html4/frameset.dtd\""
	XHTML10Strict        Declaration = "!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.0 Strict//EN\"\n\"http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd\""
	XHTML10Transitional  Declaration = "!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.0 Transitional//EN\"\n\"http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd\""
	XHTML10Frameset      Declaration = "!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.0 Frameset//EN\"\n\"http://www.w3.org/TR/xhtml1/DTD/xhtml1-frameset.dtd\""
	XHTML11              Declaration = "!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.1//EN\"\n\"http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd\""
	XHTML11Basic         Declaration = "!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML Basic 1.1//EN\"\n\"http://www.w3.org/TR/xhtml-basic/xhtml-basic11.dtd\""
)

// Doctype creates a document type node for the given declaration; without
// an argument it declares HTML5. The node is self-closing and its tag is
// the declaration literal itself.
func Doctype(decl ...Declaration) *Element {
	d := HTML5
	if len(decl) > 0 {
		d = decl[0]
	}
	return &Element{tag: string(d), kind: KindVoid}
}

// --- Basic structure --------------------------------------------------

// HTML creates an <html> element, the root of a document.
func HTML(content ...any) *Element { return New("html", content...) }

// Head contains metadata for the document.
func Head(content ...any) *Element { return New("head", content...) }

// Title defines the document title shown in the browser tab.
func Title(content ...any) *Element { return New("title", content...) }

// Body defines the document's body.
func Body(content ...any) *Element { return New("body", content...) }

// H1 to H6 define HTML headings.
func H1(content ...any) *Element { return New("h1", content...) }
func H2(content ...any) *Element { return New("h2", content...) }
func H3(content ...any) *Element { return New("h3", content...) }
func H4(content ...any) *Element { return New("h4", content...) }
func H5(content ...any) *Element { return New("h5", content...) }
func H6(content ...any) *Element { return New("h6", content...) }

// P defines a paragraph.
func P(content ...any) *Element { return New("p", content...) }

// Br inserts a single line break.
func Br(content ...any) *Element { return New("br", content...) }

// Hr defines a thematic break.
func Hr(content ...any) *Element { return New("hr", content...) }

// --- Formatting -------------------------------------------------------

func Abbr(content ...any) *Element { return New("abbr", content...) }
func Acronym(content ...any) *Element { return New("acronym", content...) }
func Address(content ...any) *Element { return New("address", content...) }
func B(content ...any) *Element { return New("b", content...) }
func Bdi(content ...any) *Element { return New("bdi", content...) }
func Bdo(content ...any) *Element { return New("bdo", content...) }
func Big(content ...any) *Element { return New("big", content...) }
func Blockquote(content ...any) *Element { return New("blockquote", content...) }
func Center(content ...any) *Element { return New("center", content...) }
func Cite(content ...any) *Element { return New("cite", content...) }
func Code(content ...any) *Element { return New("code", content...) }
func Del(content ...any) *Element { return New("del", content...) }
func Dfn(content ...any) *Element { return New("dfn", content...) }
func Em(content ...any) *Element { return New("em", content...) }
func Font(content ...any) *Element { return New("font", content...) }
func I(content ...any) *Element { return New("i", content...) }
func Ins(content ...any) *Element { return New("ins", content...) }
func Kbd(content ...any) *Element { return New("kbd", content...) }
func Mark(content ...any) *Element { return New("mark", content...) }
func Meter(content ...any) *Element { return New("meter", content...) }
func Pre(content ...any) *Element { return New("pre", content...) }
func Progress(content ...any) *Element { return New("progress", content...) }
func Q(content ...any) *Element { return New("q", content...) }
func Rp(content ...any) *Element { return New("rp", content...) }
func Rt(content ...any) *Element { return New("rt", content...) }
func Ruby(content ...any) *Element { return New("ruby", content...) }
func S(content ...any) *Element { return New("s", content...) }
func Samp(content ...any) *Element { return New("samp", content...) }
func Small(content ...any) *Element { return New("small", content...) }
func Strike(content ...any) *Element { return New("strike", content...) }
func Strong(content ...any) *Element { return New("strong", content...) }
func Sub(content ...any) *Element { return New("sub", content...) }
func Sup(content ...any) *Element { return New("sup", content...) }
func Template(content ...any) *Element { return New("template", content...) }
func Time(content ...any) *Element { return New("time", content...) }
func Tt(content ...any) *Element { return New("tt", content...) }
func U(content ...any) *Element { return New("u", content...) }
func Var(content ...any) *Element { return New("var", content...) }
func Wbr(content ...any) *Element { return New("wbr", content...) }

// --- Forms and input --------------------------------------------------

func Form(content ...any) *Element { return New("form", content...) }
func Input(content ...any) *Element { return New("input", content...) }
func Textarea(content ...any) *Element { return New("textarea", content...) }
func Button(content ...any) *Element { return New("button", content...) }
func Select(content ...any) *Element { return New("select", content...) }
func Optgroup(content ...any) *Element { return New("optgroup", content...) }
func Option(content ...any) *Element { return New("option", content...) }
func Label(content ...any) *Element { return New("label", content...) }
func Fieldset(content ...any) *Element { return New("fieldset", content...) }
func Legend(content ...any) *Element { return New("legend", content...) }
func Datalist(content ...any) *Element { return New("datalist", content...) }
func Output(content ...any) *Element { return New("output", content...) }

// --- Frames -----------------------------------------------------------

func Frame(content ...any) *Element { return New("frame", content...) }
func Frameset(content ...any) *Element { return New("frameset", content...) }
func Noframes(content ...any) *Element { return New("noframes", content...) }
func Iframe(content ...any) *Element { return New("iframe", content...) }

// --- Images and media -------------------------------------------------

func Img(content ...any) *Element { return New("img", content...) }
func MapTag(content ...any) *Element { return New("map", content...) }
func Area(content ...any) *Element { return New("area", content...) }
func Canvas(content ...any) *Element { return New("canvas", content...) }
func Figcaption(content ...any) *Element { return New("figcaption", content...) }
func Figure(content ...any) *Element { return New("figure", content...) }
func Picture(content ...any) *Element { return New("picture", content...) }
func SVG(content ...any) *Element { return New("svg", content...) }
func Audio(content ...any) *Element { return New("audio", content...) }
func Source(content ...any) *Element { return New("source", content...) }
func Track(content ...any) *Element { return New("track", content...) }
func Video(content ...any) *Element { return New("video", content...) }

// --- Links and lists --------------------------------------------------

func A(content ...any) *Element { return New("a", content...) }
func Link(content ...any) *Element { return New("link", content...) }
func Nav(content ...any) *Element { return New("nav", content...) }
func Menu(content ...any) *Element { return New("menu", content...) }
func Ul(content ...any) *Element { return New("ul", content...) }
func Ol(content ...any) *Element { return New("ol", content...) }
func Li(content ...any) *Element { return New("li", content...) }
func DirTag(content ...any) *Element { return New("dir", content...) }
func Dl(content ...any) *Element { return New("dl", content...) }
func Dt(content ...any) *Element { return New("dt", content...) }
func Dd(content ...any) *Element { return New("dd", content...) }

// --- Tables -----------------------------------------------------------

func Caption(content ...any) *Element { return New("caption", content...) }
func Td(content ...any) *Element { return New("td", content...) }
func Tr(content ...any) *Element { return New("tr", content...) }
func Th(content ...any) *Element { return New("th", content...) }
func Tfoot(content ...any) *Element { return New("tfoot", content...) }
func Tbody(content ...any) *Element { return New("tbody", content...) }
func Thead(content ...any) *Element { return New("thead", content...) }
func Col(content ...any) *Element { return New("col", content...) }
func Colgroup(content ...any) *Element { return New("colgroup", content...) }
func TableTag(content ...any) *Element { return New("table", content...) }

// --- Styles and semantics ---------------------------------------------

// StyleTag defines style information for a document; the Style function
// creates the style attribute.
func StyleTag(content ...any) *Element { return New("style", content...) }

func Div(content ...any) *Element { return New("div", content...) }
func Span(content ...any) *Element { return New("span", content...) }
func Header(content ...any) *Element { return New("header", content...) }
func Hgroup(content ...any) *Element { return New("hgroup", content...) }
func Footer(content ...any) *Element { return New("footer", content...) }
func Main(content ...any) *Element { return New("main", content...) }
func Section(content ...any) *Element { return New("section", content...) }
func Search(content ...any) *Element { return New("search", content...) }
func Article(content ...any) *Element { return New("article", content...) }
func Aside(content ...any) *Element { return New("aside", content...) }
func Details(content ...any) *Element { return New("details", content...) }
func Dialog(content ...any) *Element { return New("dialog", content...) }
func Summary(content ...any) *Element { return New("summary", content...) }
func DataTag(content ...any) *Element { return New("data", content...) }

// --- Meta info and programming ----------------------------------------

func Meta(content ...any) *Element { return New("meta", content...) }
func Base(content ...any) *Element { return New("base", content...) }
func Basefont(content ...any) *Element { return New("basefont", content...) }
func Script(content ...any) *Element { return New("script", content...) }
func Noscript(content ...any) *Element { return New("noscript", content...) }
func Applet(content ...any) *Element { return New("applet", content...) }
func Embed(content ...any) *Element { return New("embed", content...) }
func Object(content ...any) *Element { return New("object", content...) }
func Param(content ...any) *Element { return New("param", content...) }
