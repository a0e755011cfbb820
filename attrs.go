package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Convenience constructors for the catalog attributes. Names that collide
// with a tag constructor carry an Attr suffix (TitleAttr, FormAttr, …);
// the style attribute is created by Style in this package's root file.

// boolAttr builds a boolean attribute with an optional display mode,
// defaulting to the short form.
func boolAttr(name string, mode []BoolMode) *Attribute {
	m := BoolShort
	if len(mode) > 0 {
		m = mode[0]
	}
	return Bool(name, m)
}

// Class creates the multi-valued class attribute, values joined by spaces.
func Class(values ...any) *Attribute { return Multi("class", values...) }

// ID creates the id attribute.
func ID(value any) *Attribute { return Attr("id", value) }

// Data creates a data-* attribute with the given suffix.
func Data(suffix string, value any) *Attribute { return Dashed("data", suffix, value) }

// Aria creates an aria-* attribute with the given suffix.
func Aria(suffix string, value any) *Attribute { return Dashed("aria", suffix, value) }

// --- Plain attributes -------------------------------------------------

func Accept(value any) *Attribute { return Attr("accept", value) }
func AcceptCharset(value any) *Attribute { return Attr("accept-charset", value) }
func Accesskey(value any) *Attribute { return Attr("accesskey", value) }
func Action(value any) *Attribute { return Attr("action", value) }
func Alt(value any) *Attribute { return Attr("alt", value) }
func Autocomplete(value any) *Attribute { return Attr("autocomplete", value) }
func Charset(value any) *Attribute { return Attr("charset", value) }
func CiteAttr(value any) *Attribute { return Attr("cite", value) }
func Cols(value any) *Attribute { return Attr("cols", value) }
func Colspan(value any) *Attribute { return Attr("colspan", value) }
func Content(value any) *Attribute { return Attr("content", value) }
func Contenteditable(value any) *Attribute { return Attr("contenteditable", value) }
func Coords(value any) *Attribute { return Attr("coords", value) }
func Datetime(value any) *Attribute { return Attr("datetime", value) }
func Dir(value any) *Attribute { return Attr("dir", value) }
func Dirname(value any) *Attribute { return Attr("dirname", value) }
func Download(value any) *Attribute { return Attr("download", value) }
func Draggable(value any) *Attribute { return Attr("draggable", value) }
func Enctype(value any) *Attribute { return Attr("enctype", value) }
func Enterkeyhint(value any) *Attribute { return Attr("enterkeyhint", value) }
func For(value any) *Attribute { return Attr("for", value) }
func FormAttr(value any) *Attribute { return Attr("form", value) }
func Formaction(value any) *Attribute { return Attr("formaction", value) }
func Headers(value any) *Attribute { return Attr("headers", value) }
func Height(value any) *Attribute { return Attr("height", value) }
func Hidden(value any) *Attribute { return Attr("hidden", value) }
func High(value any) *Attribute { return Attr("high", value) }
func Href(value any) *Attribute { return Attr("href", value) }
func Hreflang(value any) *Attribute { return Attr("hreflang", value) }
func HTTPEquiv(value any) *Attribute { return Attr("http-equiv", value) }
func Inputmode(value any) *Attribute { return Attr("inputmode", value) }
func Kind(value any) *Attribute { return Attr("kind", value) }
func LabelAttr(value any) *Attribute { return Attr("label", value) }
func Lang(value any) *Attribute { return Attr("lang", value) }
func List(value any) *Attribute { return Attr("list", value) }
func Low(value any) *Attribute { return Attr("low", value) }
func Max(value any) *Attribute { return Attr("max", value) }
func Maxlength(value any) *Attribute { return Attr("maxlength", value) }
func Media(value any) *Attribute { return Attr("media", value) }
func Method(value any) *Attribute { return Attr("method", value) }
func Min(value any) *Attribute { return Attr("min", value) }
func Name(value any) *Attribute { return Attr("name", value) }
func Pattern(value any) *Attribute { return Attr("pattern", value) }
func Placeholder(value any) *Attribute { return Attr("placeholder", value) }
func Popover(value any) *Attribute { return Attr("popover", value) }
func Popovertarget(value any) *Attribute { return Attr("popovertarget", value) }
func Poster(value any) *Attribute { return Attr("poster", value) }
func Preload(value any) *Attribute { return Attr("preload", value) }
func Rel(value any) *Attribute { return Attr("rel", value) }
func Rows(value any) *Attribute { return Attr("rows", value) }
func Rowspan(value any) *Attribute { return Attr("rowspan", value) }
func Sandbox(value any) *Attribute { return Attr("sandbox", value) }
func Scope(value any) *Attribute { return Attr("scope", value) }
func Shape(value any) *Attribute { return Attr("shape", value) }
func Size(value any) *Attribute { return Attr("size", value) }
func Sizes(value any) *Attribute { return Attr("sizes", value) }
func SpanAttr(value any) *Attribute { return Attr("span", value) }
func Spellcheck(value any) *Attribute { return Attr("spellcheck", value) }
func Src(value any) *Attribute { return Attr("src", value) }
func Srcdoc(value any) *Attribute { return Attr("srcdoc", value) }
func Srclang(value any) *Attribute { return Attr("srclang", value) }
func Srcset(value any) *Attribute { return Attr("srcset", value) }
func Start(value any) *Attribute { return Attr("start", value) }
func Step(value any) *Attribute { return Attr("step", value) }
func Tabindex(value any) *Attribute { return Attr("tabindex", value) }
func Target(value any) *Attribute { return Attr("target", value) }
func TitleAttr(value any) *Attribute { return Attr("title", value) }
func Translate(value any) *Attribute { return Attr("translate", value) }
func Type(value any) *Attribute { return Attr("type", value) }
func Usemap(value any) *Attribute { return Attr("usemap", value) }
func Value(value any) *Attribute { return Attr("value", value) }
func Width(value any) *Attribute { return Attr("width", value) }
func Wrap(value any) *Attribute { return Attr("wrap", value) }

// --- Boolean attributes -----------------------------------------------

func Async(mode ...BoolMode) *Attribute { return boolAttr("async", mode) }
func Autofocus(mode ...BoolMode) *Attribute { return boolAttr("autofocus", mode) }
func Autoplay(mode ...BoolMode) *Attribute { return boolAttr("autoplay", mode) }
func Checked(mode ...BoolMode) *Attribute { return boolAttr("checked", mode) }
func Controls(mode ...BoolMode) *Attribute { return boolAttr("controls", mode) }
func Default(mode ...BoolMode) *Attribute { return boolAttr("default", mode) }
func Defer(mode ...BoolMode) *Attribute { return boolAttr("defer", mode) }
func Disabled(mode ...BoolMode) *Attribute { return boolAttr("disabled", mode) }
func Inert(mode ...BoolMode) *Attribute { return boolAttr("inert", mode) }
func Ismap(mode ...BoolMode) *Attribute { return boolAttr("ismap", mode) }
func Loop(mode ...BoolMode) *Attribute { return boolAttr("loop", mode) }
func Multiple(mode ...BoolMode) *Attribute { return boolAttr("multiple", mode) }
func Muted(mode ...BoolMode) *Attribute { return boolAttr("muted", mode) }
func Novalidate(mode ...BoolMode) *Attribute { return boolAttr("novalidate", mode) }
func Open(mode ...BoolMode) *Attribute { return boolAttr("open", mode) }
func Readonly(mode ...BoolMode) *Attribute { return boolAttr("readonly", mode) }
func Required(mode ...BoolMode) *Attribute { return boolAttr("required", mode) }
func Reversed(mode ...BoolMode) *Attribute { return boolAttr("reversed", mode) }
func Selected(mode ...BoolMode) *Attribute { return boolAttr("selected", mode) }

// --- Event handler attributes -----------------------------------------

// On creates an event handler attribute; the name may be given with or
// without the "on" prefix.
func On(event string, script any) *Attribute {
	key := normalizeKey(event)
	if len(key) < 2 || key[:2] != "on" {
		key = "on" + key
	}
	return Attr(key, script)
}

func OnClick(script any) *Attribute { return Attr("onclick", script) }
func OnChange(script any) *Attribute { return Attr("onchange", script) }
func OnInput(script any) *Attribute { return Attr("oninput", script) }
func OnSubmit(script any) *Attribute { return Attr("onsubmit", script) }
func OnLoad(script any) *Attribute { return Attr("onload", script) }
func OnFocus(script any) *Attribute { return Attr("onfocus", script) }
func OnBlur(script any) *Attribute { return Attr("onblur", script) }
func OnKeyDown(script any) *Attribute { return Attr("onkeydown", script) }
func OnKeyUp(script any) *Attribute { return Attr("onkeyup", script) }
