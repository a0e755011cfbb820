/*
Package catalog holds the tag and attribute tables for package htree.

The catalog is pure data: per attribute key it records the value-coercion
kind (plain, boolean, multi-valued, dashed family) and the optional set of
tags the attribute may attach to; per tag name it records whether the tag
is self-closing. Resolution is a plain table lookup by normalized key,
without reflection or name mangling.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package catalog

import "strings"

// AttrKind discriminates the value behavior of an attribute.
type AttrKind uint8

const (
	Plain   AttrKind = iota // key="value"
	Boolean                 // rendered per display mode, value usually empty
	Multi                   // multiple values joined by a separator
	Dashed                  // family prefix plus arbitrary suffix (data-*, aria-*)
)

// AttrSpec describes one catalog attribute.
type AttrSpec struct {
	Key     string   // normalized dashed-lowercase key
	Kind    AttrKind
	Parents []string // allowed parent tags; empty means any
}

// TagSpec describes one catalog tag.
type TagSpec struct {
	Name string
	Void bool // self-closing: no children, no closing tag
}

// LookupAttr resolves a normalized attribute key. Dashed-family keys with a
// suffix ("data-row") are not found here; use SplitDashed first.
func LookupAttr(key string) (AttrSpec, bool) {
	spec, ok := attrTable[key]
	if ok {
		spec.Key = key
	}
	return spec, ok
}

// SplitDashed splits a key into a dashed family prefix and its suffix.
// "data-row" yields ("data", "row", true); "data" yields ("data", "", true);
// keys outside the dashed families yield ok == false.
func SplitDashed(key string) (family, suffix string, ok bool) {
	family, suffix, _ = strings.Cut(key, "-")
	if spec, found := attrTable[family]; found && spec.Kind == Dashed {
		return family, suffix, true
	}
	return "", "", false
}

// LookupTag resolves a tag name.
func LookupTag(name string) (TagSpec, bool) {
	if !tagSet[name] {
		return TagSpec{}, false
	}
	return TagSpec{Name: name, Void: voidSet[name]}, true
}

// Void reports whether a tag is self-closing.
func Void(name string) bool {
	return voidSet[name]
}

// --- Tables -----------------------------------------------------------

func a(kind AttrKind, parents ...string) AttrSpec {
	return AttrSpec{Kind: kind, Parents: parents}
}

var attrTable = map[string]AttrSpec{
	// dashed families
	"data": a(Dashed),
	"aria": a(Dashed),

	// global and per-tag attributes
	"accept":              a(Plain, "input"),
	"accept-charset":      a(Plain, "form"),
	"accesskey":           a(Plain),
	"action":              a(Plain, "form"),
	"alt":                 a(Plain, "area", "img", "input"),
	"async":               a(Boolean, "script"),
	"autocomplete":        a(Plain, "form", "input"),
	"autofocus":           a(Boolean, "button", "input", "select", "textarea"),
	"autoplay":            a(Boolean, "audio", "video"),
	"charset":             a(Plain, "meta", "script"),
	"checked":             a(Boolean, "input"),
	"cite":                a(Plain, "del", "ins"),
	"class":               a(Multi),
	"cols":                a(Plain, "textarea"),
	"colspan":             a(Plain, "td", "th"),
	"content":             a(Plain, "meta"),
	"contenteditable":     a(Plain),
	"controls":            a(Boolean, "audio", "video"),
	"coords":              a(Plain, "area"),
	"datetime":            a(Plain, "del", "ins", "time"),
	"default":             a(Boolean, "track"),
	"defer":               a(Boolean, "script"),
	"dir":                 a(Plain),
	"dirname":             a(Plain, "input", "textarea"),
	"disabled":            a(Boolean, "button", "fieldset", "input", "option", "select", "textarea"),
	"download":            a(Plain, "a", "area"),
	"draggable":           a(Plain),
	"enctype":             a(Plain, "form"),
	"enterkeyhint":        a(Plain),
	"for":                 a(Plain, "output"),
	"form":                a(Plain, "button", "fieldset", "input", "meter", "object", "output", "select", "textarea"),
	"formaction":          a(Plain, "button", "input"),
	"headers":             a(Plain, "td", "th"),
	"height":              a(Plain, "embed", "iframe", "img", "input", "object", "video"),
	"hidden":              a(Plain),
	"high":                a(Plain, "meter"),
	"href":                a(Plain, "a", "area", "base", "link"),
	"hreflang":            a(Plain, "a", "area", "link"),
	"http-equiv":          a(Plain, "meta"),
	"id":                  a(Plain),
	"inert":               a(Boolean),
	"inputmode":           a(Plain),
	"ismap":               a(Boolean, "img"),
	"kind":                a(Plain, "track"),
	"label":               a(Plain, "track", "option", "optgroup"),
	"lang":                a(Plain),
	"list":                a(Plain, "input"),
	"loop":                a(Boolean, "audio", "video"),
	"low":                 a(Plain, "meter"),
	"max":                 a(Plain, "input", "meter", "progress"),
	"maxlength":           a(Plain, "input", "textarea"),
	"media":               a(Plain, "a", "area", "link", "source", "style"),
	"method":              a(Plain, "form"),
	"min":                 a(Plain, "input", "meter"),
	"multiple":            a(Boolean, "input", "select"),
	"muted":               a(Boolean, "video", "audio"),
	"name":                a(Plain, "button", "fieldset", "form", "iframe", "input", "map", "meta", "object", "output", "param", "select", "textarea"),
	"novalidate":          a(Boolean, "form"),
	"open":                a(Boolean, "details"),
	"optimum":             a(Plain, "meter"),
	"pattern":             a(Plain, "input"),
	"placeholder":         a(Plain, "input", "textarea"),
	"popover":             a(Plain),
	"popovertarget":       a(Plain, "button", "input"),
	"popovertargetaction": a(Plain, "button", "input"),
	"poster":              a(Plain, "video"),
	"preload":             a(Plain, "audio", "video"),
	"readonly":            a(Boolean, "input", "textarea"),
	"rel":                 a(Plain, "a", "area", "form", "link"),
	"required":            a(Boolean, "input", "select", "textarea"),
	"reversed":            a(Boolean, "ol"),
	"rows":                a(Plain, "textarea"),
	"rowspan":             a(Plain, "td", "th"),
	"sandbox":             a(Plain, "iframe"),
	"scope":               a(Plain, "th"),
	"selected":            a(Boolean, "option"),
	"shape":               a(Plain, "area"),
	"size":                a(Plain, "input", "select"),
	"sizes":               a(Plain, "img", "link", "source"),
	"span":                a(Plain, "col", "colgroup"),
	"spellcheck":          a(Plain),
	"src":                 a(Plain, "audio", "embed", "iframe", "img", "input", "script", "source", "track", "video"),
	"srcdoc":              a(Plain, "iframe"),
	"srclang":             a(Plain, "track"),
	"srcset":              a(Plain, "img", "source"),
	"start":               a(Plain, "ol"),
	"step":                a(Plain, "input"),
	"style":               a(Plain),
	"tabindex":            a(Plain),
	"target":              a(Plain, "a", "area", "base", "form"),
	"title":               a(Plain),
	"translate":           a(Plain),
	"type":                a(Plain, "a", "button", "embed", "input", "link", "menu", "object", "script", "source", "style"),
	"usemap":              a(Plain, "img", "object"),
	"value":               a(Plain, "button", "input", "li", "option", "meter", "progress", "param"),
	"width":               a(Plain, "embed", "iframe", "img", "input", "object", "video"),
	"wrap":                a(Plain, "textarea"),

	// event handler attributes
	"onabort":          a(Plain, "audio", "embed", "img", "object", "video"),
	"onafterprint":     a(Plain, "body"),
	"onbeforeprint":    a(Plain, "body"),
	"onbeforeunload":   a(Plain, "body"),
	"onblur":           a(Plain),
	"oncanplay":        a(Plain, "audio", "embed", "object", "video"),
	"oncanplaythrough": a(Plain, "audio", "video"),
	"onchange":         a(Plain),
	"onclick":          a(Plain),
	"oncontextmenu":    a(Plain),
	"oncopy":           a(Plain),
	"oncuechange":      a(Plain, "track"),
	"oncut":            a(Plain),
	"ondblclick":       a(Plain),
	"ondrag":           a(Plain),
	"ondragend":        a(Plain),
	"ondragenter":      a(Plain),
	"ondragleave":      a(Plain),
	"ondragover":       a(Plain),
	"ondragstart":      a(Plain),
	"ondrop":           a(Plain),
	"ondurationchange": a(Plain, "audio", "video"),
	"onemptied":        a(Plain, "audio", "video"),
	"onended":          a(Plain, "audio", "video"),
	"onerror":          a(Plain, "audio", "body", "embed", "img", "object", "script", "style", "video"),
	"onfocus":          a(Plain),
	"onhashchange":     a(Plain, "body"),
	"oninput":          a(Plain),
	"oninvalid":        a(Plain),
	"onkeydown":        a(Plain),
	"onkeypress":       a(Plain),
	"onkeyup":          a(Plain),
	"onload":           a(Plain, "body", "iframe", "img", "input", "link", "script", "style"),
	"onloadeddata":     a(Plain, "audio", "video"),
	"onloadedmetadata": a(Plain, "audio", "video"),
	"onloadstart":      a(Plain, "audio", "video"),
	"onmousedown":      a(Plain),
	"onmousemove":      a(Plain),
	"onmouseout":       a(Plain),
	"onmouseover":      a(Plain),
	"onmouseup":        a(Plain),
	"onmousewheel":     a(Plain),
	"onoffline":        a(Plain, "body"),
	"ononline":         a(Plain, "body"),
	"onpageshow":       a(Plain, "body"),
	"onpaste":          a(Plain),
	"onpause":          a(Plain, "audio", "video"),
	"onplay":           a(Plain, "audio", "video"),
	"onplaying":        a(Plain, "audio", "video"),
	"onprogress":       a(Plain, "audio", "video"),
	"onratechange":     a(Plain, "audio", "video"),
	"onreset":          a(Plain, "form"),
	"onresize":         a(Plain, "body"),
	"onscroll":         a(Plain),
	"onsearch":         a(Plain, "input"),
	"onseeked":         a(Plain, "audio", "video"),
	"onseeking":        a(Plain, "audio", "video"),
	"onselect":         a(Plain),
	"onstalled":        a(Plain, "audio", "video"),
	"onsubmit":         a(Plain, "form"),
	"onsuspend":        a(Plain, "audio", "video"),
	"ontimeupdate":     a(Plain, "audio", "video"),
	"ontoggle":         a(Plain, "details"),
	"onunload":         a(Plain, "body"),
	"onvolumechange":   a(Plain, "audio", "video"),
	"onwaiting":        a(Plain, "audio", "video"),
	"onwheel":          a(Plain),
}

var voidSet = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

var tagSet = map[string]bool{
	// basic structure
	"html": true, "head": true, "title": true, "body": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "br": true, "hr": true,
	// formatting
	"abbr": true, "acronym": true, "address": true, "b": true, "bdi": true,
	"bdo": true, "big": true, "blockquote": true, "center": true,
	"cite": true, "code": true, "del": true, "dfn": true, "em": true,
	"font": true, "i": true, "ins": true, "kbd": true, "mark": true,
	"meter": true, "pre": true, "progress": true, "q": true, "rp": true,
	"rt": true, "ruby": true, "s": true, "samp": true, "small": true,
	"strike": true, "strong": true, "sub": true, "sup": true,
	"template": true, "time": true, "tt": true, "u": true, "var": true,
	"wbr": true,
	// forms and input
	"form": true, "input": true, "textarea": true, "button": true,
	"select": true, "optgroup": true, "option": true, "label": true,
	"fieldset": true, "legend": true, "datalist": true, "output": true,
	// frames
	"frame": true, "frameset": true, "noframes": true, "iframe": true,
	// images and media
	"img": true, "map": true, "area": true, "canvas": true,
	"figcaption": true, "figure": true, "picture": true, "svg": true,
	"audio": true, "source": true, "track": true, "video": true,
	// links and lists
	"a": true, "link": true, "nav": true, "menu": true, "ul": true,
	"ol": true, "li": true, "dir": true, "dl": true, "dt": true, "dd": true,
	// tables
	"caption": true, "td": true, "tr": true, "th": true, "tfoot": true,
	"tbody": true, "thead": true, "col": true, "colgroup": true,
	"table": true,
	// styles and semantics
	"style": true, "div": true, "span": true, "header": true,
	"hgroup": true, "footer": true, "main": true, "section": true,
	"search": true, "article": true, "aside": true, "details": true,
	"dialog": true, "summary": true, "data": true,
	// meta info and programming
	"meta": true, "base": true, "basefont": true, "script": true,
	"noscript": true, "applet": true, "embed": true, "object": true,
	"param": true,
}
