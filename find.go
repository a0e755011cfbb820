package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// FindFunc walks the subtree under root in pre-order, root included, and
// collects every node for which pred returns true.
func FindFunc(root Node, pred func(Node) bool) []Node {
	var hits []Node
	walk(root, func(n Node) {
		if pred(n) {
			hits = append(hits, n)
		}
	})
	return hits
}

func walk(n Node, visit func(Node)) {
	visit(n)
	if e, ok := n.(*Element); ok {
		for _, c := range e.children {
			walk(c, visit)
		}
	}
}

// Find locates every node in the subtree under root matching the pattern,
// in pre-order, root included. A text pattern matches every text node
// containing its value as a substring. An element pattern matches a node
// when tag and kind agree, every pattern attribute is present on the node
// with the node's value containing the pattern's value, and every pattern
// child is structurally satisfied by some child of the node, order
// independent. Matching descends into children of matching nodes as well.
//
// The pattern is a throwaway probe: it is detached from any open scope
// before comparison and never becomes part of a tree.
func Find(root Node, pattern Node) []Node {
	claimPending(pattern)
	switch p := pattern.(type) {
	case *Text:
		return FindFunc(root, func(n Node) bool {
			t, ok := n.(*Text)
			return ok && strings.Contains(t.value, p.value)
		})
	case *Element:
		return FindFunc(root, func(n Node) bool {
			e, ok := n.(*Element)
			return ok && matchElement(e, p)
		})
	}
	return nil
}

// Find locates nodes matching pattern in the subtree under e; see the
// package-level Find.
func (e *Element) Find(pattern Node) []Node {
	return Find(e, pattern)
}

func matchNode(n, p Node) bool {
	switch pat := p.(type) {
	case *Text:
		t, ok := n.(*Text)
		return ok && strings.Contains(t.value, pat.value)
	case *Element:
		e, ok := n.(*Element)
		return ok && matchElement(e, pat)
	}
	return false
}

// matchElement reports whether node e satisfies pattern p: equal tag and
// kind, pattern attributes a subset of e's with substring value match, and
// every pattern child satisfied by some child of e. The first structural
// match per pattern child wins; two pattern children may be satisfied by
// the same node child.
func matchElement(e, p *Element) bool {
	if e.tag != p.tag || e.kind != p.kind {
		return false
	}
	for _, pa := range p.attrs {
		ea, err := e.Attr(pa.Name())
		if err != nil {
			return false
		}
		if !strings.Contains(ea.value, pa.value) {
			return false
		}
	}
	for _, pc := range p.children {
		satisfied := false
		for _, ec := range e.children {
			if matchNode(ec, pc) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}
