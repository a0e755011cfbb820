package outline

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const page = `
title: Landing page
lang: en
body:
  - tag: h1
    text: Welcome
  - tag: p
    attrs:
      class: intro
      id: first
    children:
      - text: "Hello, world"
`

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree.outline")
	defer teardown()
	//
	doc, err := Parse([]byte(page))
	require.NoError(t, err)
	got := doc.Display(false, "", "")
	require.Contains(t, got, "<title>Landing page</title>")
	require.Contains(t, got, `<html lang="en">`)
	// attrs render in sorted key order
	require.Contains(t, got, `<p class="intro" id="first">Hello, world</p>`)
	require.True(t, strings.HasPrefix(got, "<!DOCTYPE HTML>"))
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree.outline")
	defer teardown()
	//
	doc, err := Load(strings.NewReader(page))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Body().ChildCount())
}

func TestDoctypeSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree.outline")
	defer teardown()
	//
	doc, err := Parse([]byte("doctype: xhtml11\nbody:\n  - tag: p\n    text: x\n"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(doc.Display(false, "", ""), "<!DOCTYPE html PUBLIC"))

	_, err = Parse([]byte("doctype: html9\n"))
	require.Error(t, err)
}

func TestUnknownTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree.outline")
	defer teardown()
	//
	_, err := Parse([]byte("body:\n  - tag: blink\n    text: x\n"))
	require.Error(t, err)
}

func TestUnknownAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree.outline")
	defer teardown()
	//
	_, err := Parse([]byte("body:\n  - tag: p\n    attrs:\n      frobnicate: x\n"))
	require.Error(t, err)
}

func TestIllegalComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree.outline")
	defer teardown()
	//
	// children on a self-closing tag must surface as an error, not a panic
	_, err := Parse([]byte("body:\n  - tag: br\n    children:\n      - text: x\n"))
	require.Error(t, err)
}

func TestMalformedYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htree.outline")
	defer teardown()
	//
	_, err := Parse([]byte("body: [\n"))
	require.Error(t, err)
}
