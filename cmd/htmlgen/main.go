/*
Command htmlgen renders a YAML page outline to HTML markup.

Usage:

	htmlgen [-o out.html] [-compact] [-indent UNIT] [outline.yaml]

The outline is read from the given file, or from stdin when no file is
named. Output goes to stdout unless -o is given. Pretty output is the
default; -compact suppresses all inserted whitespace.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/htree/outline"
)

var (
	out     = flag.String("o", "", "output file (default stdout)")
	compact = flag.Bool("compact", false, "render without newlines and indentation")
	indent  = flag.String("indent", "  ", "indent unit for pretty output")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: htmlgen [-o out.html] [-compact] [-indent UNIT] [outline.yaml]\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	var in io.Reader = os.Stdin
	name := "<stdin>"
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fatal("%v", err)
		}
		defer f.Close()
		in, name = f, flag.Arg(0)
	}
	doc, err := outline.Load(in)
	if err != nil {
		fatal("%s: %v", name, err)
	}
	markup := doc.Display(!*compact, "\n", *indent)
	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fatal("%v", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := fmt.Fprintln(w, markup); err != nil {
		fatal("%v", err)
	}
	if *out != "" {
		color.New(color.FgGreen).Fprintf(os.Stderr, "htmlgen: wrote %s\n", *out)
	}
}

func fatal(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "htmlgen: "+format+"\n", args...)
	os.Exit(1)
}
