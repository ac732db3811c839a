// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Command jsonpp reads JSON from standard input and writes it formatted to
// standard output.  By default the output is pretty-printed with two-space
// indentation; invalid input reports "ERROR: Invalid JSON - <message>" on
// standard error and exits non-zero.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/xdg-go/jsontree"
)

var (
	app      = kingpin.New("jsonpp", "Parse JSON on stdin and pretty-print it to stdout.")
	compact  = app.Flag("compact", "Render without inserted whitespace.").Short('c').Bool()
	indent   = app.Flag("indent", "Spaces per nesting level.").Short('i').Default("2").Uint()
	colorize = app.Flag("color", "Colorize the output.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("failed to read stdin: %v", err)
	}

	v, err := jsontree.Parse(string(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Invalid JSON - %s\n", err)
		os.Exit(1)
	}

	if *colorize {
		fmt.Println(renderColor(v, *compact, int(*indent)))
		return
	}

	mode := jsontree.Pretty(int(*indent))
	if *compact {
		mode = jsontree.Compact
	}
	fmt.Println(jsontree.Render(v, mode))
}
