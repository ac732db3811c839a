// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/xdg-go/jsontree"
)

var (
	keyColor     = color.New(color.FgBlue, color.Bold).SprintFunc()
	stringColor  = color.New(color.FgGreen).SprintFunc()
	numberColor  = color.New(color.FgCyan).SprintFunc()
	literalColor = color.New(color.FgYellow).SprintFunc()
)

// renderColor mirrors jsontree.Render's layout but wraps each token in ANSI
// colors.  Scalars are rendered by the library so that escaping and number
// formatting stay identical to the uncolored output.
func renderColor(v *jsontree.Value, compact bool, indent int) string {
	var out strings.Builder
	writeColor(&out, v, compact, indent, 0)
	return out.String()
}

func writeColor(out *strings.Builder, v *jsontree.Value, compact bool, indent, level int) {
	switch v.Type() {
	case jsontree.TypeNull, jsontree.TypeBoolean:
		out.WriteString(literalColor(v.String()))
	case jsontree.TypeNumber:
		out.WriteString(numberColor(v.String()))
	case jsontree.TypeString:
		out.WriteString(stringColor(v.String()))
	case jsontree.TypeArray:
		if v.Len() == 0 {
			out.WriteString("[]")
			return
		}
		out.WriteByte('[')
		v.ArrayEach(func(i int, elem *jsontree.Value) bool {
			if i > 0 {
				out.WriteByte(',')
			}
			newline(out, compact, indent, level+1)
			writeColor(out, elem, compact, indent, level+1)
			return true
		})
		newline(out, compact, indent, level)
		out.WriteByte(']')
	case jsontree.TypeObject:
		if v.Len() == 0 {
			out.WriteString("{}")
			return
		}
		out.WriteByte('{')
		first := true
		v.ObjectEach(func(key string, member *jsontree.Value) bool {
			if !first {
				out.WriteByte(',')
			}
			first = false
			newline(out, compact, indent, level+1)
			out.WriteString(keyColor(jsontree.String(key).String()))
			if compact {
				out.WriteByte(':')
			} else {
				out.WriteString(": ")
			}
			writeColor(out, member, compact, indent, level+1)
			return true
		})
		newline(out, compact, indent, level)
		out.WriteByte('}')
	}
}

func newline(out *strings.Builder, compact bool, indent, level int) {
	if compact {
		return
	}
	out.WriteByte('\n')
	out.WriteString(strings.Repeat(" ", indent*level))
}
