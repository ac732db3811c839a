// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects the output format for Render.
type Mode struct {
	pretty bool
	indent int
}

// Compact renders with no inserted whitespace: "," and ":" carry no
// surrounding spaces and empty containers render as [] and {}.
var Compact = Mode{}

// Pretty returns a Mode that renders one element or member per line, each
// line indented by its nesting level times width spaces, with ": " between
// object keys and values.  Empty containers still render as [] and {} on
// one line.
func Pretty(width int) Mode {
	return Mode{pretty: true, indent: width}
}

// Render serializes a Value tree as JSON text.  Object members are emitted
// in sorted key order regardless of the order keys appeared in the source
// text.  Render performs no I/O and never fails.
func Render(v *Value, mode Mode) string {
	var out strings.Builder
	renderValue(&out, v, mode, 0)
	return out.String()
}

func renderValue(out *strings.Builder, v *Value, mode Mode, level int) {
	switch v.Type() {
	case TypeNull:
		out.WriteString("null")
	case TypeBoolean:
		if v.boolean {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}
	case TypeNumber:
		out.WriteString(formatNumber(v.number))
	case TypeString:
		writeQuoted(out, v.text)
	case TypeArray:
		renderArray(out, v, mode, level)
	case TypeObject:
		renderObject(out, v, mode, level)
	}
}

func renderArray(out *strings.Builder, v *Value, mode Mode, level int) {
	if len(v.elems) == 0 {
		out.WriteString("[]")
		return
	}
	out.WriteByte('[')
	for i, elem := range v.elems {
		if i > 0 {
			out.WriteByte(',')
		}
		if mode.pretty {
			out.WriteByte('\n')
			writeIndent(out, mode, level+1)
		}
		renderValue(out, elem, mode, level+1)
	}
	if mode.pretty {
		out.WriteByte('\n')
		writeIndent(out, mode, level)
	}
	out.WriteByte(']')
}

func renderObject(out *strings.Builder, v *Value, mode Mode, level int) {
	if len(v.members) == 0 {
		out.WriteString("{}")
		return
	}
	out.WriteByte('{')
	for i, k := range v.Keys() {
		if i > 0 {
			out.WriteByte(',')
		}
		if mode.pretty {
			out.WriteByte('\n')
			writeIndent(out, mode, level+1)
		}
		writeQuoted(out, k)
		if mode.pretty {
			out.WriteString(": ")
		} else {
			out.WriteByte(':')
		}
		renderValue(out, v.members[k], mode, level+1)
	}
	if mode.pretty {
		out.WriteByte('\n')
		writeIndent(out, mode, level)
	}
	out.WriteByte('}')
}

func writeIndent(out *strings.Builder, mode Mode, level int) {
	out.WriteString(strings.Repeat(" ", mode.indent*level))
}

// writeQuoted emits a string with RFC 8259 escaping.  Control characters
// without a short escape become \u00XX with uppercase hex.  Forward slash
// is never escaped and non-ASCII scalar values pass through unescaped.
func writeQuoted(out *strings.Builder, s string) {
	out.WriteByte('"')
	for _, ch := range s {
		switch ch {
		case '\\':
			out.WriteString(`\\`)
		case '"':
			out.WriteString(`\"`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		case '\f':
			out.WriteString(`\f`)
		case '\b':
			out.WriteString(`\b`)
		default:
			if ch < 0x20 {
				fmt.Fprintf(out, `\u%04X`, ch)
			} else {
				out.WriteRune(ch)
			}
		}
	}
	out.WriteByte('"')
}

// formatNumber renders the shortest decimal digits that round-trip the
// float, without exponent notation and without a trailing ".0" on integral
// values.  Non-finite values cannot come from the parser, only from the
// builder; JSON has no representation for them, so they render as null.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
