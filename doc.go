// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package jsontree parses JSON text into an immutable in-memory tree and
// serializes such trees back to text.  It implements the full RFC 8259
// grammar with a recursive-descent parser: string escape decoding including
// UTF-16 surrogate-pair reassembly, strict numeric literal validation, and
// no tolerance for comments, trailing commas, or trailing garbage.  Only
// UTF-8 input is supported.
//
// Values
//
// A Value is a closed variant over the six JSON types.  Objects are stored
// as key-sorted mappings, so object members always iterate and print in the
// natural sort order of their keys regardless of the order they appeared in
// the source text.  Duplicate keys in the source resolve last-write-wins.
// Numbers are double-precision floats; integer/decimal distinctions beyond
// what float64 carries are not preserved.
//
// Rendering
//
// Render produces either compact text (no inserted whitespace) or pretty
// text (one element per line, indented by a configurable width).  Number
// output uses the shortest round-trippable decimal digits and never falls
// back to exponent notation.
//
// Testing
//
// The parser is exercised against a corpus of must-parse and must-fail
// inputs under testdata/cases, plus round-trip properties: for any valid
// input, parsing the compact rendering yields an equal tree.
package jsontree
