// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCompact(t *testing.T) {
	t.Parallel()

	type testCase struct {
		label  string
		input  string
		output string
	}

	cases := []testCase{
		{"null", `null`, `null`},
		{"booleans", `[true,false]`, `[true,false]`},
		{"empty array", `[]`, `[]`},
		{"empty object", `{}`, `{}`},
		{"whitespace removed", " [ 1 ,\t2 ,\n3\r] ", `[1,2,3]`},
		{"keys sorted", `{"b":1,"a":2}`, `{"a":2,"b":1}`},
		{"nested empties", `{"a":[],"b":{}}`, `{"a":[],"b":{}}`},
		{"slash not escaped", `"a\/b"`, `"a/b"`},
		{"escapes re-encoded", `"\b\f\n\r\t"`, `"\b\f\n\r\t"`},
		{"control characters uppercase", `"\u0001\u001f"`, `"\u0001\u001F"`},
		{"non-ascii passes through", `"héllo 中文 😂"`, `"héllo 中文 😂"`},
		{"exponent normalized", `[1e2,25e-1]`, `[100,2.5]`},
		{"large integral", `2405946039048539`, `2405946039048539`},
		{"small magnitude", `0.00000000001`, `0.00000000001`},
		{"integral without decimal", `[2.0,-3.0]`, `[2,-3]`},
		{"negative zero", `-0`, `-0`},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.output, Render(v, Compact))
		})
	}
}

func TestRenderPretty(t *testing.T) {
	t.Parallel()

	type testCase struct {
		label  string
		input  string
		indent int
		output string
	}

	cases := []testCase{
		{
			label:  "flat array",
			input:  `[null, true, false]`,
			indent: 2,
			output: "[\n  null,\n  true,\n  false\n]",
		},
		{
			label:  "empty array stays inline",
			input:  `[]`,
			indent: 2,
			output: "[]",
		},
		{
			label:  "nested empties stay inline",
			input:  `{"a":[],"b":{}}`,
			indent: 2,
			output: "{\n  \"a\": [],\n  \"b\": {}\n}",
		},
		{
			label:  "object keys sorted",
			input:  `{"b": 1, "a": 2}`,
			indent: 2,
			output: "{\n  \"a\": 2,\n  \"b\": 1\n}",
		},
		{
			label:  "nested indentation",
			input:  `{"a":[1,{"b":"x"}]}`,
			indent: 2,
			output: "{\n  \"a\": [\n    1,\n    {\n      \"b\": \"x\"\n    }\n  ]\n}",
		},
		{
			label:  "four space indent",
			input:  `[1,[2]]`,
			indent: 4,
			output: "[\n    1,\n    [\n        2\n    ]\n]",
		},
		{
			label:  "zero width indent",
			input:  `[1,2]`,
			indent: 0,
			output: "[\n1,\n2\n]",
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.output, Render(v, Pretty(c.indent)))
		})
	}
}

func TestRenderPrettyBuiltValue(t *testing.T) {
	t.Parallel()

	v := Array(Null(), Boolean(true), Boolean(false))
	assert.Equal(t, "[\n  null,\n  true,\n  false\n]", Render(v, Pretty(2)))
}

func TestControlCharacterEscaping(t *testing.T) {
	t.Parallel()

	out := Render(String("null \x00 char"), Compact)
	assert.Contains(t, out, `\u0000`)

	// Uppercase hex for bare control characters, short escapes where
	// they exist.
	assert.Equal(t, `"\u0001\u001F\t"`, Render(String("\x01\x1f\t"), Compact))
}

func TestStringEscaping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"a\"b\\c\nd"`, Render(String("a\"b\\c\nd"), Compact))
	assert.Equal(t, `"\b\f\r"`, Render(String("\b\f\r"), Compact))
	assert.Equal(t, `"/"`, Render(String("/"), Compact))
}

func TestNumberFormatting(t *testing.T) {
	t.Parallel()

	type testCase struct {
		label  string
		number float64
		output string
	}

	cases := []testCase{
		{"zero", 0, "0"},
		{"integral", 2, "2"},
		{"negative integral", -3, "-3"},
		{"fraction", 0.5, "0.5"},
		{"small magnitude", 0.00000000001, "0.00000000001"},
		{"large integral", 2405946039048539, "2405946039048539"},
		{"shortest round trip", 0.1, "0.1"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.output, Render(Number(c.number), Compact))
		})
	}
}

func TestNonFiniteNumbersRenderNull(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "null", Render(Number(math.NaN()), Compact))
	assert.Equal(t, "null", Render(Number(math.Inf(1)), Compact))
	assert.Equal(t, "null", Render(Number(math.Inf(-1)), Compact))
}

func TestValueStringerIsCompact(t *testing.T) {
	t.Parallel()

	v, err := Parse(`{"b": [1, 2], "a": null}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":null,"b":[1,2]}`, v.String())
}
