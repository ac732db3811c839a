// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

const defaultMaxDepth = 200

// Parse parses text as a single JSON value with default limits.  The entire
// input must be consumed: any non-whitespace content after the value is an
// error.  Failures are *ParseError values.
func Parse(text string) (*Value, error) {
	return NewParser().Parse(text)
}

// Parser parses JSON text into Value trees.  The zero value is not usable;
// construct with NewParser.  A Parser holds no state between calls and may
// be reused.
type Parser struct {
	maxDepth int
}

// NewParser returns a Parser with default limits.
func NewParser() *Parser {
	return &Parser{maxDepth: defaultMaxDepth}
}

// MaxDepth sets the maximum allowed nesting depth of arrays and objects.
// The default is 200.  Exceeding the limit aborts the parse with a
// *ParseError instead of exhausting the call stack.
func (p *Parser) MaxDepth(n int) {
	p.maxDepth = n
}

// Parse parses text as a single JSON value.
func (p *Parser) Parse(text string) (*Value, error) {
	c := &cursor{text: []rune(text), maxDepth: p.maxDepth}
	v, err := c.parseValue()
	if err != nil {
		return nil, err
	}
	c.skipWhitespace()
	if ch, ok := c.peek(); ok {
		return nil, newParseError("unexpected character '%c' after top-level value", ch)
	}
	return v, nil
}

// cursor is a forward-only position over the input's Unicode scalar values
// with one-symbol lookahead.  Every grammar rule either consumes at least
// one symbol or fails, so the recursion always terminates; rules check for
// end of input before advancing, never after.
type cursor struct {
	text     []rune
	pos      int
	depth    int
	maxDepth int
}

func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.text) {
		return 0, false
	}
	return c.text[c.pos], true
}

func (c *cursor) advance() (rune, bool) {
	ch, ok := c.peek()
	if ok {
		c.pos++
	}
	return ch, ok
}

func (c *cursor) skipWhitespace() {
	for c.pos < len(c.text) {
		switch c.text[c.pos] {
		case ' ', '\t', '\n', '\r':
			c.pos++
		default:
			return
		}
	}
}

func (c *cursor) push() error {
	c.depth++
	if c.depth > c.maxDepth {
		return newParseError("maximum depth exceeded")
	}
	return nil
}

func (c *cursor) pop() { c.depth-- }

// parseValue dispatches on the lookahead symbol after skipping whitespace.
// The grammar is LL(1): no rule requires backtracking.
func (c *cursor) parseValue() (*Value, error) {
	c.skipWhitespace()
	ch, ok := c.peek()
	if !ok {
		return nil, errUnexpectedEOF()
	}
	switch {
	case ch == 'n':
		return c.parseLiteral("null", &Value{kind: TypeNull})
	case ch == 't':
		return c.parseLiteral("true", &Value{kind: TypeBoolean, boolean: true})
	case ch == 'f':
		return c.parseLiteral("false", &Value{kind: TypeBoolean})
	case ch == '-' || isDigit(ch):
		return c.parseNumber()
	case ch == '"':
		s, err := c.parseString()
		if err != nil {
			return nil, err
		}
		return &Value{kind: TypeString, text: s}, nil
	case ch == '[':
		return c.parseArray()
	case ch == '{':
		return c.parseObject()
	default:
		return nil, newParseError("unexpected character '%c'", ch)
	}
}

func (c *cursor) parseLiteral(lit string, v *Value) (*Value, error) {
	for _, want := range lit {
		got, ok := c.advance()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		if got != want {
			return nil, newParseError("expected '%c' in literal '%s', but found '%c'", want, lit, got)
		}
	}
	return v, nil
}

// parseNumber enforces -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
// incrementally, then converts the accepted literal with ParseFloat.
func (c *cursor) parseNumber() (*Value, error) {
	var lit strings.Builder

	if ch, ok := c.peek(); ok && ch == '-' {
		lit.WriteRune(ch)
		c.advance()
	}

	ch, ok := c.advance()
	if !ok {
		return nil, errUnexpectedEOF()
	}
	switch {
	case ch == '0':
		lit.WriteRune(ch)
		if next, ok := c.peek(); ok && isDigit(next) {
			return nil, newParseError("leading zeros are not allowed in numbers")
		}
	case isDigit(ch):
		lit.WriteRune(ch)
		c.appendDigits(&lit)
	default:
		return nil, newParseError("expecting digit in number, but found '%c'", ch)
	}

	if next, ok := c.peek(); ok && next == '.' {
		lit.WriteRune('.')
		c.advance()
		if err := c.requireDigits(&lit, "decimal point"); err != nil {
			return nil, err
		}
	}

	if next, ok := c.peek(); ok && (next == 'e' || next == 'E') {
		lit.WriteRune(next)
		c.advance()
		if sign, ok := c.peek(); ok && (sign == '+' || sign == '-') {
			lit.WriteRune(sign)
			c.advance()
		}
		if err := c.requireDigits(&lit, "exponent"); err != nil {
			return nil, err
		}
	}

	f, err := strconv.ParseFloat(lit.String(), 64)
	if err != nil {
		return nil, newParseError("unparsable number literal '%s': %v", lit.String(), err)
	}
	return &Value{kind: TypeNumber, number: f}, nil
}

func (c *cursor) appendDigits(lit *strings.Builder) {
	for {
		ch, ok := c.peek()
		if !ok || !isDigit(ch) {
			return
		}
		lit.WriteRune(ch)
		c.advance()
	}
}

// requireDigits consumes one or more digits, failing if the next symbol is
// not a digit.
func (c *cursor) requireDigits(lit *strings.Builder, after string) error {
	ch, ok := c.peek()
	if !ok {
		return errUnexpectedEOF()
	}
	if !isDigit(ch) {
		return newParseError("expecting digit after %s, but found '%c'", after, ch)
	}
	c.appendDigits(lit)
	return nil
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// parseString consumes an opening quote, literal characters and escape
// sequences, and a closing quote, returning the decoded text.  It is also
// the rule for object keys.
func (c *cursor) parseString() (string, error) {
	c.advance() // opening quote, guaranteed by dispatch
	var text strings.Builder
	for {
		ch, ok := c.advance()
		if !ok {
			return "", newParseError("unterminated string")
		}
		switch ch {
		case '"':
			return text.String(), nil
		case '\\':
			r, err := c.parseEscape()
			if err != nil {
				return "", err
			}
			text.WriteRune(r)
		default:
			// Raw characters pass through unchanged, including non-ASCII.
			text.WriteRune(ch)
		}
	}
}

func (c *cursor) parseEscape() (rune, error) {
	ch, ok := c.advance()
	if !ok {
		return 0, errUnexpectedEOF()
	}
	switch ch {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return c.parseUnicodeEscape()
	default:
		return 0, newParseError("invalid escape character '%c'", ch)
	}
}

// parseUnicodeEscape decodes the four hex digits after \u.  A high
// surrogate must be immediately followed by a \uXXXX low surrogate; the
// pair combines into one scalar value.  Anything else in the surrogate
// range is an error.
func (c *cursor) parseUnicodeEscape() (rune, error) {
	hi, err := c.parseHex4()
	if err != nil {
		return 0, err
	}
	if !utf16.IsSurrogate(hi) {
		return hi, nil
	}
	if hi >= 0xDC00 {
		return 0, newParseError(`unpaired surrogate \u%04X in string`, hi)
	}
	for _, want := range `\u` {
		ch, ok := c.advance()
		if !ok {
			return 0, errUnexpectedEOF()
		}
		if ch != want {
			return 0, newParseError(`unpaired surrogate \u%04X in string`, hi)
		}
	}
	lo, err := c.parseHex4()
	if err != nil {
		return 0, err
	}
	r := utf16.DecodeRune(hi, lo)
	if r == unicode.ReplacementChar {
		return 0, newParseError(`invalid surrogate pair \u%04X\u%04X`, hi, lo)
	}
	return r, nil
}

func (c *cursor) parseHex4() (rune, error) {
	var n rune
	for i := 0; i < 4; i++ {
		ch, ok := c.advance()
		if !ok {
			return 0, errUnexpectedEOF()
		}
		d := hexDigit(ch)
		if d < 0 {
			return 0, newParseError(`invalid hex digit '%c' in \u escape`, ch)
		}
		n = n<<4 | d
	}
	return n, nil
}

func hexDigit(ch rune) rune {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10
	default:
		return -1
	}
}

func (c *cursor) parseArray() (*Value, error) {
	if err := c.push(); err != nil {
		return nil, err
	}
	defer c.pop()

	c.advance() // '[', guaranteed by dispatch
	v := &Value{kind: TypeArray}

	c.skipWhitespace()
	if ch, ok := c.peek(); ok && ch == ']' {
		c.advance()
		return v, nil
	}

	for {
		elem, err := c.parseValue()
		if err != nil {
			return nil, err
		}
		v.elems = append(v.elems, elem)

		c.skipWhitespace()
		ch, ok := c.advance()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		switch ch {
		case ',':
			// next iteration parses the following element
		case ']':
			return v, nil
		default:
			return nil, newParseError("expecting value-separator or end of array, but found '%c'", ch)
		}
	}
}

func (c *cursor) parseObject() (*Value, error) {
	if err := c.push(); err != nil {
		return nil, err
	}
	defer c.pop()

	c.advance() // '{', guaranteed by dispatch
	v := &Value{kind: TypeObject, members: map[string]*Value{}}

	c.skipWhitespace()
	if ch, ok := c.peek(); ok && ch == '}' {
		c.advance()
		return v, nil
	}

	for {
		c.skipWhitespace()
		ch, ok := c.peek()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		if ch != '"' {
			return nil, newParseError("expecting key or end of object, but found '%c'", ch)
		}
		key, err := c.parseString()
		if err != nil {
			return nil, err
		}

		c.skipWhitespace()
		sep, ok := c.advance()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		if sep != ':' {
			return nil, newParseError("expecting ':' after object key, but found '%c'", sep)
		}

		member, err := c.parseValue()
		if err != nil {
			return nil, err
		}
		// The last occurrence of a duplicate key wins.
		v.members[key] = member

		c.skipWhitespace()
		ch, ok = c.advance()
		if !ok {
			return nil, errUnexpectedEOF()
		}
		switch ch {
		case ',':
			// next iteration parses the following member
		case '}':
			return v, nil
		default:
			return nil, newParseError("expecting value-separator or end of object, but found '%c'", ch)
		}
	}
}
