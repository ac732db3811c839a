// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package jsontree

import "fmt"

// ParseError records JSON parsing errors.  Every failure of Parse is a
// *ParseError; the message describes the first invalid symbol or the
// unexpected end of input that aborted the parse.
type ParseError struct {
	msg string
}

func (pe *ParseError) Error() string { return pe.msg }

func newParseError(format string, args ...interface{}) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

func errUnexpectedEOF() *ParseError {
	return &ParseError{msg: "unexpected end of input"}
}
