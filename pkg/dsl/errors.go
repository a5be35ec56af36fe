// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package dsl

import (
	"fmt"

	"github.com/consensys/go-bounds/pkg/util/source"
)

// ErrorKind classifies the fatal errors which can arise when parsing or
// executing a program.
type ErrorKind uint8

const (
	// SYNTAX_ERROR signals text which could not be lexed or parsed.
	SYNTAX_ERROR ErrorKind = iota
	// UNDEFINED_VARIABLE signals a reference to a variable not in scope.
	UNDEFINED_VARIABLE
	// REDECLARATION signals a fresh declaration of an existing variable.
	REDECLARATION
	// MALFORMED_EXPRESSION signals an expression which is not of the form
	// "operand (op operand)*".
	MALFORMED_EXPRESSION
	// MALFORMED_CONDITION signals a condition which is not of the form "var OP
	// number" or "number OP var".
	MALFORMED_CONDITION
	// UNSUPPORTED_OPERATOR signals a condition using "!=", or comparing two
	// variables.
	UNSUPPORTED_OPERATOR
	// INVALID_BOUNDS signals a range whose lower bound exceeds its upper
	// bound, or which admits no values.
	INVALID_BOUNDS
	// DOMAIN_ERROR signals a builtin applied outside of its domain, or a
	// division by exactly zero.
	DOMAIN_ERROR
	// ARITY_MISMATCH signals a function called with the wrong number of
	// arguments.
	ARITY_MISMATCH
	// NESTED_FUNCTION signals a function definition within another.
	NESTED_FUNCTION
	// UNBALANCED_BLOCK signals a missing or unexpected "??", ">>", "--" or
	// "<-".
	UNBALANCED_BLOCK
	// UNDEFINED_FUNCTION signals a call to an unknown function.
	UNDEFINED_FUNCTION
	// RECURSION_LIMIT signals function calls nested beyond the permitted
	// depth.
	RECURSION_LIMIT
)

var kindNames = []string{
	"SYNTAX_ERROR",
	"UNDEFINED_VARIABLE",
	"REDECLARATION",
	"MALFORMED_EXPRESSION",
	"MALFORMED_CONDITION",
	"UNSUPPORTED_OPERATOR",
	"INVALID_BOUNDS",
	"DOMAIN_ERROR",
	"ARITY_MISMATCH",
	"NESTED_FUNCTION",
	"UNBALANCED_BLOCK",
	"UNDEFINED_FUNCTION",
	"RECURSION_LIMIT",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("ERROR_%d", uint8(k))
}

// Error is a fatal error arising from a given span of a program.
type Error struct {
	Kind ErrorKind
	span source.Span
	msg  string
}

// NewError constructs a new error of a given kind covering a given span.
func NewError(kind ErrorKind, span source.Span, format string, args ...any) *Error {
	return &Error{kind, span, fmt.Sprintf(format, args...)}
}

// Span returns the span of the program text responsible for this error.
func (e *Error) Span() source.Span {
	return e.span
}

// Message returns the message to be reported.
func (e *Error) Message() string {
	return e.msg
}

func (e *Error) Error() string {
	return e.msg
}
