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
	"errors"
	"strconv"
	"strings"

	"github.com/consensys/go-bounds/pkg/bounds"
	"github.com/consensys/go-bounds/pkg/util/source"
)

// Program is a parsed sequence of top-level statements.
type Program struct {
	Statements []Statement
}

// Statement represents a single line of a program.  This is a closed sum
// over the statement types declared in this file.
type Statement interface {
	// Span returns the program text covered by this statement.
	Span() source.Span
	isStatement()
}

// Declaration introduces a fresh variable, such as "x = [0, 10]" or
// "v[4] = x + 1".
type Declaration struct {
	Name string
	// Array width of this variable (default 1).
	Size uint
	Expr Expr
	span source.Span
}

// Rebind replaces the definition of an existing variable, as in "x! = 1".
type Rebind struct {
	Name string
	Expr Expr
	span source.Span
}

// Finalise forces an existing variable to be resolved, as in "x.".
type Finalise struct {
	Name string
	span source.Span
}

// Query reports the current bounds of a variable, as in "x?".
type Query struct {
	Name string
	span source.Span
}

// Dump reports every variable in scope.  A resolving dump ("?") forces
// pending variables to be resolved, whilst a non-resolving dump ("?*")
// reports their definitions instead.
type Dump struct {
	Resolve bool
	span    source.Span
}

// If opens a conditional block, as in "?? x > 5".
type If struct {
	Condition Condition
	span      source.Span
}

// Else switches to the complement arm of the innermost conditional (">>").
type Else struct {
	span source.Span
}

// End closes the innermost conditional ("--").
type End struct {
	span source.Span
}

// FunctionDef defines a user function, as in "fn f(a, b)" followed by a body
// and terminated by a return "<- expr".
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Statement
	Return Expr
	span   source.Span
}

// Span implementation for the Statement interface.
func (s *Declaration) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *Rebind) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *Finalise) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *Query) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *Dump) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *If) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *Else) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *End) Span() source.Span { return s.span }

// Span implementation for the Statement interface.
func (s *FunctionDef) Span() source.Span { return s.span }

func (s *Declaration) isStatement() {}
func (s *Rebind) isStatement()      {}
func (s *Finalise) isStatement()    {}
func (s *Query) isStatement()       {}
func (s *Dump) isStatement()        {}
func (s *If) isStatement()          {}
func (s *Else) isStatement()        {}
func (s *End) isStatement()         {}
func (s *FunctionDef) isStatement() {}

// ============================================================================
// Expressions
// ============================================================================

// Expr represents an arithmetic expression.  This is a closed sum over
// Literal, VarRef, Call and Arith.
type Expr interface {
	// Span returns the program text covered by this expression.
	Span() source.Span
	// String returns a textual representation of this expression.
	String() string
	isExpr()
}

// Literal is a constant set of values, such as "3", "[0, 1] U (5, 6)" or
// "0..10".
type Literal struct {
	Value bounds.Bounds
	span  source.Span
}

// VarRef is a reference to a variable.
type VarRef struct {
	Name string
	span source.Span
}

// Call applies a builtin or user function to zero or more arguments.
type Call struct {
	Name string
	Args []Expr
	span source.Span
}

// Arith is a sequence of operands separated by operators, which is evaluated
// strictly from left to right.
type Arith struct {
	Operands  []Expr
	Operators []bounds.Operator
	span      source.Span
}

// NewLiteral constructs a literal expression over a given span.
func NewLiteral(value bounds.Bounds, span source.Span) *Literal {
	return &Literal{value, span}
}

// NewVarRef constructs a variable reference over a given span.
func NewVarRef(name string, span source.Span) *VarRef {
	return &VarRef{name, span}
}

// Span implementation for the Expr interface.
func (e *Literal) Span() source.Span { return e.span }

// Span implementation for the Expr interface.
func (e *VarRef) Span() source.Span { return e.span }

// Span implementation for the Expr interface.
func (e *Call) Span() source.Span { return e.span }

// Span implementation for the Expr interface.
func (e *Arith) Span() source.Span { return e.span }

func (e *Literal) String() string {
	if v, ok := e.Value.Singleton(); ok {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	//
	return e.Value.String()
}

func (e *VarRef) String() string {
	return e.Name
}

func (e *Call) String() string {
	var args = make([]string, len(e.Args))
	//
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	//
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

func (e *Arith) String() string {
	var builder strings.Builder
	//
	for i, operand := range e.Operands {
		if i != 0 {
			builder.WriteString(" ")
			builder.WriteString(e.Operators[i-1].String())
			builder.WriteString(" ")
		}
		//
		builder.WriteString(operand.String())
	}
	//
	return builder.String()
}

func (e *Literal) isExpr() {}
func (e *VarRef) isExpr()  {}
func (e *Call) isExpr()    {}
func (e *Arith) isExpr()   {}

// Walk visits every subexpression of a given expression in pre-order, stopping
// at the first error returned by the visitor.
func Walk(expr Expr, visit func(Expr) error) error {
	if err := visit(expr); err != nil {
		return err
	}
	//
	var children []Expr
	//
	switch e := expr.(type) {
	case *Call:
		children = e.Args
	case *Arith:
		children = e.Operands
	}
	//
	for _, child := range children {
		if err := Walk(child, visit); err != nil {
			return err
		}
	}
	//
	return nil
}

// References determines whether a given expression references a given
// variable, including within call arguments.
func References(expr Expr, name string) bool {
	found := Walk(expr, func(e Expr) error {
		if v, ok := e.(*VarRef); ok && v.Name == name {
			return errFound
		}
		//
		return nil
	})
	//
	return found != nil
}

var errFound = errors.New("found")
