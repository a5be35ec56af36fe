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
package engine

import (
	"github.com/consensys/go-bounds/pkg/bounds"
	"github.com/consensys/go-bounds/pkg/dsl"
	"github.com/consensys/go-bounds/pkg/util/collection/stack"
	"github.com/consensys/go-bounds/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// DEFAULT_MAX_CALL_DEPTH is the default bound on nested function calls.
const DEFAULT_MAX_CALL_DEPTH = 64

// Interpreter executes the statements of a program one at a time, reporting
// the results of any queries.  There is one scope for the program itself, and
// one for each function call in progress.
type Interpreter struct {
	functions map[string]Function
	scopes    *stack.Stack[*scope]
	// Pending variables currently being resolved, used to detect cycles.
	resolving map[*VarData]bool
	reporter  Reporter
	maxDepth  uint
}

// scope holds the variables of a program or function call, along with any
// conditionals currently open within it.
type scope struct {
	// Context outside of any conditional
	ctx      *Context
	branches *stack.Stack[*frame]
}

// frame records an open conditional, including both of its arms.
type frame struct {
	cond      dsl.Condition
	then      *Context
	otherwise *Context
	// Indicates whether ">>" has been executed.
	inElse bool
}

// NewInterpreter constructs an interpreter with an empty context, which
// reports queries to a given reporter and permits function calls to be nested
// at most maxDepth deep.
func NewInterpreter(reporter Reporter, maxDepth uint) *Interpreter {
	var (
		functions = make(map[string]Function)
		scopes    = stack.NewStack[*scope]()
	)
	//
	for _, builtin := range Builtins() {
		functions[builtin.Name()] = builtin
	}
	//
	scopes.Push(newScope(NewContext()))
	//
	return &Interpreter{functions, scopes, make(map[*VarData]bool), reporter, maxDepth}
}

// Run executes every statement of a given program in order, stopping at the
// first error.
func (p *Interpreter) Run(program *dsl.Program) error {
	for _, stmt := range program.Statements {
		if err := p.Exec(stmt); err != nil {
			return err
		}
	}
	//
	if branches := p.scope().branches; !branches.IsEmpty() {
		return dsl.NewError(dsl.UNBALANCED_BLOCK, branches.Top().cond.Span(), "missing \"--\"")
	}
	//
	return nil
}

// Context returns the context in which the next statement will execute.
func (p *Interpreter) Context() *Context {
	return p.scope().current()
}

// Function returns the function of a given name, if it exists.
func (p *Interpreter) Function(name string) (Function, bool) {
	fn, ok := p.functions[name]
	return fn, ok
}

// CalcBounds determines the bounds of a given variable in the current context,
// resolving it if necessary.
func (p *Interpreter) CalcBounds(name string) (bounds.Bounds, error) {
	return p.resolve(name, p.Context(), source.Span{})
}

// Exec executes a single statement.
func (p *Interpreter) Exec(stmt dsl.Statement) error {
	switch s := stmt.(type) {
	case *dsl.Declaration:
		return p.execDeclaration(s)
	case *dsl.Rebind:
		return p.execRebind(s)
	case *dsl.Finalise:
		return p.execFinalise(s)
	case *dsl.Query:
		return p.execQuery(s)
	case *dsl.Dump:
		return p.execDump(s)
	case *dsl.If:
		return p.execIf(s)
	case *dsl.Else:
		return p.execElse(s)
	case *dsl.End:
		return p.execEnd(s)
	case *dsl.FunctionDef:
		return p.execFunctionDef(s)
	default:
		panic("unknown statement encountered")
	}
}

func (p *Interpreter) execDeclaration(s *dsl.Declaration) error {
	var ctx = p.Context()
	//
	if ctx.Has(s.Name) {
		return dsl.NewError(dsl.REDECLARATION, s.Span(), "variable \"%s\" already declared", s.Name)
	} else if err := p.validate(s.Expr, ctx); err != nil {
		return err
	}
	//
	ctx.Set(s.Name, bind(s.Name, s.Size, s.Expr))
	log.Debugf("declared %s = %s", s.Name, s.Expr)
	//
	return nil
}

func (p *Interpreter) execRebind(s *dsl.Rebind) error {
	var ctx = p.Context()
	//
	v, ok := ctx.Get(s.Name)
	//
	if !ok {
		return undefinedVariable(s.Name, s.Span())
	} else if v.Frozen {
		return dsl.NewError(dsl.REDECLARATION, s.Span(), "cannot rebind finalised variable \"%s\"", s.Name)
	} else if err := p.validate(s.Expr, ctx); err != nil {
		return err
	}
	// A self-referencing definition is evaluated against the previous binding
	if ctx.IsReachable() && dsl.References(s.Expr, s.Name) {
		value, err := p.evaluate(s.Expr, ctx)
		//
		if err != nil {
			return err
		}
		//
		ctx.Set(s.Name, NewResolved(s.Name, v.Size, value))
	} else {
		ctx.Set(s.Name, bind(s.Name, v.Size, s.Expr))
	}
	//
	log.Debugf("rebound %s = %s", s.Name, s.Expr)
	//
	return nil
}

func (p *Interpreter) execFinalise(s *dsl.Finalise) error {
	var ctx = p.Context()
	//
	v, ok := ctx.Get(s.Name)
	//
	if !ok {
		return undefinedVariable(s.Name, s.Span())
	} else if !ctx.IsReachable() {
		ctx.Set(s.Name, &VarData{s.Name, v.Size, true, v.State})
		return nil
	}
	//
	value, err := p.resolve(s.Name, ctx, s.Span())
	//
	if err != nil {
		return err
	}
	//
	ctx.Set(s.Name, &VarData{s.Name, v.Size, true, Resolved{value}})
	//
	return nil
}

func (p *Interpreter) execQuery(s *dsl.Query) error {
	var ctx = p.Context()
	//
	v, ok := ctx.Get(s.Name)
	//
	if !ok {
		return undefinedVariable(s.Name, s.Span())
	} else if !ctx.IsReachable() {
		p.reporter.Report(Entry{Name: s.Name, Size: v.Size, Unreachable: true, Span: s.Span()})
		return nil
	}
	//
	value, err := p.resolve(s.Name, ctx, s.Span())
	//
	if err != nil {
		return err
	}
	//
	p.reporter.Report(Entry{Name: s.Name, Size: v.Size, Value: value, Span: s.Span()})
	//
	return nil
}

func (p *Interpreter) execDump(s *dsl.Dump) error {
	var ctx = p.Context()
	//
	for _, name := range ctx.Names() {
		var (
			v, _  = ctx.Get(name)
			entry = Entry{Name: name, Size: v.Size, Span: s.Span()}
		)
		//
		switch state := v.State.(type) {
		case Resolved:
			entry.Value = state.Bounds
		case Pending:
			entry.Pending = state.Expr
		}
		//
		if !ctx.IsReachable() {
			entry = Entry{Name: name, Size: v.Size, Unreachable: true, Span: s.Span()}
		} else if s.Resolve && entry.Pending != nil {
			value, err := p.resolve(name, ctx, s.Span())
			//
			if err != nil {
				return err
			}
			//
			entry.Value, entry.Pending = value, nil
		}
		//
		p.reporter.Report(entry)
	}
	//
	return nil
}

func (p *Interpreter) execIf(s *dsl.If) error {
	var (
		ctx             = p.Context()
		cond            = s.Condition
		then, otherwise *Context
	)
	//
	if !ctx.Has(cond.Variable) {
		return undefinedVariable(cond.Variable, cond.Span())
	} else if ctx.IsReachable() {
		if _, err := p.resolve(cond.Variable, ctx, cond.Span()); err != nil {
			return err
		}
		//
		then, otherwise = Split(ctx, Conditions{cond.Variable: cond.Restriction()})
	} else {
		then, otherwise = ctx.Clone(), ctx.Clone()
	}
	//
	log.Debugf("entering ?? %s", cond)
	p.scope().branches.Push(&frame{cond, then, otherwise, false})
	//
	return nil
}

func (p *Interpreter) execElse(s *dsl.Else) error {
	var branches = p.scope().branches
	//
	if branches.IsEmpty() {
		return dsl.NewError(dsl.UNBALANCED_BLOCK, s.Span(), "\">>\" without \"??\"")
	} else if top := branches.Top(); top.inElse {
		return dsl.NewError(dsl.UNBALANCED_BLOCK, s.Span(), "duplicate \">>\"")
	} else {
		top.inElse = true
		log.Debugf("entering >> %s", top.cond)
	}
	//
	return nil
}

func (p *Interpreter) execEnd(s *dsl.End) error {
	var scope = p.scope()
	//
	if scope.branches.IsEmpty() {
		return dsl.NewError(dsl.UNBALANCED_BLOCK, s.Span(), "\"--\" without \"??\"")
	}
	//
	top := scope.branches.Pop()
	//
	merged, err := Merge(top.then, top.otherwise, func(name string, ctx *Context) (bounds.Bounds, error) {
		return p.resolve(name, ctx, s.Span())
	})
	//
	if err != nil {
		return err
	}
	//
	log.Debugf("leaving ?? %s", top.cond)
	scope.replace(merged)
	//
	return nil
}

func (p *Interpreter) execFunctionDef(s *dsl.FunctionDef) error {
	if p.scopes.Len() > 1 {
		return dsl.NewError(dsl.NESTED_FUNCTION, s.Span(), "nested function definition")
	} else if !p.scope().branches.IsEmpty() {
		return dsl.NewError(dsl.UNBALANCED_BLOCK, s.Span(), "function definition within \"??\"")
	} else if _, ok := p.functions[s.Name]; ok {
		return dsl.NewError(dsl.REDECLARATION, s.Span(), "function \"%s\" already defined", s.Name)
	}
	//
	p.functions[s.Name] = &UserFunction{s}
	log.Debugf("defined function %s/%d", s.Name, len(s.Params))
	//
	return nil
}

// Check that all variables and functions used within an expression exist.
func (p *Interpreter) validate(expr dsl.Expr, ctx *Context) error {
	return dsl.Walk(expr, func(e dsl.Expr) error {
		switch e := e.(type) {
		case *dsl.VarRef:
			if !ctx.Has(e.Name) {
				return undefinedVariable(e.Name, e.Span())
			}
		case *dsl.Call:
			return p.checkCall(e)
		}
		//
		return nil
	})
}

// Check a function being called exists, and is given the right number of
// arguments.
func (p *Interpreter) checkCall(e *dsl.Call) error {
	fn, ok := p.functions[e.Name]
	//
	if !ok {
		return dsl.NewError(dsl.UNDEFINED_FUNCTION, e.Span(), "undefined function \"%s\"", e.Name)
	} else if fn.Arity() != uint(len(e.Args)) {
		return dsl.NewError(dsl.ARITY_MISMATCH, e.Span(), "function \"%s\" expects %d argument(s), found %d",
			e.Name, fn.Arity(), len(e.Args))
	}
	//
	return nil
}

func (p *Interpreter) scope() *scope {
	return p.scopes.Top()
}

// Bind a variable to an expression, where literals are resolved immediately.
func bind(name string, size uint, expr dsl.Expr) *VarData {
	if lit, ok := expr.(*dsl.Literal); ok {
		return NewResolved(name, size, lit.Value)
	}
	//
	return NewPending(name, size, expr)
}

func undefinedVariable(name string, span source.Span) error {
	return dsl.NewError(dsl.UNDEFINED_VARIABLE, span, "undefined variable \"%s\"", name)
}

func newScope(ctx *Context) *scope {
	return &scope{ctx, stack.NewStack[*frame]()}
}

// Current returns the context of the innermost open arm, or the scope's own
// context if no conditional is open.
func (s *scope) current() *Context {
	if s.branches.IsEmpty() {
		return s.ctx
	} else if top := s.branches.Top(); top.inElse {
		return top.otherwise
	} else {
		return top.then
	}
}

// Replace the current context.
func (s *scope) replace(ctx *Context) {
	if s.branches.IsEmpty() {
		s.ctx = ctx
	} else if top := s.branches.Top(); top.inElse {
		top.otherwise = ctx
	} else {
		top.then = ctx
	}
}
