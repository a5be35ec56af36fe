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
	"errors"

	"github.com/consensys/go-bounds/pkg/bounds"
	"github.com/consensys/go-bounds/pkg/dsl"
	"github.com/consensys/go-bounds/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Resolve the bounds of a variable in a given context.  A pending variable is
// evaluated in that context, and the result replaces it there so that it is
// evaluated at most once.  Other contexts sharing the pending variable are
// unaffected.
func (p *Interpreter) resolve(name string, ctx *Context, span source.Span) (bounds.Bounds, error) {
	v, ok := ctx.Get(name)
	//
	if !ok {
		return bounds.Bounds{}, undefinedVariable(name, span)
	}
	//
	switch state := v.State.(type) {
	case Resolved:
		return state.Bounds, nil
	case Pending:
		if p.resolving[v] {
			return bounds.Bounds{}, dsl.NewError(dsl.MALFORMED_EXPRESSION, state.Expr.Span(),
				"cyclic definition of \"%s\"", name)
		}
		//
		p.resolving[v] = true
		value, err := p.evaluate(state.Expr, ctx)
		delete(p.resolving, v)
		//
		if err != nil {
			return bounds.Bounds{}, err
		}
		//
		ctx.Set(name, &VarData{name, v.Size, v.Frozen, Resolved{value}})
		log.Debugf("resolved %s = %s as %s", name, state.Expr, value)
		//
		return value, nil
	default:
		panic("unknown variable state")
	}
}

// Evaluate an expression in a given context.  Arithmetic is reduced strictly
// from left to right.
func (p *Interpreter) evaluate(expr dsl.Expr, ctx *Context) (bounds.Bounds, error) {
	switch e := expr.(type) {
	case *dsl.Literal:
		return e.Value, nil
	case *dsl.VarRef:
		return p.resolve(e.Name, ctx, e.Span())
	case *dsl.Call:
		return p.call(e, ctx)
	case *dsl.Arith:
		var operands = make([]bounds.Bounds, len(e.Operands))
		//
		for i, operand := range e.Operands {
			var err error
			//
			if operands[i], err = p.evaluate(operand, ctx); err != nil {
				return bounds.Bounds{}, err
			}
		}
		//
		value, err := bounds.Collapse(operands, e.Operators)
		//
		if errors.Is(err, bounds.ErrDivisionByZero) {
			return bounds.Bounds{}, dsl.NewError(dsl.DOMAIN_ERROR, e.Span(), "division by zero")
		} else if err != nil {
			return bounds.Bounds{}, dsl.NewError(dsl.MALFORMED_EXPRESSION, e.Span(), "%s", err.Error())
		}
		//
		return value, nil
	default:
		panic("unknown expression encountered")
	}
}

// Call a function.  A builtin is applied to each interval of its argument,
// whilst a user function executes its body in a fresh scope.
func (p *Interpreter) call(e *dsl.Call, ctx *Context) (bounds.Bounds, error) {
	if err := p.checkCall(e); err != nil {
		return bounds.Bounds{}, err
	}
	//
	switch fn := p.functions[e.Name].(type) {
	case *Builtin:
		arg, err := p.evaluate(e.Args[0], ctx)
		//
		if err != nil {
			return bounds.Bounds{}, err
		}
		//
		value, ok := arg.Map(fn.Transform)
		//
		if !ok {
			return bounds.Bounds{}, dsl.NewError(dsl.DOMAIN_ERROR, e.Span(), "function \"%s\" undefined on %s",
				e.Name, arg)
		}
		//
		return value, nil
	case *UserFunction:
		return p.callUser(fn, e, ctx)
	default:
		panic("unknown function encountered")
	}
}

func (p *Interpreter) callUser(fn *UserFunction, e *dsl.Call, ctx *Context) (bounds.Bounds, error) {
	var callee = NewContext()
	//
	if p.scopes.Len() > p.maxDepth {
		return bounds.Bounds{}, dsl.NewError(dsl.RECURSION_LIMIT, e.Span(), "call depth exceeds %d", p.maxDepth)
	}
	// Bind formal parameters
	for i, param := range fn.Def.Params {
		var arg = e.Args[i]
		// Variables are shared with the caller
		if ref, ok := arg.(*dsl.VarRef); ok {
			if _, err := p.resolve(ref.Name, ctx, ref.Span()); err != nil {
				return bounds.Bounds{}, err
			}
			//
			v, _ := ctx.Get(ref.Name)
			callee.Set(param, v)
		} else if value, err := p.evaluate(arg, ctx); err != nil {
			return bounds.Bounds{}, err
		} else {
			callee.Set(param, NewResolved(param, 1, value))
		}
	}
	//
	log.Debugf("calling %s", e)
	//
	p.scopes.Push(newScope(callee))
	defer p.scopes.Pop()
	//
	for _, stmt := range fn.Def.Body {
		if err := p.Exec(stmt); err != nil {
			return bounds.Bounds{}, err
		}
	}
	//
	scope := p.scope()
	//
	if !scope.branches.IsEmpty() {
		return bounds.Bounds{}, dsl.NewError(dsl.UNBALANCED_BLOCK, scope.branches.Top().cond.Span(),
			"missing \"--\"")
	} else if err := p.validate(fn.Def.Return, scope.ctx); err != nil {
		return bounds.Bounds{}, err
	}
	//
	return p.evaluate(fn.Def.Return, scope.ctx)
}
