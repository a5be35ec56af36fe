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
)

// Function is something which can be called from an expression.  This is a
// closed sum over UserFunction and Builtin.
type Function interface {
	// Name returns the name of this function.
	Name() string
	// Arity returns the number of arguments this function accepts.
	Arity() uint
	isFunction()
}

// UserFunction is a function defined within a program, whose body is executed
// within a fresh scope on every call.
type UserFunction struct {
	Def *dsl.FunctionDef
}

// Builtin is a function applied pointwise to each interval of its single
// argument.  Intervals on which the transform is undefined are discarded.
type Builtin struct {
	name      string
	Transform bounds.Transform
}

// Name implementation for the Function interface.
func (f *UserFunction) Name() string { return f.Def.Name }

// Arity implementation for the Function interface.
func (f *UserFunction) Arity() uint { return uint(len(f.Def.Params)) }

// Name implementation for the Function interface.
func (f *Builtin) Name() string { return f.name }

// Arity implementation for the Function interface.
func (f *Builtin) Arity() uint { return 1 }

func (f *UserFunction) isFunction() {}
func (f *Builtin) isFunction()      {}

// Builtins returns the functions available to every program.
func Builtins() []*Builtin {
	return []*Builtin{
		{"sqrt", bounds.Sqrt},
		{"abs", bounds.Abs},
		{"exp", bounds.Exp},
		{"log", bounds.Log},
		{"neg", bounds.Neg},
	}
}
