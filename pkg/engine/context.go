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
	"maps"
	"slices"

	"github.com/consensys/go-bounds/pkg/bounds"
	"github.com/consensys/go-bounds/pkg/dsl"
)

// State captures what is known about a variable.  This is a closed sum over
// Resolved and Pending.
type State interface {
	isState()
}

// Resolved is the state of a variable whose bounds are known.
type Resolved struct {
	Bounds bounds.Bounds
}

// Pending is the state of a variable whose defining expression has not yet
// been evaluated.
type Pending struct {
	Expr dsl.Expr
}

func (Resolved) isState() {}
func (Pending) isState()  {}

// VarData holds a single variable.  Variables are never modified once
// constructed, hence they can be shared freely between contexts.  Resolving a
// pending variable instead replaces it within the resolving context.
type VarData struct {
	Name string
	// Array width of this variable.
	Size uint
	// Set when the variable has been finalised and can no longer be rebound.
	Frozen bool
	State  State
}

// NewResolved constructs a resolved variable.
func NewResolved(name string, size uint, value bounds.Bounds) *VarData {
	return &VarData{name, size, false, Resolved{value}}
}

// NewPending constructs a pending variable.
func NewPending(name string, size uint, expr dsl.Expr) *VarData {
	return &VarData{name, size, false, Pending{expr}}
}

// IsResolved checks whether this variable's bounds are known.
func (v *VarData) IsResolved() bool {
	_, ok := v.State.(Resolved)
	return ok
}

// Context maps variable names to their current data.  Contexts marked
// unreachable arise from conditional arms which no value can take.
type Context struct {
	vars      map[string]*VarData
	reachable bool
}

// NewContext constructs an empty (reachable) context.
func NewContext() *Context {
	return &Context{make(map[string]*VarData), true}
}

// Get returns the variable with the given name, if it exists.
func (c *Context) Get(name string) (*VarData, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// Has checks whether a variable with the given name exists.
func (c *Context) Has(name string) bool {
	_, ok := c.vars[name]
	return ok
}

// Set binds a given name to a given variable, replacing any existing binding.
func (c *Context) Set(name string, v *VarData) {
	c.vars[name] = v
}

// Names returns the names of all variables in this context in sorted order.
func (c *Context) Names() []string {
	return slices.Sorted(maps.Keys(c.vars))
}

// IsReachable checks whether any execution can reach this context.
func (c *Context) IsReachable() bool {
	return c.reachable
}

// Clone returns a shallow copy of this context.  Variables themselves are
// shared, which is safe as they are never modified.
func (c *Context) Clone() *Context {
	return &Context{maps.Clone(c.vars), c.reachable}
}
