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
	"fmt"

	"github.com/consensys/go-bounds/pkg/bounds"
	log "github.com/sirupsen/logrus"
)

// Conditions maps each conditioned variable to the bounds which the true arm
// restricts it to.
type Conditions map[string]bounds.Bounds

// Resolver determines the bounds of a named variable within a given context,
// memoising the result there.
type Resolver func(name string, ctx *Context) (bounds.Bounds, error)

// Split partitions a context into the two arms of a conditional.  In the true
// arm each conditioned variable is intersected with its restriction, whilst in
// the false arm it is intersected with the complement.  Other variables are
// shared by both arms.  An arm in which some conditioned variable admits no
// value is marked unreachable, and its conditioned variables are left
// untouched.  Observe that every conditioned variable must already be
// resolved.
func Split(ctx *Context, conds Conditions) (*Context, *Context) {
	var (
		then      = ctx.Clone()
		otherwise = ctx.Clone()
	)
	//
	for name, restriction := range conds {
		v, ok := ctx.Get(name)
		//
		if !ok || !v.IsResolved() {
			panic(fmt.Sprintf("conditioned variable \"%s\" not resolved", name))
		}
		//
		current := v.State.(Resolved).Bounds
		complement, _ := restriction.Invert()
		//
		restrict(then, name, v, current, restriction)
		restrict(otherwise, name, v, current, complement)
	}
	//
	return then, otherwise
}

func restrict(arm *Context, name string, v *VarData, current bounds.Bounds, restriction bounds.Bounds) {
	if !arm.reachable {
		return
	} else if restriction.IsEmpty() {
		// The complement of everything
		arm.reachable = false
	} else if narrowed, ok := current.Intersect(restriction); ok {
		arm.Set(name, &VarData{name, v.Size, v.Frozen, Resolved{narrowed}})
	} else {
		arm.reachable = false
	}
	//
	if arm.reachable {
		log.Debugf("split %s to %s", name, arm.vars[name].State.(Resolved).Bounds)
	} else {
		log.Debugf("split %s by %s is unreachable", name, restriction)
	}
}

// Merge rejoins the two arms of a conditional.  Variables which are bound
// identically in both arms are retained as is, whilst those whose bindings
// differ (e.g. because they were narrowed or reassigned) are resolved in each
// arm and unioned.  An unreachable arm contributes nothing, whilst variables
// declared in only one arm are dropped.
func Merge(then *Context, otherwise *Context, resolve Resolver) (*Context, error) {
	var merged = &Context{make(map[string]*VarData), then.reachable || otherwise.reachable}
	//
	for _, name := range then.Names() {
		var (
			lhs, _  = then.Get(name)
			rhs, ok = otherwise.Get(name)
		)
		//
		switch {
		case !ok:
			log.Debugf("dropping %s at end of branch", name)
		case lhs == rhs || !otherwise.reachable:
			merged.Set(name, lhs)
		case !then.reachable:
			merged.Set(name, rhs)
		default:
			lb, err := resolve(name, then)
			if err != nil {
				return nil, err
			}
			//
			rb, err := resolve(name, otherwise)
			if err != nil {
				return nil, err
			}
			//
			union := lb.Union(rb)
			//
			log.Debugf("merge %s from %s and %s gives %s", name, lb, rb, union)
			//
			merged.Set(name, &VarData{name, lhs.Size, lhs.Frozen && rhs.Frozen, Resolved{union}})
		}
	}
	//
	return merged, nil
}
