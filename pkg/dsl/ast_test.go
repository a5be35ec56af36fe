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
	"testing"

	"github.com/consensys/go-bounds/pkg/util/assert"
	"github.com/consensys/go-bounds/pkg/util/source"
)

func Test_References_01(t *testing.T) {
	expr := parseExpr(t, "x + y * 2")
	//
	assert.True(t, References(expr, "x"))
	assert.True(t, References(expr, "y"))
	assert.True(t, !References(expr, "z"))
}

func Test_References_02(t *testing.T) {
	expr := parseExpr(t, "f(1, g(z)) - 1")
	//
	assert.True(t, References(expr, "z"))
	assert.True(t, !References(expr, "f"))
}

func Test_Walk_01(t *testing.T) {
	var (
		expr  = parseExpr(t, "f(a, 1) + b")
		names []string
	)
	//
	err := Walk(expr, func(e Expr) error {
		switch e := e.(type) {
		case *Call:
			names = append(names, e.Name+"()")
		case *VarRef:
			names = append(names, e.Name)
		}
		//
		return nil
	})
	//
	assert.NoError(t, err)
	assert.Equal(t, []string{"f()", "a", "b"}, names)
}

func parseExpr(t *testing.T, input string) Expr {
	t.Helper()
	//
	program, err := Parse(source.NewSourceFile("test", []byte("_ = "+input)), true)
	//
	assert.NoError(t, err)
	//
	return program.Statements[0].(*Declaration).Expr
}
