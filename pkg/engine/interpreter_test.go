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
	"testing"

	"github.com/consensys/go-bounds/pkg/dsl"
	"github.com/consensys/go-bounds/pkg/util/assert"
	"github.com/consensys/go-bounds/pkg/util/source"
	"github.com/google/go-cmp/cmp"
)

func Test_Interpreter_01(t *testing.T) {
	checkProgram(t, "x = [0, 10]\ny = [0, 15]\nz = x + y\nz?", "z: [0, 25]")
}

func Test_Interpreter_02(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? x > 5\nx?\n>>\nx?\n--\nx?", "x: (5, 10]", "x: [0, 5]", "x: [0, 10]")
}

func Test_Interpreter_03(t *testing.T) {
	checkProgram(t, "x = [-4, 4]\ny = sqrt(x)\ny?", "y: [0, 2]")
}

func Test_Interpreter_04(t *testing.T) {
	// Pending variables are resolved against the narrowed context
	checkProgram(t, "x = [0, 10]\nz = x * 2\n?? x > 5\nz?\n>>\nz?\n--\nz?",
		"z: (10, 20]", "z: [0, 10]", "z: [0, 20]")
}

func Test_Interpreter_05(t *testing.T) {
	checkProgram(t, "x = [0, 10]\ny = 0\n?? x > 5\ny! = 1\n--\ny?", "y: [0, 0] U [1, 1]")
}

func Test_Interpreter_06(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? x > 20\nx?\n>>\nx?\n--\nx?", "x: unreachable", "x: [0, 10]", "x: [0, 10]")
}

func Test_Interpreter_07(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? x > 2\n?? x < 8\nx?\n--\nx?\n--\nx?", "x: (2, 8)", "x: (2, 10]", "x: [0, 10]")
}

func Test_Interpreter_08(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? x > 5\ny = x\n>>\ny = 0 - x\n--\ny?", "y: [-5, 0] U (5, 10]")
}

func Test_Interpreter_09(t *testing.T) {
	checkProgram(t, "a = [1, 2]\nb = [-1, 1]\nc = a / b\nc?", "c: (-inf, -1] U [1, inf)")
}

func Test_Interpreter_10(t *testing.T) {
	checkProgram(t, "fn area(w, h)\na = w * h\n<- a\nx = [1, 2]\ny = area(x, [3, 4])\ny?", "y: [3, 8]")
}

func Test_Interpreter_11(t *testing.T) {
	checkProgram(t, "x = [0, 1]\nx! = x + 1\nx?", "x: [1, 2]")
}

func Test_Interpreter_12(t *testing.T) {
	checkProgram(t, "x = [0, 1]\nz = x + 1\n?*\n?", "x: [0, 1]", "z: x + 1 (pending)", "x: [0, 1]", "z: [1, 2]")
}

func Test_Interpreter_13(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? x > 20\n?? x > 30\nx?\n--\n--\nx?", "x: unreachable", "x: [0, 10]")
}

func Test_Interpreter_14(t *testing.T) {
	checkProgram(t, "v[4] = [0, 1]\nv?", "v[4]: [0, 1]")
}

func Test_Interpreter_15(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? x == 5\nx?\n>>\nx?\n--", "x: [5, 5]", "x: [0, 5) U (5, 10]")
}

func Test_Interpreter_16(t *testing.T) {
	// No precedence
	checkProgram(t, "x = 1 + 2 * 3\nx?", "x: [9, 9]")
}

func Test_Interpreter_17(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? 5 >= x\nx?\n--", "x: [0, 5]")
}

func Test_Interpreter_18(t *testing.T) {
	// Function with a conditional body
	checkProgram(t, "fn mag(a)\n?? a < 0\nr = 0 - a\n>>\nr = a\n--\n<- r\nx = [-3, 2]\ny = mag(x)\ny?", "y: [0, 3]")
}

func Test_Interpreter_19(t *testing.T) {
	checkProgram(t, "x = [1, 2]\ny = abs(neg(x)) + sqrt(x * x) + log(exp(0))\ny?", "y: [2, 4]")
}

func Test_Interpreter_20(t *testing.T) {
	checkProgram(t, "x = [0, 10]\nz = x + 1\nz.\nx! = 100\nz?", "z: [1, 11]")
}

func Test_Interpreter_21(t *testing.T) {
	checkProgram(t, "x = [0, 10]\n?? x > 20\ny = 1\ny.\n?\n--", "x: unreachable", "y: unreachable")
}

// ==================================================================
// Invalid
// ==================================================================

func Test_Interpreter_Invalid_01(t *testing.T) {
	checkProgramError(t, "x = [0,10]\n?? x > 5\ny = 1\n--\ny?", dsl.UNDEFINED_VARIABLE, "y?")
}

func Test_Interpreter_Invalid_02(t *testing.T) {
	checkProgramError(t, "a = 1\nb = 0\nc = a / b\nc?", dsl.DOMAIN_ERROR, "a / b")
}

func Test_Interpreter_Invalid_03(t *testing.T) {
	checkProgramError(t, "x = [-4, -1]\ny = sqrt(x)\ny?", dsl.DOMAIN_ERROR, "sqrt(x)")
}

func Test_Interpreter_Invalid_04(t *testing.T) {
	checkProgramError(t, "fn f(a)\n<- a\nx = f(1, 2)", dsl.ARITY_MISMATCH, "f(1, 2)")
}

func Test_Interpreter_Invalid_05(t *testing.T) {
	checkProgramError(t, "x = g(1)", dsl.UNDEFINED_FUNCTION, "g(1)")
}

func Test_Interpreter_Invalid_06(t *testing.T) {
	checkProgramError(t, "x = 1\nx = 2", dsl.REDECLARATION, "x = 2")
}

func Test_Interpreter_Invalid_07(t *testing.T) {
	checkProgramError(t, "y = x + 1", dsl.UNDEFINED_VARIABLE, "x")
}

func Test_Interpreter_Invalid_08(t *testing.T) {
	checkProgramError(t, "x = 1\nx.\nx! = 2", dsl.REDECLARATION, "x! = 2")
}

func Test_Interpreter_Invalid_09(t *testing.T) {
	checkProgramError(t, "a = 1\nb = a + 1\na! = b\na?", dsl.MALFORMED_EXPRESSION, "b")
}

func Test_Interpreter_Invalid_10(t *testing.T) {
	checkProgramError(t, "y! = 1", dsl.UNDEFINED_VARIABLE, "y! = 1")
}

func Test_Interpreter_Invalid_11(t *testing.T) {
	checkProgramError(t, "?? x > 1\n--", dsl.UNDEFINED_VARIABLE, "?? x > 1")
}

func Test_Interpreter_Invalid_12(t *testing.T) {
	checkProgramError(t, "fn sqrt(a)\n<- a", dsl.REDECLARATION, "fn sqrt(a)\n<- a")
}

func Test_Interpreter_Invalid_13(t *testing.T) {
	// Validation still applies within unreachable arms
	checkProgramError(t, "x = [0, 10]\n?? x > 20\ny = z\n--", dsl.UNDEFINED_VARIABLE, "z")
}

func Test_Interpreter_Recursion_01(t *testing.T) {
	var (
		srcfile  = source.NewSourceFile("test", []byte("fn f(n)\nr = f(n)\n<- r\nx = f(1)\nx?"))
		recorder = &Recorder{}
		actual   *dsl.Error
	)
	//
	program, err := dsl.Parse(srcfile, true)
	assert.NoError(t, err)
	//
	err = NewInterpreter(recorder, 4).Run(program)
	//
	assert.ErrorAs(t, err, &actual)
	assert.Equal(t, dsl.RECURSION_LIMIT, actual.Kind)
	assert.Equal(t, "f(n)", srcfile.Text(actual.Span()))
}

func Test_Interpreter_NotEquals_01(t *testing.T) {
	var (
		recorder = &Recorder{}
		interp   = NewInterpreter(recorder, DEFAULT_MAX_CALL_DEPTH)
		actual   *dsl.Error
	)
	//
	program, err := dsl.Parse(source.NewSourceFile("test", []byte("x = [0, 10]")), true)
	assert.NoError(t, err)
	assert.NoError(t, interp.Run(program))
	// Condition is rejected before reaching the interpreter
	_, err = dsl.Parse(source.NewSourceFile("test", []byte("?? x != 5\nx! = 1\n--")), true)
	//
	assert.ErrorAs(t, err, &actual)
	assert.Equal(t, dsl.UNSUPPORTED_OPERATOR, actual.Kind)
	//
	x, err := interp.CalcBounds("x")
	assert.NoError(t, err)
	assert.Equal(t, "[0, 10]", x.String())
	assert.Equal(t, []string{"x"}, interp.Context().Names())
}

func Test_Interpreter_Exec_01(t *testing.T) {
	var (
		recorder = &Recorder{}
		interp   = NewInterpreter(recorder, DEFAULT_MAX_CALL_DEPTH)
		actual   *dsl.Error
	)
	// Blocks are checked even when statements are executed individually
	err := interp.Exec(parseStatements(t, "?? x > 1\n--")[1])
	//
	assert.ErrorAs(t, err, &actual)
	assert.Equal(t, dsl.UNBALANCED_BLOCK, actual.Kind)
}

func Test_Interpreter_Exec_02(t *testing.T) {
	var interp = NewInterpreter(&Recorder{}, DEFAULT_MAX_CALL_DEPTH)
	//
	for _, stmt := range parseStatements(t, "x = [0, 10]\n?? x > 5\n--")[:2] {
		assert.NoError(t, interp.Exec(stmt))
	}
	//
	x, err := interp.CalcBounds("x")
	//
	assert.NoError(t, err)
	assert.Equal(t, "(5, 10]", x.String())
	//
	err = interp.Run(&dsl.Program{})
	assert.True(t, err != nil, "unclosed conditional")
}

// ==================================================================
// Framework
// ==================================================================

func checkProgram(t *testing.T, input string, expected ...string) {
	t.Helper()
	//
	var (
		recorder = &Recorder{}
		program  = &dsl.Program{Statements: parseStatements(t, input)}
	)
	//
	assert.NoError(t, NewInterpreter(recorder, DEFAULT_MAX_CALL_DEPTH).Run(program))
	//
	if diff := cmp.Diff(expected, recorder.Lines()); diff != "" {
		t.Errorf("report mismatch (-expected +actual):\n%s", diff)
	}
}

func checkProgramError(t *testing.T, input string, kind dsl.ErrorKind, text string) {
	t.Helper()
	//
	var (
		srcfile = source.NewSourceFile("test", []byte(input))
		actual  *dsl.Error
	)
	//
	program, err := dsl.Parse(srcfile, true)
	assert.NoError(t, err)
	//
	err = NewInterpreter(&Recorder{}, DEFAULT_MAX_CALL_DEPTH).Run(program)
	//
	assert.ErrorAs(t, err, &actual)
	assert.Equal(t, kind, actual.Kind, "error \"%s\"", err)
	assert.Equal(t, text, srcfile.Text(actual.Span()))
}

func parseStatements(t *testing.T, input string) []dsl.Statement {
	t.Helper()
	//
	program, err := dsl.Parse(source.NewSourceFile("test", []byte(input)), true)
	assert.NoError(t, err)
	//
	return program.Statements
}
