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
package bounds

import (
	"math"
	"math/rand"
	"testing"

	"github.com/consensys/go-bounds/pkg/util/assert"
)

// ===================================================================
// Arithmetic
// ===================================================================

func Test_Arith_Add_01(t *testing.T) {
	checkArith(t, "[0, 25]", from(closed(0, 10)), ADD, from(closed(0, 15)))
}

func Test_Arith_Add_02(t *testing.T) {
	checkArith(t, "(-inf, 1]", from(upTo(0)), ADD, from(closed(1, 1)))
}

func Test_Arith_Add_03(t *testing.T) {
	checkArith(t, "[10, 11] U [13, 14]", from(closed(0, 1), closed(3, 4)), ADD, Single(10))
}

func Test_Arith_Add_04(t *testing.T) {
	// open endpoints are never attained by the sum
	checkArith(t, "(1, 4]", from(mk(At(Open(0)), At(Closed(3)))), ADD, Single(1))
}

func Test_Arith_Sub_01(t *testing.T) {
	checkArith(t, "[-15, 10]", from(closed(0, 10)), SUB, from(closed(0, 15)))
}

func Test_Arith_Sub_02(t *testing.T) {
	checkArith(t, "(-inf, 5)", from(below(5)), SUB, from(closed(0, 10)))
}

func Test_Arith_Mul_01(t *testing.T) {
	checkArith(t, "[-10, 15]", from(closed(-2, 3)), MUL, from(closed(4, 5)))
}

func Test_Arith_Mul_02(t *testing.T) {
	checkArith(t, "(0, 3]", from(mk(At(Open(0)), At(Closed(1)))), MUL, from(closed(2, 3)))
}

func Test_Arith_Mul_03(t *testing.T) {
	// zero is attained by the left operand, hence by the product
	checkArith(t, "[0, 2)", from(closed(0, 1)), MUL, from(open(1, 2)))
}

func Test_Arith_Mul_04(t *testing.T) {
	checkArith(t, "(-inf, inf)", from(closed(1, 2)), MUL, Everything())
}

func Test_Arith_Mul_05(t *testing.T) {
	checkArith(t, "[0, 0]", Single(0), MUL, Everything())
}

func Test_Arith_Mul_06(t *testing.T) {
	checkArith(t, "[-4, -3] U [-1, 0]", from(closed(0, 1), closed(3, 4)), MUL, Single(-1))
}

func Test_Arith_Div_01(t *testing.T) {
	checkArith(t, "(-inf, -1] U [1, inf)", from(closed(1, 2)), DIV, from(closed(-1, 1)))
}

func Test_Arith_Div_02(t *testing.T) {
	// 0/1 = 0 and 1/e is unbounded, so nothing can be excluded.
	checkArith(t, "(-inf, inf)", from(closed(-2, 2)), DIV, from(closed(-1, 1)))
}

func Test_Arith_Div_03(t *testing.T) {
	checkArith(t, "[2, 4]", Single(8), DIV, from(closed(2, 4)))
}

func Test_Arith_Div_04(t *testing.T) {
	checkArith(t, "[0.25, inf)", from(closed(1, 2)), DIV, from(closed(0, 4)))
}

func Test_Arith_Div_05(t *testing.T) {
	checkArith(t, "(0, 1]", from(closed(1, 2)), DIV, from(atLeast(2)))
}

func Test_Arith_Div_06(t *testing.T) {
	_, err := Single(1).Div(Single(0))
	assert.Equal(t, ErrDivisionByZero, err)
}

func Test_Arith_Div_07(t *testing.T) {
	// the zero point is dropped, but the rest of the divisor remains
	checkArith(t, "[-1, -1] U [0.5, 0.5]", Single(1), DIV, from(closed(-1, -1), closed(0, 0), closed(2, 2)))
}

func Test_Arith_Collapse_01(t *testing.T) {
	operands := []Bounds{from(closed(0, 10)), from(closed(0, 15)), Single(2)}
	actual, err := Collapse(operands, []Operator{ADD, MUL})
	//
	assert.NoError(t, err)
	checkBounds(t, "[0, 50]", actual)
}

func Test_Arith_Collapse_02(t *testing.T) {
	// strictly left-to-right: (1 - 2) - 3
	operands := []Bounds{Single(1), Single(2), Single(3)}
	actual, err := Collapse(operands, []Operator{SUB, SUB})
	//
	assert.NoError(t, err)
	checkBounds(t, "[-4, -4]", actual)
}

func Test_Arith_Collapse_03(t *testing.T) {
	_, err := Collapse([]Bounds{Single(1), Single(2)}, []Operator{ADD, ADD})
	assert.True(t, err != nil)
}

func Test_Arith_Collapse_04(t *testing.T) {
	_, err := Collapse([]Bounds{Single(1), Single(0), Single(2)}, []Operator{DIV, ADD})
	assert.Equal(t, ErrDivisionByZero, err)
}

func Test_Arith_Overflow_01(t *testing.T) {
	// An overflowing product lies beyond the largest finite value
	checkArith(t, "(1.7976931348623157e+308, inf)", Single(1e308), MUL, Single(10))
}

func Test_Arith_Overflow_02(t *testing.T) {
	checkArith(t, "(-inf, -1.7976931348623157e+308)", Single(-1e308), MUL, Single(10))
}

func Test_Arith_Overflow_03(t *testing.T) {
	checkArith(t, "(1.7976931348623157e+308, inf)", Single(math.MaxFloat64), ADD, Single(math.MaxFloat64))
}

func Test_Arith_Overflow_04(t *testing.T) {
	checkArith(t, "[1, inf)", from(closed(1, 1e308)), MUL, from(closed(1, 10)))
}

func Test_Arith_Sound_01(t *testing.T) {
	checkSound(t, ADD, 5)
}

func Test_Arith_Sound_02(t *testing.T) {
	checkSound(t, SUB, 6)
}

func Test_Arith_Sound_03(t *testing.T) {
	checkSound(t, MUL, 7)
}

func Test_Arith_Sound_04(t *testing.T) {
	checkSound(t, DIV, 8)
}

// ===================================================================
// Transforms
// ===================================================================

func Test_Transform_Sqrt_01(t *testing.T) {
	checkTransform(t, "[0, 2]", Sqrt, from(closed(-4, 4)))
}

func Test_Transform_Sqrt_02(t *testing.T) {
	_, ok := from(closed(-4, -1)).Map(Sqrt)
	assert.True(t, !ok)
}

func Test_Transform_Sqrt_03(t *testing.T) {
	checkTransform(t, "[2, 3]", Sqrt, from(upTo(-1), closed(4, 9)))
}

func Test_Transform_Sqrt_04(t *testing.T) {
	checkTransform(t, "(2, inf)", Sqrt, from(above(4)))
}

func Test_Transform_Log_01(t *testing.T) {
	checkTransform(t, "(-inf, 0]", Log, from(closed(-1, 1)))
}

func Test_Transform_Exp_01(t *testing.T) {
	checkTransform(t, "(0, 1]", Exp, from(upTo(0)))
}

func Test_Transform_Abs_01(t *testing.T) {
	checkTransform(t, "[0, 3]", Abs, from(closed(-3, 2)))
}

func Test_Transform_Abs_02(t *testing.T) {
	checkTransform(t, "(1, 3)", Abs, from(open(-3, -1)))
}

func Test_Transform_Neg_01(t *testing.T) {
	checkTransform(t, "(-4, -3) U [-2, -1]", Neg, from(closed(1, 2), open(3, 4)))
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkArith(t *testing.T, expected string, lhs Bounds, op Operator, rhs Bounds) {
	t.Helper()
	//
	actual, err := lhs.Apply(op, rhs)
	//
	assert.NoError(t, err)
	checkBounds(t, expected, actual)
}

func checkTransform(t *testing.T, expected string, fn Transform, arg Bounds) {
	t.Helper()
	//
	actual, ok := arg.Map(fn)
	//
	assert.True(t, ok)
	checkBounds(t, expected, actual)
}

// Check that every concrete combination of values drawn from the operands is
// admitted by the computed result.  Divisors are restricted to powers of two so
// that reciprocals are exact.
func checkSound(t *testing.T, op Operator, seed int64) {
	var (
		rng      = rand.New(rand.NewSource(seed))
		divisors = []float64{-4, -2, -1, -0.5, 0.5, 1, 2, 4}
	)
	//
	for i := 0; i < 200; i++ {
		lhs, rhs := randomBounds(rng), randomBounds(rng)
		result, err := lhs.Apply(op, rhs)
		//
		if err != nil {
			// only possible for a divisor of exactly zero
			assert.Equal(t, DIV, op)
			assert.True(t, rhs.Equals(Single(0)))
			//
			continue
		}
		//
		for x := -6.0; x <= 6; x += 0.5 {
			ys := divisors
			//
			if op != DIV {
				ys = nil
				for y := -6.0; y <= 6; y += 0.5 {
					ys = append(ys, y)
				}
			}
			//
			for _, y := range ys {
				if !lhs.Contains(x) || !rhs.Contains(y) {
					continue
				}
				//
				if v := evaluate(op, x, y); !result.Contains(v) {
					t.Fatalf("%s %s %s = %s does not contain %v %s %v = %v", lhs.String(), op.String(),
						rhs.String(), result.String(), x, op.String(), y, v)
				}
			}
		}
	}
}

func evaluate(op Operator, x, y float64) float64 {
	switch op {
	case ADD:
		return x + y
	case SUB:
		return x - y
	case MUL:
		return x * y
	default:
		return x / y
	}
}
