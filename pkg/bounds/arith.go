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
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByZero signals a division whose divisor admits no value other than
// zero.
var ErrDivisionByZero = errors.New("division by zero")

// Operator identifies a binary arithmetic operation over bounds.
type Operator uint8

const (
	// ADD signals "+"
	ADD Operator = iota
	// SUB signals "-"
	SUB
	// MUL signals "*"
	MUL
	// DIV signals "/"
	DIV
)

func (op Operator) String() string {
	switch op {
	case ADD:
		return "+"
	case SUB:
		return "-"
	case MUL:
		return "*"
	case DIV:
		return "/"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Collapse reduces an expression of the form b0 op0 b1 op1 b2 ... from left to
// right, such that each operator is applied to the running result and the next
// operand.  There is no notion of precedence.
func Collapse(operands []Bounds, operators []Operator) (Bounds, error) {
	if len(operands) == 0 || len(operands) != len(operators)+1 {
		return Bounds{}, fmt.Errorf("malformed expression (%d operands, %d operators)", len(operands), len(operators))
	}
	//
	var (
		acc = operands[0]
		err error
	)
	//
	for i, op := range operators {
		if acc, err = acc.Apply(op, operands[i+1]); err != nil {
			return Bounds{}, err
		}
	}
	//
	return acc, nil
}

// Add returns all values x + y where x is in b and y is in o.
func (b Bounds) Add(o Bounds) Bounds {
	r, _ := b.Apply(ADD, o)
	return r
}

// Sub returns all values x - y where x is in b and y is in o.
func (b Bounds) Sub(o Bounds) Bounds {
	r, _ := b.Apply(SUB, o)
	return r
}

// Mul returns all values x * y where x is in b and y is in o.
func (b Bounds) Mul(o Bounds) Bounds {
	r, _ := b.Apply(MUL, o)
	return r
}

// Div returns all values x / y where x is in b and y is a non-zero value in o.
// This fails only if o admits no non-zero value.
func (b Bounds) Div(o Bounds) (Bounds, error) {
	return b.Apply(DIV, o)
}

// Apply a binary operator to every pair of intervals drawn from the two
// bounds, and take the union of the results.
func (b Bounds) Apply(op Operator, o Bounds) (Bounds, error) {
	var results []Interval
	//
	switch op {
	case ADD, SUB, MUL, DIV:
	default:
		return Bounds{}, fmt.Errorf("unknown operator %s", op.String())
	}
	//
	for i := range b.Len() {
		for j := range o.Len() {
			results = append(results, combine(op, b.Interval(i), o.Interval(j))...)
		}
	}
	//
	if r, ok := FromList(results...); ok {
		return r, nil
	} else if op == DIV {
		return Bounds{}, ErrDivisionByZero
	}
	//
	return Bounds{}, ErrEmptyBounds
}

// Combine two intervals under a given operator, producing zero or more
// intervals.
func combine(op Operator, lhs Interval, rhs Interval) []Interval {
	var (
		result Interval
		ok     bool
	)
	//
	switch op {
	case ADD:
		result, ok = addIntervals(lhs, rhs)
	case SUB:
		result, ok = addIntervals(lhs, rhs.Negate())
	case MUL:
		result, ok = mulIntervals(lhs, rhs)
	default:
		return divIntervals(lhs, rhs)
	}
	//
	if ok {
		return []Interval{result}
	}
	//
	return nil
}

func addIntervals(p, q Interval) (Interval, bool) {
	low := lowerOf(p.low).add(lowerOf(q.low))
	high := upperOf(p.high).add(upperOf(q.high))
	//
	return fromExtended(low, high)
}

// Multiplication is monotonic within each sign regime, hence the extremes are
// found amongst the four corner products.
func mulIntervals(p, q Interval) (Interval, bool) {
	var (
		pl, ph  = lowerOf(p.low), upperOf(p.high)
		ql, qh  = lowerOf(q.low), upperOf(q.high)
		corners = []extended{pl.mul(ql), pl.mul(qh), ph.mul(ql), ph.mul(qh)}
	)
	//
	return fromExtended(least(corners), greatest(corners))
}

// Division by an interval spanning zero is split at the (excluded) zero point,
// such that each side is divided independently.
func divIntervals(p, q Interval) []Interval {
	var results []Interval
	//
	if neg, ok := q.Intersect(negatives); ok {
		if r, ok := mulIntervals(p, reciprocal(neg, false)); ok {
			results = append(results, r)
		}
	}
	//
	if pos, ok := q.Intersect(positives); ok {
		if r, ok := mulIntervals(p, reciprocal(pos, true)); ok {
			results = append(results, r)
		}
	}
	//
	return results
}

// Compute 1/q for an interval which lies strictly on one side of zero.
func reciprocal(q Interval, positive bool) Interval {
	low := upperOf(q.high).reciprocal(positive)
	high := lowerOf(q.low).reciprocal(positive)
	// Cannot be empty, since q is not.
	interval, _ := fromExtended(low, high)
	//
	return interval
}

// ============================================================================
// Extended values
// ============================================================================

// extended is an endpoint lifted into the extended reals, such that unbounded
// endpoints become explicit infinities during arithmetic.
type extended struct {
	value float64
	// sign of infinity, or zero for a finite value.
	inf int
	// included indicates whether the value is attained.
	included bool
}

func lowerOf(e Endpoint) extended {
	if p, ok := e.Get(); ok {
		return extended{p.Value, 0, p.Included}
	}
	//
	return extended{inf: -1}
}

func upperOf(e Endpoint) extended {
	if p, ok := e.Get(); ok {
		return extended{p.Value, 0, p.Included}
	}
	//
	return extended{inf: 1}
}

// finite constructs an extended value, handling overflow into infinity.
func finite(v float64, included bool) extended {
	switch {
	case math.IsInf(v, 1):
		return extended{inf: 1}
	case math.IsInf(v, -1):
		return extended{inf: -1}
	default:
		return extended{normaliseZero(v), 0, included}
	}
}

func (e extended) isZero() bool {
	return e.inf == 0 && e.value == 0
}

func (e extended) sign() int {
	switch {
	case e.inf != 0:
		return e.inf
	case e.value > 0:
		return 1
	case e.value < 0:
		return -1
	default:
		return 0
	}
}

// cmp orders extended values by magnitude, ignoring inclusion.
func (e extended) cmp(o extended) int {
	switch {
	case e.inf < o.inf:
		return -1
	case e.inf > o.inf:
		return 1
	case e.inf != 0, e.value == o.value:
		return 0
	case e.value < o.value:
		return -1
	default:
		return 1
	}
}

// add two extended values.  Infinities of opposing sign never meet here, since
// lower bounds are only added to lower bounds (and likewise for upper bounds).
func (e extended) add(o extended) extended {
	switch {
	case e.inf != 0:
		return extended{inf: e.inf}
	case o.inf != 0:
		return extended{inf: o.inf}
	default:
		return finite(e.value+o.value, e.included && o.included)
	}
}

func (e extended) mul(o extended) extended {
	switch {
	case e.isZero() || o.isZero():
		// A zero factor which is attained pins the product at zero, whatever
		// the other factor is.
		return extended{0, 0, (e.isZero() && e.included) || (o.isZero() && o.included)}
	case e.inf != 0 || o.inf != 0:
		return extended{inf: e.sign() * o.sign()}
	default:
		return finite(e.value*o.value, e.included && o.included)
	}
}

func (e extended) reciprocal(positive bool) extended {
	switch {
	case e.inf != 0:
		// approaches zero, but never reaches it
		return extended{0, 0, false}
	case e.value == 0 && positive:
		return extended{inf: 1}
	case e.value == 0:
		return extended{inf: -1}
	default:
		return finite(1/e.value, e.included)
	}
}

// least determines the smallest of a set of candidate values.  Where several
// candidates share that value, it is attained if any of them is.
func least(candidates []extended) extended {
	return extreme(candidates, -1)
}

// greatest determines the largest of a set of candidate values, in the same
// manner as least.
func greatest(candidates []extended) extended {
	return extreme(candidates, 1)
}

func extreme(candidates []extended, direction int) extended {
	best := candidates[0]
	//
	for _, c := range candidates[1:] {
		switch c.cmp(best) {
		case direction:
			best = c
		case 0:
			best.included = best.included || c.included
		}
	}
	//
	return best
}

func fromExtended(low extended, high extended) (Interval, bool) {
	var l, h Endpoint
	//
	// A lower bound can only reach +inf (or an upper bound -inf) by overflow,
	// in which case the true bound lies beyond the largest finite value.
	switch {
	case low.inf > 0:
		l = At(Open(math.MaxFloat64))
	case low.inf < 0:
		l = Unbounded()
	default:
		l = At(Point{low.value, low.included})
	}
	//
	switch {
	case high.inf < 0:
		h = At(Open(-math.MaxFloat64))
	case high.inf > 0:
		h = Unbounded()
	default:
		h = At(Point{high.value, high.included})
	}
	//
	return NewInterval(l, h)
}
