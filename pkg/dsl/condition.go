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
	"fmt"
	"strconv"

	"github.com/consensys/go-bounds/pkg/bounds"
	"github.com/consensys/go-bounds/pkg/util/source"
)

// Comparison identifies the operator of a condition.
type Comparison uint8

const (
	// LT signals "<"
	LT Comparison = iota
	// LTEQ signals "<="
	LTEQ
	// GT signals ">"
	GT
	// GTEQ signals ">="
	GTEQ
	// EQ signals "=="
	EQ
)

func (c Comparison) String() string {
	switch c {
	case LT:
		return "<"
	case LTEQ:
		return "<="
	case GT:
		return ">"
	case GTEQ:
		return ">="
	case EQ:
		return "=="
	default:
		return fmt.Sprintf("cmp(%d)", uint8(c))
	}
}

// Flip returns the comparison obtained by swapping its operands, such that
// "5 < x" becomes "x > 5".
func (c Comparison) Flip() Comparison {
	switch c {
	case LT:
		return GT
	case LTEQ:
		return GTEQ
	case GT:
		return LT
	case GTEQ:
		return LTEQ
	default:
		return c
	}
}

// Condition compares a single variable against a constant, always normalised
// so that the variable is on the left.
type Condition struct {
	Variable string
	Operator Comparison
	Value    float64
	span     source.Span
}

// NewCondition constructs a condition "variable op value".
func NewCondition(variable string, op Comparison, value float64, span source.Span) Condition {
	return Condition{variable, op, value, span}
}

// Span returns the program text covered by this condition.
func (c Condition) Span() source.Span {
	return c.span
}

// Restriction returns the bounds to which the true arm of this condition
// restricts its variable.  The false arm is restricted to the complement.
func (c Condition) Restriction() bounds.Bounds {
	var (
		at          = bounds.At
		restriction bounds.Interval
	)
	//
	switch c.Operator {
	case LT:
		restriction, _ = bounds.NewInterval(bounds.Unbounded(), at(bounds.Open(c.Value)))
	case LTEQ:
		restriction, _ = bounds.NewInterval(bounds.Unbounded(), at(bounds.Closed(c.Value)))
	case GT:
		restriction, _ = bounds.NewInterval(at(bounds.Open(c.Value)), bounds.Unbounded())
	case GTEQ:
		restriction, _ = bounds.NewInterval(at(bounds.Closed(c.Value)), bounds.Unbounded())
	default:
		return bounds.Single(c.Value)
	}
	//
	return bounds.FromInterval(restriction)
}

func (c Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Variable, c.Operator, strconv.FormatFloat(c.Value, 'g', -1, 64))
}
