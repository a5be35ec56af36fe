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
	"fmt"
	"math"
)

// Interval represents a single contiguous range of real values, such as
// [0, 10], (5, 10] or (-inf, 3).  Either endpoint can be absent, in which case
// the interval is unbounded in that direction.  Intervals are never empty.
type Interval struct {
	low  Endpoint
	high Endpoint
}

var (
	// everything is the interval (-inf, inf).
	everything = Interval{Unbounded(), Unbounded()}
	// negatives is the interval (-inf, 0).
	negatives = Interval{Unbounded(), At(Open(0))}
	// positives is the interval (0, inf).
	positives = Interval{At(Open(0)), Unbounded()}
	// nonNegatives is the interval [0, inf).
	nonNegatives = Interval{At(Closed(0)), Unbounded()}
	// nonPositives is the interval (-inf, 0].
	nonPositives = Interval{Unbounded(), At(Closed(0))}
)

// NewInterval constructs an interval from two endpoints, returning false if
// the resulting range would be empty.
func NewInterval(low Endpoint, high Endpoint) (Interval, bool) {
	if !admits(low, high) {
		return Interval{}, false
	}
	//
	return Interval{low, high}, true
}

// ClosedInterval constructs the interval [low, high].  Note this will panic if
// low > high.
func ClosedInterval(low float64, high float64) Interval {
	// sanity check
	if low > high || math.IsNaN(low) || math.IsNaN(high) {
		panic("invalid interval")
	}
	//
	return Interval{At(Closed(low)), At(Closed(high))}
}

// Low returns the lower endpoint of this interval.
func (p Interval) Low() Endpoint {
	return p.low
}

// High returns the upper endpoint of this interval.
func (p Interval) High() Endpoint {
	return p.high
}

// IsFinite determines whether or not this interval is bounded in both
// directions.
func (p Interval) IsFinite() bool {
	return p.low.HasValue() && p.high.HasValue()
}

// Contains checks whether a given value is contained within this interval.
func (p Interval) Contains(v float64) bool {
	var point = At(Closed(v))
	//
	return compareLower(p.low, point) <= 0 && compareUpper(point, p.high) <= 0
}

// Intersect returns the overlap of two intervals, or false if they are
// disjoint.  Where endpoints share a value, the open one wins.
func (p Interval) Intersect(q Interval) (Interval, bool) {
	low, high := p.low, p.high
	//
	if compareLower(q.low, low) > 0 {
		low = q.low
	}
	//
	if compareUpper(q.high, high) < 0 {
		high = q.high
	}
	//
	return NewInterval(low, high)
}

// Hull returns the smallest interval enclosing both intervals.
func (p Interval) Hull(q Interval) Interval {
	low, high := p.low, p.high
	//
	if compareLower(q.low, low) < 0 {
		low = q.low
	}
	//
	if compareUpper(q.high, high) > 0 {
		high = q.high
	}
	//
	return Interval{low, high}
}

// Negate returns the interval of all values -x where x is in this interval.
func (p Interval) Negate() Interval {
	return Interval{negateEndpoint(p.high), negateEndpoint(p.low)}
}

func (p Interval) String() string {
	return p.Format(-1)
}

// Format this interval using a given number of decimal places, where a negative
// precision means the shortest exact representation.
func (p Interval) Format(precision int) string {
	var lhs, rhs string
	//
	if l, ok := p.low.Get(); !ok {
		lhs = "(-inf"
	} else if l.Included {
		lhs = "[" + formatValue(l.Value, precision)
	} else {
		lhs = "(" + formatValue(l.Value, precision)
	}
	//
	if h, ok := p.high.Get(); !ok {
		rhs = "inf)"
	} else if h.Included {
		rhs = formatValue(h.Value, precision) + "]"
	} else {
		rhs = formatValue(h.Value, precision) + ")"
	}
	//
	return fmt.Sprintf("%s, %s", lhs, rhs)
}

func negateEndpoint(e Endpoint) Endpoint {
	if p, ok := e.Get(); ok {
		return At(Point{normaliseZero(-p.Value), p.Included})
	}
	//
	return e
}
