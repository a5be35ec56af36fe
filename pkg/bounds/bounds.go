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
	"slices"
	"strings"
)

// ErrEmptyBounds signals an attempt to construct bounds which admit no values.
var ErrEmptyBounds = errors.New("bounds admit no values")

// Bounds represents the set of values a variable can take as an ordered union of
// disjoint intervals, such as [0, 1] U (5, 10].  Internally, this is stored as
// a flat sequence of boundaries which alternate between the start and end of
// each interval.  Thus, the sequence always has even length, and an unbounded
// endpoint can only appear at the very beginning (-inf) or very end (+inf).
// Adjacent intervals never overlap or touch, since these are always coalesced.
// The zero value represents the (invalid) empty set.
type Bounds struct {
	points []Endpoint
}

// FromInterval constructs bounds consisting of a single interval.
func FromInterval(interval Interval) Bounds {
	return Bounds{[]Endpoint{interval.low, interval.high}}
}

// FromList constructs bounds from an arbitrary list of intervals which may be
// unsorted, overlapping or touching.  This returns false when the list is
// empty.
func FromList(intervals ...Interval) (Bounds, bool) {
	var normalised = normalise(intervals)
	//
	if len(normalised) == 0 {
		return Bounds{}, false
	}
	//
	points := make([]Endpoint, 0, 2*len(normalised))
	//
	for _, ith := range normalised {
		points = append(points, ith.low, ith.high)
	}
	//
	return Bounds{points}, true
}

// FromPairs constructs bounds from one or more numeric pairs, each of which
// denotes an interval whose endpoints are either both included or both
// excluded.  An error is returned if a pair is inverted (i.e. low > high), or
// if the resulting bounds would be empty.
func FromPairs(included bool, pairs ...[2]float64) (Bounds, error) {
	var intervals []Interval
	//
	for _, pair := range pairs {
		low, high := pair[0], pair[1]
		//
		if math.IsNaN(low) || math.IsNaN(high) || low > high {
			return Bounds{}, fmt.Errorf("invalid bounds (lower %s exceeds upper %s)",
				formatValue(low, -1), formatValue(high, -1))
		}
		//
		lp, hp := Point{normaliseZero(low), included}, Point{normaliseZero(high), included}
		//
		if ith, ok := NewInterval(At(lp), At(hp)); ok {
			intervals = append(intervals, ith)
		}
	}
	//
	if b, ok := FromList(intervals...); ok {
		return b, nil
	}
	//
	return Bounds{}, ErrEmptyBounds
}

// Everything returns the bounds (-inf, inf).
func Everything() Bounds {
	return FromInterval(everything)
}

// Single returns the bounds [v, v].
func Single(v float64) Bounds {
	return FromInterval(ClosedInterval(v, v))
}

// IsEmpty checks whether these bounds are the (invalid) empty set.  This only
// arises for the zero value.
func (b Bounds) IsEmpty() bool {
	return len(b.points) == 0
}

// Len returns the number of disjoint intervals making up these bounds.
func (b Bounds) Len() int {
	return len(b.points) / 2
}

// Interval returns the ith interval within these bounds.
func (b Bounds) Interval(i int) Interval {
	return Interval{b.points[2*i], b.points[2*i+1]}
}

// Intervals returns the disjoint intervals making up these bounds, in
// ascending order.
func (b Bounds) Intervals() []Interval {
	intervals := make([]Interval, b.Len())
	//
	for i := range intervals {
		intervals[i] = b.Interval(i)
	}
	//
	return intervals
}

// Boundaries returns a copy of the flat boundary sequence.
func (b Bounds) Boundaries() []Endpoint {
	return slices.Clone(b.points)
}

// Contains checks whether a given value is admitted by these bounds.
func (b Bounds) Contains(v float64) bool {
	for i := range b.Len() {
		if b.Interval(i).Contains(v) {
			return true
		}
	}
	//
	return false
}

// Hull returns the smallest single interval enclosing these bounds.
func (b Bounds) Hull() Interval {
	return Interval{b.points[0], b.points[len(b.points)-1]}
}

// Singleton returns the only value admitted by these bounds, or false if they
// admit more than one value.
func (b Bounds) Singleton() (float64, bool) {
	if len(b.points) != 2 || b.points[0].IsEmpty() || b.points[1].IsEmpty() {
		return 0, false
	}
	//
	low, high := b.points[0].Unwrap(), b.points[1].Unwrap()
	//
	return low.Value, low.Value == high.Value
}

// Equals determines whether two bounds have exactly the same boundaries
// (including the inclusion of each).
func (b Bounds) Equals(o Bounds) bool {
	return slices.Equal(b.points, o.points)
}

// Invert returns the complement of these bounds over the extended real line.
// Since boundaries alternate between in and out, this amounts to flipping the
// inclusion of every finite boundary and adding (or removing) the unbounded
// sentinel at either end.  This returns false for the complement of (-inf,
// inf).
func (b Bounds) Invert() (Bounds, bool) {
	var n = len(b.points)
	//
	if n == 0 {
		return Everything(), true
	}
	//
	points := make([]Endpoint, 0, n+2)
	//
	if b.points[0].HasValue() {
		points = append(points, Unbounded())
	}
	//
	for i, ith := range b.points {
		if ith.HasValue() {
			points = append(points, flip(ith))
		} else if i != 0 && i != n-1 {
			panic("unbounded endpoint in middle of bounds")
		}
	}
	//
	if b.points[n-1].HasValue() {
		points = append(points, Unbounded())
	}
	//
	if len(points) == 0 {
		return Bounds{}, false
	}
	//
	return Bounds{points}, true
}

// Union returns the set of values admitted by either bounds.  Touching
// intervals are coalesced, such that where two boundaries share a value the
// closed one wins.  For example, (0, 5) U [5, 5] gives (0, 5].
func (b Bounds) Union(o Bounds) Bounds {
	intervals := append(b.Intervals(), o.Intervals()...)
	//
	result, _ := FromList(intervals...)
	//
	return result
}

// Intersect returns the set of values admitted by both bounds, or false if
// there are none.  Where two boundaries share a value, the open one wins.
func (b Bounds) Intersect(o Bounds) (Bounds, bool) {
	var (
		lhs, rhs = b.Intervals(), o.Intervals()
		result   []Interval
		i, j     int
	)
	//
	for i < len(lhs) && j < len(rhs) {
		if overlap, ok := lhs[i].Intersect(rhs[j]); ok {
			result = append(result, overlap)
		}
		// Advance whichever interval finishes first
		if compareUpper(lhs[i].high, rhs[j].high) <= 0 {
			i++
		} else {
			j++
		}
	}
	//
	return FromList(result...)
}

// Map applies a pointwise transform to every interval of these bounds,
// discarding those on which it is undefined.  This returns false if no
// interval survives.
func (b Bounds) Map(fn Transform) (Bounds, bool) {
	var intervals []Interval
	//
	for i := range b.Len() {
		if image, ok := fn(b.Interval(i)).Get(); ok {
			intervals = append(intervals, image)
		}
	}
	//
	return FromList(intervals...)
}

func (b Bounds) String() string {
	return b.Format(-1)
}

// Format these bounds using a given number of decimal places, where a negative
// precision means the shortest exact representation.
func (b Bounds) Format(precision int) string {
	if b.IsEmpty() {
		return "{}"
	}
	//
	var builder strings.Builder
	//
	for i := range b.Len() {
		if i != 0 {
			builder.WriteString(" U ")
		}
		//
		builder.WriteString(b.Interval(i).Format(precision))
	}
	//
	return builder.String()
}

// Sort intervals by their lower bound, and then coalesce any which overlap or
// touch.
func normalise(intervals []Interval) []Interval {
	var (
		sorted = slices.Clone(intervals)
		result []Interval
	)
	//
	slices.SortFunc(sorted, func(a, b Interval) int {
		return compareLower(a.low, b.low)
	})
	//
	for _, next := range sorted {
		n := len(result)
		//
		if n > 0 && touches(result[n-1].high, next.low) {
			// extend the current run
			if compareUpper(next.high, result[n-1].high) > 0 {
				result[n-1].high = next.high
			}
		} else {
			result = append(result, next)
		}
	}
	//
	return result
}
