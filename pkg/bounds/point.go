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
	"strconv"

	"github.com/consensys/go-bounds/pkg/util"
)

// Point represents a finite endpoint of an interval, tagged with whether or
// not the value itself is included (i.e. closed) or excluded (i.e. open).
type Point struct {
	Value    float64
	Included bool
}

// Closed constructs a point which includes its value.
func Closed(value float64) Point {
	return Point{normaliseZero(value), true}
}

// Open constructs a point which excludes its value.
func Open(value float64) Point {
	return Point{normaliseZero(value), false}
}

// Endpoint is either a finite point or nothing, where nothing signals that an
// interval is unbounded in the relevant direction.
type Endpoint = util.Option[Point]

// Unbounded returns the endpoint representing -inf (when used as a lower
// bound) or +inf (when used as an upper bound).
func Unbounded() Endpoint {
	return util.None[Point]()
}

// At constructs a finite endpoint from a given point.
func At(p Point) Endpoint {
	return util.Some(p)
}

// Compare two endpoints used as lower bounds.  A negative result means the set
// admitted by a starts strictly before that admitted by b.  Thus, -inf precedes
// everything and, for equal values, a closed point precedes an open one.
func compareLower(a, b Endpoint) int {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return 0
	case a.IsEmpty():
		return -1
	case b.IsEmpty():
		return 1
	}
	//
	return comparePoints(a.Unwrap(), b.Unwrap(), -1)
}

// Compare two endpoints used as upper bounds.  A positive result means the set
// admitted by a ends strictly after that admitted by b.  Thus, +inf follows
// everything and, for equal values, a closed point follows an open one.
func compareUpper(a, b Endpoint) int {
	switch {
	case a.IsEmpty() && b.IsEmpty():
		return 0
	case a.IsEmpty():
		return 1
	case b.IsEmpty():
		return -1
	}
	//
	return comparePoints(a.Unwrap(), b.Unwrap(), 1)
}

// Compare two points by value where, for equal values, the point which is
// included is ordered by the given tie (-1 first, 1 last).
func comparePoints(a, b Point, tie int) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	case a.Included == b.Included:
		return 0
	case a.Included:
		return tie
	default:
		return -tie
	}
}

// Determine whether an interval ending at high and a following interval
// starting at low share at least one point, or leave no gap between them.  In
// either case their union is contiguous.
func touches(high, low Endpoint) bool {
	if high.IsEmpty() || low.IsEmpty() {
		return true
	}
	//
	h, l := high.Unwrap(), low.Unwrap()
	//
	switch {
	case h.Value > l.Value:
		return true
	case h.Value < l.Value:
		return false
	default:
		// closed wins on union
		return h.Included || l.Included
	}
}

// Determine whether the range delimited by low and high contains at least one
// value.
func admits(low, high Endpoint) bool {
	if low.IsEmpty() || high.IsEmpty() {
		return true
	}
	//
	l, h := low.Unwrap(), high.Unwrap()
	//
	return l.Value < h.Value || (l.Value == h.Value && l.Included && h.Included)
}

// Flip the inclusion of an endpoint, as happens when taking the complement.
func flip(e Endpoint) Endpoint {
	if p, ok := e.Get(); ok {
		return At(Point{p.Value, !p.Included})
	}
	//
	return e
}

func normaliseZero(v float64) float64 {
	// eliminate negative zero
	if v == 0 {
		return 0
	}
	//
	return v
}

func formatValue(v float64, precision int) string {
	v = normaliseZero(v)
	//
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	//
	return strconv.FormatFloat(v, 'f', precision, 64)
}
