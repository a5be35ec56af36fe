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

	"github.com/consensys/go-bounds/pkg/util"
)

// Transform is a pointwise function lifted over an interval.  This produces
// the image of the interval under the function, or nothing if the function is
// undefined everywhere on the interval.  Where the function is only undefined
// on part of the interval, that part is simply discarded.
type Transform func(Interval) util.Option[Interval]

// Sqrt computes the image of an interval under the square root, which is
// undefined for negative values.
func Sqrt(i Interval) util.Option[Interval] {
	return monotone(i, nonNegatives, math.Sqrt)
}

// Exp computes the image of an interval under the exponential function.
func Exp(i Interval) util.Option[Interval] {
	return monotone(i, everything, math.Exp)
}

// Log computes the image of an interval under the natural logarithm, which is
// undefined for non-positive values.
func Log(i Interval) util.Option[Interval] {
	return monotone(i, positives, math.Log)
}

// Neg computes the image of an interval under negation.
func Neg(i Interval) util.Option[Interval] {
	return util.Some(i.Negate())
}

// Abs computes the image of an interval under the absolute value.
func Abs(i Interval) util.Option[Interval] {
	var (
		neg, hasNeg = i.Intersect(nonPositives)
		pos, hasPos = i.Intersect(nonNegatives)
	)
	//
	switch {
	case hasNeg && hasPos:
		// Both halves meet at zero, so the hull is exact.
		return util.Some(neg.Negate().Hull(pos))
	case hasNeg:
		return util.Some(neg.Negate())
	default:
		return util.Some(pos)
	}
}

// Apply a monotonically increasing function to an interval, after first
// restricting it to the function's domain.  An unbounded endpoint maps to the
// limit of the function (which is never attained), whilst endpoints mapping to
// an infinity become unbounded.
func monotone(i Interval, domain Interval, fn func(float64) float64) util.Option[Interval] {
	clipped, ok := i.Intersect(domain)
	//
	if !ok {
		return util.None[Interval]()
	}
	//
	low := image(clipped.low, math.Inf(-1), fn)
	high := image(clipped.high, math.Inf(1), fn)
	//
	if result, ok := NewInterval(low, high); ok {
		return util.Some(result)
	}
	//
	return util.None[Interval]()
}

func image(e Endpoint, unbounded float64, fn func(float64) float64) Endpoint {
	var (
		value    = unbounded
		included = false
	)
	//
	if p, ok := e.Get(); ok {
		value, included = p.Value, p.Included
	}
	//
	if r := fn(value); !math.IsInf(r, 0) && !math.IsNaN(r) {
		return At(Point{normaliseZero(r), included})
	}
	//
	return Unbounded()
}
