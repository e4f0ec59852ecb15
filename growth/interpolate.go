/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"cmp"
	"slices"
)

// Point is one reference value at a standard-deviation position.
type Point struct {
	SD    float64
	Value float64
}

// Interpolate returns the continuous z-score of value against points.
//
// Points are ordered by SD position. Values at or beyond either end of the
// band are extrapolated from the two outermost points on that side; values
// inside are linearly interpolated within their bracketing interval. A flat
// interval yields its lower SD position. The result is exact at every
// reference point and is not bounded.
func Interpolate(value float64, points []Point) float64 {
	switch len(points) {
	case 0:
		return 0
	case 1:
		return points[0].SD
	}

	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b Point) int {
		return cmp.Compare(a.SD, b.SD)
	})

	last := len(pts) - 1

	var lo, hi Point

	switch {
	case value <= pts[0].Value:
		lo, hi = pts[0], pts[1]
	case value >= pts[last].Value:
		lo, hi = pts[last-1], pts[last]
	default:
		lo, hi = pts[last-1], pts[last]

		for i := 0; i < last; i++ {
			if pts[i].Value <= value && value <= pts[i+1].Value {
				lo, hi = pts[i], pts[i+1]
				break
			}
		}
	}

	if hi.Value == lo.Value {
		return lo.SD
	}

	frac := (value - lo.Value) / (hi.Value - lo.Value)

	return lo.SD + frac*(hi.SD-lo.SD)
}
