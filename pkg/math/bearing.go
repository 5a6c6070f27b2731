// pkg/math/bearing.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

///////////////////////////////////////////////////////////////////////////
// bearings and ranges

// Range returns the distance from the origin to the point with the given
// east (x) and north (y) offsets, in the same units as the offsets.
func Range(x, y float64) float64 {
	return gomath.Hypot(x, y)
}

// Bearing returns the compass bearing from the origin to the point with
// the given east (x) and north (y) offsets, in degrees in [0,360).
//
// Note that atan2() normally measures w.r.t. the +x axis and angles are
// positive for counter-clockwise. We want to measure w.r.t. +y (north) and
// to have positive angles be clockwise. Happily, swapping the order of
// values passed to atan2()--passing (x,y)--gives what we want.
func Bearing(x, y float64) float64 {
	return NormalizeBearing(Degrees(gomath.Atan2(x, y)))
}

// NormalizeBearing reduces a bearing to [0,360).
func NormalizeBearing(b float64) float64 {
	if b < 0 {
		return NormalizeBearing(b + 360)
	}
	return gomath.Mod(b, 360)
}

// BearingDifference returns the minimum difference between two bearings.
// (i.e., the result is always in the range [0,180].)
func BearingDifference(a float64, b float64) float64 {
	var d float64
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// BearingRate returns the rate of bearing change in degrees per second
// given the current and previous bearings and the elapsed time between
// them. The bearing delta is wrapped into (-180,180] before dividing so
// that a contact crossing the 0/360 seam doesn't register a spurious
// +/-360 deg/s spike.
func BearingRate(cur, prev, dt float64) float64 {
	d := cur - prev
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d / dt
}

func OppositeBearing(b float64) float64 {
	return NormalizeBearing(b + 180)
}
