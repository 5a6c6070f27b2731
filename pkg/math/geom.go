// pkg/math/geom.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"
	"sort"
)

///////////////////////////////////////////////////////////////////////////
// Extent2D

// Extent2D represents a 2D bounding box with the two vertices at its
// opposite minimum and maximum corners.
type Extent2D struct {
	P0, P1 [2]float64
}

// EmptyExtent2D returns an Extent2D representing an empty bounding box.
func EmptyExtent2D() Extent2D {
	// Degenerate bounds
	return Extent2D{P0: [2]float64{1e30, 1e30}, P1: [2]float64{-1e30, -1e30}}
}

// Extent2DFromPoints returns an Extent2D that bounds all of the provided
// points.
func Extent2DFromPoints(pts [][2]float64) Extent2D {
	e := EmptyExtent2D()
	for _, p := range pts {
		for d := 0; d < 2; d++ {
			if p[d] < e.P0[d] {
				e.P0[d] = p[d]
			}
			if p[d] > e.P1[d] {
				e.P1[d] = p[d]
			}
		}
	}
	return e
}

func (e Extent2D) Width() float64 {
	return e.P1[0] - e.P0[0]
}

func (e Extent2D) Height() float64 {
	return e.P1[1] - e.P0[1]
}

func (e Extent2D) Center() [2]float64 {
	return [2]float64{(e.P0[0] + e.P1[0]) / 2, (e.P0[1] + e.P1[1]) / 2}
}

// Expand expands the extent by the given distance in all directions.
func (e Extent2D) Expand(d float64) Extent2D {
	return Extent2D{
		P0: [2]float64{e.P0[0] - d, e.P0[1] - d},
		P1: [2]float64{e.P1[0] + d, e.P1[1] + d}}
}

func (e Extent2D) Inside(p [2]float64) bool {
	return p[0] >= e.P0[0] && p[0] <= e.P1[0] && p[1] >= e.P0[1] && p[1] <= e.P1[1]
}

// Corners returns the four corner vertices of the extent.
func (e Extent2D) Corners() [4][2]float64 {
	return [4][2]float64{
		{e.P0[0], e.P0[1]},
		{e.P1[0], e.P0[1]},
		{e.P1[0], e.P1[1]},
		{e.P0[0], e.P1[1]},
	}
}

///////////////////////////////////////////////////////////////////////////
// Geometry

// SideOf returns the cross product (b-a) x (p-a): positive if p is to the
// left of the directed line a->b, negative if to the right, and zero if
// the three points are collinear. "Left" is with respect to the usual y-up
// orientation; callers working in y-down screen coordinates get the
// mirrored sign, which is fine as long as one convention is applied
// consistently, as it is throughout this package.
func SideOf(a, b, p [2]float64) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// deduplication tolerance for intersection points; a line through an
// extent corner satisfies two edge equations at once.
const intersectionEpsilon = 1e-6

// LineExtentIntersections returns the points where the infinite line
// through a and b crosses the boundary of the extent e. The line is
// intersected against each of the four edges in turn, keeping only points
// that fall within the finite edge, and duplicates within a small epsilon
// are merged. If fewer than two unique points are found--the line misses
// the extent entirely, or a==b so no line is defined--the original points
// {a, b} are returned unchanged as an explicit fallback rather than an
// empty result.
func LineExtentIntersections(a, b [2]float64, e Extent2D) [][2]float64 {
	d := Sub2(b, a)

	var isects [][2]float64
	add := func(p [2]float64) {
		for _, q := range isects {
			if Distance2(p, q) < intersectionEpsilon {
				return
			}
		}
		isects = append(isects, p)
	}

	// Vertical edges x = e.P0[0] and x = e.P1[0]
	if d[0] != 0 {
		for _, x := range [2]float64{e.P0[0], e.P1[0]} {
			t := (x - a[0]) / d[0]
			y := a[1] + t*d[1]
			if y >= e.P0[1] && y <= e.P1[1] {
				add([2]float64{x, y})
			}
		}
	}
	// Horizontal edges y = e.P0[1] and y = e.P1[1]
	if d[1] != 0 {
		for _, y := range [2]float64{e.P0[1], e.P1[1]} {
			t := (y - a[1]) / d[1]
			x := a[0] + t*d[0]
			if x >= e.P0[0] && x <= e.P1[0] {
				add([2]float64{x, y})
			}
		}
	}

	if len(isects) < 2 {
		return [][2]float64{a, b}
	}
	return isects
}

// PointInPolygon checks whether the given point is inside the given polygon;
// it assumes that the last vertex does not repeat the first one, and so includes
// the edge from pts[len(pts)-1] to pts[0] in its test.
func PointInPolygon(p [2]float64, pts [][2]float64) bool {
	inside := false
	for i := 0; i < len(pts); i++ {
		p0, p1 := pts[i], pts[(i+1)%len(pts)]
		if (p0[1] <= p[1] && p[1] < p1[1]) || (p1[1] <= p[1] && p[1] < p0[1]) {
			x := p0[0] + (p[1]-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1])
			if x > p[0] {
				inside = !inside
			}
		}
	}
	return inside
}

// ConvexHull returns the convex hull of the given points as a simple
// polygon, wound counter-clockwise in the y-up convention of SideOf.
// Collinear points along hull edges are dropped. Fewer than three input
// points have no interior, so the input is returned unchanged in that
// case.
//
// This is the classic Graham scan: anchor at the lowest point, sort the
// rest by polar angle around it, then sweep with a stack, popping
// non-left turns.
func ConvexHull(points [][2]float64) [][2]float64 {
	if len(points) < 3 {
		return append([][2]float64{}, points...)
	}

	pts := append([][2]float64{}, points...)

	// Pivot: minimum y, ties broken by minimum x.
	pivot := 0
	for i, p := range pts {
		if p[1] < pts[pivot][1] || (p[1] == pts[pivot][1] && p[0] < pts[pivot][0]) {
			pivot = i
		}
	}
	pts[0], pts[pivot] = pts[pivot], pts[0]
	p0 := pts[0]

	// Sort the remaining points by polar angle around the pivot; for
	// collinear points the nearer one sorts first and the scan below
	// drops it.
	sort.SliceStable(pts[1:], func(i, j int) bool {
		a, b := pts[1+i], pts[1+j]
		if s := SideOf(p0, a, b); s != 0 {
			return s > 0
		}
		return Distance2(p0, a) < Distance2(p0, b)
	})

	var hull [][2]float64
	for _, p := range pts {
		for len(hull) >= 2 && SideOf(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

///////////////////////////////////////////////////////////////////////////
// Arrowheads

// ArrowHead returns the two wing points of an arrowhead at the end of the
// shaft from->to; headLen is the wing length and headAngleDeg the angle
// between each wing and the shaft. For a degenerate shaft (from==to) the
// shaft angle is undefined, so both wings coincide with to and the head
// simply isn't visible.
func ArrowHead(from, to [2]float64, headLen, headAngleDeg float64) ([2]float64, [2]float64) {
	if from == to {
		return to, to
	}

	angle := gomath.Atan2(to[1]-from[1], to[0]-from[0])
	a1 := angle + Radians(180-headAngleDeg)
	a2 := angle - Radians(180-headAngleDeg)

	w1 := [2]float64{to[0] + headLen*gomath.Cos(a1), to[1] + headLen*gomath.Sin(a1)}
	w2 := [2]float64{to[0] + headLen*gomath.Cos(a2), to[1] + headLen*gomath.Sin(a2)}
	return w1, w2
}
