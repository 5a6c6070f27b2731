// pkg/scope/blindzone.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"github.com/tacscope/tacscope/pkg/math"
)

// BlindZone returns the polygon covering the part of the viewport on the
// side of the beam line opposite the reference point: the region the
// sensor can't see. The candidate vertices are the viewport corners
// strictly on the far side plus the points where the beam line crosses
// the viewport boundary; the set is convex-hull ordered before being
// returned, since naive concatenation of corners and crossings isn't
// convex-ordered and would self-intersect when filled.
//
// A nil result means there is no blind zone to draw: the reference point
// sits exactly on the beam line (or the beam is degenerate), or the far
// side doesn't overlap the viewport.
func BlindZone(beamStart, beamEnd, ref ScreenPoint, viewport ViewportSize) []ScreenPoint {
	a, b := [2]float64(beamStart), [2]float64(beamEnd)
	rect := viewport.Extent()

	refSide := math.SideOf(a, b, [2]float64(ref))
	if refSide == 0 {
		return nil
	}

	var pts [][2]float64
	for _, c := range rect.Corners() {
		if s := math.SideOf(a, b, c); s != 0 && (s > 0) != (refSide > 0) {
			pts = append(pts, c)
		}
	}

	// The boundary crossings close the polygon along the beam line. The
	// intersection fallback can hand back the original endpoints when the
	// line misses the viewport; those lie outside and are dropped here.
	for _, p := range math.LineExtentIntersections(a, b, rect) {
		if rect.Expand(1e-6).Inside(p) {
			pts = append(pts, p)
		}
	}

	if len(pts) < 3 {
		return nil
	}

	hull := math.ConvexHull(pts)
	zone := make([]ScreenPoint, len(hull))
	for i, p := range hull {
		zone[i] = ScreenPoint(p)
	}
	return zone
}
