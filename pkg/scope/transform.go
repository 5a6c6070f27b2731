// pkg/scope/transform.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"github.com/tacscope/tacscope/pkg/math"
	"github.com/tacscope/tacscope/pkg/tactical"
)

// ScreenPoint is a position in screen space: pixels, x right, y down. It
// is a distinct type from tactical.WorldPoint so that the two coordinate
// spaces can't be accidentally mixed.
type ScreenPoint [2]float64

// WorldBounds is the world-space rectangle shown on the display, in
// nautical miles. Width and Height must be positive; degenerate bounds
// are a configuration error.
type WorldBounds struct {
	MinX, MinY    float64
	Width, Height float64
}

// ViewportSize is the display surface size in pixels; both dimensions
// must be positive.
type ViewportSize struct {
	Width, Height float64
}

func (v ViewportSize) Extent() math.Extent2D {
	return math.Extent2D{P0: [2]float64{0, 0}, P1: [2]float64{v.Width, v.Height}}
}

type AspectMode int

const (
	// PreserveAspect scales world space uniformly and centers it in the
	// viewport with symmetric offsets.
	PreserveAspect AspectMode = iota
	// Stretch scales each axis independently to fill the viewport.
	Stretch
)

func (m AspectMode) String() string {
	switch m {
	case PreserveAspect:
		return "preserve aspect"
	case Stretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// Transform maps between world and screen coordinates. It is an immutable
// value: MakeTransform derives the forward affine matrix and its exact
// inverse once, and reconfiguration means making a new Transform.
type Transform struct {
	bounds   WorldBounds
	viewport ViewportSize
	mode     AspectMode

	screenFromWorld math.Matrix3
	worldFromScreen math.Matrix3
}

// MakeTransform returns a Transform for the given world bounds, viewport,
// and aspect mode, or ErrInvalidGeometry if any dimension is zero or
// negative. The scales are strictly positive for all valid inputs, so the
// forward matrix always has an exact inverse.
func MakeTransform(bounds WorldBounds, viewport ViewportSize, mode AspectMode) (Transform, error) {
	if bounds.Width <= 0 || bounds.Height <= 0 || viewport.Width <= 0 || viewport.Height <= 0 {
		return Transform{}, ErrInvalidGeometry
	}

	var sx, sy, offX, offY float64
	switch mode {
	case Stretch:
		sx = viewport.Width / bounds.Width
		sy = viewport.Height / bounds.Height
	default:
		s := min(viewport.Width/bounds.Width, viewport.Height/bounds.Height)
		sx, sy = s, s
		offX = (viewport.Width - s*bounds.Width) / 2
		offY = (viewport.Height - s*bounds.Height) / 2
	}

	// Post-multiplied chains apply right to left: shift the world minimum
	// to the origin, scale to pixels with y flipped for the y-down screen
	// convention, then shift into the (possibly inset) viewport.
	screenFromWorld := math.Identity3x3().
		Translate(offX, viewport.Height-offY).
		Scale(sx, -sy).
		Translate(-bounds.MinX, -bounds.MinY)

	return Transform{
		bounds:          bounds,
		viewport:        viewport,
		mode:            mode,
		screenFromWorld: screenFromWorld,
		worldFromScreen: screenFromWorld.Inverse(),
	}, nil
}

func (t Transform) Bounds() WorldBounds    { return t.bounds }
func (t Transform) Viewport() ViewportSize { return t.viewport }
func (t Transform) Mode() AspectMode       { return t.mode }

// ScreenFromWorld transforms a world-space point to screen coordinates.
func (t Transform) ScreenFromWorld(p tactical.WorldPoint) ScreenPoint {
	return ScreenPoint(t.screenFromWorld.TransformPoint([2]float64(p)))
}

// WorldFromScreen transforms a screen-space point to world coordinates.
func (t Transform) WorldFromScreen(p ScreenPoint) tactical.WorldPoint {
	return tactical.WorldPoint(t.worldFromScreen.TransformPoint([2]float64(p)))
}

// root2Over2: components of a unit diagonal vector.
const root2Over2 = 0.7071067811865476

// ScreenFromWorldDistance converts a world-space distance to pixels by
// transforming a unit diagonal segment from the origin and measuring its
// image, so that Stretch mode yields a sensible average of the two axis
// scales rather than assuming an isotropic one.
func (t Transform) ScreenFromWorldDistance(d float64) float64 {
	v := t.screenFromWorld.TransformVector([2]float64{root2Over2, root2Over2})
	return d * math.Length2(v)
}

// WorldFromScreenDistance converts a pixel distance to world space the
// same way, through the inverse matrix. In PreserveAspect mode the two
// distance mappings are exact inverses; in Stretch mode each reports the
// average scale along its own unit diagonal.
func (t Transform) WorldFromScreenDistance(d float64) float64 {
	v := t.worldFromScreen.TransformVector([2]float64{root2Over2, root2Over2})
	return d * math.Length2(v)
}
