// pkg/scope/engine.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"github.com/brunoga/deep"

	"github.com/tacscope/tacscope/pkg/log"
	"github.com/tacscope/tacscope/pkg/math"
	"github.com/tacscope/tacscope/pkg/tactical"
)

// Engine owns the tactical state and the coordinate transform and turns
// them into screen-space primitives for a renderer. It performs no
// synchronization: Tick, the configuration methods, and Snapshot must all
// be called from a single goroutine (or behind a host-owned mutex). The
// engine itself has no goroutines, does no I/O, and never blocks; it is
// driven entirely by the host's scheduler.
type Engine struct {
	state *tactical.State
	xform Transform
	lg    *log.Logger
}

// Config collects the display configuration of an Engine.
type Config struct {
	Bounds   WorldBounds
	Viewport ViewportSize
	Mode     AspectMode
}

// DefaultConfig returns the original display's configuration: a 20x20 nm
// world centered on the origin shown in an 800x600 viewport.
func DefaultConfig() Config {
	return Config{
		Bounds:   WorldBounds{MinX: -10, MinY: -10, Width: 20, Height: 20},
		Viewport: ViewportSize{Width: 800, Height: 600},
		Mode:     PreserveAspect,
	}
}

func New(cfg Config, lg *log.Logger) (*Engine, error) {
	xform, err := MakeTransform(cfg.Bounds, cfg.Viewport, cfg.Mode)
	if err != nil {
		return nil, err
	}
	return &Engine{
		state: tactical.NewState(),
		xform: xform,
		lg:    lg,
	}, nil
}

// Tick advances the simulation by dt seconds.
func (e *Engine) Tick(dt float64) {
	e.state.Tick(dt)
	e.lg.Debugf("tick: t=%.1fs bearing=%.2f range=%.3fnm rate=%.4fdeg/s",
		e.state.SimTimeSec, e.state.Target.BearingDeg, e.state.Target.RangeNm,
		e.state.Target.BearingRateDegPerSec)
}

// Configure replaces the coordinate transform. Configuration is
// transactional: if the new geometry is invalid, ErrInvalidGeometry is
// returned and the previous transform remains in effect.
func (e *Engine) Configure(bounds WorldBounds, viewport ViewportSize, mode AspectMode) error {
	xform, err := MakeTransform(bounds, viewport, mode)
	if err != nil {
		e.lg.Warnf("rejecting display configuration %+v / %+v: %v", bounds, viewport, err)
		return err
	}
	e.xform = xform
	return nil
}

// SetViewport handles a viewport resize notification, keeping the current
// world bounds and aspect mode.
func (e *Engine) SetViewport(viewport ViewportSize) error {
	return e.Configure(e.xform.bounds, viewport, e.xform.mode)
}

func (e *Engine) SetWorldBounds(bounds WorldBounds) error {
	return e.Configure(bounds, e.xform.viewport, e.xform.mode)
}

func (e *Engine) Transform() Transform { return e.xform }

// State update pass-throughs; see the tactical package for semantics.

func (e *Engine) UpdateOwnShip(courseDeg, speedKn float64) {
	e.state.UpdateOwnShip(courseDeg, speedKn)
}

func (e *Engine) UpdateTarget(bearingDeg, rangeNm, rateDegPerSec float64) {
	e.state.UpdateTarget(bearingDeg, rangeNm, rateDegPerSec)
}

func (e *Engine) UpdateBeam(start, end tactical.WorldPoint, widthDeg float64) {
	e.state.UpdateBeam(start, end, widthDeg)
}

func (e *Engine) AddVector(v tactical.TacticalVector) { e.state.AddVector(v) }

func (e *Engine) SetVectors(vs []tactical.TacticalVector) { e.state.SetVectors(vs) }

func (e *Engine) ClearVectors() { e.state.ClearVectors() }

///////////////////////////////////////////////////////////////////////////
// snapshots

// VectorPrimitive is a tactical vector ready to draw: shaft endpoints and
// the two arrowhead wing points, all in screen space.
type VectorPrimitive struct {
	Kind         tactical.VectorKind
	Style        tactical.Style
	ShaftFrom    ScreenPoint
	ShaftTo      ScreenPoint
	Wing1, Wing2 ScreenPoint
}

// Snapshot is the read-only frame handed to a renderer. Everything in it
// is a copy; renderers never see or mutate engine state.
type Snapshot struct {
	// World-space state, vectors deep-copied.
	State tactical.State

	// Screen-space primitives, pre-mapped through the transform.
	Ship      ScreenPoint // ship reference marker on the beam
	Sensor    ScreenPoint // sensor reference marker on the beam
	OwnShip   ScreenPoint // kinematic own-ship position
	Target    ScreenPoint
	BeamStart ScreenPoint
	BeamEnd   ScreenPoint
	Vectors   []VectorPrimitive

	// Hull-ordered blind-zone polygon, clipped to the viewport; empty if
	// the blind side doesn't reach the viewport.
	BlindZone []ScreenPoint

	// Whether the target's screen position falls inside the blind zone.
	TargetObscured bool
}

func (e *Engine) Snapshot() Snapshot {
	st := *e.state
	st.Vectors = deep.MustCopy(e.state.Vectors)

	ship := e.xform.ScreenFromWorld(e.state.Beam.PointAlong(tactical.ShipBeamFraction))
	sensor := e.xform.ScreenFromWorld(e.state.Beam.PointAlong(tactical.SensorBeamFraction))
	target := e.xform.ScreenFromWorld(e.state.Target.Position)
	beamStart := e.xform.ScreenFromWorld(e.state.Beam.Start)
	beamEnd := e.xform.ScreenFromWorld(e.state.Beam.End)

	vectors := make([]VectorPrimitive, 0, len(e.state.Vectors))
	for _, v := range e.state.Vectors {
		from := e.xform.ScreenFromWorld(v.Origin)
		to := e.xform.ScreenFromWorld(v.End())
		w1, w2 := math.ArrowHead([2]float64(from), [2]float64(to),
			v.Style.HeadLengthPx, v.Style.HeadAngleDeg)
		vectors = append(vectors, VectorPrimitive{
			Kind:      v.Kind,
			Style:     v.Style,
			ShaftFrom: from,
			ShaftTo:   to,
			Wing1:     ScreenPoint(w1),
			Wing2:     ScreenPoint(w2),
		})
	}

	// The blind-zone side is chosen relative to own ship. The beam
	// reference markers sit on the line itself and so can't pick a side.
	ownShip := e.xform.ScreenFromWorld(e.state.OwnShip.Position)
	zone := BlindZone(beamStart, beamEnd, ownShip, e.xform.viewport)

	obscured := false
	if len(zone) >= 3 {
		poly := make([][2]float64, len(zone))
		for i, p := range zone {
			poly[i] = [2]float64(p)
		}
		obscured = math.PointInPolygon([2]float64(target), poly)
	}

	return Snapshot{
		State:          st,
		Ship:           ship,
		Sensor:         sensor,
		OwnShip:        ownShip,
		Target:         target,
		BeamStart:      beamStart,
		BeamEnd:        beamEnd,
		Vectors:        vectors,
		BlindZone:      zone,
		TargetObscured: obscured,
	}
}
