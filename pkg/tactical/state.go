// pkg/tactical/state.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package tactical

import (
	gomath "math"

	"github.com/tacscope/tacscope/pkg/math"
)

// WorldPoint is a position in world space: nautical miles, x east, y
// north. It is a distinct type from scope.ScreenPoint so that the two
// coordinate spaces can't be accidentally mixed.
type WorldPoint [2]float64

///////////////////////////////////////////////////////////////////////////
// tactical vectors

type VectorKind int

const (
	VectorOwnShip VectorKind = iota
	VectorTarget
	VectorSonarBearing
	VectorAdoptedTrack
	VectorInterceptCourse
	VectorCollisionAvoidance
)

func (k VectorKind) String() string {
	switch k {
	case VectorOwnShip:
		return "own ship"
	case VectorTarget:
		return "target"
	case VectorSonarBearing:
		return "sonar bearing"
	case VectorAdoptedTrack:
		return "adopted track"
	case VectorInterceptCourse:
		return "intercept course"
	case VectorCollisionAvoidance:
		return "collision avoidance"
	default:
		return "unknown"
	}
}

// TacticalVector is a directional annotation on the display: an origin in
// world space, a compass bearing, and a magnitude in nautical miles.
// Vectors are immutable values; updates replace the collection rather
// than mutating entries in place.
type TacticalVector struct {
	Origin      WorldPoint
	BearingDeg  float64
	MagnitudeNm float64
	Kind        VectorKind
	Style       Style
}

// End returns the vector's tip: the origin displaced MagnitudeNm along
// BearingDeg.
func (v TacticalVector) End() WorldPoint {
	b := math.Radians(v.BearingDeg)
	return WorldPoint{
		v.Origin[0] + v.MagnitudeNm*gomath.Sin(b),
		v.Origin[1] + v.MagnitudeNm*gomath.Cos(b),
	}
}

// SonarBeam is the sensor beam chord across the display; the blind zone
// is the half-plane on the far side of the line through Start and End.
type SonarBeam struct {
	Start    WorldPoint
	End      WorldPoint
	WidthDeg float64
	Style    Style
}

// PointAlong returns the point fraction t of the way from Start to End.
func (b SonarBeam) PointAlong(t float64) WorldPoint {
	return WorldPoint(math.Lerp2(t, [2]float64(b.Start), [2]float64(b.End)))
}

// BearingDeg returns the compass bearing of the beam direction, Start
// toward End.
func (b SonarBeam) BearingDeg() float64 {
	d := math.Sub2([2]float64(b.End), [2]float64(b.Start))
	return math.Bearing(d[0], d[1])
}

///////////////////////////////////////////////////////////////////////////
// simulation state

type OwnShip struct {
	Position  WorldPoint
	CourseDeg float64
	SpeedKn   float64
}

// TargetTrack is the tracked contact. Position/CourseDeg/SpeedKn drive the
// deterministic motion model; BearingDeg/RangeNm/BearingRateDegPerSec are
// the derived measurements relative to own ship, refreshed each Tick.
type TargetTrack struct {
	Position             WorldPoint
	CourseDeg            float64
	SpeedKn              float64
	BearingDeg           float64
	RangeNm              float64
	BearingRateDegPerSec float64
}

// State is the complete mutable simulation state. It is owned exclusively
// by a scope.Engine and mutated only by Tick and the explicit update
// methods; renderers see copies, never this struct.
type State struct {
	OwnShip    OwnShip
	Target     TargetTrack
	SimTimeSec float64
	Vectors    []TacticalVector
	Beam       SonarBeam

	// Bearing at the previous tick, kept for the rate computation.
	prevBearingDeg float64
}

// Fractions along the beam where the ship and sensor reference markers
// sit, from the original display.
const (
	ShipBeamFraction   = 0.75
	SensorBeamFraction = 0.45
)

// NewState returns a State with the original display's scenario: own ship
// at the origin heading north at 10 knots, the target at (3,3) heading
// east at 8 knots, and the beam crossing the default world bounds.
func NewState() *State {
	s := &State{
		OwnShip: OwnShip{Position: WorldPoint{0, 0}, CourseDeg: 0, SpeedKn: 10},
		Target:  TargetTrack{Position: WorldPoint{3, 3}, CourseDeg: 90, SpeedKn: 8},
		Beam: SonarBeam{
			Start:    WorldPoint{-9, -6},
			End:      WorldPoint{9, 4},
			WidthDeg: 30,
			Style:    Style{Color: Green, Weight: 4},
		},
	}

	rel := math.Sub2([2]float64(s.Target.Position), [2]float64(s.OwnShip.Position))
	s.Target.RangeNm = math.Range(rel[0], rel[1])
	s.Target.BearingDeg = math.Bearing(rel[0], rel[1])
	s.prevBearingDeg = s.Target.BearingDeg

	shipRef := s.Beam.PointAlong(ShipBeamFraction)
	sensorRef := s.Beam.PointAlong(SensorBeamFraction)
	s.Vectors = []TacticalVector{
		{Origin: shipRef, BearingDeg: s.OwnShip.CourseDeg, MagnitudeNm: 2,
			Kind: VectorOwnShip, Style: Style{Color: Cyan, Weight: 3, HeadLengthPx: 12, HeadAngleDeg: 25}},
		{Origin: shipRef, BearingDeg: s.OwnShip.CourseDeg + 20, MagnitudeNm: 1.8,
			Kind: VectorInterceptCourse, Style: Style{Color: Yellow, Weight: 3, HeadLengthPx: 12, HeadAngleDeg: 25}},
		{Origin: sensorRef, BearingDeg: 225, MagnitudeNm: 2.7,
			Kind: VectorAdoptedTrack, Style: Style{Color: Red, Weight: 3, HeadLengthPx: 12, HeadAngleDeg: 25}},
		{Origin: sensorRef, BearingDeg: 180, MagnitudeNm: 1.5,
			Kind: VectorSonarBearing, Style: Style{Color: Cyan, Weight: 2, HeadLengthPx: 8, HeadAngleDeg: 30}},
	}

	return s
}

// advance moves p along a compass course at the given speed for the given
// number of hours.
func advance(p WorldPoint, courseDeg, speedKn, hours float64) WorldPoint {
	c := math.Radians(courseDeg)
	v := math.Scale2([2]float64{gomath.Sin(c), gomath.Cos(c)}, speedKn*hours)
	return WorldPoint(math.Add2([2]float64(p), v))
}

// Tick advances the simulation by dt seconds: both ships fly their
// constant course/speed, then the target's relative bearing, range, and
// bearing rate are refreshed. The transition is pure and deterministic;
// the same initial state and dt sequence always produces the same result.
func (s *State) Tick(dt float64) {
	s.SimTimeSec += dt
	hours := dt / 3600

	s.OwnShip.Position = advance(s.OwnShip.Position, s.OwnShip.CourseDeg, s.OwnShip.SpeedKn, hours)
	s.Target.Position = advance(s.Target.Position, s.Target.CourseDeg, s.Target.SpeedKn, hours)

	rel := math.Sub2([2]float64(s.Target.Position), [2]float64(s.OwnShip.Position))
	s.Target.RangeNm = math.Range(rel[0], rel[1])

	bearing := math.Bearing(rel[0], rel[1])
	s.Target.BearingRateDegPerSec = math.BearingRate(bearing, s.prevBearingDeg, dt)
	s.Target.BearingDeg = bearing
	s.prevBearingDeg = bearing
}

///////////////////////////////////////////////////////////////////////////
// update operations

func (s *State) UpdateOwnShip(courseDeg, speedKn float64) {
	s.OwnShip.CourseDeg = math.NormalizeBearing(courseDeg)
	s.OwnShip.SpeedKn = speedKn
}

// UpdateTarget overrides the tracked measurements; the target's world
// position is re-derived from own ship so that subsequent ticks stay
// consistent with the reported bearing and range.
func (s *State) UpdateTarget(bearingDeg, rangeNm, rateDegPerSec float64) {
	s.Target.BearingDeg = math.NormalizeBearing(bearingDeg)
	s.Target.RangeNm = rangeNm
	s.Target.BearingRateDegPerSec = rateDegPerSec
	s.prevBearingDeg = s.Target.BearingDeg

	b := math.Radians(s.Target.BearingDeg)
	s.Target.Position = WorldPoint{
		s.OwnShip.Position[0] + rangeNm*gomath.Sin(b),
		s.OwnShip.Position[1] + rangeNm*gomath.Cos(b),
	}
}

func (s *State) UpdateBeam(start, end WorldPoint, widthDeg float64) {
	s.Beam.Start = start
	s.Beam.End = end
	s.Beam.WidthDeg = widthDeg
}

func (s *State) AddVector(v TacticalVector) {
	s.Vectors = append(s.Vectors, v)
}

// SetVectors replaces the whole vector collection; the provided slice is
// copied so later caller mutations can't reach into the state.
func (s *State) SetVectors(vs []TacticalVector) {
	s.Vectors = append([]TacticalVector(nil), vs...)
}

func (s *State) ClearVectors() {
	s.Vectors = nil
}

// TargetInBeamArc reports whether the target's bearing from the sensor
// reference point falls within the beam's angular width.
func (s *State) TargetInBeamArc() bool {
	sensor := s.Beam.PointAlong(SensorBeamFraction)
	d := math.Sub2([2]float64(s.Target.Position), [2]float64(sensor))
	if d[0] == 0 && d[1] == 0 {
		return true
	}
	b := math.Bearing(d[0], d[1])
	return math.BearingDifference(b, s.Beam.BearingDeg()) <= s.Beam.WidthDeg/2
}
