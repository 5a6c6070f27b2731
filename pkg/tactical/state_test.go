// pkg/tactical/state_test.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package tactical

import (
	gomath "math"
	"testing"

	"github.com/tacscope/tacscope/pkg/math"
)

func TestTickScenario(t *testing.T) {
	// Own ship at origin heading north at 10 knots; target at (3,3)
	// heading east at 8 knots. Two 2-second ticks = 4 simulated seconds.
	s := NewState()
	s.Tick(2)
	s.Tick(2)

	if s.SimTimeSec != 4 {
		t.Errorf("SimTimeSec: got %v, expected 4", s.SimTimeSec)
	}

	hrs := 4.0 / 3600
	relX := (3 + 8*hrs) - 0
	relY := 3 - 10*hrs

	wantRange := gomath.Hypot(relX, relY)
	wantBearing := math.NormalizeBearing(math.Degrees(gomath.Atan2(relX, relY)))

	if d := math.Abs(s.Target.RangeNm - wantRange); d > 1e-9 {
		t.Errorf("RangeNm: got %.12f, expected %.12f (delta %g)", s.Target.RangeNm, wantRange, d)
	}
	if d := math.Abs(s.Target.BearingDeg - wantBearing); d > 1e-9 {
		t.Errorf("BearingDeg: got %.12f, expected %.12f (delta %g)", s.Target.BearingDeg, wantBearing, d)
	}

	// Target drifting east of a northbound ship: bearing increases.
	if s.Target.BearingRateDegPerSec <= 0 {
		t.Errorf("bearing rate should be positive, got %v", s.Target.BearingRateDegPerSec)
	}
}

func TestTickDeterminism(t *testing.T) {
	a, b := NewState(), NewState()
	for _, dt := range []float64{2, 2, 0.5, 3, 2} {
		a.Tick(dt)
		b.Tick(dt)
	}
	if a.Target != b.Target || a.OwnShip != b.OwnShip || a.SimTimeSec != b.SimTimeSec {
		t.Errorf("identical tick sequences diverged: %+v vs %+v", a, b)
	}
}

func TestBearingRateAcrossNorthSeam(t *testing.T) {
	// Place the target just west of north and let it cross to just east;
	// the rate must reflect the small eastward motion, not a 360 jump.
	s := NewState()
	s.UpdateTarget(359.5, 5, 0)
	s.Target.CourseDeg = 90
	s.Target.SpeedKn = 3600 // 1 nm per second, to cross the seam in one tick
	s.OwnShip.SpeedKn = 0

	s.Tick(2)

	if r := s.Target.BearingRateDegPerSec; r <= 0 || r > 180 {
		t.Errorf("seam crossing produced spurious bearing rate %v", r)
	}
}

func TestUpdateTargetRederivesPosition(t *testing.T) {
	s := NewState()
	s.UpdateTarget(90, 5, 0)

	want := WorldPoint{s.OwnShip.Position[0] + 5, s.OwnShip.Position[1]}
	if math.Distance2([2]float64(s.Target.Position), [2]float64(want)) > 1e-9 {
		t.Errorf("target position: got %v, expected %v", s.Target.Position, want)
	}

	// A tick with both ships stationary must keep the measurements.
	s.OwnShip.SpeedKn = 0
	s.Target.SpeedKn = 0
	s.Tick(2)
	if math.Abs(s.Target.BearingDeg-90) > 1e-9 || math.Abs(s.Target.RangeNm-5) > 1e-9 {
		t.Errorf("stationary tick drifted measurements: bearing %v range %v",
			s.Target.BearingDeg, s.Target.RangeNm)
	}
	if math.Abs(s.Target.BearingRateDegPerSec) > 1e-12 {
		t.Errorf("stationary tick should give zero bearing rate, got %v",
			s.Target.BearingRateDegPerSec)
	}
}

func TestVectorEnd(t *testing.T) {
	type testCase struct {
		name     string
		v        TacticalVector
		expected WorldPoint
	}
	testCases := []testCase{
		{
			name:     "North",
			v:        TacticalVector{Origin: WorldPoint{1, 1}, BearingDeg: 0, MagnitudeNm: 2},
			expected: WorldPoint{1, 3},
		},
		{
			name:     "East",
			v:        TacticalVector{Origin: WorldPoint{0, 0}, BearingDeg: 90, MagnitudeNm: 3},
			expected: WorldPoint{3, 0},
		},
		{
			name:     "Southwest",
			v:        TacticalVector{Origin: WorldPoint{0, 0}, BearingDeg: 225, MagnitudeNm: gomath.Sqrt2},
			expected: WorldPoint{-1, -1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			end := tc.v.End()
			if math.Distance2([2]float64(end), [2]float64(tc.expected)) > 1e-9 {
				t.Errorf("got %v, expected %v", end, tc.expected)
			}
		})
	}
}

func TestVectorListOperations(t *testing.T) {
	s := NewState()
	n := len(s.Vectors)

	v := TacticalVector{Origin: WorldPoint{1, 2}, BearingDeg: 45, MagnitudeNm: 1, Kind: VectorTarget}
	s.AddVector(v)
	if len(s.Vectors) != n+1 || s.Vectors[n] != v {
		t.Errorf("AddVector: got %v", s.Vectors)
	}

	replacement := []TacticalVector{v}
	s.SetVectors(replacement)
	if len(s.Vectors) != 1 || s.Vectors[0] != v {
		t.Errorf("SetVectors: got %v", s.Vectors)
	}
	replacement[0].BearingDeg = 180 // must not reach into the state
	if s.Vectors[0].BearingDeg != 45 {
		t.Errorf("SetVectors aliases the caller's slice")
	}

	s.ClearVectors()
	if len(s.Vectors) != 0 {
		t.Errorf("ClearVectors: got %v", s.Vectors)
	}
}

func TestTargetInBeamArc(t *testing.T) {
	s := NewState()
	sensor := s.Beam.PointAlong(SensorBeamFraction)
	beamBearing := s.Beam.BearingDeg()

	// Drop a target dead along the beam direction from the sensor.
	b := math.Radians(beamBearing)
	s.Target.Position = WorldPoint{sensor[0] + 3*gomath.Sin(b), sensor[1] + 3*gomath.Cos(b)}
	if !s.TargetInBeamArc() {
		t.Errorf("target on the beam axis should be inside the arc")
	}

	// And one well abaft the beam direction.
	opp := math.Radians(math.OppositeBearing(beamBearing))
	s.Target.Position = WorldPoint{sensor[0] + 3*gomath.Sin(opp), sensor[1] + 3*gomath.Cos(opp)}
	if s.TargetInBeamArc() {
		t.Errorf("target opposite the beam axis should be outside the arc")
	}
}
