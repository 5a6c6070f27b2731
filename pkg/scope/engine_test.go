// pkg/scope/engine_test.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"errors"
	"testing"

	"github.com/tacscope/tacscope/pkg/math"
	"github.com/tacscope/tacscope/pkg/tactical"
)

func makeTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestEngineConfigureRejectsInvalidGeometry(t *testing.T) {
	e := makeTestEngine(t)

	probe := tactical.WorldPoint{3, -7}
	before := e.Transform().ScreenFromWorld(probe)

	err := e.Configure(WorldBounds{MinX: -10, MinY: -10, Width: 0, Height: 20},
		ViewportSize{Width: 800, Height: 600}, PreserveAspect)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}

	// The previous transform must still be in effect.
	after := e.Transform().ScreenFromWorld(probe)
	if before != after {
		t.Errorf("transform changed after rejected configuration: %v != %v", before, after)
	}
}

func TestEngineSetViewport(t *testing.T) {
	e := makeTestEngine(t)

	if err := e.SetViewport(ViewportSize{Width: 400, Height: 300}); err != nil {
		t.Fatalf("SetViewport: %v", err)
	}

	// Same bounds at half the viewport: the world origin maps to the
	// new center.
	p := e.Transform().ScreenFromWorld(tactical.WorldPoint{0, 0})
	if math.Abs(p[0]-200) > 1e-9 || math.Abs(p[1]-150) > 1e-9 {
		t.Errorf("origin mapped to %v, expected (200,150)", p)
	}

	if err := e.SetViewport(ViewportSize{Width: 0, Height: 300}); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry for zero-width viewport, got %v", err)
	}
}

func TestSnapshotPrimitives(t *testing.T) {
	e := makeTestEngine(t)
	snap := e.Snapshot()

	if len(snap.Vectors) != len(snap.State.Vectors) {
		t.Fatalf("expected %d vector primitives, got %d", len(snap.State.Vectors), len(snap.Vectors))
	}

	xform := e.Transform()
	for i, v := range snap.State.Vectors {
		prim := snap.Vectors[i]
		wantFrom := xform.ScreenFromWorld(v.Origin)
		wantTo := xform.ScreenFromWorld(v.End())
		if math.Distance2([2]float64(prim.ShaftFrom), [2]float64(wantFrom)) > 1e-9 {
			t.Errorf("vector %d (%s): shaft origin %v, expected %v", i, v.Kind, prim.ShaftFrom, wantFrom)
		}
		if math.Distance2([2]float64(prim.ShaftTo), [2]float64(wantTo)) > 1e-9 {
			t.Errorf("vector %d (%s): shaft tip %v, expected %v", i, v.Kind, prim.ShaftTo, wantTo)
		}

		// Arrowhead wings sit the configured pixel length back from the tip.
		for _, wing := range []ScreenPoint{prim.Wing1, prim.Wing2} {
			d := math.Distance2([2]float64(wing), [2]float64(prim.ShaftTo))
			if math.Abs(d-v.Style.HeadLengthPx) > 1e-9 {
				t.Errorf("vector %d (%s): wing at distance %v from tip, expected %v",
					i, v.Kind, d, v.Style.HeadLengthPx)
			}
		}
	}

	// Beam reference markers lie on the screen-space beam segment.
	for _, mark := range []ScreenPoint{snap.Ship, snap.Sensor} {
		s := math.SideOf([2]float64(snap.BeamStart), [2]float64(snap.BeamEnd), [2]float64(mark))
		if math.Abs(s) > 1e-6 {
			t.Errorf("beam marker %v off the beam line (side %v)", mark, s)
		}
	}
}

func TestSnapshotIsolation(t *testing.T) {
	e := makeTestEngine(t)

	snap := e.Snapshot()
	if len(snap.State.Vectors) == 0 {
		t.Fatal("expected default vectors")
	}
	snap.State.Vectors[0].Origin = tactical.WorldPoint{99, 99}
	snap.State.Vectors[0].Style.Color = tactical.Red

	again := e.Snapshot()
	if again.State.Vectors[0].Origin == (tactical.WorldPoint{99, 99}) {
		t.Error("mutating a snapshot's vectors leaked into the engine state")
	}
}

func TestSnapshotBlindZone(t *testing.T) {
	e := makeTestEngine(t)

	snap := e.Snapshot()
	if len(snap.BlindZone) < 3 {
		t.Fatalf("expected a blind zone with the default beam, got %v", snap.BlindZone)
	}
	refSide := math.SideOf([2]float64(snap.BeamStart), [2]float64(snap.BeamEnd), [2]float64(snap.OwnShip))
	if refSide == 0 {
		t.Fatal("own ship on the beam line with default state")
	}
	for _, p := range snap.BlindZone {
		s := math.SideOf([2]float64(snap.BeamStart), [2]float64(snap.BeamEnd), [2]float64(p))
		if s != 0 && (s > 0) == (refSide > 0) {
			t.Errorf("blind-zone vertex %v on own ship's side of the beam", p)
		}
	}

	// The default target is on own ship's side of the beam.
	if snap.TargetObscured {
		t.Error("default target reported obscured")
	}

	// Move the target due south of own ship, across the beam line.
	e.UpdateTarget(180, 5, 0)
	snap = e.Snapshot()
	if !snap.TargetObscured {
		t.Errorf("target at bearing 180, range 5 should be obscured; target %v zone %v",
			snap.Target, snap.BlindZone)
	}
}

func TestEngineTickAdvancesState(t *testing.T) {
	e := makeTestEngine(t)

	before := e.Snapshot()
	e.Tick(2)
	after := e.Snapshot()

	if after.State.SimTimeSec != before.State.SimTimeSec+2 {
		t.Errorf("sim time %v, expected %v", after.State.SimTimeSec, before.State.SimTimeSec+2)
	}
	if after.State.Target.Position == before.State.Target.Position {
		t.Error("target did not move")
	}
	if after.OwnShip == before.OwnShip {
		t.Error("own ship did not move")
	}
}
