// cmd/tacscope/main.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// tacscope renders a simulated tactical display in the terminal: own
// ship, a tracked target, a sonar beam with its blind zone, and the
// tactical vector overlay, all driven by the scope engine.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/viper"

	"github.com/tacscope/tacscope/pkg/log"
	"github.com/tacscope/tacscope/pkg/math"
	"github.com/tacscope/tacscope/pkg/scope"
	"github.com/tacscope/tacscope/pkg/tactical"
)

const statusRows = 1

type display struct {
	screen tcell.Screen
	eng    *scope.Engine
	lg     *log.Logger

	interval time.Duration
	paused   bool
}

func newDisplay(lg *log.Logger) (*display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	w, h := screen.Size()
	eng, err := scope.New(scope.Config{
		Bounds:   configuredBounds(),
		Viewport: viewportFor(w, h),
		Mode:     configuredAspect(),
	}, lg)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	eng.UpdateOwnShip(viper.GetFloat64("ownship.courseDeg"), viper.GetFloat64("ownship.speedKn"))
	eng.UpdateTarget(viper.GetFloat64("target.bearingDeg"), viper.GetFloat64("target.rangeNm"), 0)

	return &display{
		screen:   screen,
		eng:      eng,
		lg:       lg,
		interval: time.Duration(viper.GetFloat64("display.tickSeconds") * float64(time.Second)),
	}, nil
}

// viewportFor reserves the status line at the bottom of the terminal.
func viewportFor(w, h int) scope.ViewportSize {
	return scope.ViewportSize{Width: float64(max(w, 1)), Height: float64(max(h-statusRows, 1))}
}

func styleFor(s tactical.Style) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(
		int32(s.Color.R*255), int32(s.Color.G*255), int32(s.Color.B*255)))
}

func cell(p scope.ScreenPoint) (int, int) {
	return int(p[0] + 0.5), int(p[1] + 0.5)
}

// drawLine rasterizes a segment between two screen-space points.
func (d *display) drawLine(from, to scope.ScreenPoint, r rune, style tcell.Style) {
	x0, y0 := cell(from)
	x1, y1 := cell(to)

	dx, dy := math.Abs(x1-x0), -math.Abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		d.screen.SetContent(x0, y0, r, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		if 2*e >= dy {
			e += dy
			x0 += sx
		}
		if 2*e <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (d *display) draw() {
	d.screen.Clear()
	snap := d.eng.Snapshot()
	vp := d.eng.Transform().Viewport()

	// Blind-zone shading behind everything else.
	if len(snap.BlindZone) >= 3 {
		poly := make([][2]float64, len(snap.BlindZone))
		for i, p := range snap.BlindZone {
			poly[i] = [2]float64(p)
		}
		shade := tcell.StyleDefault.Foreground(tcell.ColorGray)
		for y := 0; y < int(vp.Height); y++ {
			for x := 0; x < int(vp.Width); x++ {
				if math.PointInPolygon([2]float64{float64(x) + 0.5, float64(y) + 0.5}, poly) {
					d.screen.SetContent(x, y, '░', nil, shade)
				}
			}
		}
	}

	beamStyle := styleFor(snap.State.Beam.Style)
	d.drawLine(snap.BeamStart, snap.BeamEnd, '·', beamStyle)

	for _, v := range snap.Vectors {
		style := styleFor(v.Style)
		d.drawLine(v.ShaftFrom, v.ShaftTo, '*', style)
		d.drawLine(v.ShaftTo, v.Wing1, '*', style)
		d.drawLine(v.ShaftTo, v.Wing2, '*', style)
	}

	put := func(p scope.ScreenPoint, r rune, style tcell.Style) {
		x, y := cell(p)
		d.screen.SetContent(x, y, r, nil, style)
	}
	put(snap.Ship, 'S', beamStyle.Bold(true))
	put(snap.Sensor, 's', beamStyle)
	put(snap.OwnShip, '@', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	targetStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if snap.TargetObscured {
		targetStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
	put(snap.Target, 'T', targetStyle)

	d.drawStatus(snap, int(vp.Height))
	d.screen.Show()
}

func (d *display) drawStatus(snap scope.Snapshot, row int) {
	obscured := " "
	if snap.TargetObscured {
		obscured = "OBSCURED"
	}
	paused := ""
	if d.paused {
		paused = " [paused]"
	}
	status := fmt.Sprintf("t=%5.0fs  own %03.0f°/%04.1fkn  tgt brg %06.2f° rng %5.2fnm rate %+6.3f°/s  %s%s",
		snap.State.SimTimeSec, snap.State.OwnShip.CourseDeg, snap.State.OwnShip.SpeedKn,
		snap.State.Target.BearingDeg, snap.State.Target.RangeNm,
		snap.State.Target.BearingRateDegPerSec, obscured, paused)

	style := tcell.StyleDefault.Reverse(true)
	w, _ := d.screen.Size()
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		d.screen.SetContent(col, row, r, nil, style)
		col++
	}
	for ; col < w; col++ {
		d.screen.SetContent(col, row, ' ', nil, style)
	}
}

func (d *display) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		own := d.eng.Snapshot().State.OwnShip
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q'):
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			d.paused = !d.paused
		case ev.Key() == tcell.KeyLeft:
			d.eng.UpdateOwnShip(own.CourseDeg-5, own.SpeedKn)
		case ev.Key() == tcell.KeyRight:
			d.eng.UpdateOwnShip(own.CourseDeg+5, own.SpeedKn)
		case ev.Key() == tcell.KeyUp:
			d.eng.UpdateOwnShip(own.CourseDeg, own.SpeedKn+1)
		case ev.Key() == tcell.KeyDown:
			d.eng.UpdateOwnShip(own.CourseDeg, max(own.SpeedKn-1, 0))
		}
		d.draw()

	case *tcell.EventResize:
		w, h := ev.Size()
		if err := d.eng.SetViewport(viewportFor(w, h)); err != nil {
			d.lg.Errorf("resize to %dx%d rejected: %v", w, h, err)
		}
		d.screen.Sync()
		d.draw()
	}
	return true
}

func (d *display) run() {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	d.draw()
	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if d.paused {
				continue
			}
			d.eng.Tick(d.interval.Seconds())
			d.draw()
		}
	}
}

func main() {
	if err := loadConfig("."); err != nil {
		fmt.Fprintf(os.Stderr, "tacscope: %v\n", err)
		os.Exit(1)
	}

	lg := log.New(viper.GetString("logLevel"), viper.GetString("logDir"))
	lg.Infof("tacscope starting: bounds %+v, aspect %s", configuredBounds(), configuredAspect())

	d, err := newDisplay(lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tacscope: failed to initialize display: %v\n", err)
		os.Exit(1)
	}
	defer d.screen.Fini()

	d.run()
	lg.Infof("tacscope exiting")
}
