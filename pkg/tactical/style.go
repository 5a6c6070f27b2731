// pkg/tactical/style.go
// Copyright(c) 2026 tacscope contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package tactical

///////////////////////////////////////////////////////////////////////////
// RGB

type RGB struct {
	R, G, B float64
}

func (r RGB) Equals(other RGB) bool {
	return r.R == other.R && r.G == other.G && r.B == other.B
}

func (r RGB) Scale(v float64) RGB {
	return RGB{R: r.R * v, G: r.G * v, B: r.B * v}
}

// RGBFromHex converts a packed integer color value to an RGB where the low
// 8 bits give blue, the next 8 give green, and then the next 8 give red.
func RGBFromHex(c int) RGB {
	r, g, b := (c>>16)&255, (c>>8)&255, c&255
	return RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

var (
	Black  = RGB{0, 0, 0}
	Cyan   = RGB{0, 1, 1}
	Green  = RGB{0, 1, 0}
	Red    = RGB{1, 0, 0}
	White  = RGB{1, 1, 1}
	Yellow = RGB{1, 1, 0}
	Gray   = RGB{0.3, 0.3, 0.3}
)

///////////////////////////////////////////////////////////////////////////
// Style

// Style carries the purely descriptive presentation attributes of a
// tactical primitive. The engine never interprets colors or weights; only
// the arrowhead dimensions feed into geometry, since heads are sized in
// screen pixels.
type Style struct {
	Color        RGB
	Weight       int
	HeadLengthPx float64
	HeadAngleDeg float64
}

// DefaultStyle matches the hard-coded arrow parameters of the original
// display: 12 pixel heads with 25 degree wings.
func DefaultStyle(color RGB) Style {
	return Style{Color: color, Weight: 2, HeadLengthPx: 12, HeadAngleDeg: 25}
}
