// Package palette turns curve parameters and view distances into colors:
// the hue ramp for decorations and exponential-squared fog.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Decoration colors share one saturation/lightness; only hue varies along the curve.
const (
	HueOffset  = 0.7
	Saturation = 1.0
	Lightness  = 0.5
)

// Named colors used by the scene.
var (
	Background = mustColor(colornames.Black)
	PathLine   = mustColor(colornames.Red)
	TubeLine   = colorful.Color{R: 0x5f / 255.0, G: 0x5f / 255.0, B: 0x5f / 255.0}
)

// Hue maps a curve parameter t to a hue in [0,1): (HueOffset − t) wrapped.
func Hue(t float64) float64 {
	h := math.Mod(HueOffset-t, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}

// Ramp returns the decoration color for curve parameter t.
func Ramp(t float64) colorful.Color {
	return colorful.Hsl(Hue(t)*360, Saturation, Lightness)
}

// FogExp2 is exponential-squared distance fog toward Color.
type FogExp2 struct {
	Color   colorful.Color
	Density float64
}

// Factor is how much of the fog color replaces the surface color at dist, in [0,1].
func (f FogExp2) Factor(dist float64) float64 {
	d := f.Density * dist
	v := 1 - math.Exp(-d*d)
	return math.Max(0, math.Min(1, v))
}

// Apply blends c toward the fog color for a surface dist away from the viewer.
func (f FogExp2) Apply(c colorful.Color, dist float64) colorful.Color {
	return c.BlendRgb(f.Color, f.Factor(dist)).Clamped()
}

// RGBA converts c to an opaque 8-bit color.
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func mustColor(c color.Color) colorful.Color {
	cc, _ := colorful.MakeColor(c)
	return cc
}
