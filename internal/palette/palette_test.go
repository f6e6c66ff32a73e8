package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHue(t *testing.T) {
	assert.InDelta(t, 0.7, Hue(0), 1e-12)
	assert.InDelta(t, 0.2, Hue(0.5), 1e-12)
	assert.InDelta(t, 0.0, Hue(0.7), 1e-12)
	// wraps below zero
	assert.InDelta(t, 0.8, Hue(0.9), 1e-12)
	for _, p := range []float64{0, 0.1, 0.33, 0.69, 0.71, 0.999} {
		h := Hue(p)
		assert.GreaterOrEqual(t, h, 0.0)
		assert.Less(t, h, 1.0)
	}
}

func TestRampAtHueZeroIsRed(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, RGBA(Ramp(0.7)))
}

func TestRampKeepsSaturationAndLightness(t *testing.T) {
	for _, p := range []float64{0.05, 0.4, 0.95} {
		h, s, l := Ramp(p).Hsl()
		assert.InDelta(t, Hue(p)*360, h, 0.5)
		assert.InDelta(t, Saturation, s, 1e-6)
		assert.InDelta(t, Lightness, l, 1e-6)
	}
}

func TestFogFactor(t *testing.T) {
	f := FogExp2{Color: Background, Density: 0.3}
	assert.Equal(t, 0.0, f.Factor(0))
	prev := 0.0
	for d := 0.5; d < 20; d += 0.5 {
		v := f.Factor(d)
		assert.Greater(t, v, prev)
		assert.LessOrEqual(t, v, 1.0)
		prev = v
	}
}

func TestFogApplyFadesToFogColor(t *testing.T) {
	f := FogExp2{Color: Background, Density: 0.3}
	assert.Equal(t, RGBA(PathLine), RGBA(f.Apply(PathLine, 0)))
	assert.Equal(t, color.RGBA{A: 255}, RGBA(f.Apply(PathLine, 100)))
}
