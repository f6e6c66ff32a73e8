package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeUpdatesAspectOnly(t *testing.T) {
	p := New(800, 600)
	assert.Equal(t, float32(800)/600, p.Aspect)

	changed := p.Resize(1024, 768)
	assert.True(t, changed)
	assert.Equal(t, float32(1024)/768, p.Aspect)
	assert.Equal(t, 1024, p.Width)
	assert.Equal(t, 768, p.Height)
	assert.Equal(t, float32(DefaultFovy), p.Fovy)
	assert.Equal(t, float32(DefaultNear), p.Near)
	assert.Equal(t, float32(DefaultFar), p.Far)
}

func TestResizeIgnoresEmptySurface(t *testing.T) {
	p := New(800, 600)
	assert.False(t, p.Resize(0, 600))
	assert.False(t, p.Resize(800, -1))
	assert.False(t, p.Resize(800, 600))
	assert.Equal(t, 800, p.Width)
	assert.Equal(t, float32(800)/600, p.Aspect)
}

func TestMatrixFollowsAspect(t *testing.T) {
	p := New(800, 600)
	before := p.Matrix()
	p.Resize(1600, 600)
	after := p.Matrix()
	// x scale is f/aspect; y scale is f and must not move
	assert.InDelta(t, before.At(0, 0)*(4.0/3.0)/(8.0/3.0), after.At(0, 0), 1e-5)
	assert.Equal(t, before.At(1, 1), after.At(1, 1))
	assert.Equal(t, before.At(2, 2), after.At(2, 2))
}
