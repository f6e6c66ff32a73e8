package spline

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], delta, "component %d of %v vs %v", k, want, got)
	}
}

func TestNewRejectsTooFewPoints(t *testing.T) {
	_, err := New([]mgl32.Vec3{{0, 0, 0}})
	assert.ErrorIs(t, err, ErrTooFewPoints)

	_, err = New(nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestNewCopiesPoints(t *testing.T) {
	pts := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}
	c, err := New(pts)
	require.NoError(t, err)
	pts[0] = mgl32.Vec3{9, 9, 9}
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.ControlPoints()[0])
}

func TestWrap(t *testing.T) {
	assert.Equal(t, float32(0), Wrap(0))
	assert.Equal(t, float32(0), Wrap(1))
	assert.Equal(t, float32(0.25), Wrap(1.25))
	assert.Equal(t, float32(0.75), Wrap(-0.25))
	assert.Equal(t, float32(0.5), Wrap(3.5))
}

func TestPointAtIsPeriodic(t *testing.T) {
	c := Default()
	for _, u := range []float32{0, 0.05, 0.08, 0.25, 0.5, 0.73, 0.999} {
		assertVecNear(t, c.PointAt(u), c.PointAt(u+1), 1e-3)
		assertVecNear(t, c.PointAt(u), c.PointAt(u-1), 1e-3)
	}
	assert.Equal(t, c.PointAt(0), c.PointAt(1))
}

func TestPointPassesThroughControlPoints(t *testing.T) {
	c := Default()
	pts := c.ControlPoints()
	n := len(pts)
	for i, p := range pts {
		assertVecNear(t, p, c.Point(float32(i)/float32(n)), 1e-3)
	}
	assert.Equal(t, pts[0], c.PointAt(0))
}

func TestTangentAtIsUnit(t *testing.T) {
	c := Default()
	for _, u := range []float32{0, 0.1, 0.5, 0.9, 0.9999} {
		assert.InDelta(t, 1.0, c.TangentAt(u).Len(), 1e-4)
	}
}

func TestTangentFollowsCurve(t *testing.T) {
	c := Default()
	u := float32(0.3)
	step := c.PointAt(u + 0.001).Sub(c.PointAt(u)).Normalize()
	assert.Greater(t, c.TangentAt(u).Dot(step), float32(0.99))
}

func TestPointsClosesLoop(t *testing.T) {
	c := Default()
	pts := c.Points(100)
	require.Len(t, pts, 101)
	assert.Equal(t, pts[0], pts[100])
}

func TestPointsAreEvenlySpacedByArcLength(t *testing.T) {
	c := Default()
	pts := c.Points(50)
	var total float32
	for i := 1; i < len(pts); i++ {
		total += pts[i].Sub(pts[i-1]).Len()
	}
	mean := total / 50
	for i := 1; i < len(pts); i++ {
		d := pts[i].Sub(pts[i-1]).Len()
		assert.InDelta(t, mean, d, float64(mean)*0.1, "chord %d", i)
	}
	assert.InDelta(t, c.Length(), total, float64(c.Length())*0.01)
}
