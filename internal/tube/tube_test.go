package tube

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tube-flythrough/internal/spline"
)

// circle is a unit-speed closed path of the given radius in the XZ plane.
type circle struct{ r float32 }

func (c circle) PointAt(u float32) mgl32.Vec3 {
	a := u * 2 * math32.Pi
	return mgl32.Vec3{c.r * math32.Cos(a), 0, c.r * math32.Sin(a)}
}

func (c circle) TangentAt(u float32) mgl32.Vec3 {
	a := u * 2 * math32.Pi
	return mgl32.Vec3{-math32.Sin(a), 0, math32.Cos(a)}
}

func TestSweepCounts(t *testing.T) {
	m := Sweep(circle{r: 5}, 32, 0.5, 8, true)
	assert.Len(t, m.Vertices, 33*9)
	assert.Len(t, m.Normals, 33*9)
	assert.Len(t, m.Indices, 32*8*6)
	assert.Equal(t, 32*8*2, m.Triangles())
}

func TestSweepRingsSitAtRadius(t *testing.T) {
	c := spline.Default()
	const segments, radial = 60, 12
	const radius = float32(0.65)
	m := Sweep(c, segments, radius, radial, true)
	for i := 0; i < segments; i++ {
		center := c.PointAt(float32(i) / segments)
		for j := 0; j <= radial; j++ {
			v := m.Vertices[i*(radial+1)+j]
			assert.InDelta(t, radius, v.Sub(center).Len(), 1e-3, "ring %d vertex %d", i, j)
		}
	}
}

func TestSweepClosedReusesFirstRing(t *testing.T) {
	m := Sweep(spline.Default(), 40, 0.65, 8, true)
	last := 40 * 9
	for j := 0; j <= 8; j++ {
		assert.Equal(t, m.Vertices[j], m.Vertices[last+j])
	}
}

func TestFramesAreOrthonormal(t *testing.T) {
	f := ComputeFrames(spline.Default(), 100, true)
	require.Len(t, f.Normals, 101)
	for i := range f.Normals {
		assert.InDelta(t, 1, f.Normals[i].Len(), 1e-3)
		assert.InDelta(t, 0, f.Normals[i].Dot(f.Tangents[i]), 1e-3)
		assert.InDelta(t, 0, f.Binormals[i].Dot(f.Tangents[i]), 1e-3)
	}
}

func TestClosedFramesMeetAtSeam(t *testing.T) {
	f := ComputeFrames(spline.Default(), 100, true)
	assert.Greater(t, f.Normals[0].Dot(f.Normals[100]), float32(0.999))
}

func TestBoxEdges(t *testing.T) {
	b := Box(2)
	require.Len(t, b.Vertices, 24)
	require.Len(t, b.Indices, 36)

	edges := Edges(b, 0.2)
	assert.Len(t, edges, 12)
	for _, e := range edges {
		assert.InDelta(t, 2, e[1].Sub(e[0]).Len(), 1e-5)
	}
}

func TestEdgesKeepsBoundaryOfSingleTriangle(t *testing.T) {
	m := &Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:  []uint32{0, 1, 2},
	}
	assert.Len(t, Edges(m, 1), 3)
}

func TestEdgesDropsFlatDiagonal(t *testing.T) {
	// unit quad split in two coplanar triangles
	m := &Mesh{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
	}
	assert.Len(t, Edges(m, 0.2), 4)
}

func TestTubeEdgesSkipDiagonals(t *testing.T) {
	const segments, radial = 50, 8
	edges := Edges(Sweep(circle{r: 5}, segments, 0.5, radial, true), 0.2)
	// every ring line plus every lengthwise line, no quad diagonals
	assert.Len(t, edges, segments*radial*2)
}

func TestTransform(t *testing.T) {
	segs := []Segment{{{0, 0, 0}, {1, 0, 0}}}
	out := Transform(segs, mgl32.Translate3D(0, 2, 0))
	assert.Equal(t, mgl32.Vec3{0, 2, 0}, out[0][0])
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, out[0][1])
}
