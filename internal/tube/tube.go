package tube

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Path is what a tube is swept along. *spline.Curve satisfies it.
type Path interface {
	PointAt(u float32) mgl32.Vec3
	TangentAt(u float32) mgl32.Vec3
}

// Mesh is an indexed triangle mesh. Indices are grouped in threes.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	Indices  []uint32
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Frames holds one Frenet frame per tubular step (segments+1 entries).
type Frames struct {
	Tangents  []mgl32.Vec3
	Normals   []mgl32.Vec3
	Binormals []mgl32.Vec3
}

// ComputeFrames builds parallel-transported frames along p. When closed, the
// accumulated twist is spread across all frames so the last matches the first.
func ComputeFrames(p Path, segments int, closed bool) Frames {
	f := Frames{
		Tangents:  make([]mgl32.Vec3, segments+1),
		Normals:   make([]mgl32.Vec3, segments+1),
		Binormals: make([]mgl32.Vec3, segments+1),
	}
	for i := 0; i <= segments; i++ {
		f.Tangents[i] = p.TangentAt(float32(i) / float32(segments))
	}

	// initial normal: the axis least aligned with the first tangent
	t0 := f.Tangents[0]
	least := float32(math.MaxFloat32)
	var axis mgl32.Vec3
	if tx := math32.Abs(t0[0]); tx <= least {
		least = tx
		axis = mgl32.Vec3{1, 0, 0}
	}
	if ty := math32.Abs(t0[1]); ty <= least {
		least = ty
		axis = mgl32.Vec3{0, 1, 0}
	}
	if tz := math32.Abs(t0[2]); tz <= least {
		axis = mgl32.Vec3{0, 0, 1}
	}
	v := t0.Cross(axis).Normalize()
	f.Normals[0] = t0.Cross(v)
	f.Binormals[0] = t0.Cross(f.Normals[0])

	for i := 1; i <= segments; i++ {
		n := f.Normals[i-1]
		v := f.Tangents[i-1].Cross(f.Tangents[i])
		if v.Len() > mgl32.Epsilon {
			theta := math32.Acos(clamp(f.Tangents[i-1].Dot(f.Tangents[i]), -1, 1))
			n = rotate(n, v.Normalize(), theta)
		}
		f.Normals[i] = n
		f.Binormals[i] = f.Tangents[i].Cross(n)
	}

	if closed {
		theta := math32.Acos(clamp(f.Normals[0].Dot(f.Normals[segments]), -1, 1)) / float32(segments)
		if f.Tangents[0].Dot(f.Normals[0].Cross(f.Normals[segments])) > 0 {
			theta = -theta
		}
		for i := 1; i <= segments; i++ {
			f.Normals[i] = rotate(f.Normals[i], f.Tangents[i], theta*float32(i))
			f.Binormals[i] = f.Tangents[i].Cross(f.Normals[i])
		}
	}
	return f
}

// Sweep builds a tube of the given radius around p. The mesh has
// (segments+1)*(radial+1) vertices; a closed tube reuses the first ring as the last.
func Sweep(p Path, segments int, radius float32, radial int, closed bool) *Mesh {
	frames := ComputeFrames(p, segments, closed)
	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, (segments+1)*(radial+1)),
		Normals:  make([]mgl32.Vec3, 0, (segments+1)*(radial+1)),
		Indices:  make([]uint32, 0, segments*radial*6),
	}

	ring := func(i int) {
		center := p.PointAt(float32(i) / float32(segments))
		n, b := frames.Normals[i], frames.Binormals[i]
		for j := 0; j <= radial; j++ {
			// j == radial closes the ring on exactly the first vertex
			a := float32(j%radial) / float32(radial) * 2 * math32.Pi
			sin, cos := math32.Sin(a), -math32.Cos(a)
			normal := n.Mul(cos).Add(b.Mul(sin)).Normalize()
			m.Normals = append(m.Normals, normal)
			m.Vertices = append(m.Vertices, center.Add(normal.Mul(radius)))
		}
	}
	for i := 0; i < segments; i++ {
		ring(i)
	}
	if closed {
		ring(0)
	} else {
		ring(segments)
	}

	stride := uint32(radial + 1)
	for j := uint32(1); j <= uint32(segments); j++ {
		for i := uint32(1); i <= uint32(radial); i++ {
			a := stride*(j-1) + (i - 1)
			b := stride*j + (i - 1)
			c := stride*j + i
			d := stride*(j-1) + i
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

// rotate turns v about the unit axis by angle radians.
func rotate(v, axis mgl32.Vec3, angle float32) mgl32.Vec3 {
	return mgl32.HomogRotate3D(angle, axis).Mul4x1(v.Vec4(0)).Vec3()
}

func clamp(x, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, x))
}
