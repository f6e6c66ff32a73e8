package tube

import "github.com/go-gl/mathgl/mgl32"

// boxFaces lists each face as (normal, u axis, v axis).
var boxFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Box returns an axis-aligned cube of edge length size centered at the origin.
// Each face has its own four vertices, as a flat-shaded cube needs.
func Box(size float32) *Mesh {
	h := size / 2
	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, 24),
		Normals:  make([]mgl32.Vec3, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(m.Vertices))
		center := n.Mul(h)
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			m.Vertices = append(m.Vertices, center.Add(u.Mul(c[0]*h)).Add(v.Mul(c[1]*h)))
			m.Normals = append(m.Normals, n)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
