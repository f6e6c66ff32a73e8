package tube

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Segment is one wireframe line in model or world space.
type Segment [2]mgl32.Vec3

// edgePrecision is the grid vertex positions are snapped to when matching
// shared edges, so duplicated seam vertices hash to the same key.
const edgePrecision = 1e4

type vertexKey [3]int64

type edgeKey struct{ from, to vertexKey }

type halfEdge struct {
	a, b   mgl32.Vec3
	normal mgl32.Vec3
	used   bool
}

// Edges returns the mesh edges whose two adjacent faces meet at more than
// thresholdDeg degrees. Edges with only one face are always included.
// Edges of degenerate triangles are skipped.
func Edges(m *Mesh, thresholdDeg float32) []Segment {
	thresholdDot := math32.Cos(mgl32.DegToRad(thresholdDeg))
	pending := make(map[edgeKey]*halfEdge)
	order := make([]edgeKey, 0, len(m.Indices))
	var out []Segment

	for f := 0; f+2 < len(m.Indices); f += 3 {
		tri := [3]mgl32.Vec3{
			m.Vertices[m.Indices[f]],
			m.Vertices[m.Indices[f+1]],
			m.Vertices[m.Indices[f+2]],
		}
		keys := [3]vertexKey{keyOf(tri[0]), keyOf(tri[1]), keyOf(tri[2])}
		if keys[0] == keys[1] || keys[1] == keys[2] || keys[2] == keys[0] {
			continue
		}
		normal := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
		if normal.Len() > 0 {
			normal = normal.Normalize()
		}

		for k := 0; k < 3; k++ {
			next := (k + 1) % 3
			key := edgeKey{keys[k], keys[next]}
			reverse := edgeKey{keys[next], keys[k]}
			if he, ok := pending[reverse]; ok && !he.used {
				if normal.Dot(he.normal) <= thresholdDot {
					out = append(out, Segment{he.a, he.b})
				}
				he.used = true
				continue
			}
			if _, ok := pending[key]; !ok {
				pending[key] = &halfEdge{a: tri[k], b: tri[next], normal: normal}
				order = append(order, key)
			}
		}
	}

	// unmatched half-edges are boundaries
	for _, key := range order {
		if he := pending[key]; !he.used {
			out = append(out, Segment{he.a, he.b})
		}
	}
	return out
}

// Transform returns segs moved by m.
func Transform(segs []Segment, m mgl32.Mat4) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{
			m.Mul4x1(s[0].Vec4(1)).Vec3(),
			m.Mul4x1(s[1].Vec4(1)).Vec3(),
		}
	}
	return out
}

func keyOf(v mgl32.Vec3) vertexKey {
	return vertexKey{
		int64(math.Round(float64(v[0]) * edgePrecision)),
		int64(math.Round(float64(v[1]) * edgePrecision)),
		int64(math.Round(float64(v[2]) * edgePrecision)),
	}
}
