package spline

import (
	"errors"
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ArcLengthDivisions is how many chords are used to approximate arc length
// when mapping a normalized distance to a spline parameter.
const ArcLengthDivisions = 200

// tangentDelta is the parameter step used for finite-difference tangents.
const tangentDelta = 1e-4

// ErrTooFewPoints is returned when a closed curve is built from fewer than two control points.
var ErrTooFewPoints = errors.New("spline: closed curve needs at least 2 control points")

// Curve is a closed centripetal Catmull-Rom spline. It is immutable after New,
// so it can be shared freely between the scene builder and the frame driver.
type Curve struct {
	points  []mgl32.Vec3
	lengths []float32 // cumulative chord lengths, len = ArcLengthDivisions+1
}

// New returns a closed curve through points. The slice is copied.
func New(points []mgl32.Vec3) (*Curve, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	c := &Curve{points: make([]mgl32.Vec3, len(points))}
	copy(c.points, points)
	c.lengths = c.arcLengths(ArcLengthDivisions)
	return c, nil
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(c.points))
	copy(out, c.points)
	return out
}

// Wrap reduces t into [0,1). Closed curves alias t and t+1.
func Wrap(t float32) float32 {
	w := math32.Mod(t, 1)
	if w < 0 {
		w++
	}
	if w >= 1 {
		w = 0
	}
	return w
}

// Point samples the spline at raw parameter t (not arc-length uniform).
func (c *Curve) Point(t float32) mgl32.Vec3 {
	n := len(c.points)
	p := float32(n) * Wrap(t)
	seg := int(math32.Floor(p))
	weight := p - float32(seg)
	seg %= n

	p0 := c.points[(seg-1+n)%n]
	p1 := c.points[seg]
	p2 := c.points[(seg+1)%n]
	p3 := c.points[(seg+2)%n]

	// centripetal knot spacing
	dt0 := math32.Pow(distSq(p0, p1), 0.25)
	dt1 := math32.Pow(distSq(p1, p2), 0.25)
	dt2 := math32.Pow(distSq(p2, p3), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	var out mgl32.Vec3
	for k := 0; k < 3; k++ {
		out[k] = nonuniformCatmullRom(p0[k], p1[k], p2[k], p3[k], dt0, dt1, dt2, weight)
	}
	return out
}

// PointAt samples the curve at normalized arc length u in [0,1), wrapping outside it.
func (c *Curve) PointAt(u float32) mgl32.Vec3 {
	return c.Point(c.paramAt(Wrap(u)))
}

// TangentAt returns the unit tangent at normalized arc length u. The
// difference straddles the seam instead of clamping, since the curve is closed.
func (c *Curve) TangentAt(u float32) mgl32.Vec3 {
	t := c.paramAt(Wrap(u))
	d := c.Point(t + tangentDelta).Sub(c.Point(t - tangentDelta))
	if d.Len() == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return d.Normalize()
}

// Points returns divisions+1 points evenly spaced by arc length; the last one closes the loop.
func (c *Curve) Points(divisions int) []mgl32.Vec3 {
	if divisions < 1 {
		divisions = 1
	}
	out := make([]mgl32.Vec3, 0, divisions+1)
	for i := 0; i <= divisions; i++ {
		u := float32(i) / float32(divisions)
		if i == divisions {
			u = 0
		}
		out = append(out, c.PointAt(u))
	}
	return out
}

// Length is the approximate total arc length.
func (c *Curve) Length() float32 {
	return c.lengths[len(c.lengths)-1]
}

func (c *Curve) arcLengths(divisions int) []float32 {
	lengths := make([]float32, divisions+1)
	prev := c.Point(0)
	for i := 1; i <= divisions; i++ {
		cur := c.Point(float32(i) / float32(divisions))
		lengths[i] = lengths[i-1] + cur.Sub(prev).Len()
		prev = cur
	}
	return lengths
}

// paramAt maps normalized arc length u to the raw spline parameter.
func (c *Curve) paramAt(u float32) float32 {
	last := len(c.lengths) - 1
	target := u * c.lengths[last]
	// largest i with lengths[i] <= target
	i := sort.Search(len(c.lengths), func(k int) bool { return c.lengths[k] > target }) - 1
	if i < 0 {
		i = 0
	}
	if i >= last {
		return 1
	}
	before := c.lengths[i]
	if before == target {
		return float32(i) / float32(last)
	}
	seg := c.lengths[i+1] - before
	frac := float32(0)
	if seg > 0 {
		frac = (target - before) / seg
	}
	return (float32(i) + frac) / float32(last)
}

func distSq(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// nonuniformCatmullRom evaluates one axis of the segment p1..p2 at weight w.
func nonuniformCatmullRom(x0, x1, x2, x3, dt0, dt1, dt2, w float32) float32 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + c1*w + c2*w*w + c3*w*w*w
}
