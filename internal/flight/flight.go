// Package flight computes the camera pose for a point in time. It holds no
// per-frame state: the same elapsed time always yields the same pose.
package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// LoopPeriod is the length of one lap in scaled time units.
	LoopPeriod = 10000
	// TimeScale converts elapsed milliseconds to scaled time units.
	TimeScale = 0.1
	// LookAhead is how far ahead on the curve (in phase) the camera looks.
	LookAhead = 0.03

	// cycle is one lap in elapsed milliseconds. Untyped constant arithmetic
	// keeps it exact, so poses repeat bit-for-bit every cycle.
	cycle = LoopPeriod / TimeScale
)

// Sampler is the part of a curve the driver needs. *spline.Curve satisfies it.
type Sampler interface {
	PointAt(u float32) mgl32.Vec3
}

// FrameResult is the camera pose for one tick.
type FrameResult struct {
	Elapsed   float64 // milliseconds, as passed to Tick
	Phase     float64 // camera position parameter in [0,1)
	LookPhase float64 // look-at parameter, Phase+LookAhead wrapped
	Position  mgl32.Vec3
	Target    mgl32.Vec3
}

// Forward is the unit view direction, or zero when position and target coincide.
func (r FrameResult) Forward() mgl32.Vec3 {
	d := r.Target.Sub(r.Position)
	if d.Len() == 0 {
		return mgl32.Vec3{}
	}
	return d.Normalize()
}

// Driver moves the camera along a shared, read-only curve.
type Driver struct {
	curve Sampler
}

// New returns a driver over c.
func New(c Sampler) *Driver {
	return &Driver{curve: c}
}

// Phase returns ((elapsed·TimeScale) mod LoopPeriod) / LoopPeriod in [0,1).
func Phase(elapsed float64) float64 {
	return wrap(math.Mod(elapsed, cycle) / cycle)
}

// Tick returns the pose at elapsed milliseconds.
func (d *Driver) Tick(elapsed float64) FrameResult {
	p := Phase(elapsed)
	look := wrap(p + LookAhead)
	return FrameResult{
		Elapsed:   elapsed,
		Phase:     p,
		LookPhase: look,
		Position:  d.curve.PointAt(float32(p)),
		Target:    d.curve.PointAt(float32(look)),
	}
}

func wrap(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	if x >= 1 {
		x = 0
	}
	return x
}
