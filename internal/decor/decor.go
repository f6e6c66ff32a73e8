// Package decor scatters the floating boxes along the flight curve.
//
// Placement draws from a caller-supplied ChaCha8 stream, so a fixed seed
// reproduces the same boxes (and the same IDs) on every run.
package decor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tube-flythrough/internal/palette"
	"tube-flythrough/internal/spline"
)

// ErrNoBoxes is returned when Params asks for a non-positive box count.
var ErrNoBoxes = errors.New("decor: box count must be positive")

// Sampler is the part of a curve placement needs. *spline.Curve satisfies it.
type Sampler interface {
	PointAt(u float32) mgl32.Vec3
}

// Params controls placement. Jitter scales the random shift of each sample
// parameter; Offset is subtracted from each uniform draw for the x/y nudge.
type Params struct {
	Count  int
	Jitter float64
	Offset float64
}

// DefaultParams are the scene's fixed placement constants. The x/y nudge is
// r−0.4 for r in [0,1), so boxes drift slightly toward +x/+y.
func DefaultParams() Params {
	return Params{Count: 55, Jitter: 0.1, Offset: 0.4}
}

// Instance is one decoration box.
type Instance struct {
	ID       uuid.UUID
	Index    int
	T        float64    // sample parameter in [0,1)
	Hue      float64    // palette.Hue(T)
	Position mgl32.Vec3 // curve point plus the x/y nudge
	Rotation mgl32.Vec3 // Euler angles in radians, applied X then Y then Z
	Color    colorful.Color
}

// Transform is the instance's model matrix: translate · Rx · Ry · Rz.
func (in Instance) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(in.Position[0], in.Position[1], in.Position[2]).
		Mul4(mgl32.HomogRotate3DX(in.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(in.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(in.Rotation[2]))
}

// Place generates p.Count instances along c. Per instance the stream is read
// in a fixed order: jitter, dx, dy, rx, ry, rz, then two words for the ID.
func Place(c Sampler, p Params, src *rand.ChaCha8) ([]Instance, error) {
	if p.Count <= 0 {
		return nil, ErrNoBoxes
	}
	rng := rand.New(src)
	out := make([]Instance, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		t := SampleParam(i, p.Count, rng.Float64()*p.Jitter)

		pos := c.PointAt(float32(t))
		pos[0] += float32(rng.Float64() - p.Offset)
		pos[1] += float32(rng.Float64() - p.Offset)

		rot := mgl32.Vec3{
			float32(rng.Float64() * math.Pi),
			float32(rng.Float64() * math.Pi),
			float32(rng.Float64() * math.Pi),
		}

		var raw [16]byte
		binary.LittleEndian.PutUint64(raw[:8], rng.Uint64())
		binary.LittleEndian.PutUint64(raw[8:], rng.Uint64())
		id, err := uuid.NewRandomFromReader(bytes.NewReader(raw[:]))
		if err != nil {
			return nil, fmt.Errorf("decor: id for box %d: %w", i, err)
		}

		out = append(out, Instance{
			ID:       id,
			Index:    i,
			T:        t,
			Hue:      palette.Hue(t),
			Position: pos,
			Rotation: rot,
			Color:    palette.Ramp(t),
		})
	}
	return out, nil
}

// SampleParam is (i/n + jitter) wrapped into [0,1).
func SampleParam(i, n int, jitter float64) float64 {
	t := math.Mod(float64(i)/float64(n)+jitter, 1)
	if t < 0 {
		t++
	}
	if t >= 1 {
		t = 0
	}
	return t
}

// NewSource returns a ChaCha8 stream for seed. Seed 0 is a valid seed like any other.
func NewSource(seed uint64) *rand.ChaCha8 {
	var s [32]byte
	for k := 0; k < 8; k++ {
		s[k] = byte(seed >> (8 * k))
	}
	return rand.NewChaCha8(s)
}

var _ Sampler = (*spline.Curve)(nil)
