// Package layout derives everything drawable from the flight curve: the tube
// wireframe, the optional path polyline and the decoration boxes. It is the
// engine-independent half of scene construction.
package layout

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"

	"tube-flythrough/internal/config"
	"tube-flythrough/internal/decor"
	"tube-flythrough/internal/spline"
	"tube-flythrough/internal/tube"
)

// Box is a placed decoration with its outline already in world space.
type Box struct {
	decor.Instance
	Outline []tube.Segment
}

// String identifies the box for logs and the debug overlay.
func (b Box) String() string {
	return fmt.Sprintf("box %d %s t=%.3f hue=%.3f", b.Index, b.ID, b.T, b.Hue)
}

// Layout is the static content of the scene. Nothing in it changes after Build.
type Layout struct {
	Curve     *spline.Curve
	Tube      *tube.Mesh
	TubeLines []tube.Segment
	Path      []mgl32.Vec3 // polyline through the curve, closed
	Boxes     []Box
}

// Build sweeps the tube, extracts its wireframe and places the boxes using src.
func Build(c *spline.Curve, s config.Scene, src *rand.ChaCha8) (*Layout, error) {
	mesh := tube.Sweep(c, s.TubeSegments, s.TubeRadius, s.TubeRadial, true)
	l := &Layout{
		Curve:     c,
		Tube:      mesh,
		TubeLines: tube.Edges(mesh, s.EdgeAngle),
		Path:      c.Points(s.PathDivisions),
	}

	instances, err := decor.Place(c, s.Boxes, src)
	if err != nil {
		return nil, fmt.Errorf("layout: place boxes: %w", err)
	}
	// every box shares one outline in model space
	outline := tube.Edges(tube.Box(s.BoxSize), s.EdgeAngle)
	l.Boxes = make([]Box, len(instances))
	for i, in := range instances {
		l.Boxes[i] = Box{Instance: in, Outline: tube.Transform(outline, in.Transform())}
	}
	return l, nil
}

// SegmentCount is the number of line segments drawn per frame, path excluded.
func (l *Layout) SegmentCount() int {
	n := len(l.TubeLines)
	for _, b := range l.Boxes {
		n += len(b.Outline)
	}
	return n
}

// Ahead returns the box the camera reaches next from phase, that is the box
// whose T is the shortest distance forward along the curve. A box at exactly
// phase counts as ahead. ok is false when there are no boxes.
func (l *Layout) Ahead(phase float64) (b Box, ok bool) {
	best, gap := -1, math.Inf(1)
	for i := range l.Boxes {
		d := math.Mod(l.Boxes[i].T-phase, 1)
		if d < 0 {
			d++
		}
		if d < gap {
			best, gap = i, d
		}
	}
	if best < 0 {
		return Box{}, false
	}
	return l.Boxes[best], true
}
