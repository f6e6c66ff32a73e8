package viewport

import "github.com/go-gl/mathgl/mgl32"

// Default perspective settings for the flythrough camera.
const (
	DefaultFovy = 75 // degrees, vertical
	DefaultNear = 0.1
	DefaultFar  = 1000
)

// Projection tracks the output surface size and the perspective derived from it.
// Only Resize changes it; fovy and clip planes are fixed at construction.
type Projection struct {
	Fovy   float32 // degrees
	Near   float32
	Far    float32
	Aspect float32
	Width  int
	Height int
}

// New returns a projection for a width×height surface with the default perspective.
func New(width, height int) *Projection {
	p := &Projection{Fovy: DefaultFovy, Near: DefaultNear, Far: DefaultFar, Aspect: 1}
	p.Resize(width, height)
	return p
}

// Resize records the new surface size and recomputes the aspect ratio.
// It reports whether anything changed; non-positive sizes (e.g. a minimized window) are ignored.
func (p *Projection) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == p.Width && height == p.Height {
		return false
	}
	p.Width = width
	p.Height = height
	p.Aspect = float32(width) / float32(height)
	return true
}

// Matrix is the OpenGL-style perspective matrix (column-major).
func (p *Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.Fovy), p.Aspect, p.Near, p.Far)
}
