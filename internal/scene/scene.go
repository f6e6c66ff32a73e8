package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tube-flythrough/internal/config"
	"tube-flythrough/internal/flight"
	"tube-flythrough/internal/layout"
	"tube-flythrough/internal/palette"
	"tube-flythrough/internal/tube"
	"tube-flythrough/internal/viewport"
)

// line is a static segment with its unfogged color and midpoint cached for per-frame fog.
type line struct {
	start, end rl.Vector3
	mid        mgl32.Vec3
	color      colorful.Color
}

// Scene holds the camera and every line drawn each frame. Update moves the camera
// along the curve; Draw renders between BeginMode3D and EndMode3D with the
// projection from viewport.Projection.
type Scene struct {
	Camera rl.Camera3D

	proj   *viewport.Projection
	driver *flight.Driver
	fog    palette.FogExp2
	prefs  config.Prefs

	tube  []line
	boxes []line
	path  []line
	last  flight.FrameResult
}

// New converts l into draw lists and points the camera at the start of the curve.
func New(l *layout.Layout, proj *viewport.Projection, driver *flight.Driver, fog palette.FogExp2, prefs config.Prefs) *Scene {
	s := &Scene{
		proj:   proj,
		driver: driver,
		fog:    fog,
		prefs:  prefs,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = proj.Fovy
	s.Camera.Projection = rl.CameraPerspective

	s.tube = makeLines(l.TubeLines, palette.TubeLine)
	for _, b := range l.Boxes {
		s.boxes = append(s.boxes, makeLines(b.Outline, b.Color)...)
	}
	for i := 1; i < len(l.Path); i++ {
		s.path = append(s.path, newLine(l.Path[i-1], l.Path[i], palette.PathLine))
	}
	s.apply(driver.Tick(0))
	return s
}

// Resize updates the projection for a new output surface size.
func (s *Scene) Resize(width, height int) bool {
	changed := s.proj.Resize(width, height)
	s.Camera.Fovy = s.proj.Fovy
	return changed
}

// Update runs once per frame and sets the camera to the flight pose for elapsedMs.
// With orbit controls enabled, raylib's orbital camera update runs first, but the
// flight pose then overwrites both position and target, so the orbit has no
// visible effect. Prefs leave it off by default.
func (s *Scene) Update(elapsedMs float64) {
	if s.prefs.OrbitControls {
		rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
	}
	s.apply(s.driver.Tick(elapsedMs))
}

// Frame returns the pose applied by the last Update.
func (s *Scene) Frame() flight.FrameResult {
	return s.last
}

// Draw renders the tube wireframe, the boxes and, if enabled, the path line.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	rl.SetMatrixProjection(toMatrix(s.proj.Matrix()))
	eye := s.last.Position
	s.drawLines(s.tube, eye)
	s.drawLines(s.boxes, eye)
	if s.prefs.ShowPath {
		s.drawLines(s.path, eye)
	}
	rl.EndMode3D()
}

func (s *Scene) apply(r flight.FrameResult) {
	s.last = r
	s.Camera.Position = toVector3(r.Position)
	s.Camera.Target = toVector3(r.Target)
}

func (s *Scene) drawLines(lines []line, eye mgl32.Vec3) {
	for i := range lines {
		ln := &lines[i]
		c := palette.RGBA(s.fog.Apply(ln.color, float64(ln.mid.Sub(eye).Len())))
		// fog uses the eye-to-midpoint distance, an approximation of per-fragment
		// view depth; fully fogged lines vanish into the black clear color
		if c.R == 0 && c.G == 0 && c.B == 0 {
			continue
		}
		rl.DrawLine3D(ln.start, ln.end, rl.NewColor(c.R, c.G, c.B, c.A))
	}
}

func makeLines(segs []tube.Segment, c colorful.Color) []line {
	out := make([]line, len(segs))
	for i, seg := range segs {
		out[i] = newLine(seg[0], seg[1], c)
	}
	return out
}

func newLine(a, b mgl32.Vec3, c colorful.Color) line {
	return line{
		start: toVector3(a),
		end:   toVector3(b),
		mid:   a.Add(b).Mul(0.5),
		color: c,
	}
}

func toVector3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// toMatrix copies a column-major mathgl matrix into raylib's layout; field Mi is element i.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
