package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"tube-flythrough/internal/flight"
	"tube-flythrough/internal/layout"
	"tube-flythrough/internal/palette"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Overlay draws FPS, the flight pose and the next box in the top-right corner. Hidden by default.
type Overlay struct {
	Visible    bool
	frameCount uint32
	fpsText    string
	poseText   string
	headText   string
	nextText   string
	nextColor  rl.Color
}

// New returns an overlay, shown only if visible.
func New(visible bool) *Overlay {
	return &Overlay{Visible: visible}
}

// Draw renders the overlay for frame r. next is the box the camera reaches
// next, if any; its line is drawn in the box's color. Call after the scene is
// composited.
func (o *Overlay) Draw(r flight.FrameResult, next layout.Box, hasNext bool) {
	if !o.Visible {
		return
	}
	o.frameCount++
	if o.frameCount%updateInterval == 0 || o.fpsText == "" {
		fwd := r.Forward()
		o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		o.poseText = fmt.Sprintf("%.1fs  phase %.3f  look %.3f", r.Elapsed/1000, r.Phase, r.LookPhase)
		o.headText = fmt.Sprintf("heading %+.2f %+.2f %+.2f", fwd[0], fwd[1], fwd[2])
		o.nextText = ""
		if hasNext {
			o.nextText = next.String()
			c := palette.RGBA(next.Color)
			o.nextColor = rl.NewColor(c.R, c.G, c.B, c.A)
		}
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	for _, text := range []string{o.fpsText, o.poseText, o.headText} {
		o.drawRight(text, screenW, y, rl.Green)
		y += lineHeight
	}
	if o.nextText != "" {
		o.drawRight(o.nextText, screenW, y, o.nextColor)
	}
}

func (o *Overlay) drawRight(text string, screenW, y int32, c rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
