package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrWindowInit is returned when raylib cannot open a window or GL context.
var ErrWindowInit = errors.New("graphics: window initialization failed")

// Options configures the window and post-processing.
type Options struct {
	Title      string
	Fullscreen bool
	TargetFPS  int32
	Bloom      BloomSettings
}

// Loop is the set of callbacks Run drives. Any of them may be nil.
type Loop struct {
	// Resize is called once after the window opens and again on every resize.
	Resize func(width, height int)
	// Update gets the elapsed time in milliseconds since the window opened.
	Update func(elapsedMs float64)
	// Draw renders the 3D scene; its output is bloomed and tone mapped.
	Draw func()
	// Overlay draws 2D content on top of the composited frame.
	Overlay func()
}

// Run opens the window and drives loop until the window is closed. Each frame:
// resize check, Update, Draw into the scene target, bloom composite, then Overlay.
func Run(opts Options, loop Loop) error {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	// 0×0 asks raylib for the current monitor size
	rl.InitWindow(0, 0, opts.Title)
	if !rl.IsWindowReady() {
		return ErrWindowInit
	}
	defer rl.CloseWindow()

	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}

	width, height := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
	bloom, err := NewBloom(width, height, opts.Bloom)
	if err != nil {
		return err
	}
	defer bloom.Unload()
	if loop.Resize != nil {
		loop.Resize(width, height)
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			width, height = int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
			bloom.Resize(width, height)
			if loop.Resize != nil {
				loop.Resize(width, height)
			}
		}
		if loop.Update != nil {
			loop.Update(rl.GetTime() * 1000)
		}

		bloom.BeginScene()
		if loop.Draw != nil {
			loop.Draw()
		}
		bloom.EndScene()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		bloom.Composite()
		if loop.Overlay != nil {
			loop.Overlay()
		}
		rl.EndDrawing()
	}
	return nil
}
