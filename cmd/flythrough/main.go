package main

import (
	"flag"
	"os"
	"time"

	"tube-flythrough/internal/config"
	"tube-flythrough/internal/debug"
	"tube-flythrough/internal/decor"
	"tube-flythrough/internal/flight"
	"tube-flythrough/internal/graphics"
	"tube-flythrough/internal/layout"
	"tube-flythrough/internal/logger"
	"tube-flythrough/internal/palette"
	"tube-flythrough/internal/scene"
	"tube-flythrough/internal/spline"
	"tube-flythrough/internal/viewport"
)

func main() {
	savePrefs := flag.Bool("save-prefs", false, "write the current prefs to "+config.PrefsPath+" and exit")
	flag.Parse()

	prefs, prefsErr := config.LoadPrefs(config.PrefsPath)
	log := logger.New(prefs.LogPath)
	log.Infof("logging to %s", log.Path())
	if prefsErr != nil {
		log.Warnf("using default prefs: %v", prefsErr)
	}

	if *savePrefs {
		err := config.SavePrefs(config.PrefsPath, prefs)
		if err == nil {
			log.Infof("prefs written to %s", config.PrefsPath)
		}
		exit(log, err)
	}
	exit(log, run(prefs, log))
}

func exit(log *logger.Logger, err error) {
	code := 0
	if err != nil {
		log.Errorf("fatal: %v", err)
		code = 1
	}
	_ = log.Close()
	os.Exit(code)
}

func run(prefs config.Prefs, log *logger.Logger) error {
	params := config.Default()
	seed := prefs.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	curve := spline.Default()
	l, err := layout.Build(curve, params, decor.NewSource(seed))
	if err != nil {
		return err
	}
	log.Infof("curve: %d control points, length %.2f", len(curve.ControlPoints()), curve.Length())
	log.Infof("layout: seed %d, %d tube triangles, %d boxes, %d lines per frame",
		seed, l.Tube.Triangles(), len(l.Boxes), l.SegmentCount())
	for _, b := range l.Boxes {
		log.Infof("%s", b)
	}

	proj := viewport.New(0, 0)
	scn := scene.New(l, proj, flight.New(curve), palette.FogExp2{Color: palette.Background, Density: params.FogDensity}, prefs)
	overlay := debug.New(prefs.ShowFPS)

	err = graphics.Run(graphics.Options{
		Title:      "tube flythrough",
		Fullscreen: prefs.Fullscreen,
		TargetFPS:  60,
		Bloom: graphics.BloomSettings{
			Strength:  params.BloomStrength,
			Threshold: params.BloomThreshold,
			Radius:    params.BloomRadius,
		},
	}, graphics.Loop{
		Resize: func(w, h int) {
			if scn.Resize(w, h) {
				log.Infof("resize %dx%d aspect %.3f", w, h, proj.Aspect)
			}
		},
		Update: scn.Update,
		Draw:   scn.Draw,
		Overlay: func() {
			r := scn.Frame()
			next, ok := l.Ahead(r.Phase)
			overlay.Draw(r, next, ok)
		},
	})
	if err != nil {
		return err
	}
	log.Infof("window closed")
	return nil
}
