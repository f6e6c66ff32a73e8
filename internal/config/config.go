package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tube-flythrough/internal/decor"
)

// PrefsPath is the viewer preferences file, relative to the process working directory.
const PrefsPath = "config/flythrough.yaml"

// Scene holds the fixed scene constants. They are not read from disk.
// Camera timing and projection constants live in flight and viewport.
type Scene struct {
	Boxes     decor.Params
	BoxSize   float32
	EdgeAngle float32 // degrees; wireframe keeps edges sharper than this

	TubeSegments  int
	TubeRadius    float32
	TubeRadial    int
	PathDivisions int

	BloomStrength  float32
	BloomThreshold float32
	BloomRadius    float32

	FogDensity float64
}

// Default returns the scene constants.
func Default() Scene {
	return Scene{
		Boxes:     decor.DefaultParams(),
		BoxSize:   0.075,
		EdgeAngle: 0.2,

		TubeSegments:  222,
		TubeRadius:    0.65,
		TubeRadial:    16,
		PathDivisions: 100,

		BloomStrength:  3.5,
		BloomThreshold: 0.002,
		BloomRadius:    0,

		FogDensity: 0.3,
	}
}

// Prefs holds viewer-only preferences. They change how the scene is shown, never its layout.
type Prefs struct {
	ShowFPS       bool   `yaml:"show_fps"`
	ShowPath      bool   `yaml:"show_path"`
	OrbitControls bool   `yaml:"orbit_controls"` // see scene.Scene.Update
	Fullscreen    bool   `yaml:"fullscreen"`
	Seed          uint64 `yaml:"seed,omitempty"` // 0 = new placement every run
	LogPath       string `yaml:"log_path,omitempty"`
}

// DefaultPrefs returns the preferences used when no file is present.
func DefaultPrefs() Prefs {
	return Prefs{
		ShowFPS:       false,
		ShowPath:      false,
		OrbitControls: false,
		Fullscreen:    false,
	}
}

// LoadPrefs reads preferences from path. A missing file yields DefaultPrefs and no error;
// a file that exists but cannot be parsed yields DefaultPrefs and the parse error.
// Fields absent from the file keep their default values.
func LoadPrefs(path string) (Prefs, error) {
	p := DefaultPrefs()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return p, nil
}

// SavePrefs writes preferences to path, creating its directory if needed.
// Only the -save-prefs flag calls it; the viewer never writes prefs on its own.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	return nil
}
