// Package config loads demo settings from a YAML file, falling back to
// built-in defaults for anything unset. A missing file is not an error; the
// defaults describe a complete working scene.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DiedFrog/bowlworld/common"
)

// WindowConfig holds windowing settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig holds first-person camera settings.
type CameraConfig struct {
	MovementSpeed    float32 `yaml:"movement_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	FovDegrees       float32 `yaml:"fov_degrees"`
}

// GroundConfig holds ground plane tessellation settings.
type GroundConfig struct {
	Size       float32 `yaml:"size"`
	Resolution int     `yaml:"resolution"`
}

// CubeConfig holds the cube arrangement settings.
type CubeConfig struct {
	Resolution int     `yaml:"resolution"`
	Count      int     `yaml:"count"`
	RingRadius float32 `yaml:"ring_radius"`
}

// Config is the root demo configuration.
type Config struct {
	Window      WindowConfig `yaml:"window"`
	Camera      CameraConfig `yaml:"camera"`
	Ground      GroundConfig `yaml:"ground"`
	Cubes       CubeConfig   `yaml:"cubes"`
	CurveAmount float32      `yaml:"curve_amount"`
}

// Default returns the built-in configuration: a 20x20 ground tessellated at
// 500x500, five cubes arranged in a ring, and a gentle upward curve.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Bowl World",
			Width:  800,
			Height: 600,
		},
		Camera: CameraConfig{
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			FovDegrees:       45.0,
		},
		Ground: GroundConfig{
			Size:       20.0,
			Resolution: 500,
		},
		Cubes: CubeConfig{
			Resolution: 10,
			Count:      5,
			RingRadius: 5.0,
		},
		CurveAmount: 0.2,
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
// Unset fields keep their default values. If the file does not exist, the
// defaults are returned without error.
//
// Parameters:
//   - path: path to the YAML configuration file
//
// Returns:
//   - Config: the merged configuration
//   - error: an error if the file exists but cannot be read or parsed
func Load(path string) (Config, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return defaults, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	// Zero is a meaningful curve amount (a flat world), so a second pass
	// with a pointer field distinguishes "unset" from an explicit zero.
	var curveProbe struct {
		CurveAmount *float32 `yaml:"curve_amount"`
	}
	if err := yaml.Unmarshal(data, &curveProbe); err == nil && curveProbe.CurveAmount == nil {
		loaded.CurveAmount = defaults.CurveAmount
	}

	return merge(loaded, defaults), nil
}

// merge fills every zero-valued field of loaded from defaults.
func merge(loaded, defaults Config) Config {
	return Config{
		Window: WindowConfig{
			Title:  common.Coalesce(loaded.Window.Title, defaults.Window.Title),
			Width:  common.Coalesce(loaded.Window.Width, defaults.Window.Width),
			Height: common.Coalesce(loaded.Window.Height, defaults.Window.Height),
		},
		Camera: CameraConfig{
			MovementSpeed:    common.Coalesce(loaded.Camera.MovementSpeed, defaults.Camera.MovementSpeed),
			MouseSensitivity: common.Coalesce(loaded.Camera.MouseSensitivity, defaults.Camera.MouseSensitivity),
			FovDegrees:       common.Coalesce(loaded.Camera.FovDegrees, defaults.Camera.FovDegrees),
		},
		Ground: GroundConfig{
			Size:       common.Coalesce(loaded.Ground.Size, defaults.Ground.Size),
			Resolution: common.Coalesce(loaded.Ground.Resolution, defaults.Ground.Resolution),
		},
		Cubes: CubeConfig{
			Resolution: common.Coalesce(loaded.Cubes.Resolution, defaults.Cubes.Resolution),
			Count:      common.Coalesce(loaded.Cubes.Count, defaults.Cubes.Count),
			RingRadius: common.Coalesce(loaded.Cubes.RingRadius, defaults.Cubes.RingRadius),
		},
		CurveAmount: loaded.CurveAmount,
	}
}
