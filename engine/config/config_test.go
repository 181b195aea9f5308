package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesSetFields(t *testing.T) {
	path := writeConfig(t, `
window:
  title: Custom World
  width: 1920
ground:
  resolution: 250
curve_amount: 0.4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Window.Title != "Custom World" || cfg.Window.Width != 1920 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Ground.Resolution != 250 {
		t.Fatalf("ground resolution = %d, want 250", cfg.Ground.Resolution)
	}
	if cfg.CurveAmount != 0.4 {
		t.Fatalf("curve amount = %v, want 0.4", cfg.CurveAmount)
	}

	// Unset fields keep their defaults.
	def := Default()
	if cfg.Window.Height != def.Window.Height {
		t.Fatalf("height = %d, want default %d", cfg.Window.Height, def.Window.Height)
	}
	if cfg.Ground.Size != def.Ground.Size {
		t.Fatalf("ground size = %v, want default %v", cfg.Ground.Size, def.Ground.Size)
	}
	if cfg.Camera != def.Camera {
		t.Fatalf("camera = %+v, want default %+v", cfg.Camera, def.Camera)
	}
}

func TestLoadExplicitZeroCurveIsKept(t *testing.T) {
	path := writeConfig(t, "curve_amount: 0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CurveAmount != 0 {
		t.Fatalf("curve amount = %v, want explicit 0", cfg.CurveAmount)
	}
}

func TestLoadOmittedCurveFallsBackToDefault(t *testing.T) {
	path := writeConfig(t, "window:\n  title: No Curve Key\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CurveAmount != Default().CurveAmount {
		t.Fatalf("curve amount = %v, want default %v", cfg.CurveAmount, Default().CurveAmount)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "window: [not: a: map\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
