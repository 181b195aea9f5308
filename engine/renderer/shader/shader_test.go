package shader

import (
	"math"
	"strings"
	"testing"
)

const colorEps = 1e-5

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: StageVertex, Log: "0:3: 'foo' : undeclared identifier"}
	msg := err.Error()
	if !strings.Contains(msg, StageVertex) {
		t.Fatalf("message %q does not name the stage", msg)
	}
	if !strings.Contains(msg, "undeclared identifier") {
		t.Fatalf("message %q does not carry the driver log", msg)
	}
}

func TestLinkErrorMessage(t *testing.T) {
	err := &LinkError{Log: "varying FragPos not written"}
	if !strings.Contains(err.Error(), "varying FragPos not written") {
		t.Fatalf("message %q does not carry the driver log", err.Error())
	}
}

func TestSourcesDeclareUniforms(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		uniforms []string
	}{
		{"object vertex", ObjectVertexSource, []string{"uniform mat4 model", "uniform mat4 view", "uniform mat4 projection", "uniform float curveAmount"}},
		{"ground vertex", GroundVertexSource, []string{"uniform mat4 model", "uniform mat4 view", "uniform mat4 projection", "uniform float curveAmount"}},
		{"ground fragment", GroundFragmentSource, []string{"uniform vec3 lightColor", "uniform vec3 darkColor", "uniform float gridSize"}},
	}
	for _, tt := range tests {
		for _, u := range tt.uniforms {
			if !strings.Contains(tt.source, u) {
				t.Errorf("%s shader is missing %q", tt.name, u)
			}
		}
	}
}

func TestVertexSourcesWarpInViewSpace(t *testing.T) {
	for _, src := range []string{ObjectVertexSource, GroundVertexSource} {
		// The warp must sit between the view transform and the projection.
		viewIdx := strings.Index(src, "view * model")
		warpIdx := strings.Index(src, "curveAmount * distanceSquared")
		projIdx := strings.Index(src, "projection * viewPos")
		if viewIdx < 0 || warpIdx < 0 || projIdx < 0 {
			t.Fatal("vertex source is missing a transform stage")
		}
		if !(viewIdx < warpIdx && warpIdx < projIdx) {
			t.Error("curvature warp is not applied between view transform and projection")
		}
	}
}

func TestGridPatternIsBinary(t *testing.T) {
	for _, x := range []float32{-7.3, -2, -0.1, 0, 0.9, 3.7, 100.2} {
		for _, z := range []float32{-5.5, 0, 1.1, 42} {
			p := GridPattern(x, z, 2)
			if p != 0 && p != 1 {
				t.Fatalf("GridPattern(%v, %v) = %v, want 0 or 1", x, z, p)
			}
		}
	}
}

func TestGridPatternAlternates(t *testing.T) {
	const gridSize = 2
	// Sample cell centers; neighbors along either axis must flip.
	for i := -3; i < 3; i++ {
		for j := -3; j < 3; j++ {
			x := (float32(i) + 0.5) * gridSize
			z := (float32(j) + 0.5) * gridSize
			p := GridPattern(x, z, gridSize)
			if px := GridPattern(x+gridSize, z, gridSize); px == p {
				t.Fatalf("cells (%d,%d) and (%d,%d) share pattern %v", i, j, i+1, j, p)
			}
			if pz := GridPattern(x, z+gridSize, gridSize); pz == p {
				t.Fatalf("cells (%d,%d) and (%d,%d) share pattern %v", i, j, i, j+1, p)
			}
		}
	}
}

func TestGridPatternPeriod(t *testing.T) {
	const gridSize float32 = 2
	for _, x := range []float32{-9.7, -0.3, 0.25, 1.6, 5.5} {
		for _, z := range []float32{-4.4, 0.75, 3.1} {
			p := GridPattern(x, z, gridSize)
			if q := GridPattern(x+2*gridSize, z, gridSize); q != p {
				t.Fatalf("pattern at (%v,%v) = %v, but (%v,%v) = %v", x, z, p, x+2*gridSize, z, q)
			}
			if q := GridPattern(x, z+2*gridSize, gridSize); q != p {
				t.Fatalf("pattern at (%v,%v) = %v, but (%v,%v) = %v", x, z, p, x, z+2*gridSize, q)
			}
		}
	}
}

func TestGridColorAwayFromLines(t *testing.T) {
	light := [3]float32{0.9, 0.9, 0.9}
	dark := [3]float32{0.5, 0.5, 0.5}
	const gridSize float32 = 2

	// A quarter of the way into a cell sits well clear of the midlines, so
	// the color must be exactly one of the two checker colors.
	got := GridColor(0.5, 0.5, gridSize, light, dark)
	pattern := GridPattern(0.5, 0.5, gridSize)
	want := light
	if pattern == 1 {
		want = dark
	}
	for i := range got {
		if diff := math.Abs(float64(got[i] - want[i])); diff > colorEps {
			t.Fatalf("GridColor = %v, want %v", got, want)
		}
	}
}

func TestGridColorOnLine(t *testing.T) {
	light := [3]float32{0.9, 0.9, 0.9}
	dark := [3]float32{0.5, 0.5, 0.5}
	const gridSize float32 = 2

	// The grid lines run through the midline of each cell. Dead center of a
	// cell is on both lines, so the color collapses to the line gray.
	got := GridColor(1, 1, gridSize, light, dark)
	for i := range got {
		if diff := math.Abs(float64(got[i] - 0.2)); diff > colorEps {
			t.Fatalf("GridColor on line = %v, want (0.2, 0.2, 0.2)", got)
		}
	}
}

func TestGridColorBlendMonotone(t *testing.T) {
	light := [3]float32{0.9, 0.9, 0.9}
	dark := [3]float32{0.5, 0.5, 0.5}
	const gridSize float32 = 2

	// Walking off the x midline within the blend band brightens
	// monotonically. z is held clear of its own midline so only the x
	// smoothstep varies.
	prev := GridColor(1, 1.5, gridSize, light, dark)[0]
	for _, off := range []float32{0.01, 0.02, 0.03, 0.04, 0.05} {
		cur := GridColor(1+off, 1.5, gridSize, light, dark)[0]
		if cur < prev {
			t.Fatalf("blend darkened from %v to %v at offset %v", prev, cur, off)
		}
		prev = cur
	}
}

func TestGLSLModNonNegative(t *testing.T) {
	for _, x := range []float32{-5, -3.5, -0.5, 0, 0.5, 3.5} {
		got := glslMod(x, 2)
		if got < 0 || got >= 2 {
			t.Fatalf("glslMod(%v, 2) = %v, want in [0, 2)", x, got)
		}
	}
	if got := glslMod(-1, 2); got != 1 {
		t.Fatalf("glslMod(-1, 2) = %v, want 1", got)
	}
}
