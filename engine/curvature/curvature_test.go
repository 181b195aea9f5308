package curvature

import (
	"math"
	"strings"
	"testing"
)

func TestApplyFormula(t *testing.T) {
	p := Params{CurveAmount: 0.2}

	cases := []struct {
		x, y, z float32
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, -1, 1},
		{3, 2, -4},
		{-7.5, 0.25, 0.5},
		{100, -1, 100},
	}
	for _, c := range cases {
		wx, wy, wz := p.Apply(c.x, c.y, c.z)
		if wx != c.x || wz != c.z {
			t.Fatalf("Apply(%v,%v,%v) moved x/z: got (%v, %v)", c.x, c.y, c.z, wx, wz)
		}
		want := c.y + 0.2*(c.x*c.x+c.z*c.z)
		if wy != want {
			t.Fatalf("Apply(%v,%v,%v) y = %v, want %v", c.x, c.y, c.z, wy, want)
		}
	}
}

func TestApplyZeroIsIdentity(t *testing.T) {
	p := Params{}
	wx, wy, wz := p.Apply(5, -3, 2)
	if wx != 5 || wy != -3 || wz != 2 {
		t.Fatalf("zero-curve Apply changed position: (%v, %v, %v)", wx, wy, wz)
	}
	if p.Enabled() {
		t.Fatal("zero params reported Enabled")
	}
}

func TestApplyLiftIsNonNegativeAndProportional(t *testing.T) {
	p := Params{CurveAmount: 0.2}
	for _, r := range []float32{0, 0.5, 1, 2, 8, 40} {
		_, wy, _ := p.Apply(r, -1, r)
		lift := wy - (-1)
		if lift < 0 {
			t.Fatalf("lift negative at r=%v: %v", r, lift)
		}
		want := 0.2 * 2 * r * r
		if math.Abs(float64(lift-want)) > 1e-3*math.Max(1, float64(want)) {
			t.Fatalf("lift at r=%v = %v, want %v", r, lift, want)
		}
	}
}

func TestApplyLiftGrowsWithDistance(t *testing.T) {
	p := Params{CurveAmount: 0.05}
	prev := float32(-1)
	for r := float32(1); r <= 64; r *= 2 {
		_, wy, _ := p.Apply(r, 0, 0)
		if wy <= prev {
			t.Fatalf("lift not monotonic at r=%v: %v <= %v", r, wy, prev)
		}
		prev = wy
	}
}

func TestGLSLMatchesContract(t *testing.T) {
	// The shader body must reference the uniform by its published name and
	// only touch viewPos.y.
	if !strings.Contains(GLSL, UniformName) {
		t.Fatalf("GLSL snippet does not reference uniform %q", UniformName)
	}
	if !strings.Contains(GLSL, "viewPos.y +=") {
		t.Fatal("GLSL snippet does not increment viewPos.y")
	}
	for _, forbidden := range []string{"viewPos.x +=", "viewPos.z +=", "viewPos.x =", "viewPos.z ="} {
		if strings.Contains(GLSL, forbidden) {
			t.Fatalf("GLSL snippet modifies a pass-through component: %q", forbidden)
		}
	}
}
