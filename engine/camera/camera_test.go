package camera

import (
	"math"
	"testing"

	"github.com/DiedFrog/bowlworld/common"
)

const eps = 1e-5

func almostEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestControllerDefaultsLookDownNegativeZ(t *testing.T) {
	cc := NewCameraController()

	x, y, z := cc.Position()
	if !almostEq(x, 0) || !almostEq(y, 0) || !almostEq(z, 4) {
		t.Fatalf("default position = (%v, %v, %v), want (0, 0, 4)", x, y, z)
	}

	fx, fy, fz := cc.Front()
	if !almostEq(fx, 0) || !almostEq(fy, 0) || !almostEq(fz, -1) {
		t.Fatalf("default front = (%v, %v, %v), want (0, 0, -1)", fx, fy, fz)
	}
}

func TestDownwardTiltMatchesStartingGaze(t *testing.T) {
	// Pitch -16.7 is the demos' starting tilt, chosen so the front vector is
	// the normalization of (0, -0.3, -1).
	cc := NewCameraController(WithPitch(-16.7))
	fx, fy, fz := cc.Front()

	n := float32(math.Sqrt(0.3*0.3 + 1))
	wx, wy, wz := float32(0), -0.3/n, -1/n
	const tol = 2e-3
	if math.Abs(float64(fx-wx)) > tol || math.Abs(float64(fy-wy)) > tol || math.Abs(float64(fz-wz)) > tol {
		t.Fatalf("front = (%v, %v, %v), want about (%v, %v, %v)", fx, fy, fz, wx, wy, wz)
	}
}

func TestFrontIsUnitLength(t *testing.T) {
	cc := NewCameraController()
	for _, yaw := range []float32{-90, 0, 37.5, 180, -270} {
		for _, pitch := range []float32{-89, -45, 0, 30, 89} {
			cc.SetYaw(yaw)
			cc.SetPitch(pitch)
			fx, fy, fz := cc.Front()
			n := float32(math.Sqrt(float64(fx*fx + fy*fy + fz*fz)))
			if !almostEq(n, 1) {
				t.Fatalf("front length at yaw %v pitch %v = %v, want 1", yaw, pitch, n)
			}
		}
	}
}

func TestTargetIsPositionPlusFront(t *testing.T) {
	cc := NewCameraController(WithPosition(1, 2, 3), WithYaw(45), WithPitch(-20))
	px, py, pz := cc.Position()
	fx, fy, fz := cc.Front()
	tx, ty, tz := cc.Target()
	if !almostEq(tx, px+fx) || !almostEq(ty, py+fy) || !almostEq(tz, pz+fz) {
		t.Fatalf("target = (%v, %v, %v), want position+front (%v, %v, %v)",
			tx, ty, tz, px+fx, py+fy, pz+fz)
	}
}

func TestSetPitchClamps(t *testing.T) {
	cc := NewCameraController()

	cc.SetPitch(120)
	if got := cc.Pitch(); got != 89 {
		t.Fatalf("pitch after SetPitch(120) = %v, want 89", got)
	}
	cc.SetPitch(-300)
	if got := cc.Pitch(); got != -89 {
		t.Fatalf("pitch after SetPitch(-300) = %v, want -89", got)
	}
}

func TestFirstLookDoesNotRotate(t *testing.T) {
	cc := NewCameraController()
	yaw, pitch := cc.Yaw(), cc.Pitch()

	// Wherever the cursor happens to be, the first sample must only anchor.
	cc.Look(512.7, -3000)
	if cc.Yaw() != yaw || cc.Pitch() != pitch {
		t.Fatalf("first Look rotated view to yaw %v pitch %v", cc.Yaw(), cc.Pitch())
	}
}

func TestLookAppliesSensitivityScaledDeltas(t *testing.T) {
	cc := NewCameraController(WithMouseSensitivity(0.1))
	cc.Look(100, 100)
	cc.Look(110, 80)

	// dx = +10 pixels, dy = +20 pixels upward (screen y decreased).
	if got := cc.Yaw(); !almostEq(got, -89) {
		t.Fatalf("yaw = %v, want -89", got)
	}
	if got := cc.Pitch(); !almostEq(got, 2) {
		t.Fatalf("pitch = %v, want 2", got)
	}
}

func TestLookClampsPitch(t *testing.T) {
	cc := NewCameraController()
	cc.Look(0, 0)
	// A huge upward drag must stop at the clamp, not flip the view.
	cc.Look(0, -100000)
	if got := cc.Pitch(); got != 89 {
		t.Fatalf("pitch after large upward drag = %v, want 89", got)
	}
	cc.Look(0, 200000)
	if got := cc.Pitch(); got != -89 {
		t.Fatalf("pitch after large downward drag = %v, want -89", got)
	}
}

func TestResetLookReanchors(t *testing.T) {
	cc := NewCameraController()
	cc.Look(100, 100)
	cc.Look(110, 100)
	yaw := cc.Yaw()

	cc.ResetLook()
	// After recapture the cursor may be anywhere; the next sample must not rotate.
	cc.Look(99999, 99999)
	if cc.Yaw() != yaw {
		t.Fatalf("Look after ResetLook rotated yaw from %v to %v", yaw, cc.Yaw())
	}
}

func TestMoveIsFrameRateIndependent(t *testing.T) {
	one := NewCameraController()
	many := NewCameraController()

	one.Move(MoveForward, 1.0)
	for i := 0; i < 10; i++ {
		many.Move(MoveForward, 0.1)
	}

	x1, y1, z1 := one.Position()
	x2, y2, z2 := many.Position()
	if math.Abs(float64(x1-x2)) > 1e-4 || math.Abs(float64(y1-y2)) > 1e-4 || math.Abs(float64(z1-z2)) > 1e-4 {
		t.Fatalf("one step (%v, %v, %v) != ten substeps (%v, %v, %v)", x1, y1, z1, x2, y2, z2)
	}
}

func TestForwardMoveFollowsViewDirection(t *testing.T) {
	cc := NewCameraController(WithPitch(-45))
	fx, fy, fz := cc.Front()
	x0, y0, z0 := cc.Position()

	cc.Move(MoveForward, 1.0)
	x1, y1, z1 := cc.Position()

	v := cc.MovementSpeed()
	if !almostEq(x1-x0, fx*v) || !almostEq(y1-y0, fy*v) || !almostEq(z1-z0, fz*v) {
		t.Fatalf("forward step (%v, %v, %v), want front*velocity (%v, %v, %v)",
			x1-x0, y1-y0, z1-z0, fx*v, fy*v, fz*v)
	}
	if almostEq(y1, y0) {
		t.Fatalf("pitched forward move kept height %v, want descent along the view", y1)
	}

	cc.Move(MoveBackward, 1.0)
	x2, y2, z2 := cc.Position()
	if !almostEq(x2, x0) || !almostEq(y2, y0) || !almostEq(z2, z0) {
		t.Fatalf("backward move did not retrace: (%v, %v, %v), want (%v, %v, %v)", x2, y2, z2, x0, y0, z0)
	}
}

func TestMoveSpeedScalesDistance(t *testing.T) {
	cc := NewCameraController(WithMovementSpeed(2.5))
	x0, _, z0 := cc.Position()
	cc.Move(MoveRight, 2.0)
	x1, _, z1 := cc.Position()

	dist := math.Sqrt(float64((x1-x0)*(x1-x0) + (z1-z0)*(z1-z0)))
	if math.Abs(dist-5.0) > 1e-4 {
		t.Fatalf("moved %v units, want 5 (speed 2.5 over 2s)", dist)
	}
}

func TestVerticalMoveUsesWorldUp(t *testing.T) {
	cc := NewCameraController(WithPitch(45))
	x0, y0, z0 := cc.Position()
	cc.Move(MoveUp, 1.0)
	x1, y1, z1 := cc.Position()
	if !almostEq(x0, x1) || !almostEq(z0, z1) {
		t.Fatalf("vertical move drifted horizontally: (%v, %v) -> (%v, %v)", x0, z0, x1, z1)
	}
	if !almostEq(y1-y0, cc.MovementSpeed()) {
		t.Fatalf("vertical move rose %v, want %v", y1-y0, cc.MovementSpeed())
	}
}

func TestCameraViewMatrixTracksController(t *testing.T) {
	cc := NewCameraController(WithPosition(1, 2, 3), WithYaw(-45), WithPitch(10))
	c := NewCamera(WithController(cc))
	c.Update()

	px, py, pz := cc.Position()
	tx, ty, tz := cc.Target()
	want := make([]float32, 16)
	common.LookAt(want, px, py, pz, tx, ty, tz, 0, 1, 0)

	got := c.ViewMatrix()
	for i := range want {
		if !almostEq(got[i], want[i]) {
			t.Fatalf("view matrix element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCameraViewProjectionIsProduct(t *testing.T) {
	cc := NewCameraController()
	c := NewCamera(WithController(cc), WithAspect(16.0/9.0))
	c.Update()

	v := c.ViewMatrix()
	p := c.ProjectionMatrix()
	want := make([]float32, 16)
	common.Mul4(want, p[:], v[:])

	got := c.ViewProjectionMatrix()
	for i := range want {
		if !almostEq(got[i], want[i]) {
			t.Fatalf("view-projection element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCameraWithoutControllerUpdateIsNoop(t *testing.T) {
	c := NewCamera()
	before := c.ViewMatrix()
	c.Update()
	after := c.ViewMatrix()
	if before != after {
		t.Fatal("Update without a controller modified the view matrix")
	}
}
