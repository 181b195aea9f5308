package game_object

import (
	"math"
	"testing"

	"github.com/DiedFrog/bowlworld/common"
)

// fakeMesh records Release calls; Draw and VertexCount are inert.
type fakeMesh struct {
	released int
}

func (f *fakeMesh) VertexCount() int { return 0 }
func (f *fakeMesh) Draw() {}
func (f *fakeMesh) Release() { f.released++ }

// fakeProgram records uniform uploads in call order.
type fakeProgram struct {
	released int
	calls    []uniformCall
}

type uniformCall struct {
	name   string
	values [3]float32
}

func (f *fakeProgram) Name() string { return "fake" }
func (f *fakeProgram) Failed() bool { return false }
func (f *fakeProgram) Err() error { return nil }
func (f *fakeProgram) Bind() {}
func (f *fakeProgram) Release() { f.released++ }
func (f *fakeProgram) SetMat4(name string, m []float32) {
	f.calls = append(f.calls, uniformCall{name: name})
}
func (f *fakeProgram) SetVec3(name string, x, y, z float32) {
	f.calls = append(f.calls, uniformCall{name: name, values: [3]float32{x, y, z}})
}
func (f *fakeProgram) SetFloat(name string, value float32) {
	f.calls = append(f.calls, uniformCall{name: name, values: [3]float32{value, 0, 0}})
}

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()
	if !obj.Enabled() {
		t.Fatal("new object is disabled")
	}
	sx, sy, sz := obj.Scale()
	if sx != 1 || sy != 1 || sz != 1 {
		t.Fatalf("default scale = (%v, %v, %v), want (1, 1, 1)", sx, sy, sz)
	}
}

func TestModelMatrixComposesTransform(t *testing.T) {
	obj := NewGameObject(
		WithPosition(3, 0, 3),
		WithScale(1, 10, 1),
	)

	m := make([]float32, 16)
	obj.ModelMatrix(m)

	want := make([]float32, 16)
	common.BuildModelMatrix(want, 3, 0, 3, 0, 0, 0, 1, 10, 1)
	for i := range want {
		if m[i] != want[i] {
			t.Fatalf("model matrix element %d = %v, want %v", i, m[i], want[i])
		}
	}
}

func TestAdvanceRotationIntegratesSpeed(t *testing.T) {
	obj := NewGameObject(WithRotationSpeed(0, 1.5, 0))

	obj.AdvanceRotation(0.5)
	obj.AdvanceRotation(0.5)

	rx, ry, rz := obj.Rotation()
	if rx != 0 || rz != 0 {
		t.Fatalf("rotation leaked onto other axes: (%v, %v, %v)", rx, ry, rz)
	}
	if math.Abs(float64(ry-1.5)) > 1e-6 {
		t.Fatalf("y rotation = %v, want 1.5", ry)
	}
}

func TestAdvanceRotationNoopWithoutSpeed(t *testing.T) {
	obj := NewGameObject(WithRotation(0.1, 0.2, 0.3))
	obj.AdvanceRotation(10)
	rx, ry, rz := obj.Rotation()
	if rx != 0.1 || ry != 0.2 || rz != 0.3 {
		t.Fatalf("static object rotated to (%v, %v, %v)", rx, ry, rz)
	}
}

func TestApplyStaticUniformsPreservesOrder(t *testing.T) {
	p := &fakeProgram{}
	obj := NewGameObject(
		WithProgram(p),
		WithUniform3f("lightColor", 0.9, 0.9, 0.9),
		WithUniform3f("darkColor", 0.5, 0.5, 0.5),
		WithUniform1f("gridSize", 2.0),
	)

	obj.ApplyStaticUniforms()

	wantNames := []string{"lightColor", "darkColor", "gridSize"}
	if len(p.calls) != len(wantNames) {
		t.Fatalf("got %d uniform calls, want %d", len(p.calls), len(wantNames))
	}
	for i, name := range wantNames {
		if p.calls[i].name != name {
			t.Fatalf("call %d set %q, want %q", i, p.calls[i].name, name)
		}
	}
	if p.calls[2].values[0] != 2.0 {
		t.Fatalf("gridSize = %v, want 2", p.calls[2].values[0])
	}
}

func TestApplyStaticUniformsWithoutProgram(t *testing.T) {
	obj := NewGameObject(WithUniform1f("gridSize", 2.0))
	// Must not panic.
	obj.ApplyStaticUniforms()
}

func TestReleaseOnlyFreesOwnedResources(t *testing.T) {
	sharedMesh := &fakeMesh{}
	sharedProg := &fakeProgram{}
	shared := NewGameObject(WithMesh(sharedMesh), WithProgram(sharedProg))
	shared.Release()
	if sharedMesh.released != 0 || sharedProg.released != 0 {
		t.Fatal("released shared resources")
	}

	ownedMesh := &fakeMesh{}
	ownedProg := &fakeProgram{}
	owned := NewGameObject(WithOwnedMesh(ownedMesh), WithOwnedProgram(ownedProg))
	owned.Release()
	if ownedMesh.released != 1 || ownedProg.released != 1 {
		t.Fatalf("owned resources released %d/%d times, want 1/1", ownedMesh.released, ownedProg.released)
	}
}

func TestSetEnabledToggles(t *testing.T) {
	obj := NewGameObject(WithEnabled(false))
	if obj.Enabled() {
		t.Fatal("WithEnabled(false) ignored")
	}
	obj.SetEnabled(true)
	if !obj.Enabled() {
		t.Fatal("SetEnabled(true) ignored")
	}
}
