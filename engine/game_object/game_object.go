package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/DiedFrog/bowlworld/common"
	"github.com/DiedFrog/bowlworld/engine/mesh"
	"github.com/DiedFrog/bowlworld/engine/renderer/shader"
)

// staticUniformKind discriminates the value stored in a staticUniform.
type staticUniformKind int

const (
	uniformFloat staticUniformKind = iota
	uniformVec3
)

// staticUniform is a named shader constant pushed to the object's program on
// every draw. Values are fixed at build time; per-frame values (matrices, the
// curvature amount) are set by the scene instead.
type staticUniform struct {
	name string
	kind staticUniformKind
	f    float32
	v    [3]float32
}

type gameObject struct {
	mu sync.Mutex

	id      uint64
	enabled atomic.Bool

	msh     mesh.Mesh
	program shader.Program

	// Resource ownership. Meshes and programs may be shared between
	// objects; only owners release them.
	ownsMesh    bool
	ownsProgram bool

	position      [3]float32
	rotation      [3]float32 // radians
	rotationSpeed [3]float32 // radians per second
	scale         [3]float32

	staticUniforms []staticUniform
}

// GameObject defines the interface for a drawable scene entity. It pairs a
// mesh with a shader program and owns the transform that produces the model
// matrix. Rotation advances over time at the configured rotation speed.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Mesh returns the Mesh associated with this object, or nil if not set.
	//
	// Returns:
	//   - mesh.Mesh: the associated mesh or nil
	Mesh() mesh.Mesh

	// Program returns the shader Program associated with this object, or nil if not set.
	//
	// Returns:
	//   - shader.Program: the associated program or nil
	Program() shader.Program

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the object's rotation angles in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// RotationSpeed returns the object's rotation speed in radians per second.
	//
	// Returns:
	//   - rx, ry, rz: rotation speed values
	RotationSpeed() (rx, ry, rz float32)

	// Scale returns the object's per-axis scale factors.
	//
	// Returns:
	//   - sx, sy, sz: scale components
	Scale() (sx, sy, sz float32)

	// ModelMatrix writes the object's 4x4 model matrix (column-major) into out.
	//
	// Parameters:
	//   - out: destination slice, must have at least 16 elements
	ModelMatrix(out []float32)

	// AdvanceRotation integrates the rotation speed over the elapsed frame
	// time. Objects with zero rotation speed are unaffected.
	//
	// Parameters:
	//   - deltaTime: seconds elapsed since the previous frame
	AdvanceRotation(deltaTime float32)

	// ApplyStaticUniforms pushes the build-time uniform values to the
	// object's program. The program must be bound by the caller first.
	ApplyStaticUniforms()

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition sets the object's world-space position.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotation sets the object's rotation angles in radians.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation angles
	SetRotation(rx, ry, rz float32)

	// SetRotationSpeed sets the object's rotation speed in radians per second.
	//
	// Parameters:
	//   - rx, ry, rz: new rotation speed values
	SetRotationSpeed(rx, ry, rz float32)

	// SetScale sets the object's per-axis scale factors.
	//
	// Parameters:
	//   - sx, sy, sz: new scale components
	SetScale(sx, sy, sz float32)

	// Release frees the mesh and program if this object owns them. Shared
	// resources are left untouched.
	Release()
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with identity transform defaults.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [3]float32{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (obj *gameObject) ID() uint64 {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.id
}

func (obj *gameObject) Enabled() bool {
	return obj.enabled.Load()
}

func (obj *gameObject) Mesh() mesh.Mesh {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.msh
}

func (obj *gameObject) Program() shader.Program {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.program
}

func (obj *gameObject) Position() (x, y, z float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.position[0], obj.position[1], obj.position[2]
}

func (obj *gameObject) Rotation() (rx, ry, rz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.rotation[0], obj.rotation[1], obj.rotation[2]
}

func (obj *gameObject) RotationSpeed() (rx, ry, rz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.rotationSpeed[0], obj.rotationSpeed[1], obj.rotationSpeed[2]
}

func (obj *gameObject) Scale() (sx, sy, sz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	return obj.scale[0], obj.scale[1], obj.scale[2]
}

func (obj *gameObject) ModelMatrix(out []float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	common.BuildModelMatrix(out,
		obj.position[0], obj.position[1], obj.position[2],
		obj.rotation[0], obj.rotation[1], obj.rotation[2],
		obj.scale[0], obj.scale[1], obj.scale[2],
	)
}

func (obj *gameObject) AdvanceRotation(deltaTime float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.rotation[0] += obj.rotationSpeed[0] * deltaTime
	obj.rotation[1] += obj.rotationSpeed[1] * deltaTime
	obj.rotation[2] += obj.rotationSpeed[2] * deltaTime
}

func (obj *gameObject) ApplyStaticUniforms() {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	if obj.program == nil {
		return
	}
	for _, u := range obj.staticUniforms {
		switch u.kind {
		case uniformFloat:
			obj.program.SetFloat(u.name, u.f)
		case uniformVec3:
			obj.program.SetVec3(u.name, u.v[0], u.v[1], u.v[2])
		}
	}
}

func (obj *gameObject) SetID(id uint64) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.id = id
}

func (obj *gameObject) SetEnabled(enabled bool) {
	obj.enabled.Store(enabled)
}

func (obj *gameObject) SetPosition(x, y, z float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.position = [3]float32{x, y, z}
}

func (obj *gameObject) SetRotation(rx, ry, rz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.rotation = [3]float32{rx, ry, rz}
}

func (obj *gameObject) SetRotationSpeed(rx, ry, rz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.rotationSpeed = [3]float32{rx, ry, rz}
}

func (obj *gameObject) SetScale(sx, sy, sz float32) {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	obj.scale = [3]float32{sx, sy, sz}
}

func (obj *gameObject) Release() {
	obj.mu.Lock()
	defer obj.mu.Unlock()
	if obj.ownsMesh && obj.msh != nil {
		obj.msh.Release()
	}
	if obj.ownsProgram && obj.program != nil {
		obj.program.Release()
	}
}
