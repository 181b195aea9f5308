package game_object

import (
	"github.com/DiedFrog/bowlworld/engine/mesh"
	"github.com/DiedFrog/bowlworld/engine/renderer/shader"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithMesh sets the Mesh for this GameObject. The mesh is treated as shared
// and is not released with the object; use WithOwnedMesh for exclusive meshes.
//
// Parameters:
//   - m: the Mesh to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Mesh
func WithMesh(m mesh.Mesh) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.msh = m
		obj.ownsMesh = false
	}
}

// WithOwnedMesh sets the Mesh for this GameObject and transfers ownership:
// the mesh is released together with the object.
//
// Parameters:
//   - m: the Mesh to associate and own
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the owned Mesh
func WithOwnedMesh(m mesh.Mesh) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.msh = m
		obj.ownsMesh = true
	}
}

// WithProgram sets the shader Program for this GameObject. The program is
// treated as shared and is not released with the object; use WithOwnedProgram
// for exclusive programs.
//
// Parameters:
//   - p: the Program to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Program
func WithProgram(p shader.Program) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.program = p
		obj.ownsProgram = false
	}
}

// WithOwnedProgram sets the shader Program for this GameObject and transfers
// ownership: the program is released together with the object.
//
// Parameters:
//   - p: the Program to associate and own
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the owned Program
func WithOwnedProgram(p shader.Program) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.program = p
		obj.ownsProgram = true
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [3]float32{x, y, z}
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//   - sz: the z scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [3]float32{sx, sy, sz}
	}
}

// WithRotation sets the initial rotation of the GameObject in radians.
//
// Parameters:
//   - rx: the x rotation angle
//   - ry: the y rotation angle
//   - rz: the z rotation angle
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = [3]float32{rx, ry, rz}
	}
}

// WithRotationSpeed sets the rotation speed of the GameObject in radians per second.
//
// Parameters:
//   - rx: the x rotation speed
//   - ry: the y rotation speed
//   - rz: the z rotation speed
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = [3]float32{rx, ry, rz}
	}
}

// WithUniform1f registers a float uniform pushed to the object's program on
// every draw. Uniforms are applied in registration order.
//
// Parameters:
//   - name: the uniform name as declared in the shader
//   - value: the float value
//
// Returns:
//   - GameObjectBuilderOption: functional option to register the uniform
func WithUniform1f(name string, value float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.staticUniforms = append(obj.staticUniforms, staticUniform{
			name: name,
			kind: uniformFloat,
			f:    value,
		})
	}
}

// WithUniform3f registers a vec3 uniform pushed to the object's program on
// every draw. Uniforms are applied in registration order.
//
// Parameters:
//   - name: the uniform name as declared in the shader
//   - x, y, z: the vector components
//
// Returns:
//   - GameObjectBuilderOption: functional option to register the uniform
func WithUniform3f(name string, x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.staticUniforms = append(obj.staticUniforms, staticUniform{
			name: name,
			kind: uniformVec3,
			v:    [3]float32{x, y, z},
		})
	}
}
