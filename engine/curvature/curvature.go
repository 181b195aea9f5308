// Package curvature implements the view-space warp that bends the world into
// a bowl shape. The warp is a pure per-vertex function: it runs on the GPU in
// the vertex shaders, and Apply is the CPU reference of the same formula used
// by tests and by anything that needs warped positions host-side.
package curvature

// UniformName is the name of the scalar uniform carrying the warp strength in
// every vertex shader that applies the warp.
const UniformName = "curveAmount"

// GLSL is the vertex-stage body of the warp, operating on a view-space
// position named viewPos. It must stay in lockstep with Params.Apply.
const GLSL = `float distanceSquared = viewPos.x * viewPos.x + viewPos.z * viewPos.z;
    viewPos.y += curveAmount * distanceSquared;`

// Params holds the tunable warp strength. The same value is applied to every
// vertex of every object within a frame; it is never per-object.
type Params struct {
	// CurveAmount scales the squared horizontal view-space distance added to
	// each vertex's height. Zero disables the warp entirely. The formula has
	// no sign branch: positive values raise distant geometry into a convex
	// bowl, negative values sink it.
	CurveAmount float32
}

// Apply warps a view-space position. Only the y component changes:
//
//	y' = y + CurveAmount * (x*x + z*z)
//
// x and z pass through unchanged, so the warp perturbs no topology and needs
// no cross-vertex state.
//
// Parameters:
//   - x, y, z: view-space position
//
// Returns:
//   - wx, wy, wz: warped view-space position
func (p Params) Apply(x, y, z float32) (wx, wy, wz float32) {
	d2 := x*x + z*z
	return x, y + p.CurveAmount*d2, z
}

// Enabled reports whether the warp has any effect.
//
// Returns:
//   - bool: true when CurveAmount is non-zero
func (p Params) Enabled() bool {
	return p.CurveAmount != 0
}
