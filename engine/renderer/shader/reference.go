package shader

import (
	"github.com/chewxy/math32"
)

// CPU reference of the ground fragment stage. These functions evaluate the
// exact math GroundFragmentSource runs on the GPU, so tests can pin the
// pattern contract without a GL context.

// GridLineWidth is the fractional half-width of the darkened grid lines,
// fixed in the fragment source.
const GridLineWidth = 0.05

// gridLineColor is the fixed dark gray the pattern blends toward on the grid
// lines.
var gridLineColor = [3]float32{0.2, 0.2, 0.2}

// GridPattern returns the checker selector for a world-space xz position:
// 0 selects lightColor, 1 selects darkColor. The pattern is periodic with
// period 2*gridSize along both axes.
//
// Parameters:
//   - x, z: world-space coordinates
//   - gridSize: edge length of one checker cell
//
// Returns:
//   - float32: 0 or 1
func GridPattern(x, z, gridSize float32) float32 {
	gx := math32.Floor(x / gridSize)
	gz := math32.Floor(z / gridSize)
	return glslMod(gx+gz, 2)
}

// GridColor evaluates the full fragment color for a world-space xz position:
// checker base color blended toward dark gray along the grid lines, which run
// through the midline of each cell on both axes.
//
// Parameters:
//   - x, z: world-space coordinates
//   - gridSize: edge length of one checker cell
//   - lightColor, darkColor: the two checker colors
//
// Returns:
//   - [3]float32: the final RGB color
func GridColor(x, z, gridSize float32, lightColor, darkColor [3]float32) [3]float32 {
	pattern := GridPattern(x, z, gridSize)

	var base [3]float32
	for i := range base {
		base[i] = mix(lightColor[i], darkColor[i], pattern)
	}

	// Distance from the cell midline, remapped so 1.0 sits on the cell edge.
	fx := math32.Abs(fract(x/gridSize)-0.5) * 2.0
	fz := math32.Abs(fract(z/gridSize)-0.5) * 2.0
	lines := smoothstep(0, GridLineWidth, fx) * smoothstep(0, GridLineWidth, fz)

	var out [3]float32
	for i := range out {
		out[i] = mix(gridLineColor[i], base[i], lines)
	}
	return out
}

// glslMod is GLSL mod(): x - y*floor(x/y), non-negative for positive y,
// unlike the truncated stdlib remainder.
func glslMod(x, y float32) float32 {
	return x - y*math32.Floor(x/y)
}

// fract is GLSL fract(): x - floor(x).
func fract(x float32) float32 {
	return x - math32.Floor(x)
}

// mix is GLSL mix(): linear blend of a toward b by t.
func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothstep is GLSL smoothstep(): Hermite interpolation of x clamped to
// [edge0, edge1].
func smoothstep(edge0, edge1, x float32) float32 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}
