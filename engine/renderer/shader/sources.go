package shader

import (
	"github.com/DiedFrog/bowlworld/engine/curvature"
)

// ObjectVertexSource is the vertex stage shared by every solid object. It
// transforms into view space, applies the curvature warp there, then
// projects. The warp body is spliced in from the curvature package so the GPU
// formula can never drift from the CPU reference.
var ObjectVertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
uniform mat4 model;      // object position, rotation, scale
uniform mat4 view;       // camera transform
uniform mat4 projection; // perspective projection
uniform float curveAmount;

void main()
{
    vec4 viewPos = view * model * vec4(aPos, 1.0);
    ` + curvature.GLSL + `
    gl_Position = projection * viewPos;
}
`

// ObjectFragmentSource is the flat unlit object color. The core applies no
// warp correction to normals, so objects stay deliberately unshaded.
const ObjectFragmentSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// GroundVertexSource additionally forwards the world-space position so the
// fragment stage can derive the checker pattern from world coordinates. The
// warp still happens in view space, identical to the object shader.
var GroundVertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform float curveAmount;

out vec3 FragPos;

void main()
{
    FragPos = vec3(model * vec4(aPos, 1.0));

    vec4 viewPos = view * model * vec4(aPos, 1.0);
    ` + curvature.GLSL + `
    gl_Position = projection * viewPos;
}
`

// GroundFragmentSource draws the alternating checker pattern with
// anti-aliased grid lines. Cell selection and line blending must match the
// CPU reference in reference.go exactly.
const GroundFragmentSource = `#version 330 core
in vec3 FragPos;
out vec4 FragColor;

uniform vec3 lightColor;
uniform vec3 darkColor;
uniform float gridSize;

void main()
{
    vec2 gridCoord = FragPos.xz / gridSize;
    vec2 gridPos = floor(gridCoord);

    float pattern = mod(gridPos.x + gridPos.y, 2.0);
    vec3 baseColor = mix(lightColor, darkColor, pattern);

    vec2 gridLines = abs(fract(gridCoord) - 0.5) * 2.0;
    float lineWidth = 0.05;
    float lines = smoothstep(0.0, lineWidth, gridLines.x) *
                    smoothstep(0.0, lineWidth, gridLines.y);

    vec3 finalColor = mix(vec3(0.2), baseColor, lines);
    FragColor = vec4(finalColor, 1.0);
}
`
