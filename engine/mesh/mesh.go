package mesh

import (
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Mesh is a GPU-resident copy of one GeometryBuffer. Upload happens exactly
// once at construction; Draw issues one triangle-list draw over the full
// vertex range; Release frees the GPU buffers exactly once.
type Mesh interface {
	// VertexCount returns the number of vertices uploaded to the GPU.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// Draw issues a single gl.TRIANGLES draw covering every vertex.
	// Drawing a released mesh is a logged no-op, never undefined behavior.
	Draw()

	// Release frees the vertex array and buffer objects. Safe to call more
	// than once; only the first call frees anything.
	Release()
}

// glMesh owns one VAO and one VBO holding position-only vertex data at
// attribute location 0.
type glMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int
	released    bool
}

var _ Mesh = &glMesh{}

// NewMesh uploads a GeometryBuffer and returns the GPU-side mesh. The
// position attribute is bound to location 0 as three tightly packed float32
// components, matching the vertex shader contract.
//
// Must be called on the thread owning the GL context, after the context is
// current.
//
// Parameters:
//   - buffer: the vertex positions to upload
//
// Returns:
//   - Mesh: the uploaded mesh
func NewMesh(buffer GeometryBuffer) Mesh {
	m := &glMesh{vertexCount: buffer.VertexCount()}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(buffer)*4, gl.Ptr([]float32(buffer)), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m
}

func (m *glMesh) VertexCount() int {
	return m.vertexCount
}

func (m *glMesh) Draw() {
	if m.released {
		log.Printf("mesh: draw called on released mesh, skipping")
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(m.vertexCount))
	gl.BindVertexArray(0)
}

func (m *glMesh) Release() {
	if m.released {
		return
	}
	m.released = true
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
}
