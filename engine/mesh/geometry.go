// Package mesh provides the procedural geometry generators and the GPU-side
// mesh wrapper. Generators are pure functions over their parameters: calling
// one twice with the same arguments yields bit-identical output, which the
// tests rely on. Generators never touch the GPU; upload is a separate step
// performed by NewMesh.
package mesh

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/soypat/glgl/math/ms3"
)

// GeometryBuffer is a flat sequence of vertex positions, three float32
// components per vertex, laid out as an expanded triangle list (every three
// consecutive vertices form one independent triangle, no index buffer).
type GeometryBuffer []float32

// VertexCount returns the number of vertices in the buffer.
//
// Returns:
//   - int: vertex count (len / 3)
func (g GeometryBuffer) VertexCount() int {
	return len(g) / 3
}

// TriangleCount returns the number of whole triangles in the buffer.
//
// Returns:
//   - int: triangle count (vertex count / 3)
func (g GeometryBuffer) TriangleCount() int {
	return g.VertexCount() / 3
}

// groundParallelThreshold is the resolution above which GenerateGround farms
// row generation out to a worker pool. Below it the pool overhead outweighs
// the work.
const groundParallelThreshold = 128

// floatsPerCell is the footprint of one grid cell: two triangles, six
// vertices, three components each.
const floatsPerCell = 18

// GenerateGround produces a subdivided flat grid covering [-size, size]² at
// height y = -1. The square is partitioned into resolution×resolution cells
// of step 2*size/resolution, each cell emitting two triangles with consistent
// winding. Output holds exactly resolution*resolution*6 vertices.
//
// Precondition: resolution >= 1. The generator does not validate its
// parameters; that is the caller's contract.
//
// At high resolutions rows are generated concurrently on a worker pool, each
// band writing a disjoint region of the preallocated buffer, so the result is
// bit-identical to the serial path.
//
// Parameters:
//   - size: half-extent of the square grid
//   - resolution: number of cells along each axis
//
// Returns:
//   - GeometryBuffer: the generated vertex positions
func GenerateGround(size float32, resolution int) GeometryBuffer {
	buf := make(GeometryBuffer, resolution*resolution*floatsPerCell)
	step := (size * 2.0) / float32(resolution)

	workers := runtime.NumCPU() - 1
	if resolution < groundParallelThreshold || workers < 2 {
		generateGroundRows(buf, size, step, resolution, 0, resolution)
		return buf
	}

	// Band the rows across the pool. Keeping the task count well under the
	// queue capacity means SubmitTask never blocks the producer.
	bands := workers * 4
	if bands > resolution {
		bands = resolution
	}
	rowsPerBand := (resolution + bands - 1) / bands

	pool := worker.NewDynamicWorkerPool(workers, bands, time.Second)
	defer pool.Stop()
	var wg sync.WaitGroup
	taskID := 0
	for first := 0; first < resolution; first += rowsPerBand {
		last := first + rowsPerBand
		if last > resolution {
			last = resolution
		}
		wg.Add(1)
		lo, hi := first, last
		pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				generateGroundRows(buf, size, step, resolution, lo, hi)
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
	return buf
}

// generateGroundRows fills the cells for rows [firstRow, lastRow) directly
// into their slots of buf. Cell (i, j) occupies buf[(i*resolution+j)*18:].
// Both triangles of a cell share one winding, with positive signed area in
// the xz plane.
func generateGroundRows(buf GeometryBuffer, size, step float32, resolution, firstRow, lastRow int) {
	const y = -1.0
	for i := firstRow; i < lastRow; i++ {
		x := -size + float32(i)*step
		for j := 0; j < resolution; j++ {
			z := -size + float32(j)*step
			cell := buf[(i*resolution+j)*floatsPerCell:]

			// Triangle 1
			cell[0], cell[1], cell[2] = x, y, z
			cell[3], cell[4], cell[5] = x+step, y, z
			cell[6], cell[7], cell[8] = x, y, z+step

			// Triangle 2
			cell[9], cell[10], cell[11] = x+step, y, z
			cell[12], cell[13], cell[14] = x+step, y, z+step
			cell[15], cell[16], cell[17] = x, y, z+step
		}
	}
}

// cubeFaceNormals are the six axis-aligned face normals of the unit cube, in
// the order faces are emitted.
var cubeFaceNormals = [6]ms3.Vec{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// GenerateCube produces a unit cube (side length 1, centered at the origin)
// with each of its six faces subdivided into resolution×resolution cells of
// two triangles each. Output holds exactly 6*resolution*resolution*6
// vertices, every one lying on the cube's surface (max-abs component 0.5).
//
// Precondition: resolution >= 1.
//
// Parameters:
//   - resolution: number of cells along each face edge
//
// Returns:
//   - GeometryBuffer: the generated vertex positions
func GenerateCube(resolution int) GeometryBuffer {
	buf := make(GeometryBuffer, 0, 6*resolution*resolution*floatsPerCell)
	for _, n := range cubeFaceNormals {
		buf = appendCubeFace(buf, n, resolution)
	}
	return buf
}

// appendCubeFace emits one subdivided face. The tangent frame is derived
// algebraically from the normal: t1 is a component rotation of n, t2 = n×t1,
// so the face is parameterized as p(u,v) = 0.5*n + t1*(u-0.5) + t2*(v-0.5)
// over u,v in [0,1].
func appendCubeFace(buf GeometryBuffer, n ms3.Vec, resolution int) GeometryBuffer {
	t1 := ms3.Vec{X: n.Y, Y: n.Z, Z: n.X}
	t2 := ms3.Cross(n, t1)
	step := 1.0 / float32(resolution)

	corner := func(u, v int) ms3.Vec {
		p := ms3.Scale(0.5, n)
		p = ms3.Add(p, ms3.Scale(float32(u)*step-0.5, t1))
		p = ms3.Add(p, ms3.Scale(float32(v)*step-0.5, t2))
		return p
	}

	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			p1 := corner(i, j)
			p2 := corner(i+1, j)
			p3 := corner(i, j+1)
			p4 := corner(i+1, j+1)

			buf = append(buf,
				p1.X, p1.Y, p1.Z, p2.X, p2.Y, p2.Z, p3.X, p3.Y, p3.Z, // triangle 1
				p2.X, p2.Y, p2.Z, p4.X, p4.Y, p4.Z, p3.X, p3.Y, p3.Z, // triangle 2
			)
		}
	}
	return buf
}
