// seehuhn.de/go/ribbon - triangle meshes for wide lines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ribbon

import (
	"fmt"
	"slices"
	"unsafe"
)

// Position is a point in the plane, in single precision so that mesh
// buffers can be uploaded to the GPU without conversion.
type Position struct {
	X, Y float32
}

// Annotation carries the per-vertex shader inputs generated alongside
// each mesh position.
type Annotation struct {
	// UAlongCurve varies along the spine according to the context's
	// UMode.
	UAlongCurve float32

	// VAcrossCurve is +1 on one edge of the ribbon and -1 on the other.
	VAcrossCurve float32

	// SpineToEdgeX and SpineToEdgeY form the vector from the spine point
	// to the mesh vertex. A fragment shader can use it to reconstruct
	// the distance to the ribbon edge.
	SpineToEdgeX float32
	SpineToEdgeY float32
}

// Byte sizes of the vertex attribute structs, for computing GPU buffer
// layouts.
const (
	PositionSize   = 8
	AnnotationSize = 16
)

// Compile-time checks that the attribute structs are packed.
var (
	_ [PositionSize]byte   = [unsafe.Sizeof(Position{})]byte{}
	_ [AnnotationSize]byte = [unsafe.Sizeof(Annotation{})]byte{}
)

// Mesh is the result of a draw call. The slices are views into buffers
// owned by the Context; they stay valid until the next draw call on the
// same context, or until Close. Callers who need the data longer must
// copy it.
type Mesh struct {
	// Positions holds the mesh vertices. Boundary vertices come in
	// pairs: even indices lie on the +1 side of the spine, odd indices
	// on the -1 side.
	Positions []Position

	// Annotations holds one entry per position.
	Annotations []Annotation

	// Lengths holds, for every vertex, the total arc length of the
	// spine the vertex was generated from.
	Lengths []float32

	// Indices is the triangle index buffer, with IndicesPerTriangle
	// entries per triangle.
	Indices []uint32

	indexStride int // 3, or 4 in wireframe mode
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.Positions)
}

// NumTriangles returns the number of triangles in the index buffer.
func (m *Mesh) NumTriangles() int {
	if m.indexStride == 0 {
		return 0
	}
	return len(m.Indices) / m.indexStride
}

// IndicesPerTriangle returns the number of index entries per triangle:
// 3, or 4 in wireframe mode where each triangle closes back on its first
// vertex.
func (m *Mesh) IndicesPerTriangle() int {
	return m.indexStride
}

// meshCounts returns the exact numbers of vertices and triangles a draw
// call will emit for the given spines: each spine of n points yields 2n
// vertices and 2(n-1) triangles, plus one vertex pair and two triangles
// for the seam of a closed spine. It runs before any buffer is touched,
// so a contract violation leaves the previous mesh intact.
func meshCounts(spines SpineList) (vertices, triangles int, err error) {
	total := 0
	for i, n := range spines.Lengths {
		if n <= 1 {
			return 0, 0, fmt.Errorf("%w: spine %d has %d points", ErrInvalidSpine, i, n)
		}
		total += n
		vertices += 2 * n
		triangles += 2 * (n - 1)
		if spines.Closed {
			vertices += 2
			triangles += 2
		}
	}
	if total != len(spines.Vertices) {
		return 0, 0, fmt.Errorf("%w: spine lengths sum to %d, but %d vertices are given",
			ErrInvalidSpine, total, len(spines.Vertices))
	}
	return vertices, triangles, nil
}

// reset prepares the mesh for a new draw call, bulk-reserving the exact
// final sizes while reusing existing capacity.
func (m *Mesh) reset(vertices, triangles, indexStride int) {
	m.Positions = slices.Grow(m.Positions[:0], vertices)[:vertices]
	m.Annotations = slices.Grow(m.Annotations[:0], vertices)[:vertices]
	m.Lengths = slices.Grow(m.Lengths[:0], vertices)[:vertices]
	numIndices := triangles * indexStride
	m.Indices = slices.Grow(m.Indices[:0], numIndices)[:numIndices]
	m.indexStride = indexStride
}
