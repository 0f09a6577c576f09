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
	"math"

	"seehuhn.de/go/geom/vec"
)

// DrawLines tessellates the spines into ribbons of the configured
// thickness. The returned mesh is a view into the context's buffers and
// stays valid until the next draw call on the same context.
//
// Interior joints are mitered and the miter length is not limited: the
// sharper the joint, the further the miter point moves away from the
// spine, growing without bound as the spine doubles back on itself. An
// exact reversal produces non-finite vertex positions.
func (c *Context) DrawLines(spines SpineList) (*Mesh, error) {
	vertices, triangles, err := meshCounts(spines)
	if err != nil {
		return nil, err
	}

	stride := 3
	if c.config.Wireframe {
		stride = 4
	}
	c.mesh.reset(vertices, triangles, stride)

	vbase := 0
	ibase := 0
	start := 0
	for _, n := range spines.Lengths {
		c.tessellateSpine(spines.Vertices[start:start+n], spines.Closed, vbase, ibase)
		pairs, quads := n, n-1
		if spines.Closed {
			pairs++
			quads++
		}
		vbase += 2 * pairs
		ibase += 2 * quads * stride
		start += n
	}

	return &c.mesh, nil
}

// tessellateSpine emits the vertices, annotations, and triangle indices
// for a single spine, starting at vertex slot vbase and index slot ibase.
//
// Each spine point becomes a pair of boundary vertices straddling the
// spine, so that pair p occupies vertex slots vbase+2p and vbase+2p+1.
// At the two ends of an open spine the pair is offset along the segment
// normal by half the thickness (a butt cap); at interior joints it is
// offset along the bisector of the adjacent segment normals, scaled so
// that the ribbon edges meet in the miter point. Consecutive pairs are
// stitched into two triangles per segment.
//
// A closed spine additionally joins both end points against the implicit
// closing segment and emits one extra pair whose positions are copied,
// not recomputed, from the first pair, so that the seam is exact. The
// closing segment counts towards the spine's arc length.
func (c *Context) tessellateSpine(spine []Position, closed bool, vbase, ibase int) {
	m := &c.mesh
	thickness := c.config.Thickness
	n := len(spine)

	var closingNorm vec.Vec2
	var closingLen float64
	if closed {
		closingNorm, closingLen = segmentNormal(spine[n-1], spine[0])
	}

	// first pair
	norm, segLen := segmentNormal(spine[0], spine[1])
	var off vec.Vec2
	if closed {
		off = miterOffset(closingNorm, norm, thickness)
	} else {
		off = norm.Mul(thickness / 2)
	}
	firstOff := off
	m.writePair(vbase, spine[0], off, 0)

	prevNorm := norm
	arc := segLen // arc length from the spine start to the current point

	// interior joints
	slot := vbase + 2
	idx := ibase
	for i := 1; i < n-1; i++ {
		norm, segLen = segmentNormal(spine[i], spine[i+1])
		off = miterOffset(prevNorm, norm, thickness)
		m.writePair(slot, spine[i], off, arc)
		idx = m.writeQuad(idx, uint32(slot-2))
		slot += 2
		arc += segLen
		prevNorm = norm
	}

	// last pair
	if closed {
		off = miterOffset(prevNorm, closingNorm, thickness)
	} else {
		off = prevNorm.Mul(thickness / 2)
	}
	m.writePair(slot, spine[n-1], off, arc)
	idx = m.writeQuad(idx, uint32(slot-2))
	slot += 2

	total := arc
	pairs := n
	if closed {
		total += closingLen
		m.writePair(slot, spine[0], firstOff, total)
		m.Positions[slot] = m.Positions[vbase]
		m.Positions[slot+1] = m.Positions[vbase+1]
		m.writeQuad(idx, uint32(slot-2))
		pairs++
	}

	c.finishSpine(vbase, pairs, n, total)
}

// segmentNormal returns the unit normal of the segment from a to b (the
// segment direction rotated 90° counter-clockwise) together with the
// segment length. For coincident points both results degenerate to
// non-finite values.
func segmentNormal(a, b Position) (vec.Vec2, float64) {
	d := vec.Vec2{
		X: float64(b.X) - float64(a.X),
		Y: float64(b.Y) - float64(a.Y),
	}
	length := d.Length()
	return vec.Vec2{X: -d.Y / length, Y: d.X / length}, length
}

// miterOffset returns the offset from a spine joint to the mesh vertex on
// its +1 side. n1 and n2 are the unit normals of the segments meeting at
// the joint. The offset points along their bisector; for a turn by angle
// θ the two ribbon edges meet at distance thickness/(2·cos(θ/2)) from the
// joint, with cos(θ/2) = sqrt((1 + cosθ)/2).
func miterOffset(n1, n2 vec.Vec2, thickness float64) vec.Vec2 {
	cosTheta := n1.Dot(n2)
	sinHalf := math.Sqrt((1 + cosTheta) / 2)
	extent := thickness / 2 / sinHalf

	bisector := n1.Add(n2)
	return bisector.Mul(extent / bisector.Length())
}

// writePair writes the two boundary vertices straddling spine point p
// into vertex slots slot and slot+1. off is the offset to the +1 side,
// u the provisional along-curve coordinate (arc length at p).
func (m *Mesh) writePair(slot int, p Position, off vec.Vec2, u float64) {
	ex := float32(off.X)
	ey := float32(off.Y)
	m.Positions[slot] = Position{X: p.X + ex, Y: p.Y + ey}
	m.Positions[slot+1] = Position{X: p.X - ex, Y: p.Y - ey}
	m.Annotations[slot] = Annotation{
		UAlongCurve:  float32(u),
		VAcrossCurve: 1,
		SpineToEdgeX: ex,
		SpineToEdgeY: ey,
	}
	m.Annotations[slot+1] = Annotation{
		UAlongCurve:  float32(u),
		VAcrossCurve: -1,
		SpineToEdgeX: -ex,
		SpineToEdgeY: -ey,
	}
}

// writeQuad writes the two triangles connecting the vertex pair starting
// at a0 to the pair which follows it, beginning at index slot idx. It
// returns the next free index slot. In wireframe mode each triangle is
// written as a 4-tuple which repeats its first vertex at the end.
func (m *Mesh) writeQuad(idx int, a0 uint32) int {
	a1 := a0 + 1
	b0 := a0 + 2
	b1 := a0 + 3
	if m.indexStride == 4 {
		m.Indices[idx+0] = a0
		m.Indices[idx+1] = a1
		m.Indices[idx+2] = b0
		m.Indices[idx+3] = a0

		m.Indices[idx+4] = b0
		m.Indices[idx+5] = a1
		m.Indices[idx+6] = b1
		m.Indices[idx+7] = b0
		return idx + 8
	}
	m.Indices[idx+0] = a0
	m.Indices[idx+1] = a1
	m.Indices[idx+2] = b0

	m.Indices[idx+3] = b0
	m.Indices[idx+4] = a1
	m.Indices[idx+5] = b1
	return idx + 6
}

// finishSpine fills the per-vertex spine lengths and rewrites the
// provisional u values according to the configured UMode. pairs is the
// number of vertex pairs emitted for the spine, including the seam pair
// of a closed spine; count is the number of spine points and total the
// spine's arc length.
func (c *Context) finishSpine(vbase, pairs, count int, total float64) {
	m := &c.mesh

	length := float32(total)
	for i := range 2 * pairs {
		m.Lengths[vbase+i] = length
	}

	switch c.config.UMode {
	case UModeDistance:
		// u is already the raw arc length

	case UModeNormalizedDistance:
		inv := float32(1 / total)
		for i := range 2 * pairs {
			m.Annotations[vbase+i].UAlongCurve *= inv
		}

	case UModeSegmentIndex:
		for pair := range pairs {
			u := float32(pair)
			slot := vbase + 2*pair
			m.Annotations[slot].UAlongCurve = u
			m.Annotations[slot+1].UAlongCurve = u
		}

	case UModeSegmentFraction:
		// The division is exact where i/count is, so that for example the
		// quarter points of a 12-point spine get u = 0.25, 0.5, 0.75.
		for pair := range pairs {
			u := float32(pair) / float32(count)
			slot := vbase + 2*pair
			m.Annotations[slot].UAlongCurve = u
			m.Annotations[slot+1].UAlongCurve = u
		}
	}
}
