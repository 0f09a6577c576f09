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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// zeroLengthThreshold is the minimum distance between consecutive spine
// points. FlattenPath drops points closer than this to their predecessor,
// since coincident points have no segment normal.
const zeroLengthThreshold = 1e-10

// FlattenPath converts a path into tessellation input, approximating
// Bézier curves by polylines with maximum deviation flatness (in path
// units, must be > 0). Open subpaths are collected into open, closed
// subpaths into closed.
//
// Subpaths which contribute fewer than two distinct points are dropped,
// as are points closer than 1e-10 to their predecessor. The start point
// of a closed subpath is not repeated at the end; DrawLines supplies the
// closing segment itself.
func FlattenPath(p path.Path, flatness float64) (open, closed SpineList) {
	f := flattener{flatness: flatness}
	f.closed.Closed = true

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			f.flush(false)
			f.moveTo(pts[0])
		case path.CmdLineTo:
			if !f.inSubpath {
				continue
			}
			f.lineTo(pts[0])
		case path.CmdQuadTo:
			if !f.inSubpath {
				continue
			}
			f.quadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			if !f.inSubpath {
				continue
			}
			f.cubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			f.flush(true)
		}
	}
	f.flush(false)

	return f.open, f.closed
}

// flattener accumulates the points of the current subpath and sorts
// finished subpaths into the open and closed output lists.
type flattener struct {
	flatness  float64
	open      SpineList
	closed    SpineList
	pts       []Position
	current   vec.Vec2 // last accepted point
	start     vec.Vec2 // first point of the current subpath
	inSubpath bool
}

func (f *flattener) moveTo(p vec.Vec2) {
	f.pts = append(f.pts[:0], Position{X: float32(p.X), Y: float32(p.Y)})
	f.current = p
	f.start = p
	f.inSubpath = true
}

func (f *flattener) lineTo(p vec.Vec2) {
	if p.Sub(f.current).Length() < zeroLengthThreshold {
		return
	}
	f.pts = append(f.pts, Position{X: float32(p.X), Y: float32(p.Y)})
	f.current = p
}

// quadTo flattens a quadratic Bézier from the current point. The number
// of segments comes from the error vector e = (P0 - 2 P1 + P2)/4: with n
// segments the maximum deviation from the curve is |e|/n².
func (f *flattener) quadTo(p1, p2 vec.Vec2) {
	p0 := f.current
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if dev := e.Length(); dev > f.flatness {
		n = int(math.Ceil(math.Sqrt(dev / f.flatness)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		f.lineTo(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// cubeTo flattens a cubic Bézier from the current point, with the segment
// count given by Wang's formula.
func (f *flattener) cubeTo(p1, p2, p3 vec.Vec2) {
	p0 := f.current
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * f.flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		f.lineTo(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

// flush finishes the current subpath, appending it to the open or closed
// output list. Subpaths with fewer than two points are discarded. For
// closed subpaths a final point coinciding with the subpath start is
// dropped first, since the closing segment is implicit.
func (f *flattener) flush(close bool) {
	if !f.inSubpath {
		return
	}

	pts := f.pts
	if close && len(pts) > 1 && f.current.Sub(f.start).Length() < zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}

	if len(pts) > 1 {
		dst := &f.open
		if close {
			dst = &f.closed
		}
		dst.Vertices = append(dst.Vertices, pts...)
		dst.Lengths = append(dst.Lengths, len(pts))
	}

	f.pts = f.pts[:0]
	f.inSubpath = false
	if close {
		// drawing after a close continues from the subpath start
		f.current = f.start
	}
}
