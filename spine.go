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

// SpineList is a batch of polylines sharing one vertex buffer.
//
// Vertices holds the points of all spines back to back, and Lengths gives
// the number of points in each spine: spine 0 occupies the first
// Lengths[0] entries of Vertices, spine 1 the next Lengths[1] entries,
// and so on. Every spine needs at least two points, and the lengths must
// sum to len(Vertices); draw calls reject lists violating this.
//
// Beyond these checks the points are used as given. In particular,
// coincident consecutive points have no segment direction and lead to
// non-finite mesh vertices.
//
// The buffers are owned by the caller; draw calls only read them.
type SpineList struct {
	Vertices []Position
	Lengths  []int

	// Closed marks every spine in the list as a closed loop. An implicit
	// closing segment connects the last point of each spine back to its
	// first point; the first point is not repeated in Vertices.
	Closed bool
}

// NewSpineList builds a SpineList from individual point runs, copying the
// points into freshly allocated buffers.
func NewSpineList(closed bool, spines ...[]Position) SpineList {
	list := SpineList{Closed: closed}
	for _, pts := range spines {
		list.Vertices = append(list.Vertices, pts...)
		list.Lengths = append(list.Lengths, len(pts))
	}
	return list
}
