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

	"seehuhn.de/go/geom/vec"
)

// FieldFunc samples a vector field, returning the field direction at p.
// It is the input to DrawStreamlines.
type FieldFunc func(p vec.Vec2) vec.Vec2

// DrawCubicCurves will tessellate spines whose points are interpreted as
// the control points of a chain of cubic Bézier curves, subdivided
// according to Config.CurveLevelOfDetail.
//
// This is not yet implemented. The call returns ErrNotImplemented and
// leaves the context's mesh unchanged; it never returns the mesh of an
// earlier draw call.
func (c *Context) DrawCubicCurves(spines SpineList) (*Mesh, error) {
	return nil, fmt.Errorf("DrawCubicCurves: %w", ErrNotImplemented)
}

// DrawQuadraticCurves will tessellate spines whose points are interpreted
// as the control points of a chain of quadratic Bézier curves, subdivided
// according to Config.CurveLevelOfDetail.
//
// This is not yet implemented. The call returns ErrNotImplemented and
// leaves the context's mesh unchanged; it never returns the mesh of an
// earlier draw call.
func (c *Context) DrawQuadraticCurves(spines SpineList) (*Mesh, error) {
	return nil, fmt.Errorf("DrawQuadraticCurves: %w", ErrNotImplemented)
}

// DrawStreamlines will trace streamlines through the vector field sampled
// by field and tessellate the traces, seeding them on a grid with
// Config.StreamlineSpacing over Config.StreamlineViewport. frame selects
// the animation frame within a cycle of Config.StreamlineFrames.
//
// This is not yet implemented. The call returns ErrNotImplemented and
// leaves the context's mesh unchanged; it never returns the mesh of an
// earlier draw call.
func (c *Context) DrawStreamlines(field FieldFunc, frame int) (*Mesh, error) {
	return nil, fmt.Errorf("DrawStreamlines: %w", ErrNotImplemented)
}
