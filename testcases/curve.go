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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ribbon"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// curveFlatness is the maximum deviation used when flattening the curve
// cases, in canvas units.
const curveFlatness = 0.2

// curveCases drive Bézier paths through FlattenPath before tessellation,
// covering the interaction of the two stages.
var curveCases = []Case{
	{
		Name:   "quadratic",
		Spines: flattenedOpen(quadraticPath(10, 50, 32, 10, 54, 50)),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quadratic_shallow",
		Spines: flattenedOpen(quadraticPath(10, 32, 32, 28, 54, 32)),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		// the control point coincides with the start point, so the
		// "curve" is a straight segment with quadratic parametrisation
		Name:   "quadratic_degenerate",
		Spines: flattenedOpen(quadraticPath(10, 32, 10, 32, 54, 32)),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic",
		Spines: flattenedOpen(cubicPath(10, 50, 20, 10, 44, 10, 54, 50)),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "cubic_scurve",
		Spines: flattenedOpen(cubicPath(10, 50, 10, 10, 54, 54, 54, 14)),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		// the cusp makes the flattened spine double back on itself, so
		// the miter spike shoots far beyond the canvas
		Name:   "cubic_cusp",
		Spines: flattenedOpen(cubicPath(10, 50, 54, 10, 10, 10, 54, 50)),
		Config: ribbon.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "arc",
		Spines: flattenedOpen(arcPath(32, 32, 25, 3)),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "circle",
		Spines: flattenedClosed(circlePath(32, 32, 25)),
		Config: ribbon.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "ellipse",
		Spines: flattenedClosed(ellipsePath(32, 32, 28, 14)),
		Config: ribbon.Config{Thickness: 2.5},
		Width:  64,
		Height: 64,
	},
	{
		Name: "two_subpaths",
		Spines: flattenedOpen(func(yield func(path.Command, []vec.Vec2) bool) {
			if !yield(path.CmdMoveTo, []vec.Vec2{{X: 8, Y: 24}}) {
				return
			}
			if !yield(path.CmdQuadTo, []vec.Vec2{{X: 32, Y: 4}, {X: 56, Y: 24}}) {
				return
			}
			if !yield(path.CmdMoveTo, []vec.Vec2{{X: 8, Y: 44}}) {
				return
			}
			yield(path.CmdQuadTo, []vec.Vec2{{X: 32, Y: 64}, {X: 56, Y: 44}})
		}),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
}

// flattenedOpen flattens a path and returns its open subpaths.
func flattenedOpen(p path.Path) ribbon.SpineList {
	open, _ := ribbon.FlattenPath(p, curveFlatness)
	return open
}

// flattenedClosed flattens a path and returns its closed subpaths.
func flattenedClosed(p path.Path) ribbon.SpineList {
	_, closed := ribbon.FlattenPath(p, curveFlatness)
	return closed
}

// quadraticPath builds an open path with a single quadratic Bezier curve.
func quadraticPath(x1, y1, cx, cy, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		yield(path.CmdQuadTo, []vec.Vec2{{X: cx, Y: cy}, {X: x2, Y: y2}})
	}
}

// cubicPath builds an open path with a single cubic Bezier curve.
func cubicPath(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: x1, Y: y1}}) {
			return
		}
		yield(path.CmdCubeTo, []vec.Vec2{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x2, Y: y2}})
	}
}

// quadrants holds the four quarter circles of the unit circle, as offsets
// relative to the centre, starting at the right and going over the top.
var quadrants = [4][3]vec.Vec2{
	{{X: 1, Y: -kappa}, {X: kappa, Y: -1}, {X: 0, Y: -1}},
	{{X: -kappa, Y: -1}, {X: -1, Y: -kappa}, {X: -1, Y: 0}},
	{{X: -1, Y: kappa}, {X: -kappa, Y: 1}, {X: 0, Y: 1}},
	{{X: kappa, Y: 1}, {X: 1, Y: kappa}, {X: 1, Y: 0}},
}

// yieldArc emits the first n quadrants of an ellipse, starting at the
// right. It reports whether the consumer wants more commands. A
// stack-allocated buffer is reused for each yield.
func yieldArc(yield func(path.Command, []vec.Vec2) bool, cx, cy, rx, ry float64, n int) bool {
	if !yield(path.CmdMoveTo, []vec.Vec2{{X: cx + rx, Y: cy}}) {
		return false
	}
	var buf [3]vec.Vec2
	for _, q := range quadrants[:n] {
		for i, d := range q {
			buf[i] = vec.Vec2{X: cx + rx*d.X, Y: cy + ry*d.Y}
		}
		if !yield(path.CmdCubeTo, buf[:]) {
			return false
		}
	}
	return true
}

// arcPath builds an open path following the first n quadrants of a
// circle, starting at the right.
func arcPath(cx, cy, r float64, n int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		yieldArc(yield, cx, cy, r, r, n)
	}
}

// circlePath builds a closed path approximating a circle with four cubic
// Bezier curves.
func circlePath(cx, cy, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if yieldArc(yield, cx, cy, r, r, 4) {
			yield(path.CmdClose, nil)
		}
	}
}

// ellipsePath builds a closed path approximating an axis-aligned ellipse
// with four cubic Bezier curves.
func ellipsePath(cx, cy, rx, ry float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if yieldArc(yield, cx, cy, rx, ry, 4) {
			yield(path.CmdClose, nil)
		}
	}
}
