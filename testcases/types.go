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
	"math"

	"seehuhn.de/go/ribbon"
)

// Case defines a single tessellation scenario. The same corpus drives
// the unit tests and the developer tools.
type Case struct {
	Name   string           // lowercase a-z and _ only
	Spines ribbon.SpineList // input geometry
	Config ribbon.Config    // context configuration
	Width  int              // canvas width in pixels, for the tools
	Height int              // canvas height in pixels, for the tools
}

// pt is a helper to create a Position from x, y coordinates.
func pt(x, y float64) ribbon.Position {
	return ribbon.Position{X: float32(x), Y: float32(y)}
}

// line returns the two end points of a straight segment.
func line(x0, y0, x1, y1 float64) []ribbon.Position {
	return []ribbon.Position{pt(x0, y0), pt(x1, y1)}
}

// polygon returns the corners of a regular n-gon centred at (cx, cy),
// starting at angle rotate measured from the x axis.
func polygon(n int, cx, cy, r, rotate float64) []ribbon.Position {
	pts := make([]ribbon.Position, n)
	for i := range n {
		a := rotate + 2*math.Pi*float64(i)/float64(n)
		pts[i] = pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return pts
}

// star returns the corners of an n-pointed star, alternating between the
// outer and inner radius.
func star(n int, cx, cy, outer, inner float64) []ribbon.Position {
	pts := make([]ribbon.Position, 2*n)
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(n)
		pts[i] = pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return pts
}

// wave samples one period of a sine curve with n points, running from x0
// to x1 around the centre line y = cy.
func wave(n int, x0, x1, cy, amp float64) []ribbon.Position {
	pts := make([]ribbon.Position, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		pts[i] = pt(x0+(x1-x0)*t, cy+amp*math.Sin(2*math.Pi*t))
	}
	return pts
}
