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

var closedCases = []Case{
	{
		Name:   "triangle",
		Spines: ribbon.NewSpineList(true, polygon(3, 32, 34, 22, -math.Pi/2)),
		Config: ribbon.Config{Thickness: 6},
		Width:  64,
		Height: 64,
	},
	{
		Name: "square",
		Spines: ribbon.NewSpineList(true,
			[]ribbon.Position{pt(14, 14), pt(50, 14), pt(50, 50), pt(14, 50)}),
		Config: ribbon.Config{Thickness: 8},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hexagon",
		Spines: ribbon.NewSpineList(true, polygon(6, 32, 32, 22, 0)),
		Config: ribbon.Config{Thickness: 6},
		Width:  64,
		Height: 64,
	},
	{
		// dense enough to pass for a circle
		Name:   "ring",
		Spines: ribbon.NewSpineList(true, polygon(48, 32, 32, 24, 0)),
		Config: ribbon.Config{Thickness: 5},
		Width:  64,
		Height: 64,
	},
	{
		// concave joints alternate with convex ones
		Name:   "star",
		Spines: ribbon.NewSpineList(true, star(5, 32, 34, 26, 11)),
		Config: ribbon.Config{Thickness: 3},
		Width:  64,
		Height: 64,
	},
	{
		Name: "pair",
		Spines: ribbon.NewSpineList(true,
			polygon(4, 20, 32, 12, math.Pi/4),
			polygon(4, 44, 32, 12, math.Pi/4)),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
}
