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

import "seehuhn.de/go/ribbon"

var precisionCases = []Case{
	// nearly straight joints, where the miter extent approaches
	// thickness/2 and the bisector direction becomes ill-conditioned
	{
		Name: "near_collinear",
		Spines: ribbon.NewSpineList(false, []ribbon.Position{
			pt(4, 32), pt(32, 32.001), pt(60, 32),
		}),
		Config: ribbon.Config{Thickness: 6},
		Width:  64,
		Height: 64,
	},
	{
		Name: "collinear",
		Spines: ribbon.NewSpineList(false, []ribbon.Position{
			pt(4, 32), pt(32, 32), pt(60, 32),
		}),
		Config: ribbon.Config{Thickness: 6},
		Width:  64,
		Height: 64,
	},

	// a 168° turn; the miter spike extends far beyond the canvas
	{
		Name: "near_reversal",
		Spines: ribbon.NewSpineList(false, []ribbon.Position{
			pt(8, 30), pt(52, 30), pt(10, 39),
		}),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},

	{
		Name:   "hairline",
		Spines: ribbon.NewSpineList(false, wave(16, 4, 60, 32, 20)),
		Config: ribbon.Config{Thickness: 0.1},
		Width:  64,
		Height: 64,
	},

	// segments much shorter than the ribbon is wide
	{
		Name:   "micro_steps",
		Spines: ribbon.NewSpineList(false, wave(200, 4, 60, 32, 20)),
		Config: ribbon.Config{Thickness: 8},
		Width:  64,
		Height: 64,
	},

	// the same wave far from the origin, where float32 spine coordinates
	// are three orders of magnitude coarser
	{
		Name:   "large_offset",
		Spines: ribbon.NewSpineList(false, translate(wave(16, 4, 60, 32, 20), 65536, 65536)),
		Config: ribbon.Config{Thickness: 6},
		Width:  64,
		Height: 64,
	},
}

// translate shifts all points by (dx, dy).
func translate(pts []ribbon.Position, dx, dy float64) []ribbon.Position {
	out := make([]ribbon.Position, len(pts))
	for i, p := range pts {
		out[i] = pt(float64(p.X)+dx, float64(p.Y)+dy)
	}
	return out
}
