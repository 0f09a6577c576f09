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

// largeCases contains batches with many spines and spines with many
// points, to exercise the per-spine vertex and index bookkeeping.
var largeCases = []Case{
	// many short spines in one draw call
	{
		Name:   "hatching",
		Spines: hatching(24, 8, 120, 4),
		Config: ribbon.Config{Thickness: 2},
		Width:  128,
		Height: 128,
	},

	// one spine with many points
	{
		Name:   "long_wave",
		Spines: ribbon.NewSpineList(false, wave(1000, 8, 248, 32, 24)),
		Config: ribbon.Config{Thickness: 3},
		Width:  256,
		Height: 64,
	},

	// a dense closed ring
	{
		Name:   "dense_ring",
		Spines: ribbon.NewSpineList(true, polygon(360, 64, 64, 50, 0)),
		Config: ribbon.Config{Thickness: 4},
		Width:  128,
		Height: 128,
	},

	// several closed rings of different sizes in one batch
	{
		Name: "ring_grid",
		Spines: ribbon.NewSpineList(true,
			polygon(12, 32, 32, 20, 0),
			polygon(24, 96, 32, 20, 0),
			polygon(48, 32, 96, 20, 0),
			polygon(96, 96, 96, 20, 0)),
		Config: ribbon.Config{Thickness: 3},
		Width:  128,
		Height: 128,
	},
}

// hatching builds n parallel horizontal lines from x0 to x1, starting at
// y = spacing and continuing downwards at the given spacing.
func hatching(n int, x0, x1, spacing float64) ribbon.SpineList {
	spines := make([][]ribbon.Position, n)
	for i := range n {
		y := spacing * float64(i+1)
		spines[i] = line(x0, y, x1, y)
	}
	return ribbon.NewSpineList(false, spines...)
}
