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

var lineCases = []Case{
	{
		Name:   "segment",
		Spines: ribbon.NewSpineList(false, line(10, 32, 54, 32)),
		Config: ribbon.Config{Thickness: 8},
		Width:  64,
		Height: 64,
	},
	{
		Name: "elbow",
		Spines: ribbon.NewSpineList(false,
			[]ribbon.Position{pt(10, 44), pt(32, 20), pt(54, 44)}),
		Config: ribbon.Config{Thickness: 6},
		Width:  64,
		Height: 64,
	},
	{
		Name: "right_angle",
		Spines: ribbon.NewSpineList(false,
			[]ribbon.Position{pt(12, 12), pt(52, 12), pt(52, 52)}),
		Config: ribbon.Config{Thickness: 8},
		Width:  64,
		Height: 64,
	},
	{
		Name: "zigzag",
		Spines: ribbon.NewSpineList(false,
			[]ribbon.Position{
				pt(8, 16), pt(20, 48), pt(32, 16), pt(44, 48), pt(56, 16),
			}),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "wave",
		Spines: ribbon.NewSpineList(false, wave(24, 6, 58, 32, 14)),
		Config: ribbon.Config{Thickness: 5},
		Width:  64,
		Height: 64,
	},
	{
		// the miter at the 150° turn extends well beyond the thickness
		Name: "sharp_turn",
		Spines: ribbon.NewSpineList(false,
			[]ribbon.Position{pt(8, 28), pt(48, 28), pt(12, 40)}),
		Config: ribbon.Config{Thickness: 4},
		Width:  64,
		Height: 64,
	},
	{
		Name: "two_spines",
		Spines: ribbon.NewSpineList(false,
			[]ribbon.Position{pt(8, 16), pt(56, 16)},
			[]ribbon.Position{pt(8, 40), pt(32, 52), pt(56, 40)}),
		Config: ribbon.Config{Thickness: 6},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "thick",
		Spines: ribbon.NewSpineList(false, wave(16, 10, 54, 32, 10)),
		Config: ribbon.Config{Thickness: 16},
		Width:  64,
		Height: 64,
	},
}
