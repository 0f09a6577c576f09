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

// modeCases run the same geometry through all four u modes. The segment
// lengths are deliberately unequal, so that distance-based and
// index-based modes give different u values.
var modeCases = []Case{
	{
		Name:   "normalized_distance",
		Spines: ribbon.NewSpineList(false, unevenSpine()),
		Config: ribbon.Config{Thickness: 6, UMode: ribbon.UModeNormalizedDistance},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "distance",
		Spines: ribbon.NewSpineList(false, unevenSpine()),
		Config: ribbon.Config{Thickness: 6, UMode: ribbon.UModeDistance},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "segment_index",
		Spines: ribbon.NewSpineList(false, unevenSpine()),
		Config: ribbon.Config{Thickness: 6, UMode: ribbon.UModeSegmentIndex},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "segment_fraction",
		Spines: ribbon.NewSpineList(false, unevenSpine()),
		Config: ribbon.Config{Thickness: 6, UMode: ribbon.UModeSegmentFraction},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "normalized_distance_closed",
		Spines: ribbon.NewSpineList(true, polygon(5, 32, 32, 22, 0)),
		Config: ribbon.Config{Thickness: 6, UMode: ribbon.UModeNormalizedDistance},
		Width:  64,
		Height: 64,
	},
}

func unevenSpine() []ribbon.Position {
	return []ribbon.Position{
		pt(6, 40), pt(14, 40), pt(38, 24), pt(44, 24), pt(58, 38),
	}
}

var wireframeCases = []Case{
	{
		Name: "zigzag",
		Spines: ribbon.NewSpineList(false,
			[]ribbon.Position{
				pt(8, 16), pt(20, 48), pt(32, 16), pt(44, 48), pt(56, 16),
			}),
		Config: ribbon.Config{Thickness: 6, Wireframe: true},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "hexagon",
		Spines: ribbon.NewSpineList(true, polygon(6, 32, 32, 22, 0)),
		Config: ribbon.Config{Thickness: 8, Wireframe: true},
		Width:  64,
		Height: 64,
	},
}
