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

package ribbon_test

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/ribbon"
)

// rasterizeMesh fills the mesh triangles into an alpha image, the way a
// renderer would consume the tessellation output.
func rasterizeMesh(mesh *ribbon.Mesh, width, height int) *image.Alpha {
	r := vector.NewRasterizer(width, height)
	for tri := range mesh.NumTriangles() {
		base := 3 * tri
		a := mesh.Positions[mesh.Indices[base]]
		b := mesh.Positions[mesh.Indices[base+1]]
		c := mesh.Positions[mesh.Indices[base+2]]
		r.MoveTo(a.X, a.Y)
		r.LineTo(b.X, b.Y)
		r.LineTo(c.X, c.Y)
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	src := image.NewUniform(color.Alpha{255})
	r.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}

// checkCoverage compares the rasterized mesh against a predicate giving
// the expected coverage for each pixel. Pixels inside the ribbon must be
// (nearly) opaque; pixels outside must be fully transparent. All test
// geometry is axis-aligned with integer coordinates, so there are no
// partially covered pixels. Along the diagonal seams between triangles
// the two coverage contributions can lose one count to rounding.
func checkCoverage(t *testing.T, img *image.Alpha, inside func(x, y int) bool) {
	t.Helper()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			alpha := img.Pix[(y-bounds.Min.Y)*img.Stride+(x-bounds.Min.X)]
			if inside(x, y) {
				if alpha < 254 {
					t.Errorf("pixel (%d, %d): alpha = %d, want opaque", x, y, alpha)
				}
			} else if alpha != 0 {
				t.Errorf("pixel (%d, %d): alpha = %d, want 0", x, y, alpha)
			}
		}
	}
}

// TestRibbonCoverage rasterizes the mesh of a horizontal line and checks
// that it covers exactly the expected rectangle.
func TestRibbonCoverage(t *testing.T) {
	ctx := ribbon.New(ribbon.Config{Thickness: 8})
	spines := ribbon.NewSpineList(false, []ribbon.Position{{4, 8}, {28, 8}})
	mesh, err := ctx.DrawLines(spines)
	if err != nil {
		t.Fatal(err)
	}

	img := rasterizeMesh(mesh, 32, 16)
	checkCoverage(t, img, func(x, y int) bool {
		return x >= 4 && x < 28 && y >= 4 && y < 12
	})
}

// TestClosedRibbonCoverage rasterizes the mesh of a closed square spine.
// The result must be a square frame: the miters turn the four corners
// into sharp outer corners, and the hole in the middle stays empty.
func TestClosedRibbonCoverage(t *testing.T) {
	ctx := ribbon.New(ribbon.Config{Thickness: 4})
	spines := ribbon.NewSpineList(true, []ribbon.Position{
		{8, 8}, {24, 8}, {24, 24}, {8, 24},
	})
	mesh, err := ctx.DrawLines(spines)
	if err != nil {
		t.Fatal(err)
	}

	img := rasterizeMesh(mesh, 32, 32)
	checkCoverage(t, img, func(x, y int) bool {
		outer := x >= 6 && x < 26 && y >= 6 && y < 26
		hole := x >= 10 && x < 22 && y >= 10 && y < 22
		return outer && !hole
	})
}
