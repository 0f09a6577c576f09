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

// Command genpdf renders the tessellation of every test case into a PDF
// for visual inspection: the mesh triangles in gray, with the input spine
// drawn on top. Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/ribbon"
	"seehuhn.de/go/ribbon/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.Case, pdfPath string) error {
	ctx := ribbon.New(tc.Config)
	defer ctx.Close()

	mesh, err := ctx.DrawLines(tc.Spines)
	if err != nil {
		return err
	}

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; the test cases use top-left raster
	// coordinates. Flip the y axis.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// In wireframe mode every fourth index repeats the first vertex of
	// the triangle, so using the first three indices works for both
	// layouts.
	addTriangles := func() {
		stride := mesh.IndicesPerTriangle()
		for t := range mesh.NumTriangles() {
			i := t * stride
			a := mesh.Positions[mesh.Indices[i]]
			b := mesh.Positions[mesh.Indices[i+1]]
			c := mesh.Positions[mesh.Indices[i+2]]
			page.MoveTo(float64(a.X), float64(a.Y))
			page.LineTo(float64(b.X), float64(b.Y))
			page.LineTo(float64(c.X), float64(c.Y))
			page.ClosePath()
		}
	}

	// the ribbon area
	page.SetFillColor(color.DeviceGray(0.85))
	addTriangles()
	page.Fill()

	// triangle edges on top, to make the mesh structure visible
	page.SetStrokeColor(color.DeviceGray(0.4))
	page.SetLineWidth(0.4)
	addTriangles()
	page.Stroke()

	// the input spine
	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(0.8)
	start := 0
	for _, n := range tc.Spines.Lengths {
		pts := tc.Spines.Vertices[start : start+n]
		page.MoveTo(float64(pts[0].X), float64(pts[0].Y))
		for _, p := range pts[1:] {
			page.LineTo(float64(p.X), float64(p.Y))
		}
		if tc.Spines.Closed {
			page.ClosePath()
		}
		start += n
	}
	page.Stroke()

	return page.Close()
}
