// Command export writes the test cases together with their tessellated
// meshes to JSON, for inspection and for comparison with other
// implementations. Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/ribbon"
	"seehuhn.de/go/ribbon/testcases"
)

func main() {
	var out struct {
		Cases []jsonCase `json:"cases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.Cases = append(out.Cases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/meshes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonCase struct {
	Name      string      `json:"name"`
	Thickness float64     `json:"thickness"`
	UMode     string      `json:"u_mode"`
	Wireframe bool        `json:"wireframe,omitempty"`
	Closed    bool        `json:"closed,omitempty"`
	Spines    [][]float32 `json:"spines"`
	Mesh      jsonMesh    `json:"mesh"`
}

type jsonMesh struct {
	// Positions rows are [x, y], Annotations rows are
	// [u_along_curve, v_across_curve, spine_to_edge_x, spine_to_edge_y].
	Positions          [][]float32 `json:"positions"`
	Annotations        [][]float32 `json:"annotations"`
	Lengths            []float32   `json:"lengths"`
	Indices            []uint32    `json:"indices"`
	IndicesPerTriangle int         `json:"indices_per_triangle"`
}

func toJSON(category string, tc testcases.Case) jsonCase {
	jc := jsonCase{
		Name:      category + "_" + tc.Name,
		Thickness: tc.Config.Thickness,
		UMode:     tc.Config.UMode.String(),
		Wireframe: tc.Config.Wireframe,
		Closed:    tc.Spines.Closed,
	}

	start := 0
	for _, n := range tc.Spines.Lengths {
		spine := make([]float32, 0, 2*n)
		for _, p := range tc.Spines.Vertices[start : start+n] {
			spine = append(spine, p.X, p.Y)
		}
		jc.Spines = append(jc.Spines, spine)
		start += n
	}

	ctx := ribbon.New(tc.Config)
	defer ctx.Close()
	mesh, err := ctx.DrawLines(tc.Spines)
	if err != nil {
		panic(err)
	}

	jm := &jc.Mesh
	jm.Positions = make([][]float32, mesh.NumVertices())
	jm.Annotations = make([][]float32, mesh.NumVertices())
	for i, p := range mesh.Positions {
		a := mesh.Annotations[i]
		jm.Positions[i] = []float32{p.X, p.Y}
		jm.Annotations[i] = []float32{
			a.UAlongCurve, a.VAcrossCurve, a.SpineToEdgeX, a.SpineToEdgeY,
		}
	}
	jm.Lengths = slices.Clone(mesh.Lengths)
	jm.Indices = slices.Clone(mesh.Indices)
	jm.IndicesPerTriangle = mesh.IndicesPerTriangle()

	return jc
}
