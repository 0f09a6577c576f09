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

package ribbon

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// polyPath builds a polyline path, optionally closed.
func polyPath(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

func TestFlattenLines(t *testing.T) {
	p := polyPath(false, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 10})
	open, closed := FlattenPath(p, 0.1)

	if len(closed.Lengths) != 0 {
		t.Errorf("got %d closed spines, want 0", len(closed.Lengths))
	}
	if len(open.Lengths) != 1 || open.Lengths[0] != 3 {
		t.Fatalf("open.Lengths = %v, want [3]", open.Lengths)
	}
	if open.Closed {
		t.Error("open spine list marked closed")
	}
	want := []Position{{0, 0}, {10, 0}, {10, 10}}
	for i, p := range want {
		if open.Vertices[i] != p {
			t.Errorf("vertex %d = %v, want %v", i, open.Vertices[i], p)
		}
	}
}

func TestFlattenClosed(t *testing.T) {
	// the explicit return to the start must not produce a duplicate point
	p := polyPath(true,
		vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 0, Y: 0})
	open, closed := FlattenPath(p, 0.1)

	if len(open.Lengths) != 0 {
		t.Errorf("got %d open spines, want 0", len(open.Lengths))
	}
	if len(closed.Lengths) != 1 || closed.Lengths[0] != 3 {
		t.Fatalf("closed.Lengths = %v, want [3]", closed.Lengths)
	}
	if !closed.Closed {
		t.Error("closed spine list not marked closed")
	}
}

func TestFlattenMixed(t *testing.T) {
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}})
		yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 0}})
		yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 5}})
		yield(path.CmdClose, nil)
		yield(path.CmdMoveTo, []vec.Vec2{{X: 10, Y: 0}})
		yield(path.CmdLineTo, []vec.Vec2{{X: 20, Y: 0}})
	}
	open, closed := FlattenPath(p, 0.1)

	if len(closed.Lengths) != 1 || closed.Lengths[0] != 3 {
		t.Errorf("closed.Lengths = %v, want [3]", closed.Lengths)
	}
	if len(open.Lengths) != 1 || open.Lengths[0] != 2 {
		t.Errorf("open.Lengths = %v, want [2]", open.Lengths)
	}
}

func TestFlattenQuadratic(t *testing.T) {
	p1 := vec.Vec2{X: 5, Y: 5}
	p2 := vec.Vec2{X: 10, Y: 0}
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}})
		yield(path.CmdQuadTo, []vec.Vec2{p1, p2})
	}
	open, _ := FlattenPath(p, 0.01)

	if len(open.Lengths) != 1 {
		t.Fatalf("got %d spines, want 1", len(open.Lengths))
	}
	n := open.Lengths[0]
	if n < 3 {
		t.Fatalf("curve flattened to %d points", n)
	}

	// every spine point lies on the curve
	for i, q := range open.Vertices {
		s := float64(i) / float64(n-1)
		oms := 1 - s
		wantX := 2*oms*s*p1.X + s*s*p2.X
		wantY := 2 * oms * s * p1.Y
		if !near(q.X, wantX) || !near(q.Y, wantY) {
			t.Errorf("vertex %d = (%g, %g), want (%g, %g)", i, q.X, q.Y, wantX, wantY)
		}
	}
	last := open.Vertices[n-1]
	if last.X != 10 || last.Y != 0 {
		t.Errorf("end point = %v, want exactly (10, 0)", last)
	}
}

func TestFlattenCubic(t *testing.T) {
	p1 := vec.Vec2{X: 0, Y: 10}
	p2 := vec.Vec2{X: 10, Y: -10}
	p3 := vec.Vec2{X: 10, Y: 0}
	cubicAt := func(s float64) (float64, float64) {
		oms := 1 - s
		x := 3*oms*oms*s*p1.X + 3*oms*s*s*p2.X + s*s*s*p3.X
		y := 3*oms*oms*s*p1.Y + 3*oms*s*s*p2.Y + s*s*s*p3.Y
		return x, y
	}
	curve := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}})
		yield(path.CmdCubeTo, []vec.Vec2{p1, p2, p3})
	}

	open, _ := FlattenPath(curve, 0.1)
	if len(open.Lengths) != 1 {
		t.Fatalf("got %d spines, want 1", len(open.Lengths))
	}
	n := open.Lengths[0]
	if n < 3 {
		t.Fatalf("curve flattened to %d points", n)
	}
	for i, q := range open.Vertices {
		wantX, wantY := cubicAt(float64(i) / float64(n-1))
		if !near(q.X, wantX) || !near(q.Y, wantY) {
			t.Errorf("vertex %d = (%g, %g), want (%g, %g)", i, q.X, q.Y, wantX, wantY)
		}
	}

	// a tighter tolerance must give more segments
	finer, _ := FlattenPath(curve, 0.001)
	if finer.Lengths[0] <= n {
		t.Errorf("flatness 0.001 gives %d points, flatness 0.1 gives %d",
			finer.Lengths[0], n)
	}
}

// TestFlattenDegenerate feeds paths which do not contain a usable spine.
func TestFlattenDegenerate(t *testing.T) {
	paths := map[string]path.Path{
		"empty": func(yield func(path.Command, []vec.Vec2) bool) {},
		"bare move": func(yield func(path.Command, []vec.Vec2) bool) {
			yield(path.CmdMoveTo, []vec.Vec2{{X: 5, Y: 5}})
		},
		"move and close": func(yield func(path.Command, []vec.Vec2) bool) {
			yield(path.CmdMoveTo, []vec.Vec2{{X: 5, Y: 5}})
			yield(path.CmdClose, nil)
		},
		"zero-length line": func(yield func(path.Command, []vec.Vec2) bool) {
			yield(path.CmdMoveTo, []vec.Vec2{{X: 5, Y: 5}})
			yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 5}})
		},
		"line before move": func(yield func(path.Command, []vec.Vec2) bool) {
			yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 5}})
		},
	}
	for name, p := range paths {
		open, closed := FlattenPath(p, 0.1)
		if len(open.Lengths) != 0 || len(closed.Lengths) != 0 {
			t.Errorf("%s: got %d open and %d closed spines, want none",
				name, len(open.Lengths), len(closed.Lengths))
		}
	}
}

// TestFlattenDraw runs flattened output through the tessellator, checking
// that the two stages agree on the input contract.
func TestFlattenDraw(t *testing.T) {
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdMoveTo, []vec.Vec2{{X: 10, Y: 10}})
		yield(path.CmdCubeTo, []vec.Vec2{{X: 10, Y: 50}, {X: 50, Y: 50}, {X: 50, Y: 10}})
		yield(path.CmdClose, nil)
		yield(path.CmdMoveTo, []vec.Vec2{{X: 20, Y: 30}})
		yield(path.CmdQuadTo, []vec.Vec2{{X: 30, Y: 40}, {X: 40, Y: 30}})
	}
	open, closed := FlattenPath(p, 0.1)

	ctx := New(Config{Thickness: 2})
	for _, spines := range []SpineList{open, closed} {
		mesh, err := ctx.DrawLines(spines)
		if err != nil {
			t.Fatal(err)
		}
		for i, q := range mesh.Positions {
			x := float64(q.X)
			y := float64(q.Y)
			if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
				t.Fatalf("vertex %d = (%g, %g)", i, x, y)
			}
		}
	}
}
