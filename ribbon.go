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

// Package ribbon builds triangle meshes for wide lines.
//
// A Context turns polylines ("spines") into ribbons of configurable
// thickness: two boundary vertices per spine point, mitered at interior
// joints, stitched into triangle strips. Every vertex carries annotations
// (position along the spine, side of the spine, offset vector) for use in
// vertex and fragment shaders.
package ribbon

//go:generate go run ./testcases/export

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

var (
	// ErrInvalidSpine indicates a SpineList which violates the input
	// contract: a spine with fewer than two points, or spine lengths
	// which do not sum to the number of vertices.
	ErrInvalidSpine = errors.New("invalid spine list")

	// ErrNotImplemented is returned by operations which are part of the
	// API but not yet functional.
	ErrNotImplemented = errors.New("not implemented")
)

// UMode selects how the UAlongCurve annotation is derived from the
// position of a vertex on its spine.
type UMode int

const (
	// UModeNormalizedDistance scales arc length so that u runs from 0 to 1
	// over each spine. This is the default.
	UModeNormalizedDistance UMode = iota

	// UModeDistance uses raw arc length in spine units.
	UModeDistance

	// UModeSegmentIndex uses the index of the spine point, ignoring
	// segment lengths.
	UModeSegmentIndex

	// UModeSegmentFraction uses the index of the spine point divided by
	// the number of points in the spine.
	UModeSegmentFraction
)

// String returns the name of the mode as a lowercase identifier.
func (mode UMode) String() string {
	switch mode {
	case UModeNormalizedDistance:
		return "normalized_distance"
	case UModeDistance:
		return "distance"
	case UModeSegmentIndex:
		return "segment_index"
	case UModeSegmentFraction:
		return "segment_fraction"
	default:
		return fmt.Sprintf("UMode(%d)", int(mode))
	}
}

// Config holds the tessellation parameters of a Context. New copies the
// Config; changing the original value afterwards has no effect.
type Config struct {
	// Thickness is the width of the generated ribbons, measured across
	// the spine. Must be > 0 for meaningful output.
	Thickness float64

	// Wireframe selects 4-tuple index output, where each triangle closes
	// back on its first vertex, for rendering triangle outlines as line
	// strips.
	Wireframe bool

	// UMode selects how the UAlongCurve annotation is computed.
	UMode UMode

	// The remaining fields configure operations which are not yet
	// implemented. They are stored for forward compatibility but
	// currently have no effect.

	// CurveLevelOfDetail is the subdivision level for Bézier spines,
	// used by DrawCubicCurves and DrawQuadraticCurves.
	CurveLevelOfDetail int

	// StreamlineSpacing is the distance between streamline seed points,
	// used by DrawStreamlines.
	StreamlineSpacing float64

	// StreamlineViewport is the region seeded with streamlines, used by
	// DrawStreamlines.
	StreamlineViewport rect.Rect

	// StreamlineFrames is the cycle length for animated streamlines,
	// used by DrawStreamlines.
	StreamlineFrames int
}

// Context converts spines into triangle meshes. The caller creates one
// instance and reuses it for multiple draw calls; the mesh buffers grow as
// needed but never shrink, achieving zero allocations in steady state.
//
// A Context is not safe for concurrent use. Independent contexts can be
// used from different goroutines.
type Context struct {
	config Config
	mesh   Mesh
}

// New creates a new Context with the given configuration.
func New(config Config) *Context {
	return &Context{config: config}
}

// Config returns the configuration the context was created with.
func (c *Context) Config() Config {
	return c.config
}

// Close releases the mesh buffers owned by the context. Mesh views
// returned by earlier draw calls become invalid, and the context must not
// be used afterwards.
func (c *Context) Close() {
	c.mesh = Mesh{}
}
