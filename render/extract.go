//-----------------------------------------------------------------------------
/*

Transvoxel Surface Extraction

Extract a triangle mesh approximating the iso-surface of a density field
over a block, using the Transvoxel algorithm: a marching cubes pass over the
block's regular cells, plus a transition cell layer on each requested face
that stitches the surface to a neighbouring block at double resolution.

*/
//-----------------------------------------------------------------------------

package render

import (
	"fmt"
	"log"
	"math"

	"github.com/deadsy/transvoxel/sdf"
	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

const epsilon = 1e-6

// gradStepDivisor sets the central difference step as a fraction of the
// cell size, small enough to avoid sampling into neighbouring cells.
const gradStepDivisor = 256

//-----------------------------------------------------------------------------

// Extract runs one extraction, emitting vertices and triangles to the sink.
//
// The regular cell pass runs first, over all cells in x-fastest order, then
// a transition pass runs for each requested side in LowX..HighZ order.
// Cells whose corner densities are all inside or all outside the surface
// emit nothing; a cell with a non-finite corner density is skipped.
func Extract(source sdf.Field, block Block, threshold float64, sides TransitionSideSet, sink MeshSink) error {
	if source == nil {
		return fmt.Errorf("density source is nil")
	}
	if sink == nil {
		return fmt.Errorf("mesh sink is nil")
	}
	if block.Subdivisions < 1 {
		return fmt.Errorf("subdivisions must be at least 1")
	}
	if block.Size <= 0 {
		return fmt.Errorf("block size must be positive")
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return fmt.Errorf("threshold must be finite")
	}

	ex := &extractor{
		source:    source,
		block:     block,
		threshold: threshold,
		sides:     sides,
		sink:      sink,
		h:         block.CellSize(),
		cache:     newRegularCache(block.Subdivisions),
	}
	ex.regularPass()
	for _, s := range AllSides {
		if sides.Has(s) {
			ex.transitionPass(s)
		}
	}
	return nil
}

// ExtractMesh runs one extraction into a MeshBuilder and returns the mesh.
func ExtractMesh(source sdf.Field, block Block, threshold float64, sides TransitionSideSet) (*Mesh, error) {
	b := NewMeshBuilder()
	if err := Extract(source, block, threshold, sides, b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

//-----------------------------------------------------------------------------

// extractor holds the state of one extraction.
type extractor struct {
	source    sdf.Field
	block     Block
	threshold float64
	sides     TransitionSideSet
	sink      MeshSink

	h      float64  // cell size
	layer  *layerXY // density layer cache for the regular pass
	layerZ int      // z plane of the cells being processed
	cache  *regularCache

	// Warnings printed to screen.
	nonFiniteWarned bool
}

// latticePoint returns the position of a point given in lattice units,
// with face-adjacent coordinates pulled half a cell inward on transition
// sides. skipAxis exempts one axis from the pull; the transition pass uses
// it for the face axis, whose sample planes it places itself.
func (ex *extractor) latticePoint(fx, fy, fz float64, skipAxis int) v3.Vec {
	n := float64(ex.block.Subdivisions)
	squeeze := func(c float64, axis int) float64 {
		if axis == skipAxis {
			return c
		}
		if c == 0 && ex.sides.Has(TransitionSide(axis<<1)) {
			return 0.5
		}
		if c == n && ex.sides.Has(TransitionSide(axis<<1|1)) {
			return n - 0.5
		}
		return c
	}
	return v3.Vec{
		X: ex.block.Origin.X + squeeze(fx, 0)*ex.h,
		Y: ex.block.Origin.Y + squeeze(fy, 1)*ex.h,
		Z: ex.block.Origin.Z + squeeze(fz, 2)*ex.h,
	}
}

// cornerPoint returns the position of a corner lattice point.
func (ex *extractor) cornerPoint(x, y, z int) v3.Vec {
	return ex.latticePoint(float64(x), float64(y), float64(z), -1)
}

// gradientAt returns the density gradient at a position.
func (ex *extractor) gradientAt(p v3.Vec) v3.Vec {
	return sdf.Gradient(ex.source, p, ex.h/gradStepDivisor)
}

//-----------------------------------------------------------------------------

// emitVertex interpolates a surface vertex along the edge (pa, pb) with
// corner densities (da, db) and corner gradients (ga, gb), and emits it.
// The normal is the interpolated gradient, unit length and flipped to point
// from the inside region to the outside.
func (ex *extractor) emitVertex(pa, pb v3.Vec, da, db float64, ga, gb v3.Vec) int {
	closeToA := math.Abs(ex.threshold-da) < epsilon
	closeToB := math.Abs(ex.threshold-db) < epsilon

	var t float64
	var p v3.Vec
	switch {
	case closeToA && !closeToB:
		t, p = 0, pa
	case closeToB && !closeToA:
		t, p = 1, pb
	case closeToA && closeToB:
		// Pick the half way point.
		t = 0.5
		p = pa.Lerp(pb, t)
	default:
		// linear interpolation
		t = (ex.threshold - da) / (db - da)
		t = math.Min(math.Max(t, 0), 1)
		p = pa.Lerp(pb, t)
	}

	g := ga.Lerp(gb, t)
	l := g.Length()
	normal := v3.Vec{Y: 1}
	if g.IsFinite() && l > 0 {
		normal = g.MulScalar(-1 / l)
	}

	return ex.sink.AddVertex(p, normal)
}

// emitTriangle emits a triangle unless its vertices have collapsed onto a
// shared index after welding.
func (ex *extractor) emitTriangle(a, b, c int) {
	if a == b || b == c || a == c {
		return
	}
	ex.sink.AddTriangle(a, b, c)
}

// warnNonFinite reports the first cell skipped for a non-finite density.
func (ex *extractor) warnNonFinite() {
	if !ex.nonFiniteWarned {
		log.Printf("density source produced a non-finite sample, skipping cell(s)")
		ex.nonFiniteWarned = true
	}
}

//-----------------------------------------------------------------------------
