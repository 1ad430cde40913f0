//-----------------------------------------------------------------------------
/*

Regular Cell Pass

Marching cubes over the block's N x N x N cells. Cells are visited in
x-fastest order so that every vertex reuse reference points at an edge that
has already been resolved. Corner densities come from a two-plane layer
cache; corner positions on transition faces are pulled half a cell inward,
and densities are sampled at the pulled positions, leaving the outer half
cell to the transition layer.

*/
//-----------------------------------------------------------------------------

package render

import (
	"math"
)

//-----------------------------------------------------------------------------

func (ex *extractor) regularPass() {
	n := ex.block.Subdivisions

	ex.layer = newLayerXY(ex)
	// evaluate the corner densities for z = 0
	ex.layer.Evaluate(0)

	for z := 0; z < n; z++ {
		// read the z + 1 plane
		ex.layer.Evaluate(z + 1)
		ex.layerZ = z
		// process all cells between the z and z + 1 planes
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				ex.regularCell(x, y, z)
			}
		}
	}
}

//-----------------------------------------------------------------------------

func (ex *extractor) regularCell(x, y, z int) {
	l := ex.layer

	// corner densities, corner n at cell offset (n&1, n>>1&1, n>>2&1)
	var values [8]float64
	for i := 0; i < 8; i++ {
		values[i] = l.Get(i>>2&1, x+i&1, y+i>>1&1)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			ex.warnNonFinite()
			return
		}
	}

	// which of the 0..255 corner sign patterns do we have?
	code := 0
	for i := 0; i < 8; i++ {
		if values[i] > ex.threshold {
			code |= 1 << i
		}
	}
	if code == 0 || code == 255 {
		return
	}

	// resolve a vertex for each active edge
	cell := &regularCells[code]
	var verts [12]int
	for i, e := range cell.edges {
		spec := edgeSpecs[e]
		// lattice coordinates of the edge's lower corner
		c := spec.c0
		ex0, ey0, ez0 := x+int(c&1), y+int(c>>1&1), z+int(c>>2&1)

		vi := ex.cache.Get(spec.axis, ex0, ey0, ez0)
		if vi < 0 {
			c1 := spec.c1
			pa := ex.cornerPoint(ex0, ey0, ez0)
			pb := ex.cornerPoint(x+int(c1&1), y+int(c1>>1&1), z+int(c1>>2&1))
			ga := l.Gradient(int(c>>2&1), x+int(c&1), y+int(c>>1&1))
			gb := l.Gradient(int(c1>>2&1), x+int(c1&1), y+int(c1>>1&1))
			vi = ex.emitVertex(pa, pb, values[c], values[c1], ga, gb)
			ex.cache.Set(spec.axis, ex0, ey0, ez0, vi)
		}
		verts[i] = vi
	}

	// emit the triangles
	for i := 0; i < len(cell.tris); i += 3 {
		ex.emitTriangle(verts[cell.tris[i]], verts[cell.tris[i+1]], verts[cell.tris[i+2]])
	}
}

//-----------------------------------------------------------------------------
