//-----------------------------------------------------------------------------
/*

Transition Cell Pass

Each requested face carries a thin layer of transition cells between the
true face plane and the pulled-in back plane of the interior cells. A
transition cell covers one interior cell's footprint on the face and
samples 13 points: a 3x3 grid on the face plane at the neighbouring block's
double resolution, plus the 4 back plane points that coincide with the
interior cell's pulled-in corners.

The nine face plane samples select one of 512 cases; the case's class in
the transition tables dictates which cell edges carry vertices and how they
are triangulated. Vertices on face plane edges are shared with neighbouring
transition cells through the face's vertex cache. Vertices on back plane
edges are never recomputed: a back plane edge is an interior lattice edge,
so the vertex is read from the regular vertex cache, which makes the weld
bit-exact in both position and normal.

*/
//-----------------------------------------------------------------------------

package render

import (
	"math"

	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

// faceFrame maps a face's local (u, v, w) axes to global axes. w points
// from the face into the block; u and v are chosen so that the local frame
// is right handed, keeping the emitted winding outward.
type faceFrame struct {
	axis int // global axis of w
	u, v int // global axes of the face tangents
	high bool
}

var faceFrames = [6]faceFrame{
	LowX:  {axis: 0, u: 1, v: 2, high: false},
	HighX: {axis: 0, u: 2, v: 1, high: true},
	LowY:  {axis: 1, u: 2, v: 0, high: false},
	HighY: {axis: 1, u: 0, v: 2, high: true},
	LowZ:  {axis: 2, u: 0, v: 1, high: false},
	HighZ: {axis: 2, u: 1, v: 0, high: true},
}

//-----------------------------------------------------------------------------

// samplePoint returns the position of transition cell sample i for the
// cell at face coordinates (cu, cv). Samples 0-8 lie on the face plane,
// samples 9-12 on the pulled-in back plane.
func (ex *extractor) samplePoint(f faceFrame, cu, cv, i int) v3.Vec {
	n := float64(ex.block.Subdivisions)
	var du, dv, w float64
	if i < 9 {
		du, dv = float64(i%3)/2, float64(i/3)/2
		if f.high {
			w = n
		}
	} else {
		j := i - 9
		du, dv = float64(j%2), float64(j/2)
		if f.high {
			w = n - 0.5
		} else {
			w = 0.5
		}
	}
	var c [3]float64
	c[f.axis] = w
	c[f.u] = float64(cu) + du
	c[f.v] = float64(cv) + dv
	return ex.latticePoint(c[0], c[1], c[2], f.axis)
}

//-----------------------------------------------------------------------------

func (ex *extractor) transitionPass(side TransitionSide) {
	n := ex.block.Subdivisions
	f := faceFrames[side]
	tcache := newTransitionCache(n)
	for cv := 0; cv < n; cv++ {
		for cu := 0; cu < n; cu++ {
			ex.transitionCell(f, tcache, cu, cv)
		}
	}
}

//-----------------------------------------------------------------------------

func (ex *extractor) transitionCell(f faceFrame, tcache *transitionCache, cu, cv int) {
	var pos [13]v3.Vec
	var values [13]float64
	for i := 0; i < 13; i++ {
		pos[i] = ex.samplePoint(f, cu, cv, i)
		values[i] = ex.source.Sample(pos[i])
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			ex.warnNonFinite()
			return
		}
	}

	// which of the 0..511 face plane sign patterns do we have?
	code := 0
	for i := 0; i < 9; i++ {
		if values[i] > ex.threshold {
			code |= 1 << i
		}
	}

	cell := &transitionCellData[transitionCellClass[code]]
	codes := transitionVertexData[code]
	if len(cell.tris) == 0 {
		return
	}

	// resolve a vertex for each listed cell edge
	var verts [12]int
	for i, vc := range codes {
		a, b := int(vc>>4&0xf), int(vc&0xf)
		var vi int
		if a >= 9 {
			vi = ex.backVertex(f, cu, cv, a, b, &pos, &values)
		} else {
			vi = ex.faceVertex(tcache, cu, cv, a, b, &pos, &values)
		}
		verts[i] = vi
	}

	for i := 0; i < len(cell.tris); i += 3 {
		ex.emitTriangle(verts[cell.tris[i]], verts[cell.tris[i+1]], verts[cell.tris[i+2]])
	}
}

//-----------------------------------------------------------------------------

// faceVertex resolves a vertex on a face plane edge through the face's
// vertex cache, shared with the neighbouring transition cells.
func (ex *extractor) faceVertex(tcache *transitionCache, cu, cv, a, b int, pos *[13]v3.Vec, values *[13]float64) int {
	ua, va := a%3, a/3
	ub, vb := b%3, b/3
	var axis, iu, iv int
	if va == vb {
		axis = 0
		iu, iv = 2*cu+min(ua, ub), 2*cv+va
	} else {
		axis = 1
		iu, iv = 2*cu+ua, 2*cv+min(va, vb)
	}
	vi := tcache.Get(axis, iu, iv)
	if vi < 0 {
		ga := ex.gradientAt(pos[a])
		gb := ex.gradientAt(pos[b])
		vi = ex.emitVertex(pos[a], pos[b], values[a], values[b], ga, gb)
		tcache.Set(axis, iu, iv, vi)
	}
	return vi
}

// backVertex resolves a vertex on a back plane edge. The edge coincides
// with a tangent lattice edge of the interior cell behind the face, so the
// interior pass has normally emitted the vertex already and its index is
// reused; that reuse is the welding rule. If the interior cell was skipped
// the vertex is computed here from the same samples and recorded in the
// regular cache so later references still share it.
func (ex *extractor) backVertex(f faceFrame, cu, cv, a, b int, pos *[13]v3.Vec, values *[13]float64) int {
	ja, jb := a-9, b-9
	ua, va := ja%2, ja/2
	ub, vb := jb%2, jb/2

	wc := 0
	if f.high {
		wc = ex.block.Subdivisions
	}
	var c [3]int
	c[f.axis] = wc
	var globalAxis int
	if ua != ub {
		globalAxis = f.u
		c[f.u] = cu + min(ua, ub)
		c[f.v] = cv + va
	} else {
		globalAxis = f.v
		c[f.u] = cu + ua
		c[f.v] = cv + min(va, vb)
	}

	vi := ex.cache.Get(globalAxis, c[0], c[1], c[2])
	if vi < 0 {
		ga := ex.gradientAt(pos[a])
		gb := ex.gradientAt(pos[b])
		vi = ex.emitVertex(pos[a], pos[b], values[a], values[b], ga, gb)
		ex.cache.Set(globalAxis, c[0], c[1], c[2], vi)
	}
	return vi
}

//-----------------------------------------------------------------------------
