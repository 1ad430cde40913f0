//-----------------------------------------------------------------------------
/*

Case table consistency checks.

*/
//-----------------------------------------------------------------------------

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//-----------------------------------------------------------------------------

func TestEdgeSpecs(t *testing.T) {
	for i, e := range edgeSpecs {
		// corners differ in exactly the axis bit
		assert.Less(t, e.c0, e.c1, "edge %d", i)
		assert.EqualValues(t, 1<<e.axis, e.c0^e.c1, "edge %d", i)
		// the vertex code's low byte is the corner pair
		assert.EqualValues(t, uint16(e.c0)<<4|uint16(e.c1), e.code&0xff, "edge %d", i)
		// edges incident to corner 7 are owned, the rest name a neighbour
		dir := e.code >> 12
		if e.c1 == 7 {
			assert.EqualValues(t, 8, dir, "edge %d", i)
		} else {
			// the direction names the axes on which the edge is minimal
			want := uint16(0)
			for axis := 0; axis < 3; axis++ {
				if axis != e.axis && e.c0&(1<<axis) == 0 {
					want |= 1 << axis
				}
			}
			assert.EqualValues(t, want, dir, "edge %d", i)
		}
	}
}

func TestRegularCellsEdges(t *testing.T) {
	for code := 0; code < 256; code++ {
		cell := &regularCells[code]

		// every active edge straddles the surface
		for _, e := range cell.edges {
			spec := edgeSpecs[e]
			in0 := code&(1<<spec.c0) != 0
			in1 := code&(1<<spec.c1) != 0
			assert.NotEqual(t, in0, in1, "case %d edge %d", code, e)
		}

		// and every straddling edge is active
		active := 0
		for i, spec := range edgeSpecs {
			in0 := code&(1<<spec.c0) != 0
			in1 := code&(1<<spec.c1) != 0
			if in0 != in1 {
				active |= 1 << i
			}
		}
		mask := 0
		for _, e := range cell.edges {
			mask |= 1 << e
		}
		assert.Equal(t, active, mask, "case %d", code)

		// edges are listed in canonical order with their codes
		for i := 1; i < len(cell.edges); i++ {
			assert.Less(t, cell.edges[i-1], cell.edges[i], "case %d", code)
		}
		require.Equal(t, len(cell.edges), len(cell.codes), "case %d", code)
		for i, e := range cell.edges {
			assert.Equal(t, edgeSpecs[e].code, cell.codes[i], "case %d", code)
		}
	}
}

func TestRegularCellsTriangles(t *testing.T) {
	for code := 0; code < 256; code++ {
		cell := &regularCells[code]
		require.Zero(t, len(cell.tris)%3, "case %d", code)
		for _, v := range cell.tris {
			assert.Less(t, int(v), len(cell.edges), "case %d", code)
		}
		// complementary cases triangulate the same edges
		comp := &regularCells[255^code]
		assert.Equal(t, cell.edges, comp.edges, "case %d", code)
	}

	// the trivial cases emit nothing
	assert.Empty(t, regularCells[0].tris)
	assert.Empty(t, regularCells[255].tris)
	assert.Empty(t, regularCells[0].edges)
}

//-----------------------------------------------------------------------------
