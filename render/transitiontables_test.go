//-----------------------------------------------------------------------------
/*

Transition table consistency checks.

*/
//-----------------------------------------------------------------------------

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//-----------------------------------------------------------------------------

// transitionSigns returns the inside flags for the 13 sample points of a
// case: nine face plane bits plus the back plane copies of the face
// corners.
func transitionSigns(code int) [13]bool {
	var s [13]bool
	for i := 0; i < 9; i++ {
		s[i] = code&(1<<i) != 0
	}
	s[9], s[10], s[11], s[12] = s[0], s[2], s[6], s[8]
	return s
}

func TestTransitionVertexData(t *testing.T) {
	// the high byte of a vertex code is fixed per cell edge
	hi := map[uint16]uint16{}
	for code := 0; code < 512; code++ {
		s := transitionSigns(code)
		seen := map[uint16]bool{}
		for _, vc := range transitionVertexData[code] {
			a, b := vc>>4&0xf, vc&0xf
			// the edge's two samples straddle the surface
			require.Less(t, a, b, "case %d code %04x", code, vc)
			assert.NotEqual(t, s[a], s[b], "case %d code %04x", code, vc)
			// each edge carries at most one vertex
			assert.False(t, seen[vc&0xff], "case %d code %04x", code, vc)
			seen[vc&0xff] = true

			if prev, ok := hi[vc&0xff]; ok {
				assert.Equal(t, prev, vc>>8, "case %d code %04x", code, vc)
			}
			hi[vc&0xff] = vc >> 8
			// the direction nibble names the face borders the edge lies
			// on, or marks the vertex as owned
			dir := vc >> 12
			switch vc & 0xff {
			case 0x01, 0x12, 0x9a:
				assert.EqualValues(t, 2, dir, "case %d code %04x", code, vc)
			case 0x03, 0x36, 0x9b:
				assert.EqualValues(t, 1, dir, "case %d code %04x", code, vc)
			default:
				assert.EqualValues(t, 8, dir, "case %d code %04x", code, vc)
			}
		}
	}
}

func TestTransitionCellClasses(t *testing.T) {
	for code := 0; code < 512; code++ {
		class := transitionCellClass[code]
		require.Less(t, int(class), len(transitionCellData), "case %d", code)
		cell := &transitionCellData[class]

		// the class counts match the case's vertex list
		assert.Equal(t, len(transitionVertexData[code]), cell.VertexCount(), "case %d", code)
		require.Equal(t, 3*cell.TriangleCount(), len(cell.tris), "case %d", code)
		for _, v := range cell.tris {
			assert.Less(t, int(v), cell.VertexCount(), "case %d", code)
		}
		// no degenerate triangles in the tables
		for i := 0; i < len(cell.tris); i += 3 {
			a, b, c := cell.tris[i], cell.tris[i+1], cell.tris[i+2]
			assert.True(t, a != b && b != c && a != c, "case %d", code)
		}
	}

	// the trivial cases emit nothing
	assert.Zero(t, transitionCellData[transitionCellClass[0]].TriangleCount())
	assert.Zero(t, transitionCellData[transitionCellClass[511]].TriangleCount())

	// complementary cases use the same cell edges
	for code := 0; code < 512; code++ {
		a, b := transitionVertexData[code], transitionVertexData[511^code]
		require.Equal(t, len(a), len(b), "case %d", code)
		set := map[uint16]bool{}
		for _, vc := range a {
			set[vc] = true
		}
		for _, vc := range b {
			assert.True(t, set[vc], "case %d", code)
		}
	}
}

//-----------------------------------------------------------------------------
