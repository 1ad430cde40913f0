//-----------------------------------------------------------------------------
/*

Block and side set tests.

*/
//-----------------------------------------------------------------------------

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

func TestBlock(t *testing.T) {
	b := NewBlock(v3.Vec{X: 1, Y: 2, Z: 3}, 8, 16)
	assert.Equal(t, 0.5, b.CellSize())
}

func TestTransitionSides(t *testing.T) {
	assert.False(t, NoSides.Has(LowX))

	s := Sides(LowX, HighZ)
	assert.True(t, s.Has(LowX))
	assert.True(t, s.Has(HighZ))
	assert.False(t, s.Has(HighX))

	s = s.With(LowY)
	assert.True(t, s.Has(LowY))

	assert.Equal(t, Sides(LowX), s.Intersect(Sides(LowX, HighY)))
	assert.Equal(t, Sides(LowX, LowY, HighZ, HighY), s.Union(Sides(HighY)))

	// axes and orientation
	assert.Equal(t, 0, LowX.Axis())
	assert.Equal(t, 1, HighY.Axis())
	assert.Equal(t, 2, LowZ.Axis())
	assert.False(t, LowY.High())
	assert.True(t, HighX.High())

	// the fixed processing order
	assert.Equal(t, [6]TransitionSide{LowX, HighX, LowY, HighY, LowZ, HighZ}, AllSides)
	assert.Equal(t, "LowX", LowX.String())
	assert.Equal(t, "HighZ", HighZ.String())
}

//-----------------------------------------------------------------------------
