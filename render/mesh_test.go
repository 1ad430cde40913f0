//-----------------------------------------------------------------------------
/*

Mesh builder tests.

*/
//-----------------------------------------------------------------------------

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

func TestMeshBuilder(t *testing.T) {
	b := NewMeshBuilder()

	// indices increase strictly from zero
	assert.Equal(t, 0, b.AddVertex(v3.Vec{X: 1}, v3.Vec{Y: 1}))
	assert.Equal(t, 1, b.AddVertex(v3.Vec{Y: 2}, v3.Vec{Y: -1}))
	assert.Equal(t, 2, b.AddVertex(v3.Vec{Z: 3}, v3.Vec{X: 1}))
	b.AddTriangle(0, 1, 2)

	m := b.Build()
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, v3.Vec{X: 1}, m.Position(0))
	assert.Equal(t, v3.Vec{Y: 2}, m.Position(1))
	assert.Equal(t, v3.Vec{Y: -1}, m.Normal(1))

	a, bb, c := m.Triangle(0)
	assert.Equal(t, [3]int{0, 1, 2}, [3]int{a, bb, c})

	// the flat arrays are parallel
	assert.Equal(t, []float64{1, 0, 0, 0, 2, 0, 0, 0, 3}, m.Positions)
	assert.Equal(t, []int{0, 1, 2}, m.Indices)
}

//-----------------------------------------------------------------------------
