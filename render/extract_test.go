//-----------------------------------------------------------------------------
/*

Extraction tests.

*/
//-----------------------------------------------------------------------------

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/deadsy/transvoxel/sdf"
	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

// testBlock is the block used throughout: origin (0,0,0), edge 10, 10 cells.
func testBlock() Block {
	return NewBlock(v3.Vec{}, 10.0, 10)
}

// checkMesh asserts the structural invariants every extraction guarantees.
func checkMesh(t *testing.T, m *Mesh) {
	t.Helper()
	nv := m.VertexCount()
	require.Zero(t, len(m.Positions)%3)
	require.Zero(t, len(m.Normals)%3)
	require.Zero(t, len(m.Indices)%3)
	require.Equal(t, len(m.Positions), len(m.Normals))

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		// index validity
		for _, v := range []int{a, b, c} {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, nv)
		}
		// no degenerate triangles
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, b, c)
		assert.NotEqual(t, a, c)
	}

	for i := 0; i < nv; i++ {
		p := m.Position(i)
		n := m.Normal(i)
		// no non-finite coordinates
		assert.True(t, p.IsFinite(), "vertex %d", i)
		assert.True(t, n.IsFinite(), "vertex %d", i)
		// normals are unit length or zero
		l := n.Length()
		if l != 0 {
			assert.InDelta(t, 1.0, l, 1e-5, "vertex %d", i)
		}
	}
}

// meshArea returns the total triangle area of a mesh.
func meshArea(m *Mesh) float64 {
	area := 0.0
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		pa, pb, pc := m.Position(a), m.Position(b), m.Position(c)
		area += 0.5 * pb.Sub(pa).Cross(pc.Sub(pa)).Length()
	}
	return area
}

//-----------------------------------------------------------------------------

func TestEmptyBlock(t *testing.T) {
	empty := sdf.FieldFunc(func(p v3.Vec) float64 { return -1 })
	m, err := ExtractMesh(empty, testBlock(), 0, NoSides)
	require.NoError(t, err)
	assert.Zero(t, m.VertexCount())
	assert.Zero(t, m.TriangleCount())

	// a fully inside block is just as trivial
	full := sdf.FieldFunc(func(p v3.Vec) float64 { return 1 })
	m, err = ExtractMesh(full, testBlock(), 0, Sides(LowX, HighY))
	require.NoError(t, err)
	assert.Zero(t, m.VertexCount())
	assert.Zero(t, m.TriangleCount())
}

func TestEntryRefusals(t *testing.T) {
	sphere := sdf.NewSphere(v3.Vec{X: 5, Y: 5, Z: 5}, 2.5)
	sink := NewMeshBuilder()

	assert.Error(t, Extract(nil, testBlock(), 0, NoSides, sink))
	assert.Error(t, Extract(sphere, testBlock(), 0, NoSides, nil))
	assert.Error(t, Extract(sphere, NewBlock(v3.Vec{}, 10, 0), 0, NoSides, sink))
	assert.Error(t, Extract(sphere, NewBlock(v3.Vec{}, -1, 10), 0, NoSides, sink))
	assert.Error(t, Extract(sphere, testBlock(), math.NaN(), NoSides, sink))
	assert.Error(t, Extract(sphere, testBlock(), math.Inf(1), NoSides, sink))
	assert.Zero(t, sink.Build().VertexCount())
}

//-----------------------------------------------------------------------------

func TestSphereInvariants(t *testing.T) {
	center := v3.Vec{X: 5, Y: 5, Z: 5}
	sphere := sdf.NewSphere(center, 2.5)
	m, err := ExtractMesh(sphere, testBlock(), 0, NoSides)
	require.NoError(t, err)
	require.NotZero(t, m.TriangleCount())
	checkMesh(t, m)

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		pa, pb, pc := m.Position(a), m.Position(b), m.Position(c)
		// outward orientation: the geometric normal of each triangle
		// points away from the sphere center
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		centroid := pa.Add(pb).Add(pc).DivScalar(3)
		assert.Positive(t, n.Dot(centroid.Sub(center)), "triangle %d", i)
	}

	// vertex normals are close to radial
	for i := 0; i < m.VertexCount(); i++ {
		radial := m.Position(i).Sub(center).Normalize()
		assert.Greater(t, m.Normal(i).Dot(radial), 0.98, "vertex %d", i)
	}

	// the mesh area approximates the sphere area
	want := 4 * math.Pi * 2.5 * 2.5
	assert.InDelta(t, want, meshArea(m), 0.1*want)
}

// A closed surface extracted well inside the block is a watertight
// 2-manifold: every edge is shared by exactly two triangles and the Euler
// characteristic is that of a sphere.
func TestSphereManifold(t *testing.T) {
	sphere := sdf.NewSphere(v3.Vec{X: 5, Y: 5, Z: 5}, 2.5)
	m, err := ExtractMesh(sphere, testBlock(), 0, NoSides)
	require.NoError(t, err)

	edges := map[[2]int]int{}
	used := map[int]bool{}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		for _, e := range [3][2]int{{a, b}, {b, c}, {c, a}} {
			if e[0] > e[1] {
				e[0], e[1] = e[1], e[0]
			}
			edges[e]++
		}
		used[a], used[b], used[c] = true, true, true
	}
	for e, n := range edges {
		assert.Equal(t, 2, n, "edge %v", e)
	}
	v, ed, f := len(used), len(edges), m.TriangleCount()
	assert.Equal(t, 2, v-ed+f, "Euler characteristic")
}

func TestDeterminism(t *testing.T) {
	sphere := sdf.NewSphere(v3.Vec{}, 4.3)
	sides := Sides(LowX, LowY)
	m1, err := ExtractMesh(sphere, testBlock(), 0, sides)
	require.NoError(t, err)
	m2, err := ExtractMesh(sphere, testBlock(), 0, sides)
	require.NoError(t, err)
	assert.Equal(t, m1, m2)
}

//-----------------------------------------------------------------------------

// The reference sphere scenarios: block origin (0,0,0), edge 10, 10 cells,
// density 1 - |p|/5, threshold 0. The triangle counts are exact.
func TestSphereScenarios(t *testing.T) {
	sphere := sdf.FieldFunc(func(p v3.Vec) float64 {
		return 1 - math.Sqrt(p.X*p.X+p.Y*p.Y+p.Z*p.Z)/5
	})

	// no transition sides
	m, err := ExtractMesh(sphere, testBlock(), 0, NoSides)
	require.NoError(t, err)
	assert.Equal(t, 103, m.TriangleCount())
	checkMesh(t, m)

	// LowX: the surface crosses that face, the transition layer adds to it
	m, err = ExtractMesh(sphere, testBlock(), 0, Sides(LowX))
	require.NoError(t, err)
	assert.Equal(t, 131, m.TriangleCount())
	checkMesh(t, m)

	// HighZ: the surface never reaches that face
	m, err = ExtractMesh(sphere, testBlock(), 0, Sides(HighZ))
	require.NoError(t, err)
	assert.Equal(t, 103, m.TriangleCount())
	checkMesh(t, m)
}

//-----------------------------------------------------------------------------

// A transition side whose face the surface never reaches changes nothing.
func TestUntouchedTransitionSide(t *testing.T) {
	sphere := sdf.NewSphere(v3.Vec{}, 4.3)
	plain, err := ExtractMesh(sphere, testBlock(), 0, NoSides)
	require.NoError(t, err)
	require.NotZero(t, plain.TriangleCount())
	withSide, err := ExtractMesh(sphere, testBlock(), 0, Sides(HighZ))
	require.NoError(t, err)
	assert.Equal(t, plain, withSide)
}

// A sphere poking through the LowX face gets a transition layer there.
func TestSphereTransition(t *testing.T) {
	sphere := sdf.NewSphere(v3.Vec{}, 4.3)
	m, err := ExtractMesh(sphere, testBlock(), 0, Sides(LowX))
	require.NoError(t, err)
	require.NotZero(t, m.TriangleCount())
	checkMesh(t, m)

	// more geometry than without the transition layer
	plain, err := ExtractMesh(sphere, testBlock(), 0, NoSides)
	require.NoError(t, err)
	assert.Greater(t, m.TriangleCount(), plain.TriangleCount())

	// welding: a vertex on the back plane of the LowX face is shared, never
	// duplicated, so no two vertex indices coincide there
	h := testBlock().CellSize()
	seen := map[v3.Vec]int{}
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		if p.X == 0.5*h {
			if j, ok := seen[p]; ok {
				t.Errorf("vertices %d and %d coincide at %v", j, i, p)
			}
			seen[p] = i
		}
	}
	assert.NotEmpty(t, seen)

	// orientation still holds across both passes; triangles lying exactly
	// in the face plane score zero against a radial direction
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		pa, pb, pc := m.Position(a), m.Position(b), m.Position(c)
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		centroid := pa.Add(pb).Add(pc).DivScalar(3)
		assert.GreaterOrEqual(t, n.Dot(centroid), 0.0, "triangle %d", i)
	}
}

//-----------------------------------------------------------------------------

// A planar cut through the lattice: the surface is the y = 5 plane.
func TestPlanarCut(t *testing.T) {
	plane := sdf.NewPlane(v3.Vec{Y: 1}, 5)
	m, err := ExtractMesh(plane, testBlock(), 0, NoSides)
	require.NoError(t, err)
	checkMesh(t, m)

	n := testBlock().Subdivisions
	assert.Equal(t, (n+1)*(n+1), m.VertexCount())
	assert.Equal(t, 2*n*n, m.TriangleCount())

	for i := 0; i < m.VertexCount(); i++ {
		assert.Equal(t, 5.0, m.Position(i).Y, "vertex %d", i)
		assert.Equal(t, v3.Vec{Y: -1}, m.Normal(i), "vertex %d", i)
	}
	assert.True(t, scalar.EqualWithinAbs(meshArea(m), 100.0, 1e-9))
}

// The planar cut with a transition side: the leftmost half-cell column is
// re-tessellated but the surface stays the exact plane with the same area,
// which fails if the transition layer cracks, overlaps or mis-welds.
func TestPlanarCutTransition(t *testing.T) {
	plane := sdf.NewPlane(v3.Vec{Y: 1}, 5)
	m, err := ExtractMesh(plane, testBlock(), 0, Sides(LowX))
	require.NoError(t, err)
	require.NotZero(t, m.TriangleCount())
	checkMesh(t, m)

	for i := 0; i < m.VertexCount(); i++ {
		assert.Equal(t, 5.0, m.Position(i).Y, "vertex %d", i)
		assert.Equal(t, v3.Vec{Y: -1}, m.Normal(i), "vertex %d", i)
	}
	assert.True(t, scalar.EqualWithinAbs(meshArea(m), 100.0, 1e-9))
}

//-----------------------------------------------------------------------------

// The gradient fallback: a field without gradients gets central-difference
// normals that match the analytic ones closely.
func TestGradientFallbackNormals(t *testing.T) {
	center := v3.Vec{X: 5, Y: 5, Z: 5}
	sphere := sdf.FieldFunc(func(p v3.Vec) float64 {
		return 1 - p.Sub(center).Length()/2.5
	})
	m, err := ExtractMesh(sphere, testBlock(), 0, NoSides)
	require.NoError(t, err)
	require.NotZero(t, m.VertexCount())
	checkMesh(t, m)
	for i := 0; i < m.VertexCount(); i++ {
		radial := m.Position(i).Sub(center).Normalize()
		assert.Greater(t, m.Normal(i).Dot(radial), 0.98, "vertex %d", i)
	}
}

// Cells with non-finite densities are skipped, not fatal.
func TestNonFiniteDensity(t *testing.T) {
	center := v3.Vec{X: 5, Y: 5, Z: 5}
	field := sdf.FieldFunc(func(p v3.Vec) float64 {
		if p.Z > 6 {
			return math.NaN()
		}
		return 1 - p.Sub(center).Length()/2.5
	})
	m, err := ExtractMesh(field, testBlock(), 0, NoSides)
	require.NoError(t, err)
	checkMesh(t, m)
	// the lower part of the sphere is still extracted
	assert.NotZero(t, m.TriangleCount())
}

//-----------------------------------------------------------------------------
