//-----------------------------------------------------------------------------
/*

Extraction Caches

Three caches live for the duration of one extraction:

  - a density layer cache holding the samples for two adjacent z planes of
    the corner lattice, with lazily computed corner gradients
  - a regular vertex cache mapping lattice edges to emitted vertex indices
  - a transition vertex cache per face, mapping refined face-grid edges to
    emitted vertex indices

The vertex caches are what makes sharing exact: a vertex on an edge used by
several cells is computed once and every later reference reads the index
back instead of re-deriving the position.

*/
//-----------------------------------------------------------------------------

package render

import (
	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

// layerXY caches corner densities and gradients for two adjacent z planes
// of the corner lattice.
type layerXY struct {
	ex           *extractor
	steps        int       // lattice is (steps+1)^2 per plane
	val0, val1   []float64 // densities at z and z+1
	grad0, grad1 []v3.Vec  // corner gradients, computed on demand
	has0, has1   []bool    // which gradients have been computed
}

func newLayerXY(ex *extractor) *layerXY {
	return &layerXY{ex: ex, steps: ex.block.Subdivisions}
}

// Evaluate samples the density for a given z plane of the lattice.
func (l *layerXY) Evaluate(z int) {
	// Swap the layers.
	l.val0, l.val1 = l.val1, l.val0
	l.grad0, l.grad1 = l.grad1, l.grad0
	l.has0, l.has1 = l.has1, l.has0

	n := l.steps
	if l.val1 == nil {
		l.val1 = make([]float64, (n+1)*(n+1))
		l.grad1 = make([]v3.Vec, (n+1)*(n+1))
		l.has1 = make([]bool, (n+1)*(n+1))
	}
	for i := range l.has1 {
		l.has1[i] = false
	}

	idx := 0
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			l.val1[idx] = l.ex.source.Sample(l.ex.cornerPoint(x, y, z))
			idx++
		}
	}
}

// Get returns the density at lattice corner (x, y, z+dz), dz in {0, 1},
// where z is the plane Evaluate was last called one past.
func (l *layerXY) Get(dz, x, y int) float64 {
	idx := y*(l.steps+1) + x
	if dz == 0 {
		return l.val0[idx]
	}
	return l.val1[idx]
}

// Gradient returns the density gradient at lattice corner (x, y, z+dz),
// computing and memoising it on first use.
func (l *layerXY) Gradient(dz, x, y int) v3.Vec {
	idx := y*(l.steps+1) + x
	has, grad := l.has0, l.grad0
	if dz != 0 {
		has, grad = l.has1, l.grad1
	}
	if !has[idx] {
		grad[idx] = l.ex.gradientAt(l.ex.cornerPoint(x, y, l.z(dz)))
		has[idx] = true
	}
	return grad[idx]
}

func (l *layerXY) z(dz int) int {
	return l.ex.layerZ + dz
}

//-----------------------------------------------------------------------------

// regularCache maps lattice edges to emitted vertex indices.
// An edge is keyed by its axis and the lattice coordinates of its lower
// corner. A value of -1 means no vertex has been emitted on the edge.
type regularCache struct {
	n       int
	x, y, z []int32
}

func newRegularCache(n int) *regularCache {
	c := &regularCache{
		n: n,
		x: make([]int32, n*(n+1)*(n+1)),
		y: make([]int32, (n+1)*n*(n+1)),
		z: make([]int32, (n+1)*(n+1)*n),
	}
	for _, a := range [][]int32{c.x, c.y, c.z} {
		for i := range a {
			a[i] = -1
		}
	}
	return c
}

func (c *regularCache) index(axis, x, y, z int) (arr []int32, idx int) {
	n := c.n
	switch axis {
	case 0:
		return c.x, (x*(n+1)+y)*(n+1) + z
	case 1:
		return c.y, (x*n+y)*(n+1) + z
	default:
		return c.z, (x*(n+1)+y)*n + z
	}
}

// Get returns the vertex index on the given lattice edge, or -1.
func (c *regularCache) Get(axis, x, y, z int) int {
	arr, idx := c.index(axis, x, y, z)
	return int(arr[idx])
}

// Set records the vertex index for the given lattice edge.
func (c *regularCache) Set(axis, x, y, z, vertex int) {
	arr, idx := c.index(axis, x, y, z)
	arr[idx] = int32(vertex)
}

//-----------------------------------------------------------------------------

// transitionCache maps face plane edges of one face's refined grid to
// emitted vertex indices. The refined grid is (2n+1) x (2n+1) sample
// points at the neighbouring block's double resolution; an edge is keyed
// by its axis (0 = u, 1 = v) and the refined coordinates of its lower
// endpoint. Back plane edges are interior lattice edges and live in the
// regular cache instead.
type transitionCache struct {
	m    int // 2n
	u, v []int32
}

func newTransitionCache(n int) *transitionCache {
	m := 2 * n
	c := &transitionCache{
		m: m,
		u: make([]int32, m*(m+1)),
		v: make([]int32, (m+1)*m),
	}
	for _, a := range [][]int32{c.u, c.v} {
		for i := range a {
			a[i] = -1
		}
	}
	return c
}

func (c *transitionCache) index(axis, iu, iv int) (arr []int32, idx int) {
	m := c.m
	if axis == 0 {
		return c.u, iu*(m+1) + iv
	}
	return c.v, iu*m + iv
}

// Get returns the vertex index on the given face plane edge, or -1.
func (c *transitionCache) Get(axis, iu, iv int) int {
	arr, idx := c.index(axis, iu, iv)
	return int(arr[idx])
}

// Set records the vertex index for the given face plane edge.
func (c *transitionCache) Set(axis, iu, iv, vertex int) {
	arr, idx := c.index(axis, iu, iv)
	arr[idx] = int32(vertex)
}

//-----------------------------------------------------------------------------
