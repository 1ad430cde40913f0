//-----------------------------------------------------------------------------
/*

Density field tests.

*/
//-----------------------------------------------------------------------------

package sdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

func TestSphere(t *testing.T) {
	s := NewSphere(v3.Vec{X: 1, Y: 2, Z: 3}, 2)
	assert.Equal(t, 1.0, s.Sample(v3.Vec{X: 1, Y: 2, Z: 3}))
	assert.Equal(t, 0.0, s.Sample(v3.Vec{X: 3, Y: 2, Z: 3}))
	assert.Equal(t, -1.0, s.Sample(v3.Vec{X: 5, Y: 2, Z: 3}))

	// gradient points inward with magnitude 1/radius
	g := s.Gradient(v3.Vec{X: 3, Y: 2, Z: 3})
	assert.True(t, g.Equals(v3.Vec{X: -0.5}, 1e-12))
}

func TestPlane(t *testing.T) {
	p := NewPlane(v3.Vec{Y: 1}, 5)
	assert.Equal(t, -5.0, p.Sample(v3.Vec{}))
	assert.Equal(t, 0.0, p.Sample(v3.Vec{Y: 5}))
	assert.Equal(t, 2.0, p.Sample(v3.Vec{X: 9, Y: 7}))
	assert.Equal(t, v3.Vec{Y: 1}, p.Gradient(v3.Vec{X: 42}))
}

func TestFieldFunc(t *testing.T) {
	f := FieldFunc(func(p v3.Vec) float64 { return p.X })
	assert.Equal(t, 7.0, f.Sample(v3.Vec{X: 7}))
}

//-----------------------------------------------------------------------------

func TestGradientFallback(t *testing.T) {
	// a field without gradients gets central differences
	f := FieldFunc(func(p v3.Vec) float64 {
		return 2*p.X - 3*p.Y + 0.5*p.Z
	})
	g := Gradient(f, v3.Vec{X: 1, Y: 1, Z: 1}, 1e-3)
	assert.True(t, scalar.EqualWithinAbs(g.X, 2.0, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(g.Y, -3.0, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(g.Z, 0.5, 1e-9))
}

func TestGradientPassThrough(t *testing.T) {
	// a field with gradients is used as-is
	s := NewSphere(v3.Vec{}, 2)
	p := v3.Vec{X: 2}
	assert.Equal(t, s.Gradient(p), Gradient(s, p, 1e-3))
}

//-----------------------------------------------------------------------------
