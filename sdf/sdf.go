//-----------------------------------------------------------------------------
/*

Scalar Density Fields

A field assigns a density to every point in space. The sign of
density - threshold decides which side of the iso-surface a point is on:
density > threshold is inside the solid, density <= threshold is outside
(a density exactly at the threshold counts as outside).

*/
//-----------------------------------------------------------------------------

package sdf

import (
	"gonum.org/v1/gonum/diff/fd"

	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

// Field is a scalar density field.
// Sample must be deterministic for the duration of one extraction:
// same point in, same density out.
type Field interface {
	Sample(p v3.Vec) float64
}

// GradientField is a field that supplies its own exact gradients.
// Fields that don't implement it get central-difference gradients.
type GradientField interface {
	Field
	Gradient(p v3.Vec) v3.Vec
}

//-----------------------------------------------------------------------------

// FieldFunc adapts a plain function to the Field interface.
type FieldFunc func(p v3.Vec) float64

// Sample implements the Field interface.
func (f FieldFunc) Sample(p v3.Vec) float64 {
	return f(p)
}

//-----------------------------------------------------------------------------

// Gradient returns the gradient of the field at p.
// If the field supplies its own gradients they are used, otherwise the
// gradient is approximated by central differences with the given step.
func Gradient(f Field, p v3.Vec, step float64) v3.Vec {
	if g, ok := f.(GradientField); ok {
		return g.Gradient(p)
	}
	grad := fd.Gradient(nil, func(x []float64) float64 {
		return f.Sample(v3.Vec{X: x[0], Y: x[1], Z: x[2]})
	}, []float64{p.X, p.Y, p.Z}, &fd.Settings{
		Formula: fd.Central,
		Step:    step,
	})
	return v3.Vec{X: grad[0], Y: grad[1], Z: grad[2]}
}

//-----------------------------------------------------------------------------

// Sphere is a density field that is positive inside a sphere and falls off
// linearly with distance from the center.
type Sphere struct {
	Center v3.Vec
	Radius float64
}

// NewSphere returns a sphere density field.
func NewSphere(center v3.Vec, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Sample implements the Field interface.
func (s *Sphere) Sample(p v3.Vec) float64 {
	return 1 - p.Sub(s.Center).Length()/s.Radius
}

// Gradient implements the GradientField interface.
func (s *Sphere) Gradient(p v3.Vec) v3.Vec {
	d := p.Sub(s.Center)
	l := d.Length()
	if l == 0 {
		return v3.Vec{}
	}
	return d.MulScalar(-1 / (s.Radius * l))
}

//-----------------------------------------------------------------------------

// Plane is a density field that is positive on one side of a plane.
// The density at p is the signed distance along Normal past Offset.
type Plane struct {
	Normal v3.Vec
	Offset float64
}

// NewPlane returns a plane density field.
// Normal should be unit length for the density to be a true distance.
func NewPlane(normal v3.Vec, offset float64) *Plane {
	return &Plane{Normal: normal, Offset: offset}
}

// Sample implements the Field interface.
func (s *Plane) Sample(p v3.Vec) float64 {
	return p.Dot(s.Normal) - s.Offset
}

// Gradient implements the GradientField interface.
func (s *Plane) Gradient(p v3.Vec) v3.Vec {
	return s.Normal
}

//-----------------------------------------------------------------------------
