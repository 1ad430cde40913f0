//-----------------------------------------------------------------------------
/*

3D float64 vectors.

*/
//-----------------------------------------------------------------------------

package v3

import "math"

//-----------------------------------------------------------------------------

// Vec is a 3D float64 vector.
type Vec struct {
	X, Y, Z float64
}

//-----------------------------------------------------------------------------

// Add adds two vectors. Returns a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub subtracts two vectors. Returns a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Neg negates a vector.
func (a Vec) Neg() Vec {
	return Vec{-a.X, -a.Y, -a.Z}
}

// MulScalar multiplies each vector component by k.
func (a Vec) MulScalar(k float64) Vec {
	return Vec{k * a.X, k * a.Y, k * a.Z}
}

// DivScalar divides each vector component by k.
func (a Vec) DivScalar(k float64) Vec {
	return a.MulScalar(1 / k)
}

// Dot returns the dot product of two vectors.
func (a Vec) Dot(b Vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product of two vectors.
func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the length of a vector.
func (a Vec) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Length2 returns the squared length of a vector.
func (a Vec) Length2() float64 {
	return a.Dot(a)
}

// Normalize scales a vector to unit length.
func (a Vec) Normalize() Vec {
	return a.MulScalar(1 / a.Length())
}

// Lerp returns a + t * (b - a).
func (a Vec) Lerp(b Vec, t float64) Vec {
	return Vec{
		a.X + t*(b.X-a.X),
		a.Y + t*(b.Y-a.Y),
		a.Z + t*(b.Z-a.Z),
	}
}

// Equals returns true if a and b are within tolerance of each other.
func (a Vec) Equals(b Vec, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// IsFinite returns true if no component is an Inf or NaN.
func (a Vec) IsFinite() bool {
	ok := func(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }
	return ok(a.X) && ok(a.Y) && ok(a.Z)
}

//-----------------------------------------------------------------------------
