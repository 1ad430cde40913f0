//-----------------------------------------------------------------------------
/*

Vector tests.

*/
//-----------------------------------------------------------------------------

package v3

import (
	"math"
	"testing"
)

//-----------------------------------------------------------------------------

func TestVecOps(t *testing.T) {
	a := Vec{1, 2, 3}
	b := Vec{4, -5, 6}

	if got := a.Add(b); got != (Vec{5, -3, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec{-3, 7, -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.MulScalar(2); got != (Vec{2, 4, 6}) {
		t.Errorf("MulScalar: got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %v", got)
	}
	if got := (Vec{1, 0, 0}).Cross(Vec{0, 1, 0}); got != (Vec{0, 0, 1}) {
		t.Errorf("Cross: got %v", got)
	}
	if got := (Vec{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length: got %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp 0: got %v", got)
	}
	if got := a.Lerp(b, 1); !got.Equals(b, 1e-15) {
		t.Errorf("Lerp 1: got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	n := Vec{0, -3, 4}.Normalize()
	if math.Abs(n.Length()-1) > 1e-15 {
		t.Errorf("not unit length: %v", n)
	}
	if !n.Equals(Vec{0, -0.6, 0.8}, 1e-15) {
		t.Errorf("wrong direction: %v", n)
	}
}

func TestIsFinite(t *testing.T) {
	if !(Vec{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported non-finite")
	}
	if (Vec{math.NaN(), 0, 0}).IsFinite() {
		t.Error("NaN not detected")
	}
	if (Vec{0, math.Inf(-1), 0}).IsFinite() {
		t.Error("Inf not detected")
	}
}

//-----------------------------------------------------------------------------
