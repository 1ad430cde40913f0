//-----------------------------------------------------------------------------
/*

Blocks and Transition Sides

A block is a cube of space subdivided into N x N x N cells. Any of its six
faces may be designated a transition face, along which the extracted surface
is stitched to a neighbouring block at double resolution.

*/
//-----------------------------------------------------------------------------

package render

import (
	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

// Block is a cubic region of space to extract a surface from.
type Block struct {
	Origin       v3.Vec  // minimum corner of the block
	Size         float64 // edge length of the block
	Subdivisions int     // number of cells along each axis
}

// NewBlock returns a block with the given origin, edge length and
// per-axis cell count.
func NewBlock(origin v3.Vec, size float64, subdivisions int) Block {
	return Block{Origin: origin, Size: size, Subdivisions: subdivisions}
}

// CellSize returns the edge length of one regular cell.
func (b Block) CellSize() float64 {
	return b.Size / float64(b.Subdivisions)
}

//-----------------------------------------------------------------------------

// TransitionSide identifies one face of a block.
type TransitionSide uint8

// The six block faces, in the fixed order the driver processes them.
const (
	LowX TransitionSide = iota
	HighX
	LowY
	HighY
	LowZ
	HighZ
)

// AllSides lists the six faces in driver order.
var AllSides = [6]TransitionSide{LowX, HighX, LowY, HighY, LowZ, HighZ}

func (s TransitionSide) String() string {
	switch s {
	case LowX:
		return "LowX"
	case HighX:
		return "HighX"
	case LowY:
		return "LowY"
	case HighY:
		return "HighY"
	case LowZ:
		return "LowZ"
	case HighZ:
		return "HighZ"
	}
	return "invalid"
}

// Axis returns the axis (0, 1, 2 for x, y, z) the face is perpendicular to.
func (s TransitionSide) Axis() int {
	return int(s) >> 1
}

// High returns true for the HighX/HighY/HighZ faces.
func (s TransitionSide) High() bool {
	return s&1 != 0
}

//-----------------------------------------------------------------------------

// TransitionSideSet is a set of block faces.
type TransitionSideSet uint8

// NoSides is the empty set of faces.
const NoSides TransitionSideSet = 0

// Sides returns the set containing the given faces.
func Sides(sides ...TransitionSide) TransitionSideSet {
	var t TransitionSideSet
	for _, s := range sides {
		t = t.With(s)
	}
	return t
}

// With returns the set with the face added.
func (t TransitionSideSet) With(s TransitionSide) TransitionSideSet {
	return t | 1<<s
}

// Has returns true if the face is in the set.
func (t TransitionSideSet) Has(s TransitionSide) bool {
	return t&(1<<s) != 0
}

// Union returns the union of two sets.
func (t TransitionSideSet) Union(u TransitionSideSet) TransitionSideSet {
	return t | u
}

// Intersect returns the intersection of two sets.
func (t TransitionSideSet) Intersect(u TransitionSideSet) TransitionSideSet {
	return t & u
}

//-----------------------------------------------------------------------------
