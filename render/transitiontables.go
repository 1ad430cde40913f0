//-----------------------------------------------------------------------------
/*

Transition Cell Case Tables

A transition cell samples 13 points: nine on the face plane, numbered 0-8
in row major order at half cell spacing, and four on the back plane,
numbered 9-12 (hex 9-C) at the cell corners, coincident with the pulled-in
corners of the interior cell behind the face. The cell's case code has
nine bits, one per face plane sample; the back plane points take the signs
of the face corner samples 0, 2, 6 and 8.

Each of the 512 case codes maps through transitionCellClass to an
equivalence class holding the triangulation, and transitionVertexData
lists the cell edges carrying the class's vertices, in the order the class
triangulation indexes them. A vertex code's low byte holds the edge's two
sample indices and its high byte the reuse data: direction nibble (1 = the
preceding cell along u, 2 = the preceding cell along v, 8 = this cell owns
the vertex) and the canonical cache slot for the edge. Vertices on back
plane edges always weld to the interior cell's vertex cache.

Triangle winding is outward from the inside region.

*/
//-----------------------------------------------------------------------------

package render

//-----------------------------------------------------------------------------

// transitionCell is the triangulation shared by one equivalence class of
// transition cell cases. counts packs the vertex count in the high nibble
// and the triangle count in the low nibble.
type transitionCell struct {
	counts uint8
	tris   []uint8
}

// VertexCount returns the number of vertices the class uses.
func (c *transitionCell) VertexCount() int {
	return int(c.counts >> 4)
}

// TriangleCount returns the number of triangles the class emits.
func (c *transitionCell) TriangleCount() int {
	return int(c.counts & 0x0f)
}

// transitionCellClass maps a 9 bit case code to its equivalence class.
var transitionCellClass = [512]uint8{
	0x00, 0x01, 0x02, 0x03, 0x01, 0x04, 0x03, 0x03, 0x02, 0x03, 0x04, 0x04, 0x05, 0x06, 0x07, 0x04,
	0x01, 0x07, 0x03, 0x06, 0x07, 0x08, 0x06, 0x06, 0x03, 0x06, 0x04, 0x04, 0x09, 0x0a, 0x07, 0x04,
	0x02, 0x0b, 0x04, 0x07, 0x03, 0x06, 0x04, 0x04, 0x0c, 0x0d, 0x09, 0x09, 0x0e, 0x07, 0x09, 0x06,
	0x03, 0x09, 0x04, 0x07, 0x06, 0x0a, 0x04, 0x04, 0x04, 0x07, 0x06, 0x06, 0x07, 0x0e, 0x06, 0x03,
	0x01, 0x04, 0x05, 0x06, 0x07, 0x07, 0x09, 0x06, 0x03, 0x03, 0x07, 0x04, 0x09, 0x06, 0x0f, 0x04,
	0x07, 0x10, 0x09, 0x0a, 0x11, 0x12, 0x13, 0x0a, 0x06, 0x06, 0x07, 0x04, 0x13, 0x0a, 0x14, 0x04,
	0x0b, 0x15, 0x0f, 0x16, 0x09, 0x09, 0x16, 0x07, 0x0d, 0x0d, 0x17, 0x09, 0x16, 0x07, 0x18, 0x06,
	0x09, 0x19, 0x16, 0x08, 0x1a, 0x1b, 0x1c, 0x0e, 0x07, 0x07, 0x09, 0x06, 0x1c, 0x0e, 0x1d, 0x03,
	0x02, 0x0b, 0x0c, 0x0d, 0x05, 0x15, 0x0d, 0x0d, 0x04, 0x07, 0x09, 0x09, 0x0f, 0x16, 0x17, 0x09,
	0x03, 0x09, 0x04, 0x07, 0x09, 0x1e, 0x07, 0x07, 0x04, 0x07, 0x06, 0x06, 0x16, 0x08, 0x09, 0x06,
	0x04, 0x14, 0x09, 0x17, 0x07, 0x16, 0x09, 0x09, 0x09, 0x17, 0x1f, 0x1f, 0x17, 0x13, 0x1f, 0x14,
	0x04, 0x16, 0x06, 0x09, 0x07, 0x08, 0x06, 0x06, 0x06, 0x09, 0x07, 0x07, 0x09, 0x0a, 0x07, 0x04,
	0x03, 0x06, 0x0e, 0x07, 0x09, 0x09, 0x16, 0x07, 0x04, 0x04, 0x09, 0x06, 0x16, 0x07, 0x18, 0x06,
	0x06, 0x15, 0x07, 0x0e, 0x1a, 0x1b, 0x1c, 0x0e, 0x04, 0x04, 0x06, 0x03, 0x1c, 0x0e, 0x1d, 0x03,
	0x07, 0x16, 0x17, 0x13, 0x0f, 0x0f, 0x18, 0x20, 0x09, 0x09, 0x1f, 0x14, 0x18, 0x20, 0x21, 0x22,
	0x07, 0x10, 0x09, 0x0a, 0x0f, 0x23, 0x20, 0x05, 0x06, 0x06, 0x07, 0x04, 0x20, 0x05, 0x22, 0x01,
	0x01, 0x07, 0x05, 0x09, 0x04, 0x07, 0x06, 0x06, 0x05, 0x09, 0x0f, 0x16, 0x0a, 0x09, 0x16, 0x07,
	0x07, 0x11, 0x09, 0x1a, 0x10, 0x24, 0x15, 0x15, 0x09, 0x1a, 0x16, 0x1c, 0x19, 0x25, 0x10, 0x0d,
	0x03, 0x09, 0x07, 0x0f, 0x03, 0x06, 0x04, 0x04, 0x0e, 0x16, 0x17, 0x18, 0x0e, 0x07, 0x09, 0x06,
	0x06, 0x13, 0x07, 0x0f, 0x06, 0x0a, 0x04, 0x04, 0x07, 0x1c, 0x09, 0x20, 0x07, 0x0e, 0x06, 0x03,
	0x04, 0x07, 0x0a, 0x09, 0x07, 0x07, 0x09, 0x06, 0x06, 0x06, 0x16, 0x07, 0x09, 0x06, 0x0f, 0x04,
	0x10, 0x26, 0x19, 0x1b, 0x26, 0x27, 0x28, 0x29, 0x15, 0x15, 0x10, 0x0e, 0x28, 0x29, 0x2a, 0x0c,
	0x06, 0x09, 0x16, 0x0f, 0x06, 0x06, 0x07, 0x04, 0x07, 0x07, 0x13, 0x20, 0x07, 0x04, 0x20, 0x03,
	0x15, 0x28, 0x10, 0x23, 0x15, 0x29, 0x0d, 0x0c, 0x0d, 0x0d, 0x15, 0x05, 0x0d, 0x0c, 0x0b, 0x02,
	0x03, 0x09, 0x0e, 0x16, 0x06, 0x09, 0x07, 0x07, 0x07, 0x0f, 0x17, 0x18, 0x16, 0x0f, 0x13, 0x20,
	0x06, 0x1a, 0x07, 0x1c, 0x15, 0x25, 0x0d, 0x0d, 0x07, 0x0f, 0x09, 0x1d, 0x10, 0x2b, 0x15, 0x0b,
	0x04, 0x16, 0x09, 0x18, 0x04, 0x07, 0x06, 0x06, 0x09, 0x18, 0x1f, 0x21, 0x09, 0x20, 0x14, 0x22,
	0x04, 0x1c, 0x06, 0x20, 0x04, 0x0e, 0x03, 0x03, 0x06, 0x20, 0x07, 0x22, 0x06, 0x05, 0x04, 0x01,
	0x03, 0x06, 0x0e, 0x07, 0x06, 0x06, 0x07, 0x04, 0x04, 0x04, 0x09, 0x06, 0x07, 0x04, 0x20, 0x03,
	0x06, 0x15, 0x07, 0x0e, 0x15, 0x29, 0x0d, 0x0c, 0x04, 0x04, 0x06, 0x03, 0x0d, 0x0c, 0x0b, 0x02,
	0x04, 0x07, 0x09, 0x20, 0x04, 0x04, 0x06, 0x03, 0x06, 0x06, 0x14, 0x22, 0x06, 0x03, 0x22, 0x01,
	0x04, 0x0d, 0x06, 0x05, 0x04, 0x0c, 0x03, 0x02, 0x03, 0x03, 0x04, 0x01, 0x03, 0x02, 0x01, 0x00,
}

// transitionCellData holds the triangulation for each equivalence class.
var transitionCellData = [44]transitionCell{
	{0x00, nil},
	{0x42, []uint8{0, 1, 2, 0, 3, 1}},
	{0x31, []uint8{0, 1, 2}},
	{0x53, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3}},
	{0x64, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4}},
	{0x73, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4}},
	{0x75, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5}},
	{0x86, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6}},
	{0xa6, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4, 3, 7, 6, 3, 8, 7, 3, 9, 8}},
	{0x97, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 0, 8, 7}},
	{0x95, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4, 3, 7, 6, 3, 8, 7}},
	{0x73, []uint8{0, 1, 2, 0, 3, 1, 4, 5, 6}},
	{0x62, []uint8{0, 1, 2, 3, 4, 5}},
	{0x84, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 5, 6, 7}},
	{0x84, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4, 3, 7, 6}},
	{0xa6, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 6, 7, 8, 6, 9, 7}},
	{0xa6, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5, 7, 8, 9}},
	{0xc8, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 6, 7, 8, 6, 9, 7, 6, 10, 9, 6, 11, 10}},
	{0xc6, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 6, 9, 7, 6, 10, 9, 6, 11, 10}},
	{0xb7, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 5, 6, 7, 5, 8, 6, 5, 9, 8, 5, 10, 9}},
	{0xa6, []uint8{0, 1, 2, 0, 3, 1, 4, 5, 6, 4, 7, 5, 4, 8, 7, 4, 9, 8}},
	{0x95, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 6, 7, 8}},
	{0xa8, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 0, 8, 7, 0, 9, 8}},
	{0xb9, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 0, 8, 7, 0, 9, 8, 0, 10, 9}},
	{0xb7, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5, 7, 8, 9, 7, 10, 8}},
	{0xb7, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 0, 6, 5, 0, 7, 6, 8, 9, 10}},
	{0xb7, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 6, 7, 8, 6, 9, 7, 6, 10, 9}},
	{0xb5, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 6, 9, 7, 6, 10, 9}},
	{0xa6, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 5, 6, 7, 5, 8, 6, 5, 9, 8}},
	{0x95, []uint8{0, 1, 2, 0, 3, 1, 4, 5, 6, 4, 7, 5, 4, 8, 7}},
	{0xb7, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4, 3, 7, 6, 3, 8, 7, 3, 9, 8, 3, 10, 9}},
	{0xc8, []uint8{0, 1, 2, 0, 3, 1, 4, 5, 6, 4, 7, 5, 4, 8, 7, 4, 9, 8, 4, 10, 9, 4, 11, 10}},
	{0x95, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 5, 6, 7, 5, 8, 6}},
	{0xc6, []uint8{0, 1, 2, 0, 3, 1, 4, 5, 6, 4, 7, 5, 8, 9, 10, 8, 11, 9}},
	{0x84, []uint8{0, 1, 2, 0, 3, 1, 4, 5, 6, 4, 7, 5}},
	{0xa4, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 6, 9, 7}},
	{0xc6, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4, 3, 7, 6, 3, 8, 7, 9, 10, 11}},
	{0xb5, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4, 3, 7, 6, 8, 9, 10}},
	{0xc6, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 0, 5, 4, 6, 7, 8, 9, 10, 11}},
	{0xc4, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{0xb5, []uint8{0, 1, 2, 0, 3, 1, 0, 4, 3, 5, 6, 7, 8, 9, 10}},
	{0x93, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{0xa4, []uint8{0, 1, 2, 0, 3, 1, 4, 5, 6, 7, 8, 9}},
	{0xa4, []uint8{0, 1, 2, 3, 4, 5, 3, 6, 4, 7, 8, 9}},
}

// transitionVertexData lists the vertex codes for each case, in the order
// the class triangulation indexes them.
var transitionVertexData = [512][]uint16{
	{},
	{0x2201, 0x199b, 0x289a, 0x1603},
	{0x2201, 0x2312, 0x8414},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8414},
	{0x2312, 0x89ac, 0x8625, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x199b, 0x1603},
	{0x2201, 0x8625, 0x8414, 0x89ac, 0x289a},
	{0x1603, 0x8625, 0x8414, 0x89ac, 0x199b},
	{0x8034, 0x1736, 0x1603},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1736, 0x8034, 0x8414},
	{0x8034, 0x1736, 0x1603, 0x2312, 0x89ac, 0x8625, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x199b, 0x1736, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x8625, 0x89ac, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x89ac, 0x199b, 0x1736},
	{0x8034, 0x8145, 0x8547, 0x8414},
	{0x2201, 0x199b, 0x289a, 0x1603, 0x8034, 0x8547, 0x8145, 0x8414},
	{0x2201, 0x8547, 0x8034, 0x8145, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8034, 0x8547, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x8547, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x8145, 0x8547, 0x8625, 0x89ac, 0x199b, 0x1603},
	{0x2201, 0x8547, 0x8034, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x8034, 0x8145, 0x8547, 0x8625, 0x89ac, 0x199b, 0x1603},
	{0x8145, 0x1603, 0x8414, 0x1736, 0x8547},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8547, 0x8145, 0x8414},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8145, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1736, 0x8547, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8547, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8145, 0x89ac, 0x8625, 0x199b, 0x1736, 0x8547},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x8145, 0x89ac, 0x8625, 0x199b, 0x1736, 0x8547},
	{0x8145, 0x8625, 0x8758},
	{0x2201, 0x199b, 0x289a, 0x1603, 0x8145, 0x8625, 0x8758},
	{0x2201, 0x8145, 0x8414, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8414, 0x8145, 0x8758, 0x8625},
	{0x2312, 0x8758, 0x8145, 0x89ac, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8758, 0x89ac, 0x199b, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8758, 0x89ac, 0x289a},
	{0x8145, 0x89ac, 0x8758, 0x199b, 0x1603, 0x8414},
	{0x8034, 0x1736, 0x1603, 0x8145, 0x8625, 0x8758},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8034, 0x8145, 0x8625, 0x8758},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x8145, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1736, 0x8034, 0x8414, 0x8145, 0x8758, 0x8625},
	{0x8034, 0x1736, 0x1603, 0x2312, 0x8758, 0x8145, 0x89ac, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8758, 0x89ac, 0x199b, 0x1736, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x8145, 0x8758, 0x89ac, 0x289a},
	{0x8034, 0x8145, 0x8414, 0x8758, 0x89ac, 0x199b, 0x1736},
	{0x8034, 0x8758, 0x8547, 0x8625, 0x8414},
	{0x2201, 0x199b, 0x289a, 0x1603, 0x8034, 0x8547, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x8547, 0x8034, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8034, 0x8547, 0x8758, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x8547, 0x8758, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x8758, 0x8547, 0x89ac, 0x199b, 0x1603},
	{0x2201, 0x8547, 0x8034, 0x8758, 0x89ac, 0x289a},
	{0x8034, 0x8758, 0x8547, 0x89ac, 0x199b, 0x1603},
	{0x1603, 0x8547, 0x1736, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8547, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1736, 0x8547, 0x8758, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8547, 0x8758, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x1736, 0x8758, 0x8547, 0x89ac, 0x199b},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8758, 0x89ac, 0x289a},
	{0x1736, 0x8758, 0x8547, 0x89ac, 0x199b},
	{0x8267, 0x199b, 0x1736, 0x88bc},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x1736, 0x1603},
	{0x2201, 0x2312, 0x8414, 0x8267, 0x199b, 0x1736, 0x88bc},
	{0x2312, 0x88bc, 0x289a, 0x8267, 0x1736, 0x1603, 0x8414},
	{0x2312, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x88bc, 0x8267, 0x1736, 0x1603},
	{0x2201, 0x8625, 0x8414, 0x89ac, 0x88bc, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x8267, 0x1603, 0x1736, 0x8414, 0x8625, 0x89ac, 0x88bc},
	{0x8034, 0x199b, 0x1603, 0x88bc, 0x8267},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x8034},
	{0x2201, 0x199b, 0x1603, 0x88bc, 0x8267, 0x8034, 0x8414, 0x2312},
	{0x2312, 0x88bc, 0x289a, 0x8267, 0x8034, 0x8414},
	{0x2312, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8034, 0x1603, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x88bc, 0x8267, 0x8034},
	{0x8034, 0x8625, 0x8414, 0x89ac, 0x88bc, 0x8267, 0x2201, 0x199b, 0x1603, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x89ac, 0x88bc, 0x8267},
	{0x8034, 0x199b, 0x1736, 0x88bc, 0x8267, 0x8547, 0x8145, 0x8414},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8145, 0x8414, 0x8034, 0x1603, 0x1736},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x88bc, 0x8267, 0x8547, 0x8145, 0x2312},
	{0x8034, 0x1603, 0x1736, 0x2312, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x8034, 0x1603, 0x1736, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x8145, 0x1603, 0x8414, 0x199b, 0x88bc, 0x8267, 0x8547},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8145, 0x8414},
	{0x2201, 0x199b, 0x1603, 0x88bc, 0x8267, 0x8547, 0x8145, 0x2312},
	{0x2312, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x2201, 0x8414, 0x2312, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x2201, 0x199b, 0x1603, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x8145, 0x89ac, 0x8625, 0x88bc, 0x8267, 0x8547},
	{0x8267, 0x199b, 0x1736, 0x88bc, 0x8145, 0x8625, 0x8758},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x1736, 0x1603, 0x8145, 0x8625, 0x8758},
	{0x2201, 0x8145, 0x8414, 0x8758, 0x8625, 0x2312, 0x8267, 0x199b, 0x1736, 0x88bc},
	{0x2312, 0x88bc, 0x289a, 0x8267, 0x1736, 0x1603, 0x8414, 0x8145, 0x8758, 0x8625},
	{0x2312, 0x8758, 0x8145, 0x89ac, 0x88bc, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8758, 0x89ac, 0x88bc, 0x8267, 0x1736, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8758, 0x89ac, 0x88bc, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x8145, 0x89ac, 0x8758, 0x88bc, 0x8267, 0x1736, 0x1603, 0x8414},
	{0x8034, 0x199b, 0x1603, 0x88bc, 0x8267, 0x8145, 0x8625, 0x8758},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x8034, 0x8145, 0x8625, 0x8758},
	{0x2201, 0x199b, 0x1603, 0x88bc, 0x8267, 0x8034, 0x8414, 0x8145, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x88bc, 0x289a, 0x8267, 0x8034, 0x8414, 0x8145, 0x8758, 0x8625},
	{0x2312, 0x8758, 0x8145, 0x89ac, 0x88bc, 0x8267, 0x8034, 0x1603, 0x199b, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8758, 0x89ac, 0x88bc, 0x8267, 0x8034},
	{0x8034, 0x8145, 0x8414, 0x8758, 0x89ac, 0x88bc, 0x8267, 0x2201, 0x199b, 0x1603, 0x289a},
	{0x8034, 0x8145, 0x8414, 0x8758, 0x89ac, 0x88bc, 0x8267},
	{0x8034, 0x199b, 0x1736, 0x88bc, 0x8267, 0x8547, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8758, 0x8625, 0x8414, 0x8034, 0x1603, 0x1736},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x88bc, 0x8267, 0x8547, 0x8758, 0x8625, 0x2312},
	{0x8034, 0x1603, 0x1736, 0x2312, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8758, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a, 0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736, 0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a, 0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x8034, 0x1603, 0x1736, 0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x8267, 0x8758, 0x8547, 0x8625, 0x8414, 0x1603, 0x199b, 0x88bc},
	{0x2201, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x199b, 0x1603, 0x88bc, 0x8267, 0x8547, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x88bc, 0x289a, 0x8267, 0x8547, 0x8758, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a, 0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x2201, 0x8414, 0x2312, 0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x2201, 0x199b, 0x1603, 0x289a, 0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x8267, 0x8758, 0x8547, 0x89ac, 0x88bc},
	{0x8267, 0x8547, 0x8378},
	{0x2201, 0x199b, 0x289a, 0x1603, 0x8267, 0x8547, 0x8378},
	{0x2201, 0x2312, 0x8414, 0x8267, 0x8547, 0x8378},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8414, 0x8267, 0x8547, 0x8378},
	{0x8267, 0x8547, 0x8378, 0x2312, 0x89ac, 0x8625, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x199b, 0x1603, 0x8267, 0x8547, 0x8378},
	{0x2201, 0x8625, 0x8414, 0x89ac, 0x289a, 0x8267, 0x8547, 0x8378},
	{0x1603, 0x8625, 0x8414, 0x89ac, 0x199b, 0x8267, 0x8547, 0x8378},
	{0x8034, 0x1736, 0x1603, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8547, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8547, 0x8034, 0x8414, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8547, 0x8034, 0x8414},
	{0x8034, 0x1736, 0x1603, 0x8267, 0x8378, 0x8547, 0x2312, 0x89ac, 0x8625, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x199b, 0x1736, 0x8267, 0x8378, 0x8547, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8547, 0x8034, 0x8414, 0x8625, 0x89ac, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x89ac, 0x199b, 0x1736, 0x8267, 0x8378, 0x8547},
	{0x8034, 0x8378, 0x8267, 0x8145, 0x8414},
	{0x2201, 0x199b, 0x289a, 0x1603, 0x8034, 0x8267, 0x8378, 0x8145, 0x8414},
	{0x2201, 0x8267, 0x8034, 0x8378, 0x8145, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8034, 0x8267, 0x8378, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x8267, 0x8378, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x8378, 0x8267, 0x8145, 0x8625, 0x89ac, 0x199b, 0x1603},
	{0x2201, 0x8267, 0x8034, 0x8378, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x8034, 0x8378, 0x8267, 0x8145, 0x8625, 0x89ac, 0x199b, 0x1603},
	{0x8145, 0x1603, 0x8414, 0x1736, 0x8267, 0x8378},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8145, 0x8414},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8145, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8267, 0x8378, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8145, 0x89ac, 0x8625, 0x199b, 0x1736, 0x8267, 0x8378},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8145, 0x8625, 0x89ac, 0x289a},
	{0x8145, 0x89ac, 0x8625, 0x199b, 0x1736, 0x8267, 0x8378},
	{0x8145, 0x8267, 0x8547, 0x8378, 0x8758, 0x8625},
	{0x2201, 0x199b, 0x289a, 0x1603, 0x8145, 0x8267, 0x8547, 0x8378, 0x8758, 0x8625},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x8267, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8414, 0x8145, 0x8547, 0x8267, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x8267, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x8267, 0x8378, 0x8758, 0x89ac, 0x199b, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x8267, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x8145, 0x8267, 0x8547, 0x8378, 0x8758, 0x89ac, 0x199b, 0x1603, 0x8414},
	{0x8034, 0x1736, 0x1603, 0x8267, 0x8378, 0x8758, 0x8625, 0x8145, 0x8547},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8758, 0x8625, 0x8145, 0x8547, 0x8034},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2312, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x8034, 0x8267, 0x8758, 0x8378, 0x89ac, 0x199b, 0x1736},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x8267, 0x8758, 0x8378, 0x89ac, 0x199b, 0x1736},
	{0x8034, 0x8378, 0x8267, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x199b, 0x289a, 0x1603, 0x8034, 0x8267, 0x8378, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x8267, 0x8034, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1603, 0x8034, 0x8267, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x8267, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x8378, 0x8267, 0x8758, 0x89ac, 0x199b, 0x1603},
	{0x2201, 0x8267, 0x8034, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x8034, 0x8378, 0x8267, 0x8758, 0x89ac, 0x199b, 0x1603},
	{0x8267, 0x8758, 0x8378, 0x8625, 0x8414, 0x1603, 0x1736},
	{0x2201, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x199b, 0x289a, 0x1736, 0x8267, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8267, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8267, 0x8758, 0x8378, 0x89ac, 0x199b, 0x1736},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x8378, 0x8758, 0x89ac, 0x289a},
	{0x8267, 0x8758, 0x8378, 0x89ac, 0x199b, 0x1736},
	{0x8378, 0x1736, 0x8547, 0x199b, 0x88bc},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8547, 0x1736, 0x1603},
	{0x2201, 0x2312, 0x8414, 0x8378, 0x1736, 0x8547, 0x199b, 0x88bc},
	{0x2312, 0x88bc, 0x289a, 0x8378, 0x8547, 0x1736, 0x1603, 0x8414},
	{0x2312, 0x89ac, 0x8625, 0x88bc, 0x8378, 0x8547, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x88bc, 0x8378, 0x8547, 0x1736, 0x1603},
	{0x2201, 0x8625, 0x8414, 0x89ac, 0x88bc, 0x8378, 0x8547, 0x1736, 0x199b, 0x289a},
	{0x8378, 0x1736, 0x8547, 0x1603, 0x8414, 0x8625, 0x89ac, 0x88bc},
	{0x8034, 0x199b, 0x1603, 0x88bc, 0x8378, 0x8547},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8547, 0x8034},
	{0x2201, 0x199b, 0x1603, 0x88bc, 0x8378, 0x8547, 0x8034, 0x8414, 0x2312},
	{0x2312, 0x88bc, 0x289a, 0x8378, 0x8547, 0x8034, 0x8414},
	{0x2312, 0x89ac, 0x8625, 0x88bc, 0x8378, 0x8547, 0x8034, 0x1603, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x89ac, 0x88bc, 0x8378, 0x8547, 0x8034},
	{0x8034, 0x8625, 0x8414, 0x89ac, 0x88bc, 0x8378, 0x8547, 0x2201, 0x199b, 0x1603, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x89ac, 0x88bc, 0x8378, 0x8547},
	{0x8034, 0x199b, 0x1736, 0x88bc, 0x8378, 0x8145, 0x8414},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8145, 0x8414, 0x8034, 0x1603, 0x1736},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x88bc, 0x8378, 0x8145, 0x2312},
	{0x8034, 0x1603, 0x1736, 0x2312, 0x88bc, 0x289a, 0x8378, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x8034, 0x1603, 0x1736, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x8145, 0x1603, 0x8414, 0x199b, 0x88bc, 0x8378},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8145, 0x8414},
	{0x2201, 0x199b, 0x1603, 0x88bc, 0x8378, 0x8145, 0x2312},
	{0x2312, 0x88bc, 0x289a, 0x8378, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x2201, 0x8414, 0x2312, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x2201, 0x199b, 0x1603, 0x289a, 0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x8145, 0x89ac, 0x8625, 0x88bc, 0x8378},
	{0x8145, 0x1736, 0x8547, 0x199b, 0x88bc, 0x8378, 0x8758, 0x8625},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625, 0x8145, 0x8547, 0x1736, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x1736, 0x199b, 0x88bc, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x8145, 0x1736, 0x8547, 0x1603, 0x8414, 0x2312, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x1736, 0x199b, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x1736, 0x1603, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x1736, 0x199b, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8145, 0x1736, 0x8547, 0x1603, 0x8414, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8034, 0x199b, 0x1603, 0x88bc, 0x8378, 0x8758, 0x8625, 0x8145, 0x8547},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625, 0x8145, 0x8547, 0x8034},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x199b, 0x1603, 0x88bc, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2312, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x8034, 0x1603, 0x199b, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x8034, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x199b, 0x1603, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8034, 0x199b, 0x1736, 0x88bc, 0x8378, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625, 0x8414, 0x8034, 0x1603, 0x1736},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x88bc, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x8034, 0x1603, 0x1736, 0x2312, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8034, 0x1603, 0x1736, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8378, 0x8625, 0x8758, 0x8414, 0x1603, 0x199b, 0x88bc},
	{0x2201, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625, 0x8414},
	{0x2201, 0x199b, 0x1603, 0x88bc, 0x8378, 0x8758, 0x8625, 0x2312},
	{0x2312, 0x88bc, 0x289a, 0x8378, 0x8758, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x2201, 0x8414, 0x2312, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x2201, 0x199b, 0x1603, 0x289a, 0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8378, 0x89ac, 0x8758, 0x88bc},
	{0x8378, 0x89ac, 0x88bc, 0x8758},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8378, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x2312, 0x8414, 0x8378, 0x89ac, 0x88bc, 0x8758},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8378, 0x88bc, 0x199b, 0x1603, 0x8414},
	{0x2312, 0x8758, 0x8625, 0x8378, 0x88bc, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8378, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8625, 0x8414, 0x8758, 0x8378, 0x88bc, 0x289a},
	{0x8378, 0x199b, 0x88bc, 0x1603, 0x8414, 0x8625, 0x8758},
	{0x8034, 0x1736, 0x1603, 0x8378, 0x89ac, 0x88bc, 0x8758},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8378, 0x88bc, 0x199b, 0x1736, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x2312, 0x8378, 0x89ac, 0x88bc, 0x8758},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8378, 0x88bc, 0x199b, 0x1736, 0x8034, 0x8414},
	{0x8034, 0x1736, 0x1603, 0x2312, 0x8758, 0x8625, 0x8378, 0x88bc, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8378, 0x88bc, 0x199b, 0x1736, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x8625, 0x8758, 0x8378, 0x88bc, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x8758, 0x8378, 0x88bc, 0x199b, 0x1736},
	{0x8034, 0x8378, 0x8547, 0x88bc, 0x89ac, 0x8758, 0x8145, 0x8414},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414, 0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8547, 0x8034, 0x8378, 0x88bc, 0x89ac, 0x8758, 0x8145, 0x2312},
	{0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603, 0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x8547, 0x8378, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8547, 0x8034, 0x8378, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x1603, 0x8414, 0x1736, 0x8547, 0x8378, 0x88bc, 0x89ac, 0x8758},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414, 0x8378, 0x199b, 0x88bc, 0x1736, 0x8547},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8378, 0x88bc, 0x89ac, 0x8758, 0x8145, 0x2312},
	{0x8378, 0x199b, 0x88bc, 0x1736, 0x8547, 0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8547, 0x8378, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8378, 0x199b, 0x88bc, 0x1736, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8378, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x8378, 0x199b, 0x88bc, 0x1736, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x88bc, 0x8378, 0x89ac, 0x8625},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8378, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8378, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8145, 0x88bc, 0x8378, 0x199b, 0x1603, 0x8414, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8378, 0x8145, 0x88bc, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8378, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8378, 0x88bc, 0x289a},
	{0x8145, 0x88bc, 0x8378, 0x199b, 0x1603, 0x8414},
	{0x8034, 0x1736, 0x1603, 0x8145, 0x88bc, 0x8378, 0x89ac, 0x8625},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8378, 0x88bc, 0x199b, 0x1736, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x8145, 0x8378, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8034, 0x8145, 0x8414, 0x8378, 0x88bc, 0x199b, 0x1736, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x8034, 0x1736, 0x1603, 0x2312, 0x8378, 0x8145, 0x88bc, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8378, 0x88bc, 0x199b, 0x1736, 0x8034},
	{0x2201, 0x1736, 0x1603, 0x8034, 0x8414, 0x8145, 0x8378, 0x88bc, 0x289a},
	{0x8034, 0x8145, 0x8414, 0x8378, 0x88bc, 0x199b, 0x1736},
	{0x8034, 0x8378, 0x8547, 0x88bc, 0x89ac, 0x8625, 0x8414},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414, 0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8547, 0x8034, 0x8378, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x8547, 0x8378, 0x88bc, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8547, 0x8034, 0x8378, 0x88bc, 0x289a},
	{0x8034, 0x8378, 0x8547, 0x88bc, 0x199b, 0x1603},
	{0x8378, 0x89ac, 0x88bc, 0x8625, 0x8414, 0x1603, 0x1736, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414, 0x8378, 0x199b, 0x88bc, 0x1736, 0x8547},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8378, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8378, 0x199b, 0x88bc, 0x1736, 0x8547, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8547, 0x8378, 0x88bc, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8378, 0x199b, 0x88bc, 0x1736, 0x8547},
	{0x2201, 0x1736, 0x1603, 0x8547, 0x8378, 0x88bc, 0x289a},
	{0x8378, 0x199b, 0x88bc, 0x1736, 0x8547},
	{0x8267, 0x199b, 0x1736, 0x89ac, 0x8758, 0x8378},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8378, 0x8267, 0x1736, 0x1603},
	{0x2201, 0x2312, 0x8414, 0x8267, 0x199b, 0x1736, 0x89ac, 0x8758, 0x8378},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8378, 0x8267, 0x1736, 0x1603, 0x8414},
	{0x2312, 0x8758, 0x8625, 0x8378, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8378, 0x8267, 0x1736, 0x1603},
	{0x2201, 0x8625, 0x8414, 0x8758, 0x8378, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x8267, 0x1603, 0x1736, 0x8414, 0x8625, 0x8758, 0x8378},
	{0x8034, 0x199b, 0x1603, 0x89ac, 0x8758, 0x8378, 0x8267},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8378, 0x8267, 0x8034},
	{0x2201, 0x199b, 0x1603, 0x89ac, 0x8758, 0x8378, 0x8267, 0x8034, 0x8414, 0x2312},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8378, 0x8267, 0x8034, 0x8414},
	{0x2312, 0x8758, 0x8625, 0x8378, 0x8267, 0x8034, 0x1603, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8378, 0x8267, 0x8034},
	{0x8034, 0x8625, 0x8414, 0x8758, 0x8378, 0x8267, 0x2201, 0x199b, 0x1603, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x8758, 0x8378, 0x8267},
	{0x8034, 0x199b, 0x1736, 0x89ac, 0x8758, 0x8145, 0x8414, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414, 0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x89ac, 0x8758, 0x8145, 0x2312, 0x8267, 0x8378, 0x8547},
	{0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547, 0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a, 0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a, 0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x1603, 0x8414, 0x199b, 0x89ac, 0x8758, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x199b, 0x1603, 0x89ac, 0x8758, 0x8145, 0x2312, 0x8267, 0x8378, 0x8547},
	{0x8267, 0x8378, 0x8547, 0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a, 0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x199b, 0x1603, 0x289a, 0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x8267, 0x8378, 0x8547, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x8267, 0x8378, 0x1736, 0x199b, 0x89ac, 0x8625},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8378, 0x8267, 0x1736, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8378, 0x8267, 0x1736, 0x199b, 0x89ac, 0x8625, 0x2312},
	{0x8145, 0x8267, 0x8378, 0x1736, 0x1603, 0x8414, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8378, 0x8145, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8378, 0x8267, 0x1736, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8378, 0x8267, 0x1736, 0x199b, 0x289a},
	{0x8145, 0x8267, 0x8378, 0x1736, 0x1603, 0x8414},
	{0x8034, 0x199b, 0x1603, 0x89ac, 0x8625, 0x8145, 0x8378, 0x8267},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8378, 0x8267, 0x8034},
	{0x8034, 0x8145, 0x8414, 0x8378, 0x8267, 0x2201, 0x199b, 0x1603, 0x89ac, 0x8625, 0x2312},
	{0x8034, 0x8145, 0x8414, 0x8378, 0x8267, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8378, 0x8145, 0x8267, 0x8034, 0x1603, 0x199b, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8378, 0x8267, 0x8034},
	{0x8034, 0x8145, 0x8414, 0x8378, 0x8267, 0x2201, 0x199b, 0x1603, 0x289a},
	{0x8034, 0x8145, 0x8414, 0x8378, 0x8267},
	{0x8034, 0x199b, 0x1736, 0x89ac, 0x8625, 0x8414, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414, 0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x89ac, 0x8625, 0x2312, 0x8267, 0x8378, 0x8547},
	{0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a, 0x8267, 0x8378, 0x8547},
	{0x8034, 0x1603, 0x1736, 0x8267, 0x8378, 0x8547},
	{0x1603, 0x89ac, 0x199b, 0x8625, 0x8414, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x199b, 0x1603, 0x89ac, 0x8625, 0x2312, 0x8267, 0x8378, 0x8547},
	{0x8267, 0x8378, 0x8547, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x8414, 0x2312, 0x8267, 0x8378, 0x8547},
	{0x2201, 0x199b, 0x1603, 0x289a, 0x8267, 0x8378, 0x8547},
	{0x8267, 0x8378, 0x8547},
	{0x8267, 0x89ac, 0x88bc, 0x8758, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8547, 0x8267, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x2312, 0x8414, 0x8267, 0x89ac, 0x88bc, 0x8758, 0x8547},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8547, 0x8267, 0x88bc, 0x199b, 0x1603, 0x8414},
	{0x2312, 0x8758, 0x8625, 0x8547, 0x8267, 0x88bc, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8547, 0x8267, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8625, 0x8414, 0x8758, 0x8547, 0x8267, 0x88bc, 0x289a},
	{0x8267, 0x199b, 0x88bc, 0x1603, 0x8414, 0x8625, 0x8758, 0x8547},
	{0x8034, 0x1736, 0x1603, 0x8267, 0x88bc, 0x89ac, 0x8758, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8547, 0x8034, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x89ac, 0x8758, 0x8547, 0x8034, 0x8414, 0x2312},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8547, 0x8034, 0x8414, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x2312, 0x8758, 0x8625, 0x8547, 0x8034, 0x1603, 0x1736, 0x8267, 0x88bc, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8547, 0x8034, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x8034, 0x8625, 0x8414, 0x8758, 0x8547, 0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x8758, 0x8547, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x8034, 0x88bc, 0x8267, 0x89ac, 0x8758, 0x8145, 0x8414},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414, 0x8034, 0x88bc, 0x8267, 0x199b, 0x1603},
	{0x2201, 0x8267, 0x8034, 0x88bc, 0x89ac, 0x8758, 0x8145, 0x2312},
	{0x8034, 0x88bc, 0x8267, 0x199b, 0x1603, 0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x8267, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x88bc, 0x8267, 0x199b, 0x1603, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8267, 0x8034, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x8034, 0x88bc, 0x8267, 0x199b, 0x1603, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x1603, 0x8414, 0x1736, 0x8267, 0x88bc, 0x89ac, 0x8758},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x89ac, 0x8758, 0x8145, 0x2312},
	{0x8267, 0x199b, 0x88bc, 0x1736, 0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8267, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8267, 0x199b, 0x88bc, 0x1736, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x8267, 0x199b, 0x88bc, 0x1736, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x8267, 0x8547, 0x88bc, 0x89ac, 0x8625},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8547, 0x8267, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x8267, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8145, 0x8267, 0x8547, 0x88bc, 0x199b, 0x1603, 0x8414, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x8267, 0x88bc, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x8267, 0x88bc, 0x199b, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x8267, 0x88bc, 0x289a},
	{0x8145, 0x8267, 0x8547, 0x88bc, 0x199b, 0x1603, 0x8414},
	{0x8034, 0x1736, 0x1603, 0x8267, 0x88bc, 0x89ac, 0x8625, 0x8145, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8547, 0x8034, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x8267, 0x199b, 0x88bc, 0x1736, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x8034, 0x1603, 0x1736, 0x8267, 0x88bc, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x8034, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x289a},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x8034, 0x88bc, 0x8267, 0x89ac, 0x8625, 0x8414},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414, 0x8034, 0x88bc, 0x8267, 0x199b, 0x1603},
	{0x2201, 0x8267, 0x8034, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8034, 0x88bc, 0x8267, 0x199b, 0x1603, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x8267, 0x88bc, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x88bc, 0x8267, 0x199b, 0x1603},
	{0x2201, 0x8267, 0x8034, 0x88bc, 0x289a},
	{0x8034, 0x88bc, 0x8267, 0x199b, 0x1603},
	{0x8267, 0x89ac, 0x88bc, 0x8625, 0x8414, 0x1603, 0x1736},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x89ac, 0x8625, 0x2312},
	{0x8267, 0x199b, 0x88bc, 0x1736, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x1736, 0x8267, 0x88bc, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8267, 0x199b, 0x88bc, 0x1736},
	{0x2201, 0x1736, 0x1603, 0x8267, 0x88bc, 0x289a},
	{0x8267, 0x199b, 0x88bc, 0x1736},
	{0x1736, 0x89ac, 0x199b, 0x8758, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8547, 0x1736, 0x1603},
	{0x2201, 0x2312, 0x8414, 0x1736, 0x89ac, 0x199b, 0x8758, 0x8547},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8547, 0x1736, 0x1603, 0x8414},
	{0x2312, 0x8758, 0x8625, 0x8547, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8547, 0x1736, 0x1603},
	{0x2201, 0x8625, 0x8414, 0x8758, 0x8547, 0x1736, 0x199b, 0x289a},
	{0x1603, 0x8625, 0x8414, 0x8758, 0x8547, 0x1736},
	{0x8034, 0x199b, 0x1603, 0x89ac, 0x8758, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8547, 0x8034},
	{0x2201, 0x199b, 0x1603, 0x89ac, 0x8758, 0x8547, 0x8034, 0x8414, 0x2312},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8547, 0x8034, 0x8414},
	{0x2312, 0x8758, 0x8625, 0x8547, 0x8034, 0x1603, 0x199b, 0x289a},
	{0x2201, 0x8625, 0x2312, 0x8758, 0x8547, 0x8034},
	{0x8034, 0x8625, 0x8414, 0x8758, 0x8547, 0x2201, 0x199b, 0x1603, 0x289a},
	{0x8034, 0x8625, 0x8414, 0x8758, 0x8547},
	{0x8034, 0x199b, 0x1736, 0x89ac, 0x8758, 0x8145, 0x8414},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414, 0x8034, 0x1603, 0x1736},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x89ac, 0x8758, 0x8145, 0x2312},
	{0x8034, 0x1603, 0x1736, 0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x8034, 0x1603, 0x1736, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x1603, 0x8414, 0x199b, 0x89ac, 0x8758},
	{0x2201, 0x89ac, 0x289a, 0x8758, 0x8145, 0x8414},
	{0x2201, 0x199b, 0x1603, 0x89ac, 0x8758, 0x8145, 0x2312},
	{0x2312, 0x89ac, 0x289a, 0x8758, 0x8145},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x8414, 0x2312, 0x8145, 0x8758, 0x8625},
	{0x2201, 0x199b, 0x1603, 0x289a, 0x8145, 0x8758, 0x8625},
	{0x8145, 0x8758, 0x8625},
	{0x8145, 0x1736, 0x8547, 0x199b, 0x89ac, 0x8625},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8547, 0x1736, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x1736, 0x199b, 0x89ac, 0x8625, 0x2312},
	{0x8145, 0x1736, 0x8547, 0x1603, 0x8414, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x1736, 0x1603},
	{0x2201, 0x8145, 0x8414, 0x8547, 0x1736, 0x199b, 0x289a},
	{0x8145, 0x1736, 0x8547, 0x1603, 0x8414},
	{0x8034, 0x199b, 0x1603, 0x89ac, 0x8625, 0x8145, 0x8547},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8145, 0x8547, 0x8034},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x199b, 0x1603, 0x89ac, 0x8625, 0x2312},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8547, 0x8145, 0x8034, 0x1603, 0x199b, 0x289a},
	{0x2201, 0x8145, 0x2312, 0x8547, 0x8034},
	{0x8034, 0x8145, 0x8414, 0x8547, 0x2201, 0x199b, 0x1603, 0x289a},
	{0x8034, 0x8145, 0x8414, 0x8547},
	{0x8034, 0x199b, 0x1736, 0x89ac, 0x8625, 0x8414},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414, 0x8034, 0x1603, 0x1736},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x89ac, 0x8625, 0x2312},
	{0x8034, 0x1603, 0x1736, 0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x8034, 0x8414, 0x1736, 0x199b, 0x289a},
	{0x2201, 0x8414, 0x2312, 0x8034, 0x1603, 0x1736},
	{0x2201, 0x1736, 0x8034, 0x199b, 0x289a},
	{0x8034, 0x1603, 0x1736},
	{0x1603, 0x89ac, 0x199b, 0x8625, 0x8414},
	{0x2201, 0x89ac, 0x289a, 0x8625, 0x8414},
	{0x2201, 0x199b, 0x1603, 0x89ac, 0x8625, 0x2312},
	{0x2312, 0x89ac, 0x289a, 0x8625},
	{0x2312, 0x1603, 0x8414, 0x199b, 0x289a},
	{0x2201, 0x8414, 0x2312},
	{0x2201, 0x199b, 0x1603, 0x289a},
	{},
}

//-----------------------------------------------------------------------------
