//-----------------------------------------------------------------------------
/*

Mesh Sinks

The extraction passes emit vertices and triangles through a MeshSink.
MeshBuilder is the standard sink: it accumulates the emissions into a Mesh
value with flat position/normal/index arrays.

*/
//-----------------------------------------------------------------------------

package render

import (
	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

// MeshSink receives the ordered vertex and triangle emissions of one
// extraction. Sinks must be infallible: a sink that can fail should buffer
// the failure and report it when the caller collects the result.
type MeshSink interface {
	// AddVertex appends a vertex and returns its index.
	// Indices increase strictly from zero.
	AddVertex(position, normal v3.Vec) int
	// AddTriangle appends a triangle. The indices refer to previously
	// added vertices and the winding is already outward.
	AddTriangle(a, b, c int)
}

//-----------------------------------------------------------------------------

// Mesh is a triangle mesh as flat arrays. Vertex i has its position at
// Positions[3*i:3*i+3] and its normal at Normals[3*i:3*i+3]. Triangle i is
// the index triple Indices[3*i:3*i+3].
type Mesh struct {
	Positions []float64
	Normals   []float64
	Indices   []int
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) v3.Vec {
	return v3.Vec{X: m.Positions[3*i], Y: m.Positions[3*i+1], Z: m.Positions[3*i+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) v3.Vec {
	return v3.Vec{X: m.Normals[3*i], Y: m.Normals[3*i+1], Z: m.Normals[3*i+2]}
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c int) {
	return m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
}

//-----------------------------------------------------------------------------

// MeshBuilder accumulates emissions into a Mesh.
type MeshBuilder struct {
	mesh Mesh
}

// NewMeshBuilder returns an empty mesh builder.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// AddVertex implements the MeshSink interface.
func (b *MeshBuilder) AddVertex(position, normal v3.Vec) int {
	i := len(b.mesh.Positions) / 3
	b.mesh.Positions = append(b.mesh.Positions, position.X, position.Y, position.Z)
	b.mesh.Normals = append(b.mesh.Normals, normal.X, normal.Y, normal.Z)
	return i
}

// AddTriangle implements the MeshSink interface.
func (b *MeshBuilder) AddTriangle(x, y, z int) {
	b.mesh.Indices = append(b.mesh.Indices, x, y, z)
}

// Build returns the accumulated mesh.
func (b *MeshBuilder) Build() *Mesh {
	return &b.mesh
}

//-----------------------------------------------------------------------------
