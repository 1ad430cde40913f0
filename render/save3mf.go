//-----------------------------------------------------------------------------
/*

Save a mesh to a 3MF file.

https://3mf.io/specification/

*/
//-----------------------------------------------------------------------------

package render

import (
	"fmt"

	"github.com/hpinc/go3mf"
)

//-----------------------------------------------------------------------------

// Save3MF writes a mesh to a 3MF file.
func Save3MF(path string, m *Mesh) error {
	if m.TriangleCount() == 0 {
		return fmt.Errorf("mesh has no triangles")
	}

	mesh := new(go3mf.Mesh)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex,
			go3mf.Point3D{float32(p.X), float32(p.Y), float32(p.Z)})
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle,
			go3mf.Triangle{V1: uint32(a), V2: uint32(b), V3: uint32(c)})
	}

	model := new(go3mf.Model)
	obj := &go3mf.Object{ID: 1, Mesh: mesh}
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: obj.ID})

	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return err
	}
	if err := w.Encode(model); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

//-----------------------------------------------------------------------------
