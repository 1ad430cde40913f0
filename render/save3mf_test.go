//-----------------------------------------------------------------------------
/*

3MF writer tests.

*/
//-----------------------------------------------------------------------------

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deadsy/transvoxel/sdf"
	v3 "github.com/deadsy/transvoxel/vec/v3"
)

//-----------------------------------------------------------------------------

func TestSave3MF(t *testing.T) {
	sphere := sdf.NewSphere(v3.Vec{X: 5, Y: 5, Z: 5}, 2.5)
	m, err := ExtractMesh(sphere, testBlock(), 0, NoSides)
	require.NoError(t, err)
	require.NotZero(t, m.TriangleCount())

	path := filepath.Join(t.TempDir(), "sphere.3mf")
	require.NoError(t, Save3MF(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestSave3MFEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.3mf")
	assert.Error(t, Save3MF(path, &Mesh{}))
}

//-----------------------------------------------------------------------------
