//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadObjects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.yaml")
	content := `
- catalog: "N"
  designation: 7000
  obj_type: "Nb"
  const: "Cyg"
  ra: 314.75
  dec: 44.533
  mag: 4.0
- catalog: "M"
  designation: 31
  obj_type: "Gx"
  const: "And"
  ra: 10.685
  dec: 41.269
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	objects, err := LoadObjects(path)
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, ID{CatalogCode: "N", Designation: 7000}, objects[0].ID())
	assert.InDelta(t, 44.533, objects[0].Dec, 1e-9)
}

func TestLoadObjects_MissingFile(t *testing.T) {
	_, err := LoadObjects(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestMemStore_UnknownCatalog(t *testing.T) {
	s := NewMemStore(nil)
	_, err := s.Lookup("Z", 1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Next("Z", 0)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Prev("Z", 10)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBuiltinObjects_LookupAndNeighbor(t *testing.T) {
	s := NewMemStore(BuiltinObjects())
	obj, err := s.Lookup("M", 31)
	require.NoError(t, err)
	assert.Equal(t, "And", obj.Constellation)

	// Neighbor queries skip across the sparse designation space.
	next, err := s.Next("M", 45)
	require.NoError(t, err)
	assert.Equal(t, 51, next.Designation)
}
