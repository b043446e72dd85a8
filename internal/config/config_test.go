//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg, err := Normalized()
	require.NoError(t, err)

	require.Len(t, cfg.Catalogs, 3)
	assert.Equal(t, 4, cfg.Catalogs[0].DesignatorWidth)
	assert.Equal(t, 3, cfg.Catalogs[2].DesignatorWidth)
	assert.NotContains(t, cfg.ListsDir, "~")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
catalogs:
  - code: "C"
    name: "Cald"
    designator_width: 3
lists_dir: ` + filepath.Join(dir, "lists") + `
observer:
  lat: 47.6
  lon: -122.3
  altitude: 50
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Catalogs, 1)
	assert.Equal(t, "C", cfg.Catalogs[0].Code)
	require.NotNil(t, cfg.Observer)
	assert.InDelta(t, 47.6, cfg.Observer.Lat, 1e-9)
}

func TestLoad_RejectsBadWidth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
catalogs:
  - code: "N"
    name: "NGC"
    designator_width: 0
lists_dir: ` + dir + `
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
