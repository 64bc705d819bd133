package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, SortAscending, cfg.Sort)
	assert.Zero(t, cfg.Width)
}

func TestLoadParsesFields(t *testing.T) {
	path := writeConfig(t, `
colors:
  directory: "33"
  symlink: "51"
sort: descending
width: 120
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "33", cfg.Colors.Directory)
	assert.Equal(t, "51", cfg.Colors.Symlink)
	assert.Empty(t, cfg.Colors.Broken)
	assert.Equal(t, SortDescending, cfg.Sort)
	assert.Equal(t, 120, cfg.Width)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "colors: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadSortOrder(t *testing.T) {
	path := writeConfig(t, "sort: sideways")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort order")
}

func TestLoadRejectsNegativeWidth(t *testing.T) {
	path := writeConfig(t, "width: -3")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid width")
}

func TestResolvePrefersExplicitPath(t *testing.T) {
	assert.Equal(t, "/tmp/x.yaml", Resolve("/tmp/x.yaml"))
}

func TestResolveDefaultLocation(t *testing.T) {
	path := Resolve("")
	if path == "" {
		t.Skip("no user config dir in this environment")
	}
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Contains(t, path, "lsx")
}
