package style

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/lsx/internal/entry"
)

func TestNoColorRendersPlainText(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), nil, 0o644))

	e, err := entry.FromPath(filepath.Join(dir, "f"))
	require.NoError(t, err)

	th := NoColor()
	assert.Equal(t, filepath.Join(dir, "f"), th.Render(e))
}

func TestStyleSelectionByClassification(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "exe"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.Symlink("exe", filepath.Join(dir, "ok-link")))
	require.NoError(t, os.Symlink("gone", filepath.Join(dir, "bad-link")))

	th := Default()

	sub, err := entry.FromPath(filepath.Join(dir, "sub"))
	require.NoError(t, err)
	assert.Equal(t, th.Directory.Render(sub.Name), th.Render(sub))

	exe, err := entry.FromPath(filepath.Join(dir, "exe"))
	require.NoError(t, err)
	assert.Equal(t, th.Executable.Render(exe.Name), th.Render(exe))

	okLink, err := entry.FromPath(filepath.Join(dir, "ok-link"))
	require.NoError(t, err)
	assert.Equal(t, th.Symlink.Render(okLink.Name), th.Render(okLink))

	badLink, err := entry.FromPath(filepath.Join(dir, "bad-link"))
	require.NoError(t, err)
	assert.Equal(t, th.Broken.Render(badLink.Name), th.Render(badLink))
}

func TestFromColorsOverridesPalette(t *testing.T) {
	th := FromColors(Colors{Directory: "33"})
	def := Default()

	// Only the overridden slot changes.
	assert.NotEqual(t, def.Directory, th.Directory)
	assert.Equal(t, def.Symlink, th.Symlink)
}
