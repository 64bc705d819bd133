package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/lsx/internal/entry"
)

func tempEntries(t *testing.T) []*entry.Entry {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.log"), make([]byte, 4096), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".secret"), nil, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0o755))

	entries, err := entry.ReadDir(dir, true, nil)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	return entries
}

func matchNames(t *testing.T, f *Filter, entries []*entry.Entry) []string {
	t.Helper()
	var names []string
	for _, e := range entries {
		ok, err := f.Match(e)
		require.NoError(t, err)
		if ok {
			names = append(names, e.Name)
		}
	}
	return names
}

func TestCompileRejectsBadSyntax(t *testing.T) {
	_, err := Compile("name ==")
	assert.Error(t, err)
}

func TestCompileRejectsNonBoolean(t *testing.T) {
	_, err := Compile("size + 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want bool")
}

func TestMatchByName(t *testing.T) {
	entries := tempEntries(t)
	f, err := Compile(`name.endsWith(".txt")`)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt"}, matchNames(t, f, entries))
}

func TestMatchBySize(t *testing.T) {
	entries := tempEntries(t)
	// Directories report filesystem-dependent sizes, so exclude them.
	f, err := Compile("!dir && size >= 4096")
	require.NoError(t, err)
	assert.Equal(t, []string{"big.log"}, matchNames(t, f, entries))
}

func TestMatchDirsAndHidden(t *testing.T) {
	entries := tempEntries(t)

	f, err := Compile("dir")
	require.NoError(t, err)
	assert.Equal(t, []string{"src"}, matchNames(t, f, entries))

	f, err = Compile("hidden && !dir")
	require.NoError(t, err)
	assert.Equal(t, []string{".secret"}, matchNames(t, f, entries))
}

func TestMatchCombined(t *testing.T) {
	entries := tempEntries(t)
	f, err := Compile(`!hidden && (dir || name.contains("notes"))`)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes.txt", "src"}, matchNames(t, f, entries))
}

func TestExprRoundTrip(t *testing.T) {
	f, err := Compile("dir")
	require.NoError(t, err)
	assert.Equal(t, "dir", f.Expr())
}
