package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()
	dsn := filepath.Join(tmp, "data", "nested", "ecocollect.db")

	got, err := EnsureParentDir(dsn)
	require.NoError(t, err)

	want := filepath.Join(tmp, "data", "nested")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsureParentDir_StripsFilePrefixAndQuery(t *testing.T) {
	tmp := t.TempDir()
	dsn := "file:" + filepath.Join(tmp, "db", "app.db") + "?_pragma=busy_timeout(5000)"

	got, err := EnsureParentDir(dsn)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "db"), got)
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	dsn := filepath.Join(tmp, "data", "app.db")

	first, err := EnsureParentDir(dsn)
	require.NoError(t, err)
	second, err := EnsureParentDir(dsn)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_MemoryAndBareNames(t *testing.T) {
	got, err := EnsureParentDir(":memory:")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = EnsureParentDir("file:x?mode=memory&cache=shared")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = EnsureParentDir("app.db")
	require.NoError(t, err)
	require.Equal(t, ".", got)
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o660))

	_, err := EnsureParentDir(filepath.Join(blocker, "app.db"))
	require.Error(t, err, "should fail when a file exists with the same name")
}
