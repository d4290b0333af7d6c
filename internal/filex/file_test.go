package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDataDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, "a", "b")

	got, err := EnsureDataDir(want)
	require.NoError(t, err)
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDataDir_RelativeToWorkingDirectory(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)

	got, err := EnsureDataDir("data")
	require.NoError(t, err)

	// macOS temp dirs live behind a /private symlink
	wantReal, _ := filepath.EvalSymlinks(filepath.Join(tmp, "data"))
	gotReal, _ := filepath.EvalSymlinks(got)
	require.Equal(t, wantReal, gotReal)
}

func TestEnsureDataDir_Idempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	first, err := EnsureDataDir(dir)
	require.NoError(t, err)
	second, err := EnsureDataDir(dir)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDataDir_FailsWhenFileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	_, err := EnsureDataDir(blocker)
	require.Error(t, err)
}

func TestDataFile(t *testing.T) {
	tmp := t.TempDir()

	p, err := DataFile(filepath.Join(tmp, "d"), "sitekeeper.db")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "d", "sitekeeper.db"), p)

	abs := filepath.Join(tmp, "elsewhere.db")
	p, err = DataFile("ignored", abs)
	require.NoError(t, err)
	require.Equal(t, abs, p)
	_, statErr := os.Stat("ignored")
	require.True(t, os.IsNotExist(statErr))
}
