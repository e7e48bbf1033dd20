// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir) and afero MemMapFs
// PURPOSE: Verify both types.FS implementations behave the same for the
// operations the organizer and restorer rely on

package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/sortdir/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func implementations(t *testing.T) map[string]struct {
	fs   types.FS
	root string
} {
	t.Helper()
	return map[string]struct {
		fs   types.FS
		root string
	}{
		"os":     {fs: NewOS(), root: t.TempDir()},
		"memory": {fs: NewMemory(), root: "/work"},
	}
}

func writeFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	w, err := fs.Create(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

func TestFS_CreateOpenRename(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			src := filepath.Join(impl.root, "a.txt")
			dst := filepath.Join(impl.root, "txt", "a.txt")
			writeFile(t, impl.fs, src, "hello")

			require.NoError(t, impl.fs.MkdirAll(filepath.Dir(dst), 0755))
			require.NoError(t, impl.fs.Rename(src, dst))

			_, err := impl.fs.Lstat(src)
			assert.True(t, os.IsNotExist(err))

			r, err := impl.fs.Open(dst)
			require.NoError(t, err)
			defer r.Close()
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(data))
		})
	}
}

func TestFS_WalkAndReadDir(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			writeFile(t, impl.fs, filepath.Join(impl.root, "b.md"), "b")
			writeFile(t, impl.fs, filepath.Join(impl.root, "sub", "c"), "c")
			require.NoError(t, impl.fs.MkdirAll(filepath.Join(impl.root, "empty"), 0755))

			var files []string
			err := impl.fs.Walk(impl.root, func(path string, info os.FileInfo, err error) error {
				require.NoError(t, err)
				if info.Mode().IsRegular() {
					rel, _ := filepath.Rel(impl.root, path)
					files = append(files, rel)
				}
				return nil
			})
			require.NoError(t, err)
			sort.Strings(files)
			assert.Equal(t, []string{"b.md", filepath.Join("sub", "c")}, files)

			entries, err := impl.fs.ReadDir(filepath.Join(impl.root, "empty"))
			require.NoError(t, err)
			assert.Empty(t, entries)

			require.NoError(t, impl.fs.Remove(filepath.Join(impl.root, "empty")))
			_, err = impl.fs.Stat(filepath.Join(impl.root, "empty"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}
