package static_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webroot/core/static"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	root := newWebRoot(t)

	t.Run("valid root", func(t *testing.T) {
		t.Parallel()

		r, err := static.NewResolver(root, "index.html")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(r.Root()))
	})

	t.Run("empty root", func(t *testing.T) {
		t.Parallel()

		_, err := static.NewResolver("", "index.html")
		assert.ErrorIs(t, err, static.ErrEmptyRoot)
	})

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()

		_, err := static.NewResolver(filepath.Join(root, "nope"), "index.html")
		assert.Error(t, err)
	})

	t.Run("root is a file", func(t *testing.T) {
		t.Parallel()

		_, err := static.NewResolver(filepath.Join(root, "file.txt"), "index.html")
		assert.ErrorIs(t, err, static.ErrRootNotDirectory)
	})

	t.Run("invalid index names", func(t *testing.T) {
		t.Parallel()

		_, err := static.NewResolver(root, "")
		assert.ErrorIs(t, err, static.ErrEmptyIndex)

		for _, name := range []string{"..", ".", "../index.html", "sub/index.html", `sub\index.html`} {
			_, err := static.NewResolver(root, name)
			assert.ErrorIs(t, err, static.ErrInvalidIndex, name)
		}
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	root := newWebRoot(t)
	r, err := static.NewResolver(root, "index.html")
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		wantFile string
		wantExt  string
	}{
		{name: "empty path serves root index", path: "", wantFile: "index.html", wantExt: ".html"},
		{name: "slash serves root index", path: "/", wantFile: "index.html", wantExt: ".html"},
		{name: "plain file", path: "/file.html", wantFile: "file.html", wantExt: ".html"},
		{name: "subdir with slash", path: "/subdir/", wantFile: "subdir/index.html", wantExt: ".html"},
		{name: "subdir without slash", path: "/subdir", wantFile: "subdir/index.html", wantExt: ".html"},
		{name: "subdir file", path: "/subdir/file.html", wantFile: "subdir/file.html", wantExt: ".html"},
		{name: "parent segment inside root", path: "/test/../file.txt", wantFile: "file.txt", wantExt: ".txt"},
		{name: "encoded parent segment inside root", path: "/test/%2E%2E/file.txt", wantFile: "file.txt", wantExt: ".txt"},
		{name: "lower-case encoding", path: "/test/%2e%2e/file.txt", wantFile: "file.txt", wantExt: ".txt"},
		{name: "current dir segments", path: "/./subdir/./file.html", wantFile: "subdir/file.html", wantExt: ".html"},
		{name: "duplicate slashes", path: "//subdir//file.html", wantFile: "subdir/file.html", wantExt: ".html"},
		{name: "encoded slash", path: "/subdir%2Ffile.html", wantFile: "subdir/file.html", wantExt: ".html"},
		{name: "climb and return", path: "/subdir/../subdir/file.html", wantFile: "subdir/file.html", wantExt: ".html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file, err := r.Resolve(tt.path)
			require.NoError(t, err)

			want, err := filepath.EvalSymlinks(filepath.Join(root, filepath.FromSlash(tt.wantFile)))
			require.NoError(t, err)

			assert.Equal(t, want, file.Path)
			assert.Equal(t, tt.wantExt, file.Ext)

			info, err := os.Stat(want)
			require.NoError(t, err)
			assert.Equal(t, info.Size(), file.Size)
			assert.True(t, info.ModTime().Equal(file.ModTime))
		})
	}
}

func TestResolver_ResolveNotFound(t *testing.T) {
	t.Parallel()

	root := newWebRoot(t)
	r, err := static.NewResolver(root, "index.html")
	require.NoError(t, err)

	paths := []string{
		"/missing.txt",
		"/subdir/missing.html",
		"/empty/",
		"/test",
		"/file.txt/",
		"/file.txt/child",
		"/../package.json",
		"/%2E%2E/package.json",
		"/%2e%2e/package.json",
		"/..%2Fpackage.json",
		"/subdir/../../package.json",
		"/test/%2E%2E/%2E%2E/package.json",
		"..",
		"/..",
		"/%zz",
		"/file%",
		"/file.txt%00.html",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			t.Parallel()

			_, err := r.Resolve(p)
			assert.ErrorIs(t, err, static.ErrNotFound)
		})
	}
}

func TestResolver_RootInsideClimb(t *testing.T) {
	t.Parallel()

	// a file with the same name inside the root must not be served when
	// the request climbs above the root
	root := newWebRoot(t)
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"inside"}`)

	r, err := static.NewResolver(root, "index.html")
	require.NoError(t, err)

	_, err = r.Resolve("/../package.json")
	assert.ErrorIs(t, err, static.ErrNotFound)

	file, err := r.Resolve("/package.json")
	require.NoError(t, err)
	assert.Equal(t, ".json", file.Ext)
}

func TestResolver_Symlinks(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on windows")
	}

	root := newWebRoot(t)
	outside := filepath.Join(filepath.Dir(root), "package.json")

	require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape.json")))
	require.NoError(t, os.Symlink(filepath.Dir(root), filepath.Join(root, "up")))
	require.NoError(t, os.Symlink(filepath.Join(root, "file.txt"), filepath.Join(root, "alias.html")))

	r, err := static.NewResolver(root, "index.html")
	require.NoError(t, err)

	t.Run("link to file outside root", func(t *testing.T) {
		_, err := r.Resolve("/escape.json")
		assert.ErrorIs(t, err, static.ErrNotFound)
	})

	t.Run("link to directory outside root", func(t *testing.T) {
		_, err := r.Resolve("/up/package.json")
		assert.ErrorIs(t, err, static.ErrNotFound)
	})

	t.Run("link inside root", func(t *testing.T) {
		file, err := r.Resolve("/alias.html")
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(filepath.Join(root, "file.txt"))
		require.NoError(t, err)
		assert.Equal(t, want, file.Path)
		assert.Equal(t, ".html", file.Ext)
	})
}
