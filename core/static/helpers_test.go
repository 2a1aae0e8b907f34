package static_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// largeText is repetitive enough to shrink substantially under any coding.
var largeText = strings.Repeat("The quick brown fox jumps over the lazy dog.\n", 2000)

// newWebRoot creates <tmp>/www with a small site and a package.json next to
// it, outside the root, to check that traversal cannot reach it.
func newWebRoot(t *testing.T) string {
	t.Helper()

	parent := t.TempDir()
	writeFile(t, filepath.Join(parent, "package.json"), `{"name":"outside"}`)

	root := filepath.Join(parent, "www")
	files := map[string]string{
		"index.html":        "index.html\n",
		"file.html":         "file.html\n",
		"file.htm":          "file.htm\n",
		"file.css":          "body{}\n",
		"file.svg":          "<svg/>\n",
		"file.js":           "void 0;\n",
		"file.png":          "png\n",
		"file.jpeg":         "jpeg\n",
		"file.jpg":          "jpg\n",
		"file.txt":          "file.txt\n",
		"file.unknown":      "???\n",
		"large.txt":         largeText,
		"subdir/index.html": "subdir/index.html\n",
		"subdir/file.html":  "subdir/file.html\n",
		"empty/keep.txt":    "keep\n",
		"test/.gitkeep":     "",
	}
	for name, content := range files {
		writeFile(t, filepath.Join(root, filepath.FromSlash(name)), content)
	}

	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
