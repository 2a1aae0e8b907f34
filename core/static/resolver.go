package static

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResolvedFile describes a regular file under the root that a request
// path resolved to.
type ResolvedFile struct {
	Path    string    // absolute, symlink-free path on disk
	Size    int64     // size in bytes at resolution time
	ModTime time.Time // modification time at resolution time
	Ext     string    // extension of the requested name, including the dot
}

// Resolver maps URL paths to files under a fixed root directory.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	root  string
	index string
}

// NewResolver validates root and index and returns a Resolver.
// The root must exist and be a directory; index must be a plain file name.
func NewResolver(root, index string) (*Resolver, error) {
	if err := validateIndex(index); err != nil {
		return nil, err
	}

	cleanRoot, err := validateRoot(root)
	if err != nil {
		return nil, err
	}

	return &Resolver{root: cleanRoot, index: index}, nil
}

// Root returns the absolute root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve maps an escaped URL path to a file under the root.
//
// The path is percent-decoded, joined onto the root and cleaned lexically,
// so "/a/../b" and "/a/%2E%2E/b" both name "<root>/b" while "/../b" names a
// sibling of the root and is rejected. Directories are replaced by their
// index file. Symbolic links are followed and the real target must also
// lie under the root.
//
// Every rejection, whatever the cause, returns ErrNotFound. Only faults
// such as permission errors are reported as ErrReadFailure.
func (r *Resolver) Resolve(rawPath string) (ResolvedFile, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return ResolvedFile{}, ErrNotFound
	}
	if strings.IndexByte(decoded, 0) >= 0 {
		return ResolvedFile{}, ErrNotFound
	}

	candidate := filepath.Join(r.root, filepath.FromSlash(decoded))
	if !withinRoot(r.root, candidate) {
		return ResolvedFile{}, ErrNotFound
	}

	info, err := os.Stat(candidate)
	if err != nil {
		return ResolvedFile{}, statError(err)
	}

	if info.IsDir() {
		candidate = filepath.Join(candidate, r.index)
		if info, err = os.Stat(candidate); err != nil {
			return ResolvedFile{}, statError(err)
		}
	} else if strings.HasSuffix(decoded, "/") {
		// "file.txt/" names a directory that does not exist
		return ResolvedFile{}, ErrNotFound
	}

	if !info.Mode().IsRegular() {
		return ResolvedFile{}, ErrNotFound
	}

	target, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return ResolvedFile{}, statError(err)
	}
	if !withinRoot(r.root, target) {
		return ResolvedFile{}, ErrNotFound
	}

	return ResolvedFile{
		Path:    target,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Ext:     filepath.Ext(candidate),
	}, nil
}
