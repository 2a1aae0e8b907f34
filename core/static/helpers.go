package static

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// withinRoot reports whether the cleaned path p is root itself or lies
// beneath it. Both arguments must already be cleaned absolute paths.
func withinRoot(root, p string) bool {
	if p == root {
		return true
	}

	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}

	return strings.HasPrefix(p, prefix)
}

// isMissing reports whether err means the path does not exist as far as a
// client is concerned.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ENAMETOOLONG) ||
		errors.Is(err, syscall.ELOOP)
}

// statError classifies a stat failure as ErrNotFound or ErrReadFailure.
func statError(err error) error {
	if isMissing(err) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrReadFailure, err)
}

// validateRoot checks at startup that root exists and is a directory and
// returns its absolute, symlink-free form.
func validateRoot(root string) (string, error) {
	if root == "" {
		return "", ErrEmptyRoot
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("stat root %s: %w", resolved, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootNotDirectory, resolved)
	}

	return resolved, nil
}

// validateIndex rejects index names that would let the index substitution
// step walk to another directory.
func validateIndex(index string) error {
	if index == "" {
		return ErrEmptyIndex
	}
	if index == "." || index == ".." || strings.ContainsAny(index, `/\`) || strings.IndexByte(index, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidIndex, index)
	}
	return nil
}
