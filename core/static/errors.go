package static

import "errors"

var (
	// ErrNotFound covers missing files, directories without an index file,
	// malformed paths and attempts to escape the root. Callers must not be
	// able to tell these apart.
	ErrNotFound = errors.New("file not found")

	// ErrReadFailure is an I/O fault other than non-existence.
	ErrReadFailure = errors.New("failed to read file")

	// ErrFileTooLarge is returned for files above the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// Construction errors
	ErrEmptyRoot           = errors.New("root directory is required")
	ErrRootNotDirectory    = errors.New("root is not a directory")
	ErrEmptyIndex          = errors.New("index file name is required")
	ErrInvalidIndex        = errors.New("index file name must be a plain file name")
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
)
