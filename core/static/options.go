package static

import (
	"log/slog"
	"slices"
)

// Config holds file serving configuration with environment variable support.
type Config struct {
	// Document root; every served file lives beneath it.
	Root string `env:"STATIC_ROOT,required"`

	// File served for directory requests.
	IndexFile string `env:"STATIC_INDEX" envDefault:"index.html"`

	// Cache-Control sent with every 200 and 304 response.
	CacheControl string `env:"STATIC_CACHE_CONTROL" envDefault:"max-age=3, must-revalidate"`

	// Content codings in order of preference. Empty disables compression.
	Encodings []string `env:"STATIC_ENCODINGS" envDefault:"gzip" envSeparator:","`

	// Largest file served, in bytes. Files are read whole into memory; 0 means no limit.
	MaxFileSize int64 `env:"STATIC_MAX_FILE_SIZE" envDefault:"0"`
}

// DefaultConfig returns a Config for root with the default index file,
// cache policy and gzip compression.
func DefaultConfig(root string) Config {
	return Config{
		Root:         root,
		IndexFile:    DefaultIndexFile,
		CacheControl: DefaultCacheControl,
		Encodings:    []string{EncodingGzip},
	}
}

// DefaultIndexFile is served for directory requests unless overridden.
const DefaultIndexFile = "index.html"

// options is assembled once by New and never changes afterwards.
type options struct {
	indexFile    string
	cacheControl string
	encodings    []string
	maxFileSize  int64
	types        MIMETypes
	logger       *slog.Logger
}

// Option configures a FileServer.
type Option func(*options)

// WithIndexFile sets the file served for directory requests (default: "index.html").
func WithIndexFile(name string) Option {
	return func(o *options) {
		o.indexFile = name
	}
}

// WithCacheControl overrides the Cache-Control policy.
func WithCacheControl(value string) Option {
	return func(o *options) {
		if value != "" {
			o.cacheControl = value
		}
	}
}

// WithEncodings sets the enabled content codings in order of preference.
// Calling it with no arguments disables compression.
func WithEncodings(names ...string) Option {
	return func(o *options) {
		o.encodings = slices.Clone(names)
	}
}

// WithMaxFileSize caps the size of a served file. Each request holds the
// whole file in memory, so this bounds per-request heap. Larger files get a
// 500 and wrap ErrFileTooLarge. Zero or negative means no limit.
func WithMaxFileSize(n int64) Option {
	return func(o *options) {
		o.maxFileSize = n
	}
}

// WithContentType adds or replaces a mapping in the content type table.
func WithContentType(ext, contentType string) Option {
	return func(o *options) {
		o.types[normalizeExt(ext)] = contentType
	}
}

// WithLogger sets the logger used for unexpected faults.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
