package static

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dmitrymomot/webroot/core/logger"
)

// Request is the part of an HTTP request the file server looks at.
type Request struct {
	Method string
	// Path is the escaped URL path; the resolver decodes it.
	Path   string
	Header http.Header
}

// Response is a fully assembled reply. Body is nil for 304, HEAD and
// error statuses that carry no payload.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Write copies the response to w.
func (r *Response) Write(w http.ResponseWriter) error {
	h := w.Header()
	for k, v := range r.Header {
		h[k] = v
	}

	w.WriteHeader(r.Status)

	if len(r.Body) == 0 {
		return nil
	}
	_, err := w.Write(r.Body)
	return err
}

// FileServer serves files from a document root with ETag revalidation and
// optional compression. Its configuration is fixed at construction, so it
// is safe for concurrent use without locking.
type FileServer struct {
	resolver     *Resolver
	types        MIMETypes
	negotiator   *Negotiator
	cacheControl string
	maxFileSize  int64
	logger       *slog.Logger
}

// New creates a FileServer for root.
// Returns an error if root is not an accessible directory, the index name
// is invalid or an unknown encoding is requested.
func New(root string, opts ...Option) (*FileServer, error) {
	o := &options{
		indexFile:    DefaultIndexFile,
		cacheControl: DefaultCacheControl,
		encodings:    []string{EncodingGzip},
		types:        DefaultMIMETypes(),
		logger:       logger.Discard(),
	}

	for _, opt := range opts {
		opt(o)
	}

	resolver, err := NewResolver(root, o.indexFile)
	if err != nil {
		return nil, err
	}

	negotiator, err := NewNegotiator(o.encodings...)
	if err != nil {
		return nil, err
	}

	return &FileServer{
		resolver:     resolver,
		types:        o.types,
		negotiator:   negotiator,
		cacheControl: o.cacheControl,
		maxFileSize:  o.maxFileSize,
		logger:       o.logger,
	}, nil
}

// NewFromConfig creates a FileServer from configuration.
// Additional options override config values.
func NewFromConfig(cfg Config, opts ...Option) (*FileServer, error) {
	configOpts := []Option{WithEncodings(cfg.Encodings...)}

	if cfg.IndexFile != "" {
		configOpts = append(configOpts, WithIndexFile(cfg.IndexFile))
	}
	if cfg.CacheControl != "" {
		configOpts = append(configOpts, WithCacheControl(cfg.CacheControl))
	}
	if cfg.MaxFileSize > 0 {
		configOpts = append(configOpts, WithMaxFileSize(cfg.MaxFileSize))
	}

	return New(cfg.Root, append(configOpts, opts...)...)
}

// MustNew is like New but panics on error. Intended for startup code.
func MustNew(root string, opts ...Option) *FileServer {
	fs, err := New(root, opts...)
	if err != nil {
		panic("static.New: " + err.Error())
	}
	return fs
}

// Root returns the absolute document root.
func (s *FileServer) Root() string {
	return s.resolver.Root()
}

// Serve assembles the response for req.
//
// Expected outcomes (404, 405, 304 and 200) are returned as responses.
// The error is non-nil only for faults the client did not cause: a file
// that cannot be read (wrapping ErrReadFailure), a file over the size
// limit (ErrFileTooLarge), an encoder failure, or ctx being done.
func (s *FileServer) Serve(ctx context.Context, req Request) (*Response, error) {
	head := req.Method == http.MethodHead
	if req.Method != "" && req.Method != http.MethodGet && !head {
		return textResponse(http.StatusMethodNotAllowed, http.Header{"Allow": {"GET, HEAD"}}), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := s.resolver.Resolve(req.Path)
	if errors.Is(err, ErrNotFound) {
		return textResponse(http.StatusNotFound, nil), nil
	}
	if err != nil {
		return nil, err
	}

	content, err := s.readFile(file)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	etag := ETag(content)
	header := http.Header{}
	header.Set("ETag", etag)
	header.Set("Cache-Control", s.cacheControl)
	if s.negotiator.Enabled() {
		header.Set("Vary", "Accept-Encoding")
	}

	if NotModified(req.Header, etag) {
		return &Response{Status: http.StatusNotModified, Header: header}, nil
	}

	header.Set("Content-Type", s.types.Lookup(file.Ext))

	body := content
	if enc := s.negotiator.Negotiate(req.Header); enc != nil {
		if body, err = enc.Encode(content); err != nil {
			return nil, fmt.Errorf("encode %s as %s: %w", file.Path, enc.Name(), err)
		}
		header.Set("Content-Encoding", enc.Name())
	}
	header.Set("Content-Length", strconv.Itoa(len(body)))

	if head {
		body = nil
	}

	return &Response{Status: http.StatusOK, Header: header, Body: body}, nil
}

// ServeHTTP implements http.Handler.
// Faults are logged and answered with 500, an expired deadline with 503.
// A request cancelled by the client gets no response.
func (s *FileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()

	resp, err := s.Serve(ctx, Request{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Header: r.Header,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			// The client is gone; nothing it could read.
			s.logger.DebugContext(ctx, "request aborted",
				logger.Component("static"),
				logger.Path(r.URL.Path),
				logger.Elapsed(start),
			)
			return
		case errors.Is(err, context.DeadlineExceeded):
			s.logger.WarnContext(ctx, "request deadline exceeded",
				logger.Component("static"),
				logger.Path(r.URL.Path),
				logger.Elapsed(start),
			)
			resp = textResponse(http.StatusServiceUnavailable, nil)
		default:
			s.logger.ErrorContext(ctx, "failed to serve file",
				logger.Component("static"),
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
			resp = textResponse(http.StatusInternalServerError, nil)
		}
	}

	s.logger.DebugContext(ctx, "served",
		logger.Component("static"),
		logger.Path(r.URL.Path),
		logger.StatusCode(resp.Status),
		logger.ContentType(resp.Header.Get("Content-Type")),
		logger.ETag(resp.Header.Get("ETag")),
		logger.Encoding(resp.Header.Get("Content-Encoding")),
		logger.Elapsed(start),
	)

	if err := resp.Write(w); err != nil {
		s.logger.DebugContext(ctx, "failed to write response",
			logger.Component("static"),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
	}
}

// readFile loads the whole file, since the ETag hashes the full content.
// Memory per request is bounded by maxFileSize when it is set.
func (s *FileServer) readFile(file ResolvedFile) ([]byte, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, file.Path, file.Size, s.maxFileSize)
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	defer f.Close()

	var r io.Reader = f
	if s.maxFileSize > 0 {
		// The file may have grown since it was stat'ed.
		r = io.LimitReader(f, s.maxFileSize+1)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	if s.maxFileSize > 0 && int64(len(content)) > s.maxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFileTooLarge, file.Path, s.maxFileSize)
	}

	return content, nil
}

// textResponse builds a short plain-text response in the style of http.Error.
func textResponse(status int, header http.Header) *Response {
	if header == nil {
		header = http.Header{}
	}

	body := []byte(strconv.Itoa(status) + " " + http.StatusText(status) + "\n")
	header.Set("Content-Type", "text/plain; charset=utf-8")
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &Response{Status: status, Header: header, Body: body}
}
