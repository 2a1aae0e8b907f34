// Package static serves files from a document root over HTTP.
//
// A request goes through four steps, in order:
//
//   - Path resolution: the escaped URL path is percent-decoded, joined onto
//     the root and cleaned. Anything that ends up outside the root, any
//     missing file and any malformed path is reported as ErrNotFound, so
//     a client cannot learn where the root boundary is. Directories are
//     replaced by their index file.
//   - Content type: the extension of the requested name is looked up in
//     an explicit table (MIMETypes) with application/octet-stream as the
//     fallback.
//   - Revalidation: every successful response carries a strong ETag
//     derived from the file bytes and a fixed Cache-Control policy. A
//     matching If-None-Match yields 304 with the same two headers.
//   - Compression: if the client lists an enabled coding (gzip by default)
//     in Accept-Encoding, the body is compressed and Content-Length is set
//     to the compressed size.
//
// Nothing is cached between requests, so changes on disk are visible on
// the next request.
//
// # Basic Usage
//
//	fs, err := static.New("./public")
//	if err != nil {
//		return err
//	}
//	http.ListenAndServe(":8080", fs)
//
// # Configuration
//
// Config carries env tags for use with core/config:
//
//	var cfg static.Config // STATIC_ROOT, STATIC_INDEX, STATIC_CACHE_CONTROL, STATIC_ENCODINGS, STATIC_MAX_FILE_SIZE
//	config.MustLoad(&cfg)
//
//	fs, err := static.NewFromConfig(cfg, static.WithLogger(log))
//
// Options cover the same ground in code:
//
//	fs, err := static.New("./public",
//		static.WithIndexFile("home.html"),
//		static.WithEncodings(static.EncodingBrotli, static.EncodingGzip),
//		static.WithContentType(".avif", "image/avif"),
//	)
//
// # Without HTTP
//
// FileServer.Serve works on a Request value and returns a Response, which
// is handy for tests and for hosts that are not net/http based:
//
//	resp, err := fs.Serve(ctx, static.Request{
//		Method: http.MethodGet,
//		Path:   "/docs/",
//		Header: http.Header{"Accept-Encoding": {"gzip"}},
//	})
package static
