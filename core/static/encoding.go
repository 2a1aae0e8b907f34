package static

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

// Content coding tokens understood by the negotiator.
const (
	EncodingGzip     = "gzip"
	EncodingBrotli   = "br"
	EncodingIdentity = "identity"
)

// Encoder applies one content coding to a response body.
type Encoder interface {
	// Name is the token used in Accept-Encoding and Content-Encoding.
	Name() string
	// Encode returns the encoded form of p. p is not modified.
	Encode(p []byte) ([]byte, error)
}

// NewEncoder returns the encoder for a content coding token.
func NewEncoder(name string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EncodingGzip:
		return &gzipEncoder{level: gzip.DefaultCompression}, nil
	case EncodingBrotli:
		return &brotliEncoder{level: brotli.DefaultCompression}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
}

type gzipEncoder struct {
	level int
	pool  sync.Pool
}

func (e *gzipEncoder) Name() string { return EncodingGzip }

func (e *gzipEncoder) Encode(p []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, ok := e.pool.Get().(*gzip.Writer)
	if ok {
		zw.Reset(&buf)
	} else {
		var err error
		if zw, err = gzip.NewWriterLevel(&buf, e.level); err != nil {
			return nil, fmt.Errorf("create gzip writer: %w", err)
		}
	}
	defer e.release(zw)

	if _, err := zw.Write(p); err != nil {
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}

	return buf.Bytes(), nil
}

// release detaches zw from the request buffer before pooling it.
func (e *gzipEncoder) release(zw *gzip.Writer) {
	zw.Reset(io.Discard)
	e.pool.Put(zw)
}

type brotliEncoder struct {
	level int
	pool  sync.Pool
}

func (e *brotliEncoder) Name() string { return EncodingBrotli }

func (e *brotliEncoder) Encode(p []byte) ([]byte, error) {
	var buf bytes.Buffer

	bw, ok := e.pool.Get().(*brotli.Writer)
	if ok {
		bw.Reset(&buf)
	} else {
		bw = brotli.NewWriterLevel(&buf, e.level)
	}
	defer e.release(bw)

	if _, err := bw.Write(p); err != nil {
		return nil, fmt.Errorf("brotli write: %w", err)
	}
	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("brotli close: %w", err)
	}

	return buf.Bytes(), nil
}

func (e *brotliEncoder) release(bw *brotli.Writer) {
	bw.Reset(io.Discard)
	e.pool.Put(bw)
}

// Negotiator picks a content coding for a request from the codings the
// server has enabled, in the server's order of preference.
type Negotiator struct {
	encoders []Encoder
}

// NewNegotiator builds a negotiator for the given codings. Empty names and
// "identity" are skipped, so an empty list disables compression.
func NewNegotiator(names ...string) (*Negotiator, error) {
	n := &Negotiator{}
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == EncodingIdentity || seen[name] {
			continue
		}
		seen[name] = true

		enc, err := NewEncoder(name)
		if err != nil {
			return nil, err
		}
		n.encoders = append(n.encoders, enc)
	}

	return n, nil
}

// Enabled reports whether any coding is enabled.
func (n *Negotiator) Enabled() bool {
	return len(n.encoders) > 0
}

// Negotiate returns the first enabled encoder whose token appears in the
// request's Accept-Encoding, or nil to send the body unchanged.
func (n *Negotiator) Negotiate(h http.Header) Encoder {
	if len(n.encoders) == 0 {
		return nil
	}

	accepted := AcceptedEncodings(h)
	for _, enc := range n.encoders {
		if _, ok := accepted[enc.Name()]; ok {
			return enc
		}
	}

	return nil
}

// AcceptedEncodings returns the lower-cased coding tokens listed in the
// Accept-Encoding headers of h. Parameters such as q-values are dropped.
func AcceptedEncodings(h http.Header) map[string]struct{} {
	accepted := make(map[string]struct{})

	for _, value := range h.Values("Accept-Encoding") {
		for token := range strings.SplitSeq(value, ",") {
			token, _, _ = strings.Cut(token, ";")
			token = strings.ToLower(strings.TrimSpace(token))
			if token != "" {
				accepted[token] = struct{}{}
			}
		}
	}

	return accepted
}
