package static

import (
	"bytes"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderRelease_DetachesBuffer(t *testing.T) {
	t.Parallel()

	t.Run("gzip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		e := &gzipEncoder{level: gzip.DefaultCompression}
		e.release(zw)

		_, err := zw.Write([]byte("after release"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		assert.Zero(t, buf.Len())
	})

	t.Run("brotli", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		bw := brotli.NewWriter(&buf)
		e := &brotliEncoder{level: brotli.DefaultCompression}
		e.release(bw)

		_, err := bw.Write([]byte("after release"))
		require.NoError(t, err)
		require.NoError(t, bw.Close())
		assert.Zero(t, buf.Len())
	})

	t.Run("pooled writer still encodes", func(t *testing.T) {
		t.Parallel()

		e := &gzipEncoder{level: gzip.DefaultCompression}
		for range 3 {
			out, err := e.Encode([]byte("hello"))
			require.NoError(t, err)
			zr, err := gzip.NewReader(bytes.NewReader(out))
			require.NoError(t, err)
			var got bytes.Buffer
			_, err = got.ReadFrom(zr)
			require.NoError(t, err)
			assert.Equal(t, "hello", got.String())
		}
	})
}
