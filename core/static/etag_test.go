package static_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/webroot/core/static"
)

func TestETag(t *testing.T) {
	t.Parallel()

	a := static.ETag([]byte("hello"))
	assert.Equal(t, a, static.ETag([]byte("hello")), "same content must give the same tag")
	assert.NotEqual(t, a, static.ETag([]byte("hellp")))
	assert.NotEqual(t, a, static.ETag([]byte("hello ")))

	assert.Regexp(t, `^"[0-9a-f]+-[0-9a-f]+"$`, a)
	assert.Regexp(t, `^"0-[0-9a-f]+"$`, static.ETag(nil))
}

func TestNotModified(t *testing.T) {
	t.Parallel()

	etag := static.ETag([]byte("content"))

	tests := []struct {
		name   string
		values []string
		etag   string
		want   bool
	}{
		{name: "no header", etag: etag, want: false},
		{name: "exact match", values: []string{etag}, etag: etag, want: true},
		{name: "mismatch", values: []string{`"other"`}, etag: etag, want: false},
		{name: "unquoted value does not match", values: []string{etag[1 : len(etag)-1]}, etag: etag, want: false},
		{name: "list containing tag", values: []string{`"a", ` + etag + `, "b"`}, etag: etag, want: true},
		{name: "list without tag", values: []string{`"a", "b"`}, etag: etag, want: false},
		{name: "wildcard", values: []string{"*"}, etag: etag, want: true},
		{name: "weak client tag", values: []string{"W/" + etag}, etag: etag, want: true},
		{name: "repeated header", values: []string{`"a"`, etag}, etag: etag, want: true},
		{name: "empty etag never matches", values: []string{`""`, "*"}, etag: "", want: false},
		{name: "empty header value", values: []string{""}, etag: etag, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := http.Header{}
			for _, v := range tt.values {
				h.Add("if-none-match", v)
			}

			assert.Equal(t, tt.want, static.NotModified(h, tt.etag))
		})
	}
}
