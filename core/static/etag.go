package static

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultCacheControl lets clients reuse a copy for a few seconds and then
// forces revalidation with If-None-Match.
const DefaultCacheControl = "max-age=3, must-revalidate"

// ETag returns a strong validator for content: its length and its 64-bit
// xxhash, both hex encoded and quoted.
func ETag(content []byte) string {
	var b strings.Builder
	b.Grow(36)
	b.WriteByte('"')
	b.WriteString(strconv.FormatInt(int64(len(content)), 16))
	b.WriteByte('-')
	b.WriteString(strconv.FormatUint(xxhash.Sum64(content), 16))
	b.WriteByte('"')
	return b.String()
}

// NotModified reports whether the If-None-Match header of h matches etag.
// The header may hold a list of tags or "*". Comparison is weak: a W/
// prefix on either side is ignored.
func NotModified(h http.Header, etag string) bool {
	if etag == "" {
		return false
	}

	for _, value := range h.Values("If-None-Match") {
		for tag := range strings.SplitSeq(value, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "*" || (tag != "" && weakMatch(tag, etag)) {
				return true
			}
		}
	}

	return false
}

func weakMatch(a, b string) bool {
	return strings.TrimPrefix(a, "W/") == strings.TrimPrefix(b, "W/")
}
