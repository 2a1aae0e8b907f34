package static

import (
	"maps"
	"strings"
)

// DefaultContentType is used for extensions missing from the table.
const DefaultContentType = "application/octet-stream"

// Content types served for well-known extensions.
const (
	TypeHTML       = "text/html"
	TypeCSS        = "text/css"
	TypePlain      = "text/plain"
	TypeJavaScript = "application/javascript"
	TypeJSON       = "application/json"
	TypeXML        = "application/xml"
	TypeManifest   = "application/manifest+json"
	TypeWASM       = "application/wasm"
	TypePDF        = "application/pdf"
	TypeSVG        = "image/svg+xml"
	TypePNG        = "image/png"
	TypeJPEG       = "image/jpeg"
	TypeGIF        = "image/gif"
	TypeWebP       = "image/webp"
	TypeIcon       = "image/x-icon"
	TypeWOFF       = "font/woff"
	TypeWOFF2      = "font/woff2"
)

// MIMETypes maps lower-case extensions, dot included, to content types.
type MIMETypes map[string]string

var defaultMIMETypes = MIMETypes{
	".html":        TypeHTML,
	".htm":         TypeHTML,
	".css":         TypeCSS,
	".txt":         TypePlain,
	".js":          TypeJavaScript,
	".mjs":         TypeJavaScript,
	".map":         TypeJSON,
	".json":        TypeJSON,
	".xml":         TypeXML,
	".webmanifest": TypeManifest,
	".wasm":        TypeWASM,
	".pdf":         TypePDF,
	".svg":         TypeSVG,
	".png":         TypePNG,
	".jpeg":        TypeJPEG,
	".jpg":         TypeJPEG,
	".gif":         TypeGIF,
	".webp":        TypeWebP,
	".ico":         TypeIcon,
	".woff":        TypeWOFF,
	".woff2":       TypeWOFF2,
}

// DefaultMIMETypes returns a copy of the built-in table.
func DefaultMIMETypes() MIMETypes {
	return maps.Clone(defaultMIMETypes)
}

// Lookup returns the content type for ext, or DefaultContentType.
// The leading dot is optional and case is ignored.
func (m MIMETypes) Lookup(ext string) string {
	if ct, ok := m[normalizeExt(ext)]; ok {
		return ct
	}
	return DefaultContentType
}

// ContentType looks ext up in the built-in table.
func ContentType(ext string) string {
	return defaultMIMETypes.Lookup(ext)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}
