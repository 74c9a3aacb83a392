// Package mimetype maps file extensions to the MIME type recorded for each static file.
package mimetype

import "strings"

// Fallback MIME type of any unknown extension
const Fallback = "application/octet-stream"

var byExtension = map[string]string{
	"svg":  "image/svg+xml",
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
	"css":  "text/css",
	"js":   "application/javascript",
	"wasm": "application/wasm",
}

// FromExtension returns the MIME type of the extension, without the leading dot. The lookup is case-insensitive,
// never fails and returns Fallback for unknown (or empty) extensions.
func FromExtension(extension string) string {
	if mime, exists := byExtension[strings.ToLower(strings.TrimPrefix(extension, "."))]; exists {
		return mime
	}
	return Fallback
}
