// Package naming derives namespace paths and identifiers from file system paths.
//
// Path separators, dots and hyphens are replaced by an underscore, so "vendor/jquery-ui/ui.core.js" is declared as
// "ui_core_js" inside the scope path "vendor::jquery_ui".
package naming

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/syntax-framework/statics/cmn"
)

// Separator token between the segments of a qualified reference
const Separator = "::"

var errorInvalid = cmn.Err(
	"naming.invalid",
	"The name is not a valid identifier after sanitization.", "Name: %q", "Identifier: %q",
)

var errorExtension = cmn.Err(
	"naming.extension",
	"The file has no extension.", "Name: %q",
)

var errorUtf8 = cmn.Err(
	"naming.utf8",
	"The path is not valid UTF-8.", "Path: %q",
)

var identifierReplacer = strings.NewReplacer("/", "_", "\\", "_", ".", "_", "-", "_")

// Sanitize replaces path separators, dots and hyphens with "_"
func Sanitize(name string) string {
	return identifierReplacer.Replace(name)
}

// Segments the namespace path of a relative directory: one sanitized segment per directory level, dropping empty
// and "." segments. "vendor/jquery-ui" is ["vendor", "jquery_ui"].
func Segments(relative string) []string {
	var segments []string
	for _, segment := range strings.Split(filepath.ToSlash(relative), "/") {
		if segment == "" || segment == "." {
			continue
		}
		segments = append(segments, Sanitize(segment))
	}
	return segments
}

// Qualify joins the scope path and the identifier with the Separator token. Empty segments are dropped.
func Qualify(scopes []string, identifier string) string {
	parts := make([]string, 0, len(scopes)+1)
	for _, scope := range scopes {
		if scope != "" {
			parts = append(parts, scope)
		}
	}
	parts = append(parts, identifier)
	return strings.Join(parts, Separator)
}

// ScopeName the sanitized name of the last component of a relative directory path
func ScopeName(relative string) (string, error) {
	return Identifier(filepath.Base(relative))
}

// Identifier sanitizes a file or directory base name and checks the result is a valid identifier
func Identifier(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", errorUtf8(name)
	}
	identifier := Sanitize(name)
	if !Valid(identifier) {
		return "", errorInvalid(name, identifier)
	}
	return identifier, nil
}

// Valid checks if s matches [A-Za-z_][A-Za-z0-9_]*
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Split returns the stem and extension (without dot) of a file base name.
//
// The extension starts after the last dot; a leading dot starts the stem, so ".env" has no extension and
// "app.min.js" has the stem "app.min". A name without extension is an error.
func Split(name string) (stem string, extension string, err error) {
	if !utf8.ValidString(name) {
		return "", "", errorUtf8(name)
	}
	index := strings.LastIndexByte(name, '.')
	if index <= 0 || index == len(name)-1 {
		return "", "", errorExtension(name)
	}
	return name[:index], name[index+1:], nil
}

// ValidPath checks that every component of the path is valid UTF-8
func ValidPath(path string) error {
	if !utf8.ValidString(path) {
		return errorUtf8(path)
	}
	return nil
}
