// Package manifest discovers static files and organizes them into a namespace tree that mirrors the asset
// directories, plus a flat index of every record in emission order.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/digest"
	"github.com/syntax-framework/statics/mimetype"
	"github.com/syntax-framework/statics/naming"
)

var errorCanonical = cmn.Err(
	"manifest.canonical",
	"Could not resolve the canonical location of the file.", "Path: %s", "Caused by: %s",
)

var errorDuplicate = cmn.Err(
	"manifest.duplicate",
	"Two entries reduce to the same identifier in one scope.",
	"Identifier: %s", "Scope: %q", "First: %s", "Second: %s",
)

// builder the traversal context threaded through the walk
type builder struct {
	cfg      *config
	manifest *Manifest
}

// Build walks each asset directory in the given order, then adds each extra file in the given order.
//
// Every file found in an asset directory is declared in the scope that mirrors its relative directory; the asset
// directory root maps to the flat root. Extra files are always declared unqualified. Any failure aborts the build.
func Build(assetDirs []string, extraFiles []string, opts ...Option) (*Manifest, error) {
	b := &builder{
		cfg:      newConfig(opts),
		manifest: &Manifest{Root: newScope(nil, "")},
	}
	if _, err := digest.Parse(string(b.cfg.algorithm)); err != nil {
		return nil, err
	}

	for _, dir := range assetDirs {
		if err := b.walk(dir, dir, b.manifest.Root); err != nil {
			return nil, err
		}
	}

	for _, file := range extraFiles {
		record, err := b.emit(file, filepath.Dir(file), b.manifest.Root, true)
		if err != nil {
			return nil, err
		}
		b.manifest.Extras = append(b.manifest.Extras, record)
	}

	return b.manifest, nil
}

// emit builds the record of one file and registers it in the scope and in the flat index.
//
// base is the directory the public path is relative to. Extra files never carry a scope path, no matter what
// their relative directory is.
func (b *builder) emit(path string, base string, scope *Scope, extra bool) (*Record, error) {
	if err := naming.ValidPath(path); err != nil {
		return nil, err
	}

	location, err := canonical(path)
	if err != nil {
		return nil, errorCanonical(path, err)
	}

	hash, size, err := digest.File(path, b.cfg.algorithm)
	if err != nil {
		return nil, err
	}
	hash = digest.Truncate(hash, b.cfg.hashLength)

	baseName := filepath.Base(path)
	stem, extension, err := naming.Split(baseName)
	if err != nil {
		return nil, err
	}
	ident, err := naming.Identifier(baseName)
	if err != nil {
		return nil, err
	}

	relDir := ""
	if rel, relErr := filepath.Rel(base, path); relErr == nil && !extra {
		if relDir = filepath.ToSlash(filepath.Dir(rel)); relDir == "." {
			relDir = ""
		}
	}

	if err = scope.declare(ident, path); err != nil {
		return nil, err
	}

	record := &Record{
		Ident:    ident,
		FileName: location,
		Name:     b.publicPath(relDir, stem, hash, extension),
		Mime:     mimetype.FromExtension(extension),
		Hash:     hash,
		Size:     size,
	}
	if !extra {
		record.Scope = naming.Segments(relDir)
		scope.Records = append(scope.Records, record)
	}
	b.manifest.Index = append(b.manifest.Index, record)

	b.cfg.logger.Debug("record", "ref", record.Ref().String(), "name", record.Name, "mime", record.Mime)
	return record, nil
}

// publicPath <prefix>/<relDir>/<stem>-<hash>.<extension>, without the relDir segment when empty
func (b *builder) publicPath(relDir, stem, hash, extension string) string {
	buf := &strings.Builder{}
	buf.WriteString(b.cfg.prefix)
	buf.WriteByte('/')
	if relDir != "" {
		buf.WriteString(relDir)
		buf.WriteByte('/')
	}
	buf.WriteString(fmt.Sprintf("%s-%s.%s", stem, hash, extension))
	return buf.String()
}

// declare reserves the identifier in this scope. Records and child scopes share the scope's identifier space.
func (s *Scope) declare(ident string, path string) error {
	if first, exists := s.names[ident]; exists {
		return errorDuplicate(ident, strings.Join(s.Path, naming.Separator), first, path)
	}
	s.names[ident] = path
	return nil
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err = os.Stat(abs); err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
