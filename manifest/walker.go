package manifest

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/filter"
	"github.com/syntax-framework/statics/naming"
)

var errorReadDir = cmn.Err(
	"manifest.readdir",
	"Could not list the directory.", "Path: %s", "Caused by: %s",
)

var errorStat = cmn.Err(
	"manifest.stat",
	"Could not stat the directory entry.", "Path: %s", "Caused by: %s",
)

var errorSymlink = cmn.Err(
	"manifest.symlink",
	"Symbolic links are not accepted here.", "Path: %s", "Reason: %s",
)

// walk visits one directory of the asset directory rooted at base.
//
// A directory with a non-empty relative path opens (or reuses) the child scope named after it. All files are
// emitted before any subdirectory is visited, and the scope is left once the whole subtree is done.
func (b *builder) walk(dir string, base string, parent *Scope) error {
	rel, err := filepath.Rel(base, dir)
	if err != nil {
		return errorReadDir(dir, err)
	}
	if rel == "." {
		rel = ""
	}

	scope := parent
	if rel != "" {
		if scope, err = b.enter(parent, dir, rel); err != nil {
			return err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return errorReadDir(dir, err)
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		isDir, isFile, err := b.classify(path, entry)
		if err != nil {
			return err
		}
		if !isDir && !isFile {
			b.cfg.logger.Debug("skip irregular file", "path", path)
			continue
		}
		if excluded, err := b.excludes(path, base, isDir); err != nil {
			return err
		} else if excluded {
			b.cfg.logger.Debug("skip excluded entry", "path", path)
			continue
		}

		if isDir {
			subdirs = append(subdirs, path)
			continue
		}
		if _, err = b.emit(path, base, scope, false); err != nil {
			return err
		}
	}

	for _, subdir := range subdirs {
		if err = b.walk(subdir, base, scope); err != nil {
			return err
		}
	}

	if scope != parent {
		b.cfg.logger.Debug("close scope", "scope", strings.Join(scope.Path, naming.Separator))
	}
	return nil
}

// enter opens the scope of a subdirectory. A scope already opened by a previous asset directory for the same
// relative directory is reused; a different directory reducing to the same name is a duplicate.
func (b *builder) enter(parent *Scope, dir string, rel string) (*Scope, error) {
	name, err := naming.ScopeName(rel)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)
	if scope := parent.Child(name); scope != nil {
		if scope.rel != rel {
			return nil, errorDuplicate(name, strings.Join(parent.Path, naming.Separator), parent.names[name], dir)
		}
		b.cfg.logger.Debug("reopen scope", "scope", naming.Qualify(parent.Path, name), "path", dir)
		return scope, nil
	}
	if err = parent.declare(name, dir); err != nil {
		return nil, err
	}
	scope := newScope(parent, name)
	scope.rel = rel
	parent.Children = append(parent.Children, scope)
	b.cfg.logger.Debug("open scope", "scope", naming.Qualify(parent.Path, name), "path", dir)
	return scope, nil
}

// classify resolves what the entry is. Symbolic links are only followed to regular files, and only when enabled.
func (b *builder) classify(path string, entry fs.DirEntry) (isDir bool, isFile bool, err error) {
	mode := entry.Type()
	if mode&fs.ModeSymlink == 0 {
		return mode.IsDir(), mode.IsRegular(), nil
	}
	if !b.cfg.followSymlinks {
		return false, false, errorSymlink(path, "symlink following is disabled")
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, false, errorStat(path, err)
	}
	if info.IsDir() {
		return false, false, errorSymlink(path, "link to a directory")
	}
	return false, info.Mode().IsRegular(), nil
}

func (b *builder) excludes(path string, base string, isDir bool) (bool, error) {
	if b.cfg.filter == nil {
		return false, nil
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false, errorReadDir(path, err)
	}
	candidate := filter.Entry{Path: filepath.ToSlash(rel), IsDir: isDir}
	if !isDir {
		info, err := os.Stat(path)
		if err != nil {
			return false, errorStat(path, err)
		}
		candidate.Size = info.Size()
	}
	return b.cfg.filter.Excludes(candidate)
}
