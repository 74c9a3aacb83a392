// Package output writes the generated artifact to its destination.
package output

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/erinpentecost/byteline"
	"github.com/syntax-framework/statics/cmn"
)

// FileMode of a newly created artifact
const FileMode = 0o644

var errorWrite = cmn.Err(
	"output.write",
	"Could not write the artifact.", "Path: %s", "Caused by: %s",
)

var errorStale = cmn.Err(
	"output.stale",
	"The artifact is not up to date.", "Path: %s", "Line: %d", "Column: %d",
)

// Write replaces the destination with content.
//
// The content goes to a temporary file in the destination directory that is renamed over the destination, so a
// failure never leaves a partial artifact. A destination that already holds the same bytes is left untouched, and
// Write returns false.
func Write(dest string, content []byte) (bool, error) {
	existing, err := os.ReadFile(dest)
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}

	dir := filepath.Dir(dest)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return false, errorWrite(dest, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return false, errorWrite(dest, err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) (bool, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return false, errorWrite(dest, err)
	}

	if err = tmp.Chmod(FileMode); err != nil {
		return fail(err)
	}
	if _, err = tmp.Write(content); err != nil {
		return fail(err)
	}
	if err = tmp.Sync(); err != nil {
		return fail(err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return false, errorWrite(dest, err)
	}
	if err = os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return false, errorWrite(dest, err)
	}
	return true, nil
}

// Check compares the destination with content without writing it. A missing or different destination is an
// output.stale error that points to the first differing position.
func Check(dest string, content []byte) error {
	existing, err := os.ReadFile(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errorStale(dest, 1, 1)
		}
		return errorWrite(dest, err)
	}
	if bytes.Equal(existing, content) {
		return nil
	}
	line, column := Position(existing, content)
	return errorStale(dest, line, column)
}

// Position the 1-based line and column of the first byte where a and b differ
func Position(a, b []byte) (int, int) {
	offset := 0
	for offset < len(a) && offset < len(b) && a[offset] == b[offset] {
		offset++
	}

	longer := a
	if len(b) > len(a) {
		longer = b
	}
	if offset >= len(longer) {
		return 1, 1
	}

	lineTracker := byteline.NewReader(bytes.NewReader(longer))
	if _, err := io.Copy(io.Discard, lineTracker); err != nil {
		return 1, 1
	}
	line, column, err := lineTracker.GetLineAndColumn(offset)
	if err != nil {
		return 1, 1
	}
	return line, column
}
