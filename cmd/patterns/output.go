package main

import (
	"io"
	"os"
	"path/filepath"
)

// tempFile is the part of *os.File a transcript write needs.
type tempFile interface {
	io.Writer
	Name() string
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// saveTranscript streams a rendered transcript into path. The bytes go to a
// temporary sibling first and are renamed into place only once complete, so a
// failed run never leaves a half-written transcript behind. It returns the
// number of bytes written.
func saveTranscript(path string, transcript io.WriterTo, perm os.FileMode) (n int64, err error) {
	tmp, err := createTempFile(filepath.Dir(path), "."+filepath.Base(path)+".partial-*")
	if err != nil {
		return 0, err
	}
	partial := tmp.Name()

	defer func() {
		if err != nil {
			_ = removeFile(partial)
		}
	}()

	if n, err = transcript.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return n, err
	}
	if err = tmp.Close(); err != nil {
		return n, err
	}
	if err = chmodFile(partial, perm); err != nil {
		return n, err
	}
	return n, renameFile(partial, path)
}
