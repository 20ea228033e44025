// Package corpus enumerates the text files of a corpus directory.
package corpus

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the suffix a file name needs to be part of the corpus.
const Ext = ".txt"

// ErrNotDir is returned when the corpus root is not a directory.
var ErrNotDir = errors.New("corpus root is not a directory")

// Files walks root recursively in lexical order and yields the path of
// every regular file whose name ends in Ext. Symbolic links to regular
// files are yielded under the link's path; links to directories are not
// descended into. The walk is lazy: breaking out of the range stops it.
// A traversal error, including a dangling link, is yielded once with an
// empty path and ends the sequence.
func Files(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root && !d.IsDir() {
				return &fs.PathError{Op: "walk", Path: root, Err: ErrNotDir}
			}
			if !strings.HasSuffix(d.Name(), Ext) {
				return nil
			}
			regular, err := isRegular(path, d)
			if err != nil {
				return err
			}
			if !regular {
				return nil
			}
			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil && !stopped {
			yield("", err)
		}
	}
}

// isRegular resolves symbolic links before checking the file type.
func isRegular(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
