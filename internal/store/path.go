package store

import (
	"path"
	"strings"
)

// entriesDir is the subdirectory of the store root holding one file per
// entry.
const entriesDir = "store"

// entrySuffix is appended to an entry's normalized name to produce its
// on-disk file name.
const entrySuffix = ".enc"

// normalizeName validates name against spec.md §4.5 and returns the
// slash-separated path segments it maps to, with entrySuffix already
// stripped/absent. A ".." segment, an absolute path, an empty segment, or
// a drive-letter prefix (e.g. "C:") is rejected with [ErrInvalidName].
func normalizeName(name string) ([]string, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if strings.ContainsRune(name, '\\') {
		return nil, ErrInvalidName
	}
	if path.IsAbs(name) {
		return nil, ErrInvalidName
	}
	if idx := strings.IndexByte(name, ':'); idx >= 0 {
		return nil, ErrInvalidName
	}

	segments := strings.Split(name, "/")
	for _, seg := range segments {
		switch seg {
		case "", ".", "..":
			return nil, ErrInvalidName
		}
	}
	return segments, nil
}

// relFilePath returns the path of name's envelope file relative to the
// store root, e.g. "store/work/github.enc".
func relFilePath(segments []string) string {
	segments = append([]string{}, segments...)
	segments[len(segments)-1] += entrySuffix
	return path.Join(append([]string{entriesDir}, segments...)...)
}
