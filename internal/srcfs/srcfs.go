// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package srcfs validates and reads a parser's source path through an
// afero.Fs, so the driver's path handling is testable against an
// in-memory filesystem instead of requiring real files on disk.
// Grounded on the teacher's pipelines/stages.WorkerService, which
// threads an afero.Fs field through its constructor; here NewWithFS
// is the constructor that takes the afero.Fs, and New uses the OS
// filesystem.
package srcfs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Sentinel errors distinguishing the ways Read can fail, so a caller
// (m2parse's driver) can map each onto its own spec §6 status code
// with errors.Is rather than parsing fmt.Errorf text.
var (
	ErrInvalidReference  = errors.New("srcfs: empty path")
	ErrInvalidPathname   = errors.New("srcfs: path not found")
	ErrInvalidSourcetype = errors.New("srcfs: not a regular file")
	ErrAllocationFailed  = errors.New("srcfs: failed to read file contents")
)

// Source reads and validates a single source file.
type Source struct {
	fs afero.Fs
}

// New builds a Source backed by the real OS filesystem.
func New() *Source {
	return &Source{fs: afero.NewOsFs()}
}

// NewWithFS builds a Source backed by an arbitrary afero.Fs, for tests
// that want an in-memory filesystem (afero.NewMemMapFs()).
func NewWithFS(fs afero.Fs) *Source {
	return &Source{fs: fs}
}

// Read validates that path is non-empty, exists, and names a regular
// file, then returns its contents. It returns an error (not a
// Diagnostic) since a missing or unreadable source path is an
// allocation/path-validation failure, not a parse-time finding (spec
// §4.A, §6). The error always wraps one of this package's four
// sentinels, so callers can recover which of the four ways Read failed
// with errors.Is.
func (s *Source) Read(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrInvalidReference
	}
	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPathname, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSourcetype, path)
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAllocationFailed, path, err)
	}
	return data, nil
}

// Suffix returns path's file extension, lowercased and without the
// leading dot ("" if path has none). Spec §6's file convention check
// compares this against the module kind the parse discovers.
func Suffix(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filepath.Base(path)), "."))
}

// Basename returns path's file name with its extension stripped, the
// identifier the module-kind's opening/closing name must match (spec
// §4.C.1).
func Basename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
