// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tempdir

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/treefix/internal/shape"
	"github.com/spf13/afero"
)

// FS is a filesystem abstraction used for file operations.
// Default is the OS filesystem, but can be replaced with a mock for testing.
var FS = afero.NewOsFs()

// TempDirPath returns the base directory new fixtures are created under
// when no root is given.
var TempDirPath = os.TempDir

// RandomName generates a random string with the given prefix and length.
var RandomName = func(prefix string, n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return prefix + string(b)
}

var (
	// ErrCreateTempDir is returned when the temporary directory cannot be created.
	ErrCreateTempDir = errors.New("failed to create temporary directory")
	// ErrRemoveTempDir is returned when the temporary directory cannot be removed.
	ErrRemoveTempDir = errors.New("failed to remove temporary directory")
	// ErrNotAcquired is returned when an operation needs the directory to exist.
	ErrNotAcquired = errors.New("temporary directory not acquired")
	// ErrAlreadyAcquired is returned when Create is called on a held fixture.
	ErrAlreadyAcquired = errors.New("temporary directory already acquired")
)

const (
	// namePrefix is the prefix for generated directory names.
	namePrefix = "treefix_"
	// suffixLength is the length of the random suffix for generated names.
	suffixLength = 8
	// dirPerm is the mode for the created directory, private like mkdtemp.
	dirPerm = 0o700
)

// A TempDir is a temporary directory resource with an explicit
// acquire/release lifecycle. The zero value is not acquired; Create
// acquires, Release removes the directory and all its contents.
type TempDir struct {
	root string
	path string
}

// New returns an unacquired fixture that will create its directory
// under the process default temp location.
func New() *TempDir {
	return &TempDir{}
}

// Under returns an unacquired fixture that will create its directory
// under root instead of the process default temp location.
func Under(root string) *TempDir {
	return &TempDir{root: root}
}

// Create acquires the fixture: it makes a fresh uniquely-named
// directory, creating the root first if it is missing.
func (d *TempDir) Create() error {
	if d.path != "" {
		return ErrAlreadyAcquired
	}

	base := d.root
	if base == "" {
		base = TempDirPath()
	}

	path := filepath.Join(base, RandomName(namePrefix, suffixLength))
	if err := FS.MkdirAll(path, dirPerm); err != nil {
		return errors.Join(ErrCreateTempDir, err)
	}

	d.path = path

	return nil
}

// Path returns the directory path, or the empty string before Create
// and after Release.
func (d *TempDir) Path() string {
	return d.path
}

// Join returns the absolute path of a child of the directory. It
// returns the empty string when the fixture is not acquired.
func (d *TempDir) Join(children ...string) string {
	if d.path == "" {
		return ""
	}

	return filepath.Join(append([]string{d.path}, children...)...)
}

// MakeTree normalizes the given raw entries and materializes the
// resulting shape under the directory.
func (d *TempDir) MakeTree(raws ...shape.RawEntry) error {
	if d.path == "" {
		return ErrNotAcquired
	}

	entries, err := shape.Normalize(raws)
	if err != nil {
		return err
	}

	return shape.Create(FS, d.path, entries)
}

// Release removes the directory and everything beneath it, regardless
// of what happened while the fixture was held.
func (d *TempDir) Release() error {
	if d.path == "" {
		return ErrNotAcquired
	}

	if err := FS.RemoveAll(d.path); err != nil {
		return errors.Join(ErrRemoveTempDir, err)
	}

	d.path = ""

	return nil
}

// ForTest creates a temporary directory for the duration of a test.
// The directory is removed when the test passes and kept for
// inspection when it fails.
func ForTest(t *testing.T) *TempDir {
	t.Helper()

	d := New()
	if err := d.Create(); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("temporary files left in %v", d.Path())
			return
		}

		if err := d.Release(); err != nil {
			t.Logf("releasing temporary directory: %v", err)
		}
	})

	return d
}
