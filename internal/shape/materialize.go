// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shape

import (
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrCreateDir is returned when a directory in the shape cannot be created.
	ErrCreateDir = errors.New("failed to create directory")
	// ErrWriteFile is returned when a file in the shape cannot be written.
	ErrWriteFile = errors.New("failed to write file")
)

const (
	// dirPerm is the mode for directories created during materialization.
	dirPerm = 0o755
	// filePerm is the mode for files created during materialization.
	filePerm = 0o644
)

// Create materializes a normalized shape beneath base on the given
// filesystem. Directory entries are created with all missing parents;
// file entries get their parent directories created on demand and are
// then written with exactly their content, overwriting any existing
// file. Nothing is ever deleted, and collisions with pre-existing
// entries are not guarded against.
//
// Entries are processed in the order given, but the result does not
// depend on that order: a child listed before its parent, or a path
// whose ancestors are never listed at all, still ends up under the
// directories it implies.
//
// Create is not atomic. A failed entry aborts with its error, leaving
// the entries already materialized in place.
func Create(fsys afero.Fs, base string, entries Shape) error {
	for _, entry := range entries {
		target := filepath.Join(base, filepath.FromSlash(entry.Name))

		if entry.IsDir() {
			if err := fsys.MkdirAll(target, dirPerm); err != nil {
				return errors.Join(ErrCreateDir, err)
			}

			continue
		}

		if err := fsys.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
			return errors.Join(ErrCreateDir, err)
		}

		if err := afero.WriteFile(fsys, target, []byte(*entry.Content), filePerm); err != nil {
			return errors.Join(ErrWriteFile, err)
		}
	}

	return nil
}
