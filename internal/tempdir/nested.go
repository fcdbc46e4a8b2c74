// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tempdir

import (
	"errors"
	"os"
	"runtime"
)

// ErrSwapTempDir is returned when the default temp location cannot be
// swapped or restored.
var ErrSwapTempDir = errors.New("failed to swap default temporary directory")

// tempEnvKey returns the name of the environment variable os.TempDir
// consults on this platform.
func tempEnvKey() string {
	if runtime.GOOS == "windows" {
		return "TMP"
	}

	return "TMPDIR"
}

// A Nested holds the process-wide default temporary directory swapped
// to a fresh directory of its own. The previous default is restored on
// Release, so nothing that ran during the scope can leave temp files
// behind in the real location.
//
// The guard owns the default exclusively for its scope; it takes no
// locks.
type Nested struct {
	dir     *TempDir
	key     string
	prev    string
	hadPrev bool
}

// NestTemp creates a fresh directory under the current default temp
// location and installs it as the new process-wide default. Callers
// must Release the guard to restore the previous default and remove
// the directory.
func NestTemp() (*Nested, error) {
	dir := New()
	if err := dir.Create(); err != nil {
		return nil, err
	}

	key := tempEnvKey()
	prev, hadPrev := os.LookupEnv(key)

	if err := os.Setenv(key, dir.Path()); err != nil {
		return nil, errors.Join(ErrSwapTempDir, err, dir.Release())
	}

	return &Nested{
		dir:     dir,
		key:     key,
		prev:    prev,
		hadPrev: hadPrev,
	}, nil
}

// Path returns the directory currently installed as the default temp
// location.
func (n *Nested) Path() string {
	return n.dir.Path()
}

// Release restores the previous default temp location exactly,
// unsetting it if it was unset before, then removes the scope's
// directory. Both are attempted even if one fails.
func (n *Nested) Release() error {
	if n.dir.Path() == "" {
		return ErrNotAcquired
	}

	var err error
	if n.hadPrev {
		err = os.Setenv(n.key, n.prev)
	} else {
		err = os.Unsetenv(n.key)
	}

	if err != nil {
		err = errors.Join(ErrSwapTempDir, err)
	}

	return errors.Join(err, n.dir.Release())
}

// Within runs fn with the default temp location swapped to a fresh
// directory, whose path fn receives. The previous default is restored
// on every exit path, including when fn returns an error or panics.
func Within(fn func(path string) error) (err error) {
	nested, err := NestTemp()
	if err != nil {
		return err
	}

	defer func() {
		if rerr := nested.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	return fn(nested.Path())
}
