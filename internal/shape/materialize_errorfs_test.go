// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shape

import (
	"os"
	"time"

	"github.com/spf13/afero"
)

// errorFS is a filesystem wrapper that returns errors for a specific path.
type errorFS struct {
	fs afero.Fs
	// Path that should generate an error
	errorPath string
}

func (e *errorFS) fails(name string) bool {
	return name == e.errorPath
}

// Create implements afero.Fs.
func (e *errorFS) Create(name string) (afero.File, error) {
	if e.fails(name) {
		return nil, os.ErrPermission
	}

	return e.fs.Create(name)
}

// Mkdir implements afero.Fs.
func (e *errorFS) Mkdir(name string, perm os.FileMode) error {
	if e.fails(name) {
		return os.ErrPermission
	}

	return e.fs.Mkdir(name, perm)
}

// MkdirAll implements afero.Fs.
func (e *errorFS) MkdirAll(path string, perm os.FileMode) error {
	if e.fails(path) {
		return os.ErrPermission
	}

	return e.fs.MkdirAll(path, perm)
}

// Open implements afero.Fs.
func (e *errorFS) Open(name string) (afero.File, error) {
	if e.fails(name) {
		return nil, os.ErrPermission
	}

	return e.fs.Open(name)
}

// OpenFile implements afero.Fs.
func (e *errorFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if e.fails(name) {
		return nil, os.ErrPermission
	}

	return e.fs.OpenFile(name, flag, perm)
}

// Remove implements afero.Fs.
func (e *errorFS) Remove(name string) error {
	if e.fails(name) {
		return os.ErrPermission
	}

	return e.fs.Remove(name)
}

// RemoveAll implements afero.Fs.
func (e *errorFS) RemoveAll(path string) error {
	if e.fails(path) {
		return os.ErrPermission
	}

	return e.fs.RemoveAll(path)
}

// Rename implements afero.Fs.
func (e *errorFS) Rename(oldname, newname string) error {
	if e.fails(oldname) || e.fails(newname) {
		return os.ErrPermission
	}

	return e.fs.Rename(oldname, newname)
}

// Stat implements afero.Fs.
func (e *errorFS) Stat(name string) (os.FileInfo, error) {
	if e.fails(name) {
		return nil, os.ErrPermission
	}

	return e.fs.Stat(name)
}

// Name implements afero.Fs.
func (e *errorFS) Name() string {
	return "errorFS"
}

// Chmod implements afero.Fs.
func (e *errorFS) Chmod(name string, mode os.FileMode) error {
	if e.fails(name) {
		return os.ErrPermission
	}

	return e.fs.Chmod(name, mode)
}

// Chown implements afero.Fs.
func (e *errorFS) Chown(name string, uid, gid int) error {
	if e.fails(name) {
		return os.ErrPermission
	}

	return e.fs.Chown(name, uid, gid)
}

// Chtimes implements afero.Fs.
func (e *errorFS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	if e.fails(name) {
		return os.ErrPermission
	}

	return e.fs.Chtimes(name, atime, mtime)
}
