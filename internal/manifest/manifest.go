// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/treefix/internal/shape"
	"github.com/spf13/afero"
)

var (
	// ErrUnknownFormat is returned when no decoder is registered for a
	// manifest's file extension.
	ErrUnknownFormat = errors.New("unknown manifest format")
	// ErrReadManifest is returned when the manifest file cannot be read.
	ErrReadManifest = errors.New("failed to read manifest")
)

// A Definition is a parsed manifest: a named list of loosely-specified
// entries ready for normalization.
type Definition struct {
	Name    string
	Entries []shape.RawEntry
}

// Shape normalizes the definition's entries.
func (d Definition) Shape() (shape.Shape, error) {
	return shape.Normalize(d.Entries)
}

// A DecodeFunc decodes raw manifest bytes into a Definition. The
// filename is used for position information in errors.
type DecodeFunc func(data []byte, filename string) (Definition, error)

// Registry holds the mapping between file extensions and their decoders.
type Registry map[string]DecodeFunc

// DefaultRegistry is the default registry for manifest formats.
var DefaultRegistry = make(Registry)

// Register registers a decoder for a file extension, including the
// leading dot.
func Register(ext string, fn DecodeFunc) {
	DefaultRegistry[strings.ToLower(ext)] = fn
}

func init() {
	Register(".yaml", decodeYAML)
	Register(".yml", decodeYAML)
	Register(".hcl", decodeHCL)
	Register(".txtar", decodeTxtar)
}

// Decode decodes manifest bytes using the decoder registered for the
// filename's extension.
func Decode(data []byte, filename string) (Definition, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	fn, ok := DefaultRegistry[ext]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return fn(data, filename)
}

// FsFactory returns the filesystem that Load reads manifests from. It
// is swappable for testing.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Load reads and decodes the manifest file at path.
func Load(path string) (Definition, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return Definition{}, errors.Join(ErrReadManifest, err)
	}

	return Decode(data, path)
}
