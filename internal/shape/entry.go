// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sep is the separator used in shape names on every platform.
const Sep = "/"

var (
	// ErrAmbiguousEntry is returned when an entry's name and content disagree
	// about whether it describes a file or a directory.
	ErrAmbiguousEntry = errors.New("ambiguous directory or file description")
	// ErrMalformedEntry is returned when an entry is not a bare name or a
	// name and content pair.
	ErrMalformedEntry = errors.New("invalid file or directory description")
)

// An Entry is the canonical description of one node in a shape.
// Directory names end with Sep and carry no content; file names do not end
// with Sep and always carry content.
type Entry struct {
	Name    string
	Content *string
}

// IsDir reports whether the entry describes a directory.
func (e Entry) IsDir() bool {
	return e.Content == nil
}

// Raw converts the entry back into its raw pair form.
func (e Entry) Raw() RawEntry {
	return RawEntry{&e.Name, e.Content}
}

// A RawEntry is one loosely-specified file or directory description: the
// elements of a manifest tuple, in order. A nil element is an explicit null.
// Valid raw entries have one element (a bare name) or two (a name and its
// content); anything else fails normalization.
//
// Use Path, File and Dir to build raw entries in code. Manifest decoders
// construct them directly from whatever the input document contains, so
// that malformed input is rejected by NormalizeEntry rather than guessed at.
type RawEntry []*string

// Path returns the bare-name form of a raw entry. Names ending in Sep
// denote directories; any other name denotes a file whose content will be
// generated during normalization.
func Path(name string) RawEntry {
	return RawEntry{&name}
}

// File returns the explicit pair form of a raw file entry.
func File(name, content string) RawEntry {
	return RawEntry{&name, &content}
}

// Dir returns the explicit pair form of a raw directory entry: a name with
// null content.
func Dir(name string) RawEntry {
	return RawEntry{&name, nil}
}

// String renders the raw entry the way it would appear in a manifest
// sequence, quoting elements and spelling nulls out.
func (r RawEntry) String() string {
	elems := make([]string, len(r))

	for i, p := range r {
		if p == nil {
			elems[i] = "null"
			continue
		}

		elems[i] = strconv.Quote(*p)
	}

	return "[" + strings.Join(elems, ", ") + "]"
}

// NormalizeEntry maps a raw entry onto its canonical form.
//
// A bare directory name becomes a pair with null content. A bare file name
// becomes a pair with placeholder content naming the file. Explicit pairs
// pass through unchanged when consistent. A pair whose name and content
// disagree about file-versus-directory intent is rejected rather than
// guessed at, as is any entry with no name or more than two elements.
//
// Normalizing the raw form of a canonical entry yields the same entry.
func NormalizeEntry(raw RawEntry) (Entry, error) {
	switch len(raw) {
	case 1:
		if raw[0] == nil {
			return Entry{}, fmt.Errorf("%w: %s", ErrMalformedEntry, raw)
		}

		name := *raw[0]
		if strings.HasSuffix(name, Sep) {
			return Entry{Name: name}, nil
		}

		content := fmt.Sprintf("The file '%s'.", name)

		return Entry{Name: name, Content: &content}, nil
	case 2: //nolint:mnd
		if raw[0] == nil {
			return Entry{}, fmt.Errorf("%w: %s", ErrMalformedEntry, raw)
		}

		name := *raw[0]
		isDir := strings.HasSuffix(name, Sep)

		switch {
		case isDir && raw[1] == nil:
			return Entry{Name: name}, nil
		case !isDir && raw[1] != nil:
			content := *raw[1]
			return Entry{Name: name, Content: &content}, nil
		default:
			return Entry{}, fmt.Errorf(
				"%w: directories must end with %q and have no content, "+
					"files do not end with %q and must have content, got %s",
				ErrAmbiguousEntry, Sep, Sep, raw)
		}
	default:
		return Entry{}, fmt.Errorf("%w: %s", ErrMalformedEntry, raw)
	}
}
