// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shape

import (
	"slices"
	"strings"
)

// A Shape is a normalized list of entries, sorted by name.
type Shape []Entry

// Normalize converts a list of raw entries into a Shape: every entry is
// normalized with NormalizeEntry, then the result is sorted by name.
// The sort is stable, so duplicate names keep their relative order; no
// deduplication is performed. Sorting gives materialized trees a
// reproducible listing order but is not needed for correctness, because
// Create makes parent directories on demand.
//
// The first entry that fails to normalize aborts with its error.
func Normalize(raws []RawEntry) (Shape, error) {
	entries := make(Shape, 0, len(raws))

	for _, raw := range raws {
		entry, err := NormalizeEntry(raw)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return entries, nil
}
