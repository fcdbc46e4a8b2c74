// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_SortsByName(t *testing.T) {
	shape, err := Normalize([]RawEntry{
		Path("b/"),
		File("a", "content"),
		Path("c/d"),
	})
	require.NoError(t, err)

	require.Len(t, shape, 3)
	assert.Equal(t, "a", shape[0].Name)
	assert.Equal(t, "b/", shape[1].Name)
	assert.Equal(t, "c/d", shape[2].Name)
}

func TestNormalize_Empty(t *testing.T) {
	shape, err := Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, shape)

	shape, err = Normalize([]RawEntry{})
	require.NoError(t, err)
	assert.Empty(t, shape)
}

func TestNormalize_DuplicatesKeptInOrder(t *testing.T) {
	// Duplicate names are not collapsed and the sort keeps their
	// relative order.
	shape, err := Normalize([]RawEntry{
		File("a", "first"),
		File("b", "other"),
		File("a", "second"),
	})
	require.NoError(t, err)

	require.Len(t, shape, 3)
	assert.Equal(t, "first", *shape[0].Content)
	assert.Equal(t, "second", *shape[1].Content)
	assert.Equal(t, "b", shape[2].Name)
}

func TestNormalize_FirstErrorAborts(t *testing.T) {
	_, err := Normalize([]RawEntry{
		Path("ok/"),
		Dir("broken"),
		File("also-broken/", "stuff"),
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrAmbiguousEntry)
	assert.ErrorContains(t, err, `got ["broken", null]`)
}

func TestNormalize_MixedLooseForms(t *testing.T) {
	shape, err := Normalize([]RawEntry{
		Path("dir/"),
		Path("file"),
		File("named", "with content"),
		Dir("explicit/"),
	})
	require.NoError(t, err)

	require.Len(t, shape, 4)

	assert.Equal(t, "dir/", shape[0].Name)
	assert.True(t, shape[0].IsDir())

	assert.Equal(t, "explicit/", shape[1].Name)
	assert.True(t, shape[1].IsDir())

	assert.Equal(t, "file", shape[2].Name)
	require.NotNil(t, shape[2].Content)
	assert.Equal(t, "The file 'file'.", *shape[2].Content)

	assert.Equal(t, "named", shape[3].Name)
	require.NotNil(t, shape[3].Content)
	assert.Equal(t, "with content", *shape[3].Content)
}
