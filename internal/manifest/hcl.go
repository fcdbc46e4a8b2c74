// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/matt-FFFFFF/treefix/internal/shape"
	"github.com/zclconf/go-cty/cty"
)

// ErrParseManifestFile is returned when there is an error parsing the
// manifest file.
var ErrParseManifestFile = errors.New("failed to parse manifest file")

// ErrInvalidBlock represents an error for an unsupported block type in
// a manifest.
type ErrInvalidBlock struct {
	BlockType string
	Range     hcl.Range
}

// NewErrInvalidBlock creates a new ErrInvalidBlock with the specified
// block type and range.
func NewErrInvalidBlock(blockType string, r hcl.Range) *ErrInvalidBlock {
	return &ErrInvalidBlock{
		BlockType: blockType,
		Range:     r,
	}
}

// Error implements the error interface for ErrInvalidBlock.
func (e *ErrInvalidBlock) Error() string {
	return fmt.Sprintf("invalid block type: %s at %s", e.BlockType, e.Range.String())
}

const (
	treeBlockType = "tree"
	dirBlockType  = "dir"
	fileBlockType = "file"
	contentAttr   = "content"
)

// decodeHCL decodes a manifest of the form:
//
//	tree "demo" {
//	  dir "a/b" {}
//	  file "c.txt" {
//	    content = "hello"
//	  }
//	}
//
// The block type states the file-versus-directory intent, so dir names
// are canonicalized with a trailing separator and file blocks without
// content take the bare-name semantics of generated placeholder
// content.
func decodeHCL(data []byte, filename string) (Definition, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		var merr error
		for _, diagErr := range diags.Errs() {
			merr = multierror.Append(merr, diagErr)
		}

		return Definition{}, errors.Join(ErrParseManifestFile, merr)
	}

	body := file.Body.(*hclsyntax.Body)

	var (
		def  Definition
		merr error
	)

	for name, attr := range body.Attributes {
		merr = multierror.Append(merr, fmt.Errorf(
			"unsupported argument %q at %s", name, attr.SrcRange.String()))
	}

	for _, block := range body.Blocks {
		if block.Type != treeBlockType {
			merr = multierror.Append(merr, NewErrInvalidBlock(block.Type, block.DefRange()))
			continue
		}

		if def.Name == "" && len(block.Labels) > 0 {
			def.Name = block.Labels[0]
		}

		entries, err := decodeTreeBlock(block)
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		def.Entries = append(def.Entries, entries...)
	}

	if merr != nil {
		return Definition{}, errors.Join(ErrParseManifestFile, merr)
	}

	return def, nil
}

func decodeTreeBlock(block *hclsyntax.Block) ([]shape.RawEntry, error) {
	var (
		raws []shape.RawEntry
		merr error
	)

	for name, attr := range block.Body.Attributes {
		merr = multierror.Append(merr, fmt.Errorf(
			"unsupported argument %q at %s", name, attr.SrcRange.String()))
	}

	for _, inner := range block.Body.Blocks {
		var (
			raw shape.RawEntry
			err error
		)

		switch inner.Type {
		case dirBlockType:
			raw, err = decodeDirBlock(inner)
		case fileBlockType:
			raw, err = decodeFileBlock(inner)
		default:
			err = NewErrInvalidBlock(inner.Type, inner.DefRange())
		}

		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		raws = append(raws, raw)
	}

	return raws, merr
}

func decodeDirBlock(block *hclsyntax.Block) (shape.RawEntry, error) {
	name, err := blockLabel(block)
	if err != nil {
		return nil, err
	}

	if err := rejectBlockContents(block, nil); err != nil {
		return nil, err
	}

	if !strings.HasSuffix(name, shape.Sep) {
		name += shape.Sep
	}

	return shape.Dir(name), nil
}

func decodeFileBlock(block *hclsyntax.Block) (shape.RawEntry, error) {
	name, err := blockLabel(block)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(name, shape.Sep) {
		return nil, fmt.Errorf("file name must not end with %q at %s",
			shape.Sep, block.DefRange().String())
	}

	if err := rejectBlockContents(block, map[string]struct{}{contentAttr: {}}); err != nil {
		return nil, err
	}

	attr, ok := block.Body.Attributes[contentAttr]
	if !ok {
		return shape.Path(name), nil
	}

	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		var merr error
		for _, diagErr := range diags.Errs() {
			merr = multierror.Append(merr, diagErr)
		}

		return nil, merr
	}

	if val.IsNull() {
		// An explicit null, the pair form of a directory. Normalization
		// rejects it for a file name, same as every other format.
		return shape.RawEntry{&name, nil}, nil
	}

	if val.Type() != cty.String {
		return nil, fmt.Errorf("content must be a string at %s", attr.SrcRange.String())
	}

	return shape.File(name, val.AsString()), nil
}

func blockLabel(block *hclsyntax.Block) (string, error) {
	if len(block.Labels) != 1 {
		return "", fmt.Errorf("%s block requires exactly one name label at %s",
			block.Type, block.DefRange().String())
	}

	return block.Labels[0], nil
}

// rejectBlockContents errors on nested blocks and on attributes outside
// the allowed set.
func rejectBlockContents(block *hclsyntax.Block, allowedAttrs map[string]struct{}) error {
	var merr error

	for name, attr := range block.Body.Attributes {
		if _, ok := allowedAttrs[name]; ok {
			continue
		}

		merr = multierror.Append(merr, fmt.Errorf(
			"unsupported argument %q at %s", name, attr.SrcRange.String()))
	}

	for _, inner := range block.Body.Blocks {
		merr = multierror.Append(merr, NewErrInvalidBlock(inner.Type, inner.DefRange()))
	}

	return merr
}
