// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/treefix/internal/shape"
)

var (
	// ErrInvalidYaml is returned when the manifest is not valid YAML.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidEntry is returned when a manifest entry cannot be decoded.
	// It aggregates one error per bad entry.
	ErrInvalidEntry = errors.New("invalid manifest entry")
)

// yamlDefinition represents the YAML configuration for a shape manifest.
//
// Each entry is one of:
//   - a scalar string: a bare name
//   - a sequence: the elements of an entry tuple, null allowed
//   - a mapping with "name" and optional "content" keys
type yamlDefinition struct {
	Name    string `yaml:"name"`
	Entries []any  `yaml:"entries"`
}

func decodeYAML(data []byte, _ string) (Definition, error) {
	var doc yamlDefinition
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	def := Definition{Name: doc.Name}

	var merr error

	for i, item := range doc.Entries {
		raw, err := yamlEntry(item)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("entry %d: %w", i, err))
			continue
		}

		def.Entries = append(def.Entries, raw)
	}

	if merr != nil {
		return Definition{}, errors.Join(ErrInvalidEntry, merr)
	}

	return def, nil
}

// yamlEntry maps one decoded YAML value onto a raw entry. Tuples keep
// whatever arity the document gave them, so over-long tuples surface as
// normalization errors rather than being silently truncated.
func yamlEntry(item any) (shape.RawEntry, error) {
	switch v := item.(type) {
	case string:
		return shape.Path(v), nil
	case []any:
		raw := make(shape.RawEntry, 0, len(v))

		for _, elem := range v {
			switch e := elem.(type) {
			case nil:
				raw = append(raw, nil)
			case string:
				s := e
				raw = append(raw, &s)
			default:
				return nil, fmt.Errorf("tuple element must be a string or null, got %T", elem)
			}
		}

		return raw, nil
	case map[string]any:
		return yamlMappingEntry(v)
	default:
		return nil, fmt.Errorf("must be a string, sequence or mapping, got %T", item)
	}
}

func yamlMappingEntry(m map[string]any) (shape.RawEntry, error) {
	for k := range m {
		if k != "name" && k != "content" {
			return nil, fmt.Errorf("unsupported key %q", k)
		}
	}

	nameVal, ok := m["name"]
	if !ok {
		return nil, errors.New("missing name")
	}

	name, ok := nameVal.(string)
	if !ok {
		return nil, fmt.Errorf("name must be a string, got %T", nameVal)
	}

	contentVal, present := m["content"]
	if !present {
		return shape.Path(name), nil
	}

	switch c := contentVal.(type) {
	case nil:
		// An explicit null, the pair form of a directory.
		return shape.RawEntry{&name, nil}, nil
	case string:
		return shape.File(name, c), nil
	default:
		return nil, fmt.Errorf("content must be a string or null, got %T", contentVal)
	}
}
