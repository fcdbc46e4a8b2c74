// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package manifest reads shape definitions from files.
//
// Three formats are supported, selected by file extension: YAML
// (.yaml/.yml), HCL (.hcl) and txtar (.txtar). Every format decodes to
// the same loose entry form, so normalization applies the same
// file-versus-directory rules no matter how the shape was written.
//
// Decoders report every malformed entry in a document, not just the
// first, so authors can fix a manifest in one pass.
package manifest
