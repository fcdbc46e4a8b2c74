// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shape converts compact descriptions of directory trees into a
// canonical form and materializes them on a filesystem.
//
// A shape is a list of entries, each describing one file or directory.
// Entries may be loosely specified: a bare name (directories end with a
// slash, files get placeholder content), or a name paired with explicit
// content (null content for directories). Normalization maps every loose
// entry onto the canonical pair form and rejects entries whose name and
// content disagree about whether they describe a file or a directory.
//
// Names always use forward slashes, following the io/fs convention;
// materialization converts to the host separator. Materialization creates
// missing parent directories on demand, so a shape never needs to list
// ancestors first, or at all.
package shape
