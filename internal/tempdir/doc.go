// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tempdir provides self-cleaning temporary directory fixtures.
//
// TempDir is an acquire/release resource: Create makes a uniquely-named
// directory, Release removes it and everything beneath it. MakeTree
// materializes a shape under the directory, so test setup can declare a
// whole tree in one call.
//
// Nested additionally swaps the process-wide default temporary
// directory to a fresh directory for the duration of a scope, restoring
// the previous default on release. Code that creates temp files through
// os.TempDir during the scope is thereby isolated from, and cannot
// leak into, the real temp location.
package tempdir
