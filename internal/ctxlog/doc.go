// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a structured slog logger in a context.Context so
// that commands and the packages they call share one logger.
//
// The default handler pretty-prints to the console; a JSON handler is
// available for machine-readable output.
package ctxlog
