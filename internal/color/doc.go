// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color colorizes strings with ANSI escape codes when the
// process is talking to a terminal. The NO_COLOR and FORCE_COLOR
// environment variables override terminal detection, which is done
// with the golang.org/x/term package.
package color
