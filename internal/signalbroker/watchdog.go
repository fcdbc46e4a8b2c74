// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/treefix/internal/ctxlog"
)

// Exit terminates the process. It is a variable so tests can stub it.
var Exit = os.Exit

// interruptExitCode follows the shell convention of 128 plus SIGINT.
const interruptExitCode = 130

// Watch monitors the signal channel. The first termination signal
// cancels the context so in-flight work can stop cleanly; a second
// signal exits the process immediately.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	canceled := false

	for sig := range sigCh {
		if canceled {
			ctxlog.Logger(ctx).Error("watchdog",
				"detail", "received second signal, forcefully terminating",
				"signal", sig.String())
			Exit(interruptExitCode)

			return
		}

		ctxlog.Logger(ctx).Info("watchdog",
			"detail", "received signal, canceling",
			"signal", sig.String())

		canceled = true

		cancel()
	}
}
