// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker turns termination signals into context
// cancellation so commands can stop cleanly. New registers a channel
// for the usual termination signals and Watch drains it, cancelling
// the context on the first signal and exiting the process on the
// second.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/treefix/internal/ctxlog"
)

// defaultSignals is the termination set watched when New is called
// without an explicit list.
var defaultSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New returns a buffered channel registered for sigs. When sigs is
// empty the default termination set is used.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	if len(sigs) == 0 {
		sigs = defaultSignals
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	ctxlog.Debug(ctx, "signalbroker", "detail", "watching for signals", "signals", sigs)

	return sigCh
}
