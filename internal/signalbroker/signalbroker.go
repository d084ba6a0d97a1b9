// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker owns the shell's disposition for the interrupt and quit signals.
//
// An interactive shell must survive Ctrl-C and Ctrl-\ while the programs it runs must not.
// Shield subscribes the shell to SIGINT and SIGQUIT and discards them. Because the signals
// are caught rather than ignored, every child process starts its program image with the
// default disposition: the kernel resets caught handlers on exec, whereas an ignored
// disposition would be inherited.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/rush/internal/ctxlog"
)

var shellSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGQUIT,
}

// New creates a new signal broker channel subscribed to sigs, or to SIGINT and SIGQUIT if none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = shellSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Shield stops sigs (default SIGINT and SIGQUIT) from terminating the current process until
// the returned function is called. It is meant to be called once, at shell startup.
func Shield(ctx context.Context, sigs ...os.Signal) (stop func()) {
	ch := New(ctx, sigs...)
	done := make(chan struct{})

	go func() {
		defer close(done)
		Watch(ctx, ch)
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
		<-done
	}
}
