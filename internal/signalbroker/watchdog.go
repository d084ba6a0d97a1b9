// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/rush/internal/ctxlog"
)

// Watch drains sigCh until it is closed and returns the number of signals absorbed.
// The foreground child shares the terminal's process group, so it receives the same
// signal and handles it with its own disposition.
func Watch(ctx context.Context, sigCh <-chan os.Signal) int {
	n := 0

	for sig := range sigCh {
		n++

		ctxlog.Logger(ctx).Debug("watchdog", "detail", "signal absorbed by shell", "signal", sig.String())
	}

	return n
}
