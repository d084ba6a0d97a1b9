// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the rush shell.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/rush"
	"github.com/matt-FFFFFF/rush/cmd"
	"github.com/matt-FFFFFF/rush/internal/ctxlog"
	"github.com/matt-FFFFFF/rush/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	// Ctrl-C and Ctrl-\ reach the foreground child, never the shell.
	stop := signalbroker.Shield(ctx)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", rush.Version, rush.Commit)

	err := cmd.RootCmd.Run(ctx, os.Args) // exit codes are handled by the cli framework

	stop()
	cancel()

	if err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}

	os.Exit(0)
}
