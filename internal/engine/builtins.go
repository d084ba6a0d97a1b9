// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/rush/internal/notify"
)

// ErrNoHomeDir is returned by cd without arguments when the home directory is unknown.
var ErrNoHomeDir = errors.New("home directory is not set")

// Builtin runs a command inside the shell process.
// The boolean is the command outcome. A non-nil error stops the engine and is returned from Run.
type Builtin func(ctx context.Context, n *notify.Notifier, args []string) (bool, error)

// Builtins maps command names to their builtin implementation.
type Builtins map[string]Builtin

// DefaultBuiltins returns the builtins the engine registers by itself.
func DefaultBuiltins() Builtins {
	return Builtins{
		"cd": ChangeDir,
	}
}

// ChangeDir changes the working directory of the shell process to args[0],
// or to the home directory when no argument is given.
func ChangeDir(_ context.Context, n *notify.Notifier, args []string) (bool, error) {
	var target string

	if len(args) > 0 {
		target = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			n.Error("Failed to change the directory!\n%s", errors.Join(ErrNoHomeDir, err))
			return false, nil
		}

		target = home
	}

	if err := os.Chdir(target); err != nil {
		n.Error("Failed to change the directory!\n%s", err)
		return false, nil
	}

	return true, nil
}
