// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandinpath resolves a command name to an executable file, searching PATH
// when the name has no directory component.
package commandinpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNotFound is returned when no executable with the given name is found.
	ErrNotFound = errors.New("executable file not found")
	// ErrEmptyCommand is returned when the command name is empty.
	ErrEmptyCommand = errors.New("empty command name")
)

// FsFactory returns the filesystem used for lookups.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Find returns the path of the executable for command.
// Names containing a path separator are checked as given, relative to the working directory.
// Otherwise each directory of the PATH environment variable is searched in order;
// an empty PATH entry means the working directory.
func Find(command string) (string, error) {
	if command == "" {
		return "", ErrEmptyCommand
	}

	fs := FsFactory()

	if strings.ContainsRune(command, '/') || strings.ContainsRune(command, filepath.Separator) {
		if isExecutable(fs, command) {
			return command, nil
		}

		return "", fmt.Errorf("%w: %s", ErrNotFound, command)
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}

		candidate := filepath.Join(dir, command)
		if isExecutable(fs, candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w in PATH: %s", ErrNotFound, command)
}

func isExecutable(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	// check if the command is executable if not Windows
	if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
		return false
	}

	return true
}
