// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/rush/internal/ctxlog"
)

var _ Launcher = (*OSLauncher)(nil)

// ErrCouldNotStartProcess is returned when the process could not be started.
var ErrCouldNotStartProcess = errors.New("could not start process")

// Launcher starts processes for the engine.
type Launcher interface {
	// Launch starts the executable at path. argv includes the program name as argv[0].
	Launch(ctx context.Context, path string, argv []string) (Process, error)
}

// Process is a started child process.
type Process interface {
	// Pid returns the operating system process identifier.
	Pid() int
	// Wait blocks until the process exits and returns its exit code.
	// A process terminated by a signal reports -1.
	// An error means the state of the child could not be determined.
	Wait() (int, error)
	// Release frees the handle without waiting for the process.
	Release() error
}

// OSLauncher starts real processes that inherit the shell's standard streams,
// environment and working directory.
type OSLauncher struct {
	Stdin  *os.File // Defaults to os.Stdin.
	Stdout *os.File // Defaults to os.Stdout.
	Stderr *os.File // Defaults to os.Stderr.
}

// Launch implements Launcher.
func (l *OSLauncher) Launch(ctx context.Context, path string, argv []string) (Process, error) {
	attr := &os.ProcAttr{
		Env:   os.Environ(),
		Files: []*os.File{orDefault(l.Stdin, os.Stdin), orDefault(l.Stdout, os.Stdout), orDefault(l.Stderr, os.Stderr)},
	}

	ps, err := os.StartProcess(path, argv, attr)
	if err != nil {
		return nil, errors.Join(ErrCouldNotStartProcess, err)
	}

	ctxlog.Debug(ctx, "process started", "pid", ps.Pid, "path", path)

	return &osProcess{ps: ps}, nil
}

func orDefault(f, def *os.File) *os.File {
	if f == nil {
		return def
	}

	return f
}

type osProcess struct {
	ps *os.Process
}

func (p *osProcess) Pid() int {
	return p.ps.Pid
}

func (p *osProcess) Wait() (int, error) {
	state, err := p.ps.Wait()
	if err != nil {
		return -1, err
	}

	return state.ExitCode(), nil
}

func (p *osProcess) Release() error {
	return p.ps.Release()
}
