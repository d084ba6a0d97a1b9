// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/matt-FFFFFF/rush/internal/command"
	"github.com/matt-FFFFFF/rush/internal/commandinpath"
	"github.com/matt-FFFFFF/rush/internal/ctxlog"
	"github.com/matt-FFFFFF/rush/internal/notify"
)

const (
	notFoundMessage = "Command not found!"
	startedFormat   = "%d started!"
)

// ErrWaitFailed is returned when the operating system cannot report how a foreground child terminated.
var ErrWaitFailed = errors.New("failed to wait for process")

// Engine executes commands. The zero value is not usable, use New.
type Engine struct {
	launcher Launcher
	lookPath func(string) (string, error)
	builtins Builtins
	notifier *notify.Notifier
}

// Option configures an Engine.
type Option func(*Engine)

// WithLauncher sets the process launcher, the default is an OSLauncher.
func WithLauncher(l Launcher) Option {
	return func(e *Engine) {
		e.launcher = l
	}
}

// WithLookPath sets the function resolving an executable name, the default is commandinpath.Find.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(e *Engine) {
		e.lookPath = fn
	}
}

// WithNotifier sets where user notices are written, the default is notify.Default.
func WithNotifier(n *notify.Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithBuiltin registers an additional builtin, replacing any existing one of the same name.
func WithBuiltin(name string, fn Builtin) Option {
	return func(e *Engine) {
		e.builtins[name] = fn
	}
}

// New creates an Engine with the default builtins.
func New(opts ...Option) *Engine {
	e := &Engine{
		launcher: &OSLauncher{},
		lookPath: commandinpath.Find,
		builtins: DefaultBuiltins(),
		notifier: notify.Default,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes cmds in order and reports whether all of them succeeded.
// Processing stops at the first command whose outcome is false.
func (e *Engine) Run(ctx context.Context, cmds []*command.Command) (bool, error) {
	logger := ctxlog.Logger(ctx).With("runnableType", "Engine")

	for i, cmd := range cmds {
		ok, err := e.Execute(ctx, cmd)
		if err != nil {
			return false, err
		}

		if !ok {
			logger.Debug("command failed, skipping the rest of the line",
				"command", cmd.String(), "index", i, "skipped", len(cmds)-i-1)

			return false, nil
		}
	}

	return true, nil
}

// Execute runs cmd and, if it fails, its fallback chain until one link succeeds.
// A builtin's outcome is final, so a failing builtin does not start its fallback.
func (e *Engine) Execute(ctx context.Context, cmd *command.Command) (bool, error) {
	logger := ctxlog.Logger(ctx).With("executable", cmd.Executable, "background", cmd.Background)

	if builtin, ok := e.builtins[cmd.Executable]; ok {
		logger.Debug("running builtin", "args", cmd.Args)
		return builtin(ctx, e.notifier, cmd.Args)
	}

	ok, err := e.spawn(ctx, logger, cmd)
	if err != nil || ok || cmd.Fallback == nil {
		return ok, err
	}

	logger.Debug("trying fallback", "fallback", cmd.Fallback.Executable)

	return e.Execute(ctx, cmd.Fallback)
}

// spawn starts cmd as a process, waiting for it unless it runs in the background.
func (e *Engine) spawn(ctx context.Context, logger *slog.Logger, cmd *command.Command) (bool, error) {
	path, err := e.lookPath(cmd.Executable)
	if err != nil {
		logger.Debug("could not resolve executable", "error", err)
		e.notifier.Error(notFoundMessage)

		return false, nil
	}

	argv := append([]string{cmd.Executable}, cmd.Args...)

	ps, err := e.launcher.Launch(ctx, path, argv)
	if err != nil {
		logger.Debug("could not start process", "path", path, "error", err)
		e.notifier.Error(notFoundMessage)

		return false, nil
	}

	pid := ps.Pid()

	if cmd.Background {
		e.notifier.Success(startedFormat, pid)

		if err := ps.Release(); err != nil {
			logger.Debug("failed to release process handle", "pid", pid, "error", err)
		}

		return true, nil
	}

	logger.Debug("waiting for process to finish", "pid", pid)

	exitCode, err := ps.Wait()
	if err != nil {
		logger.Error("wait failed", "pid", pid, "error", err)
		return false, errors.Join(ErrWaitFailed, err)
	}

	logger.Debug("process finished", "pid", pid, "exitCode", exitCode)

	return exitCode == 0, nil
}
