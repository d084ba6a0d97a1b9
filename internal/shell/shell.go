// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matt-FFFFFF/rush/internal/config"
	"github.com/matt-FFFFFF/rush/internal/ctxlog"
	"github.com/matt-FFFFFF/rush/internal/engine"
	"github.com/matt-FFFFFF/rush/internal/history"
	"github.com/matt-FFFFFF/rush/internal/notify"
	"github.com/matt-FFFFFF/rush/internal/parser"
	"github.com/matt-FFFFFF/rush/internal/prompt"
	"github.com/peterh/liner"
)

const continuationMarker = `\`

var (
	// ErrNoEditor is returned by Run when the shell was created without an editor.
	ErrNoEditor = errors.New("no line editor configured")
	// ErrReadLine is returned when the editor fails for a reason other than end of input.
	ErrReadLine = errors.New("failed to read line")
)

// ExitError is returned by Eval when the line ran the exit builtin.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// Editor reads lines and keeps their history, e.g. *liner.State.
type Editor interface {
	history.Recorder
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	SetCompleter(f liner.Completer)
}

// Shell runs lines through the parser and engine.
type Shell struct {
	editor   Editor
	engine   *engine.Engine
	history  *history.Store
	prompt   *prompt.Renderer
	notifier *notify.Notifier
	out      io.Writer
	lastOK   bool
}

// Option configures a Shell.
type Option func(*shellOptions)

type shellOptions struct {
	editor        Editor
	history       *history.Store
	prompt        *prompt.Renderer
	notifier      *notify.Notifier
	out           io.Writer
	engineOptions []engine.Option
}

// WithEditor sets the line editor used by Run.
func WithEditor(e Editor) Option {
	return func(o *shellOptions) {
		o.editor = e
	}
}

// WithHistory persists the editor history to s. Without it history lives only in memory.
func WithHistory(s *history.Store) Option {
	return func(o *shellOptions) {
		o.history = s
	}
}

// WithPrompt sets the prompt renderer.
func WithPrompt(p *prompt.Renderer) Option {
	return func(o *shellOptions) {
		o.prompt = p
	}
}

// WithNotifier sets where the shell and its engine write user notices.
func WithNotifier(n *notify.Notifier) Option {
	return func(o *shellOptions) {
		o.notifier = n
	}
}

// WithOutput sets where the prompt header is written, default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *shellOptions) {
		o.out = w
	}
}

// WithEngineOptions passes options through to engine.New.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(o *shellOptions) {
		o.engineOptions = append(o.engineOptions, opts...)
	}
}

// New creates a Shell. The engine gets the exit builtin in addition to its defaults.
func New(opts ...Option) *Shell {
	o := &shellOptions{
		prompt:   prompt.New(config.DefaultBanner, config.DefaultSymbol),
		notifier: notify.Default,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(o)
	}

	s := &Shell{
		editor:   o.editor,
		history:  o.history,
		prompt:   o.prompt,
		notifier: o.notifier,
		out:      o.out,
		lastOK:   true,
	}

	engineOpts := append([]engine.Option{
		engine.WithNotifier(o.notifier),
		engine.WithBuiltin("exit", exitBuiltin),
	}, o.engineOptions...)
	s.engine = engine.New(engineOpts...)

	return s
}

// LastOK reports the outcome of the last line that contained at least one command.
func (s *Shell) LastOK() bool {
	return s.lastOK
}

// Eval parses and runs a single line. A line without commands keeps the previous outcome.
// The error is an *ExitError after `exit`, or an unrecoverable engine error.
func (s *Shell) Eval(ctx context.Context, line string) (bool, error) {
	cmds := parser.Parse(line)
	if len(cmds) == 0 {
		return s.lastOK, nil
	}

	ctxlog.Debug(ctx, "evaluating line", "line", line, "commands", len(cmds))

	ok, err := s.engine.Run(ctx, cmds)
	s.lastOK = ok

	return ok, err
}

// Run reads and evaluates lines until exit or end of input and returns the exit code for the session.
func (s *Shell) Run(ctx context.Context) (int, error) {
	if s.editor == nil {
		return 1, ErrNoEditor
	}

	s.loadHistory(ctx)
	defer s.saveHistory(ctx)

	s.editor.SetCompleter(func(line string) []string {
		return history.Complete(s.editor, line)
	})

	for {
		line, err := s.readLine(ctx)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			return 0, nil
		case err != nil:
			return 1, errors.Join(ErrReadLine, err)
		}

		_, err = s.Eval(ctx, line)

		var exit *ExitError
		if errors.As(err, &exit) {
			return exit.Code, nil
		}

		if err != nil {
			return 1, err
		}
	}
}

// readLine prompts for a line, reading more lines while it ends with a backslash.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		ctxlog.Debug(ctx, "could not determine working directory", "error", err)
		cwd = "?"
	}

	_, _ = fmt.Fprintln(s.out, s.prompt.Header(cwd, s.lastOK))

	line, err := s.editor.Prompt(s.prompt.Prompt())
	if err != nil {
		return "", err
	}

	for strings.HasSuffix(line, continuationMarker) {
		next, err := s.editor.Prompt(s.prompt.Continuation())
		if err != nil {
			return "", err
		}

		line = strings.TrimSuffix(line, continuationMarker) + next
	}

	if strings.TrimSpace(line) != "" {
		s.editor.AppendHistory(line)
	}

	return line, nil
}

func (s *Shell) loadHistory(ctx context.Context) {
	if s.history == nil {
		return
	}

	n, err := s.history.Load(s.editor)

	switch {
	case errors.Is(err, history.ErrNoHistory):
		s.notifier.Info("No previous history.")
	case err != nil:
		ctxlog.Warn(ctx, "could not load history", "path", s.history.Path(), "error", err)
	default:
		ctxlog.Debug(ctx, "history loaded", "path", s.history.Path(), "entries", n)
	}
}

func (s *Shell) saveHistory(ctx context.Context) {
	if s.history == nil {
		return
	}

	if err := s.history.Save(s.editor); err != nil {
		s.notifier.Error("Couldn't save history: %s", err)
		ctxlog.Warn(ctx, "could not save history", "path", s.history.Path(), "error", err)
	}
}

// exitBuiltin ends the session with the optional numeric status in args[0].
func exitBuiltin(_ context.Context, n *notify.Notifier, args []string) (bool, error) {
	if len(args) == 0 {
		return true, &ExitError{Code: 0}
	}

	code, err := strconv.Atoi(args[0])
	if err != nil {
		n.Error("exit: numeric argument required: %s", args[0])
		return false, nil
	}

	return true, &ExitError{Code: code}
}
