// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package notify prints the one line notices a user sees from the shell itself,
// as opposed to log lines (see ctxlog) or the output of the commands it runs.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/rush/internal/color"
)

// Notifier writes success notices to one writer and error notices to another.
type Notifier struct {
	out io.Writer
	err io.Writer
}

// Default writes to the process stdout and stderr.
var Default = New(os.Stdout, os.Stderr)

// New returns a Notifier. A nil writer discards its notices.
func New(out, err io.Writer) *Notifier {
	if out == nil {
		out = io.Discard
	}

	if err == nil {
		err = io.Discard
	}

	return &Notifier{out: out, err: err}
}

// Success prints a green notice to the output writer.
func (n *Notifier) Success(format string, a ...any) {
	n.print(n.out, format, a, color.Bold, color.FgGreen)
}

// Error prints a red notice to the error writer.
func (n *Notifier) Error(format string, a ...any) {
	n.print(n.err, format, a, color.Bold, color.FgRed)
}

// Info prints an uncoloured notice to the output writer.
func (n *Notifier) Info(format string, a ...any) {
	n.print(n.out, format, a)
}

func (n *Notifier) print(w io.Writer, format string, a []any, codes ...color.Code) {
	_, _ = fmt.Fprintln(w, color.Colorize(fmt.Sprintf(format, a...), codes...))
}
