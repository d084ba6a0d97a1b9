// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package notify

import (
	"bytes"
	"testing"

	"github.com/matt-FFFFFF/rush/internal/color"
	"github.com/stretchr/testify/assert"
)

func TestNotifier(t *testing.T) {
	prev := color.Enabled()
	defer color.SetEnabled(prev)
	color.SetEnabled(false)

	var out, errOut bytes.Buffer

	n := New(&out, &errOut)
	n.Success("%d started!", 1234)
	n.Error("Command not found!")
	n.Info("No previous history.")

	assert.Equal(t, "1234 started!\nNo previous history.\n", out.String())
	assert.Equal(t, "Command not found!\n", errOut.String())
}

func TestNotifier_Colour(t *testing.T) {
	prev := color.Enabled()
	defer color.SetEnabled(prev)
	color.SetEnabled(true)

	var out, errOut bytes.Buffer

	n := New(&out, &errOut)
	n.Success("ok")
	n.Error("bad")

	assert.Equal(t, "\033[1;32mok\033[0m\n", out.String())
	assert.Equal(t, "\033[1;31mbad\033[0m\n", errOut.String())
}

func TestNotifier_NilWriters(t *testing.T) {
	n := New(nil, nil)
	assert.NotPanics(t, func() {
		n.Success("x")
		n.Error("y")
	})
}
