// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestHeader_Plain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	r := New("RUSHING IN", ">")

	assert.Equal(t, "RUSHING IN /tmp", r.Header("/tmp", true))
	assert.Equal(t, "RUSHING IN /tmp", r.Header("/tmp", false))
}

func TestHeader_NoBanner(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	assert.Equal(t, "/home/tester", New("", ">").Header("/home/tester", true))
}

func TestHeader_ColourByOutcome(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	r := New("RUSHING IN", ">")

	ok := r.Header("/tmp", true)
	fail := r.Header("/tmp", false)

	assert.NotEqual(t, ok, fail)
	assert.Contains(t, ok, "32", "green after success")
	assert.Contains(t, fail, "31", "red after failure")
	assert.Contains(t, ok, "/tmp")
}

func TestPrompt(t *testing.T) {
	r := New("RUSHING IN", "⮡")

	assert.Equal(t, "⮡  ", r.Prompt())
	assert.Empty(t, r.Continuation())
}
