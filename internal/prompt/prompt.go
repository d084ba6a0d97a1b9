// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt renders the two line shell prompt.
//
// The first line carries the banner and working directory and is styled with lipgloss.
// The second line is the symbol passed to the line editor; it is kept free of escape
// codes because the editor measures the prompt to place the cursor.
package prompt

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer builds prompts from a banner and a symbol.
type Renderer struct {
	banner string
	symbol string

	okStyle   lipgloss.Style
	failStyle lipgloss.Style
	pathStyle lipgloss.Style
}

// New returns a Renderer. An empty banner omits the banner text from the header.
func New(banner, symbol string) *Renderer {
	bold := lipgloss.NewStyle().Bold(true)

	return &Renderer{
		banner:    banner,
		symbol:    symbol,
		okStyle:   bold.Foreground(lipgloss.Color("2")),
		failStyle: bold.Foreground(lipgloss.Color("1")),
		pathStyle: bold.Foreground(lipgloss.Color("6")),
	}
}

// Header returns the line printed above the prompt: the banner, green after a
// successful line and red after a failed one, followed by the working directory.
func (r *Renderer) Header(cwd string, lastOK bool) string {
	style := r.okStyle
	if !lastOK {
		style = r.failStyle
	}

	parts := make([]string, 0, 2)
	if r.banner != "" {
		parts = append(parts, style.Render(r.banner))
	}

	parts = append(parts, r.pathStyle.Render(cwd))

	return strings.Join(parts, " ")
}

// Prompt returns the text handed to the line editor.
func (r *Renderer) Prompt() string {
	return r.symbol + "  "
}

// Continuation returns the prompt used while reading a line continued with a backslash.
func (r *Renderer) Continuation() string {
	return ""
}
