// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"strings"

	"github.com/matt-FFFFFF/rush/internal/command"
)

const (
	segmentSeparator     = ";"
	conjunctionSeparator = "&&"
	backgroundSeparator  = " & "
	fallbackSeparator    = "||"
	backgroundSuffix     = "&"
	escapedSuffix        = `\&`
)

// Parse splits line into the ordered list of commands to execute.
func Parse(line string) []*command.Command {
	cmds := make([]*command.Command, 0)

	for segment := range strings.SplitSeq(line, segmentSeparator) {
		for conjunct := range strings.SplitSeq(segment, conjunctionSeparator) {
			cmds = append(cmds, parseConjunct(conjunct)...)
		}
	}

	return cmds
}

// parseConjunct handles the background markers of a single `&&` operand.
func parseConjunct(conjunct string) []*command.Command {
	pieces := strings.Split(strings.TrimSpace(conjunct), backgroundSeparator)
	last := len(pieces) - 1
	cmds := make([]*command.Command, 0, len(pieces))

	for i, piece := range pieces {
		piece = strings.TrimSpace(piece)
		background := i < last

		if i == last {
			piece, background = stripBackgroundSuffix(piece)
		}

		if piece == "" {
			continue
		}

		if cmd := parseAlternative(piece, background); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

// stripBackgroundSuffix removes a trailing, unescaped `&` and reports whether it was present.
func stripBackgroundSuffix(piece string) (string, bool) {
	if !strings.HasSuffix(piece, backgroundSuffix) || strings.HasSuffix(piece, escapedSuffix) {
		return piece, false
	}

	return strings.TrimSpace(strings.TrimSuffix(piece, backgroundSuffix)), true
}

// parseAlternative builds the `||` chain for text. Links without any words are skipped,
// so nil is returned only when the whole chain is empty.
func parseAlternative(text string, background bool) *command.Command {
	left, right, found := strings.Cut(text, fallbackSeparator)

	var fallback *command.Command
	if found {
		fallback = parseAlternative(right, background)
	}

	words := strings.Fields(left)
	if len(words) == 0 {
		return fallback
	}

	return command.New(words[0], words[1:], background, fallback)
}
