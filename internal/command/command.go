// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"iter"
	"strings"
)

// Command is a single executable invocation produced by the parser.
// It must not be modified once constructed.
type Command struct {
	Executable string   // Program or builtin name, never empty.
	Args       []string // Arguments, do not include the executable name itself.
	Fallback   *Command // Command to run if this one fails, nil if there is none.
	Background bool     // Launch without waiting. Shared by every link of the fallback chain.
}

// New creates a Command and propagates the background flag to the whole fallback chain.
func New(executable string, args []string, background bool, fallback *Command) *Command {
	if args == nil {
		args = []string{}
	}

	for f := fallback; f != nil; f = f.Fallback {
		f.Background = background
	}

	return &Command{
		Executable: executable,
		Args:       args,
		Fallback:   fallback,
		Background: background,
	}
}

// Chain returns an iterator over the command and each of its fallbacks, in the order they would be tried.
func (c *Command) Chain() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		for link := c; link != nil; link = link.Fallback {
			if !yield(link) {
				return
			}
		}
	}
}

// Depth returns the number of fallbacks that follow this command.
func (c *Command) Depth() int {
	n := -1
	for range c.Chain() {
		n++
	}

	return n
}

// String renders the command chain back into shell syntax, mostly for logging.
func (c *Command) String() string {
	if c == nil {
		return ""
	}

	links := make([]string, 0, 1)

	for link := range c.Chain() {
		links = append(links, strings.Join(append([]string{link.Executable}, link.Args...), " "))
	}

	s := strings.Join(links, " || ")
	if c.Background {
		s += " &"
	}

	return s
}
