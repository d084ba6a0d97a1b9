// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"testing"

	"github.com/matt-FFFFFF/rush/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fg(exe string, args ...string) *command.Command {
	return command.New(exe, args, false, nil)
}

func bg(exe string, args ...string) *command.Command {
	return command.New(exe, args, true, nil)
}

func withFallback(c *command.Command, fallback *command.Command) *command.Command {
	return command.New(c.Executable, c.Args, c.Background, fallback)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []*command.Command
	}{
		{
			name: "single command",
			line: "ls",
			want: []*command.Command{fg("ls")},
		},
		{
			name: "single command with args",
			line: "ls -a",
			want: []*command.Command{fg("ls", "-a")},
		},
		{
			name: "background process",
			line: "long-running-process &",
			want: []*command.Command{bg("long-running-process")},
		},
		{
			name: "background without space",
			line: "proc&",
			want: []*command.Command{bg("proc")},
		},
		{
			name: "background process with other",
			line: "long-running-process & date",
			want: []*command.Command{bg("long-running-process"), fg("date")},
		},
		{
			name: "several background processes",
			line: "a 1 & b 2 & c 3 &",
			want: []*command.Command{bg("a", "1"), bg("b", "2"), bg("c", "3")},
		},
		{
			name: "semicolon",
			line: "date ; ls",
			want: []*command.Command{fg("date"), fg("ls")},
		},
		{
			name: "and",
			line: "date && ls",
			want: []*command.Command{fg("date"), fg("ls")},
		},
		{
			name: "and with fallback",
			line: "date && ls || ls",
			want: []*command.Command{fg("date"), withFallback(fg("ls"), fg("ls"))},
		},
		{
			name: "fallback chain",
			line: "a || b -x || c",
			want: []*command.Command{withFallback(fg("a"), withFallback(fg("b", "-x"), fg("c")))},
		},
		{
			name: "background fallback chain",
			line: "a || b &",
			want: []*command.Command{withFallback(bg("a"), bg("b"))},
		},
		{
			name: "mixed operators",
			line: "make && ./app & tail -f log ; echo done || true",
			want: []*command.Command{
				fg("make"),
				bg("./app"),
				fg("tail", "-f", "log"),
				withFallback(fg("echo", "done"), fg("true")),
			},
		},
		{
			name: "whitespace is trimmed",
			line: "   ls    -l   ;   pwd   ",
			want: []*command.Command{fg("ls", "-l"), fg("pwd")},
		},
		{
			name: "escaped ampersand is an argument",
			line: `echo \&`,
			want: []*command.Command{fg("echo", `\&`)},
		},
		{
			name: "empty fallback links are skipped",
			line: "|| ls ||",
			want: []*command.Command{fg("ls")},
		},
		{
			name: "empty segments are dropped",
			line: " ; ; && ls ;; &",
			want: []*command.Command{fg("ls")},
		},
		{
			name: "empty line",
			line: "",
			want: []*command.Command{},
		},
		{
			name: "whitespace only",
			line: " \t ",
			want: []*command.Command{},
		},
		{
			name: "lone ampersand",
			line: "&",
			want: []*command.Command{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	lines := []string{
		"ls",
		"a & b && c || d ; e &",
		"x || y || z",
		"",
	}

	for _, line := range lines {
		assert.Equal(t, Parse(line), Parse(line), "parse of %q should be deterministic", line)
	}
}

func TestParse_NeverEmptyExecutable(t *testing.T) {
	lines := []string{
		"&&&&",
		"; || ;",
		"a &&|| b",
		" & & & ",
		"||||",
	}

	for _, line := range lines {
		for _, c := range Parse(line) {
			for link := range c.Chain() {
				assert.NotEmpty(t, link.Executable, "line %q produced an empty executable", line)
			}
		}
	}
}

func TestParse_BackgroundUniformAcrossChain(t *testing.T) {
	cmds := Parse("a || b || c & d || e")
	require.Len(t, cmds, 2)

	for link := range cmds[0].Chain() {
		assert.True(t, link.Background)
	}

	for link := range cmds[1].Chain() {
		assert.False(t, link.Background)
	}

	assert.Equal(t, 2, cmds[0].Depth())
	assert.Equal(t, 1, cmds[1].Depth())
}
