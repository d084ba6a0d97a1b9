// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package history

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenRecorder struct{}

func (brokenRecorder) ReadHistory(io.Reader) (int, error)  { return 0, nil }
func (brokenRecorder) WriteHistory(io.Writer) (int, error) { return 0, errors.New("boom") }

func TestComplete(t *testing.T) {
	rec := &lines{entries: []string{"git status", "ls -la", "git commit", "git status", "git"}}

	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "newest first without duplicates", line: "git", want: []string{"git status", "git commit"}},
		{name: "single candidate gets a space", line: "ls", want: []string{"ls -la "}},
		{name: "exact match is not offered", line: "git status", want: nil},
		{name: "no match", line: "cd", want: nil},
		{name: "empty line", line: "", want: nil},
		{name: "trailing whitespace", line: "git ", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Complete(rec, tt.line))
		})
	}
}

func TestComplete_RecorderError(t *testing.T) {
	assert.Nil(t, Complete(brokenRecorder{}, "git"))
}
