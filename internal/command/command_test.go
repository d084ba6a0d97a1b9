// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PropagatesBackground(t *testing.T) {
	last := New("c", nil, false, nil)
	mid := New("b", nil, false, last)
	head := New("a", []string{"-x"}, true, mid)

	for link := range head.Chain() {
		assert.True(t, link.Background, "expected %s to be background", link.Executable)
	}

	assert.Equal(t, 2, head.Depth())
}

func TestNew_NilArgs(t *testing.T) {
	c := New("ls", nil, false, nil)
	require.NotNil(t, c.Args)
	assert.Empty(t, c.Args)
	assert.Nil(t, c.Fallback)
	assert.Equal(t, 0, c.Depth())
}

func TestChain_StopsEarly(t *testing.T) {
	head := New("a", nil, false, New("b", nil, false, New("c", nil, false, nil)))

	var seen []string

	for link := range head.Chain() {
		seen = append(seen, link.Executable)
		if link.Executable == "b" {
			break
		}
	}

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
		want string
	}{
		{
			name: "nil",
			cmd:  nil,
			want: "",
		},
		{
			name: "single",
			cmd:  New("ls", []string{"-a", "/tmp"}, false, nil),
			want: "ls -a /tmp",
		},
		{
			name: "background chain",
			cmd:  New("a", nil, true, New("b", []string{"1"}, false, nil)),
			want: "a || b 1 &",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}
