// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/rush/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestEvalOnce(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCode int
	}{
		{name: "success", line: "/bin/sh -c true", wantCode: 0},
		{name: "failure", line: "/bin/sh -c false", wantCode: 1},
		{name: "exit status", line: "exit 5", wantCode: 5},
		{name: "empty line", line: "   ", wantCode: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := evalOnce(context.Background(), shell.New(), tt.line)
			if tt.wantCode == 0 {
				require.NoError(t, err)
				return
			}

			var coder cli.ExitCoder
			require.ErrorAs(t, err, &coder)
			assert.Equal(t, tt.wantCode, coder.ExitCode())
		})
	}
}

func TestExitWith(t *testing.T) {
	require.NoError(t, exitWith(0))

	var coder cli.ExitCoder
	require.ErrorAs(t, exitWith(2), &coder)
	assert.Equal(t, 2, coder.ExitCode())
}
