// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/rush/internal/ctxlog"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if _, err := ctxlog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err))
	}

	if c.History.Limit < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: history.limit must not be negative, got %d", ErrInvalidConfig, c.History.Limit))
	}

	if !c.History.Disabled && c.History.File == "" {
		result = multierror.Append(result, fmt.Errorf("%w: history.file is required unless history is disabled", ErrInvalidConfig))
	}

	if c.Prompt.Symbol == "" {
		result = multierror.Append(result, fmt.Errorf("%w: prompt.symbol must not be empty", ErrInvalidConfig))
	}

	return result.ErrorOrNil()
}
