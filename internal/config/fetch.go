// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/rush/internal/ctxlog"
)

// ErrGetConfigFile is returned when a remote configuration file cannot be fetched.
var ErrGetConfigFile = errors.New("failed to get config file")

// IsRemote reports whether src uses go-getter syntax (a scheme or a forced getter such as `git::`)
// rather than being a plain local path.
func IsRemote(src string) bool {
	return strings.Contains(src, "://") || strings.Contains(src, "::")
}

// LoadAny loads the configuration from a local path or, for remote sources, from a copy
// fetched with Hashicorp's go-getter. See https://github.com/hashicorp/go-getter.
func LoadAny(ctx context.Context, src string, required bool) (*Config, error) {
	if !IsRemote(src) {
		return Load(src, required)
	}

	tmpDir, err := os.MkdirTemp("", "rush-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetConfigFile, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetConfigFile, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(tmpDir, DefaultFileName),
		Pwd:     wd,
		GetMode: getter.ModeFile,
		Copy:    true,
	}

	ctxlog.Debug(ctx, "fetching config", "src", src)

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrGetConfigFile, err)
	}

	return Load(res.Dst, true)
}
