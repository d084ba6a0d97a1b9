// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/rush/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	// DefaultFileName is the configuration file looked up in the home directory.
	DefaultFileName = ".rush.yaml"
	// DefaultHistoryFile is where the line history is kept unless configured otherwise.
	DefaultHistoryFile = "~/.rush_history"
	// DefaultHistoryLimit is the number of history entries kept on save.
	DefaultHistoryLimit = 1000
	// DefaultBanner is the text shown before the working directory in the prompt.
	DefaultBanner = "RUSHING IN"
	// DefaultSymbol is the prompt symbol, coloured by the outcome of the previous line.
	DefaultSymbol = "⮡"
)

var (
	// ErrReadFile is returned when the configuration file exists but cannot be read.
	ErrReadFile = errors.New("failed to read config file")
	// ErrInvalidYaml is returned when the configuration file cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML")
)

// Config is the shell configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	History  HistoryConfig `yaml:"history"`
	Prompt   PromptConfig  `yaml:"prompt"`
}

// HistoryConfig controls where and how much line history is persisted.
type HistoryConfig struct {
	File     string `yaml:"file"`     // History file, a leading ~ is the home directory.
	Limit    int    `yaml:"limit"`    // Entries kept on save, 0 means unlimited.
	Disabled bool   `yaml:"disabled"` // Do not load or save history.
}

// PromptConfig controls the text of the prompt.
type PromptConfig struct {
	Banner string `yaml:"banner"`
	Symbol string `yaml:"symbol"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "WARN",
		History: HistoryConfig{
			File:  DefaultHistoryFile,
			Limit: DefaultHistoryLimit,
		},
		Prompt: PromptConfig{
			Banner: DefaultBanner,
			Symbol: DefaultSymbol,
		},
	}
}

// DefaultPath returns the path of the configuration file in the home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, DefaultFileName), nil
}

// Load reads the configuration from path, filling unset keys with defaults.
// If the file does not exist and required is false the defaults are returned.
// Paths in the result are expanded and the result is validated.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(FsFactory(), path)

	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
	case err != nil:
		return nil, errors.Join(ErrReadFile, err)
	default:
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYaml, path, err)
		}
	}

	if cfg.History.File, err = ExpandHome(cfg.History.File); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ExpandHome replaces a leading `~` or `~/` with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// YAML returns the configuration encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Resolve loads the configuration named on the command line. An empty src means the
// default file in the home directory, which may be absent; a named file must exist.
func Resolve(ctx context.Context, src string) (*Config, error) {
	if src != "" {
		return LoadAny(ctx, src, true)
	}

	path, err := DefaultPath()
	if err != nil {
		ctxlog.Warn(ctx, "no home directory, using default config without history", "error", err)

		cfg := Default()
		cfg.History.Disabled = true

		return cfg, nil
	}

	return Load(path, false)
}
