// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package configcmd implements `rush config`, which prints the effective configuration.
package configcmd

import (
	"context"

	"github.com/matt-FFFFFF/rush/internal/config"
	"github.com/urfave/cli/v3"
)

// ConfigFlag is the root flag naming the configuration file.
const ConfigFlag = "config"

// ConfigCmd prints the configuration the shell would start with, as YAML.
var ConfigCmd = &cli.Command{
	Name:   "config",
	Usage:  "Print the effective configuration as YAML",
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Resolve(ctx, cmd.String(ConfigFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := cfg.YAML()
	if err != nil {
		return cli.Exit("failed to encode config: "+err.Error(), 1)
	}

	if _, err := cmd.Root().Writer.Write(out); err != nil {
		return cli.Exit("failed to write config: "+err.Error(), 1)
	}

	return nil
}
