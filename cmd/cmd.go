// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/rush/cmd/configcmd"
	"github.com/matt-FFFFFF/rush/internal/config"
	"github.com/matt-FFFFFF/rush/internal/ctxlog"
	"github.com/matt-FFFFFF/rush/internal/history"
	"github.com/matt-FFFFFF/rush/internal/prompt"
	"github.com/matt-FFFFFF/rush/internal/shell"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	configFlag    = configcmd.ConfigFlag
	commandFlag   = "command"
	noHistoryFlag = "no-history"
	cliExitStr    = ""
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		configcmd.ConfigCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "rush",
	Description: `rush is a small interactive shell. Lines are split on ';', '&&' and ' & ',
commands joined with '||' form a fallback chain, and a trailing '&' runs a command
in the background. The first failing command stops the rest of the line.`,
	Usage:     "rush [--command LINE]",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Aliases: []string{"f"},
			Usage: "Configuration file, defaults to ~/" + config.DefaultFileName + ". " +
				"Supports Hashicorp's go-getter syntax for fetching the file from remote sources.",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.StringFlag{
			Name:     commandFlag,
			Aliases:  []string{"c"},
			Usage:    "Run a single line and exit with its status instead of starting the interactive shell",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:        noHistoryFlag,
			Usage:       "Do not load or save the line history",
			DefaultText: "false",
			Value:       false,
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	cfg, err := config.Resolve(ctx, cmd.String(configFlag))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if os.Getenv(ctxlog.EnvLogLevel) == "" {
		if err := ctxlog.SetLevel(cfg.LogLevel); err != nil {
			logger.Warn("ignoring log level from config", "error", err)
		}
	}

	opts := []shell.Option{
		shell.WithPrompt(prompt.New(cfg.Prompt.Banner, cfg.Prompt.Symbol)),
		shell.WithOutput(cmd.Writer),
	}

	if line := cmd.String(commandFlag); line != "" {
		return evalOnce(ctx, shell.New(opts...), line)
	}

	editor := liner.NewLiner()
	defer editor.Close() //nolint:errcheck

	editor.SetCtrlCAborts(true)

	opts = append(opts, shell.WithEditor(editor))
	if !cfg.History.Disabled && !cmd.Bool(noHistoryFlag) {
		opts = append(opts, shell.WithHistory(history.New(cfg.History.File, cfg.History.Limit)))
	}

	code, err := shell.New(opts...).Run(ctx)
	if err != nil {
		ctxlog.Error(ctx, "shell terminated", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	ctxlog.Info(ctx, "session ended", "exitCode", code)

	return exitWith(code)
}

// evalOnce runs line and maps its outcome to the process exit status.
func evalOnce(ctx context.Context, sh *shell.Shell, line string) error {
	ok, err := sh.Eval(ctx, line)

	var exit *shell.ExitError
	if errors.As(err, &exit) {
		return exitWith(exit.Code)
	}

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if !ok {
		return cli.Exit(cliExitStr, 1)
	}

	return nil
}

func exitWith(code int) error {
	if code == 0 {
		return nil
	}

	return cli.Exit(cliExitStr, code)
}
