// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler writing to stderr, so that log lines never mix with
// the output of the commands the shell runs. The level defaults to WARN and can be changed
// with the RUSH_LOG_LEVEL environment variable or the `log_level` configuration key.
package ctxlog
