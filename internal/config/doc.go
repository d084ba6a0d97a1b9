// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the shell's YAML configuration file.
//
// Every key is optional, a missing file at the default location means all defaults:
//
//	log_level: WARN
//	history:
//	  file: ~/.rush_history
//	  limit: 1000
//	  disabled: false
//	prompt:
//	  banner: RUSHING IN
//	  symbol: "⮡"
package config
