// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command defines the parsed unit that the engine executes.
// A Command names an executable and its arguments, whether it runs in the background,
// and an optional fallback that is tried when the command fails (the right hand side of `||`).
package command
