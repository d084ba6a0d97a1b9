// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package engine executes parsed commands.
//
// Execute runs one command: a builtin in process, or an OS process that is either waited
// for (foreground) or left running untracked (background). A failed command hands over
// to its fallback. Run executes a flat list of commands in order and stops at the first
// failure, regardless of which `;` or `&&` operand the command came from.
//
// Failures of the commands themselves are reported as a false outcome. The error return
// is reserved for conditions that should end the shell session, such as ErrWaitFailed.
package engine
