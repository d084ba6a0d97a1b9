// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the shell's notices and logs.
// Output is plain when NO_COLOR is set or stdout is not a terminal, unless FORCE_COLOR is set.
package color
