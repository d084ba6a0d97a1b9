// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shell is the read-evaluate loop around the parser and the engine.
//
// Each iteration prints the prompt header, reads a line from the editor (joining lines
// that end in a backslash), records it in history, parses it and runs it. The outcome
// colours the next prompt. The loop ends with `exit [code]`, end of input, or an
// unrecoverable engine error; history is saved in every case.
package shell
