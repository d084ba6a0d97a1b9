// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parser turns a raw input line into a flat list of commands.
//
// The line is split on `;`, each segment on `&&`, and each of those on ` & `
// (space, ampersand, space). Every piece before the last ` & ` runs in the
// background, as does a final piece that ends with `&`. Each piece is then split on
// `||` to build the fallback chain, and finally on whitespace into the
// executable and its arguments.
//
// Grouping is not retained: `a ; b && c` and `a && b ; c` produce the same list.
// Pieces with no words are dropped. Parse never fails.
package parser
