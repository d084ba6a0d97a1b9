// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package history

import (
	"bytes"
	"strings"
	"unicode"
)

// Complete returns the history entries of r that extend line, newest first and without duplicates.
// Nothing is offered for an empty line or one that ends in whitespace.
// A single candidate gets a trailing space so the next word can be typed straight away.
func Complete(r Recorder, line string) []string {
	if line == "" || unicode.IsSpace(rune(line[len(line)-1])) {
		return nil
	}

	var buf bytes.Buffer
	if _, err := r.WriteHistory(&buf); err != nil {
		return nil
	}

	entries := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	seen := make(map[string]struct{}, len(entries))

	var out []string

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e == line || !strings.HasPrefix(e, line) {
			continue
		}

		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		out = append(out, e)
	}

	if len(out) == 1 {
		out[0] += " "
	}

	return out
}
