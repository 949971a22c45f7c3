// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package render writes relexed files in the formats offered by the command
// line driver.
package render

import (
	"fmt"
	"io"

	"gopkg.yapllang.org/compiler.go/internal/idl"
)

// Text writes one row per token, grouped under a header for each line.
func Text(w io.Writer, lines []idl.LexedLine) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "-- line %d\n", line.Source.Span.Begin.Line); err != nil {
			return err
		}
		for _, t := range line.Tokens {
			if _, err := fmt.Fprintf(w, "%-24s'%s'\n", t.Type, t.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Atomic writes the atomic tokens of each scanned line in the same layout
// as Text.
func Atomic(w io.Writer, lines []idl.SourceLine) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "-- line %d\n", line.Span.Begin.Line); err != nil {
			return err
		}
		for _, t := range line.Tokens {
			if _, err := fmt.Fprintf(w, "%-24s'%s'\n", t.Kind, t.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
