// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/relexer"
)

// DefaultLexers returns the lexer used for each supported file kind. Every
// lexer reports into r.
func DefaultLexers(r exc.Reporter) map[idl.FileKind]idl.Lexer {
	return map[idl.FileKind]idl.Lexer{
		idl.FileKindYAPL: relexer.New(r),
	}
}
