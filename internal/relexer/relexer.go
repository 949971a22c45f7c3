// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package relexer turns the atomic tokens of a YAPL source file into a
// context aware token stream. A pushdown automaton classifies each token of
// each line against a file wide state stack and indentation stack. A final
// pass over the whole output then merges multi-line constructs and resolves
// the provisional token types.
package relexer

import (
	"context"
	"sync"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/iter"
	"gopkg.yapllang.org/compiler.go/internal/scanner"
)

// Line is the output produced for one source line.
type Line = idl.LexedLine

type Lines []Line

// Tokens iterates every token of every line in order.
func (self Lines) Tokens() idl.Iterator[idl.Token] {
	count := 0
	for _, line := range self {
		count = count + len(line.Tokens)
	}
	tokens := make([]idl.Token, 0, count)
	for _, line := range self {
		tokens = append(tokens, line.Tokens...)
	}
	return iter.NewSlice(tokens)
}

// ProcessLine runs one source line through the automaton and returns the
// tokens it produced. Lines must be given in order.
func (self *EngineState) ProcessLine(line idl.SourceLine) ([]idl.Token, error) {
	c := newLineContext(self, line)
	if err := c.beginLine(); err != nil {
		return nil, err
	}
	for _, t := range line.Tokens {
		if err := c.consume(t); err != nil {
			return nil, err
		}
	}
	if err := c.endLine(); err != nil {
		return nil, err
	}
	return c.tokens, nil
}

// Finish closes the file at the given end-of-file line. It emits the
// END_BLOCK markers for any open indentation and rejects every construct
// left open.
func (self *EngineState) Finish(eof idl.SourceLine) ([]idl.Token, error) {
	c := newLineContext(self, eof)
	if err := c.endFile(); err != nil {
		return nil, err
	}
	return c.tokens, nil
}

// Run relexes the scanned lines of a file and finalizes the result.
func Run(ctx context.Context, lines []idl.SourceLine, eof idl.SourceLine) (Lines, error) {
	engine := NewEngineState()
	out := make(Lines, 0, len(lines)+1)
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, exc.WrapUnknown(exc.SpanLocation(line.Span), err)
		}
		tokens, err := engine.ProcessLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, Line{Source: line, Tokens: tokens})
	}
	tokens, err := engine.Finish(eof)
	if err != nil {
		return nil, err
	}
	if len(tokens) > 0 {
		out = append(out, Line{Source: eof, Tokens: tokens})
	}
	return Finalize(ctx, out)
}

// Relexer implements idl.Lexer for YAPL files.
type Relexer struct {
	reporter exc.Reporter
}

func New(reporter exc.Reporter) *Relexer {
	return &Relexer{reporter: reporter}
}

func (self *Relexer) Lex(ctx context.Context, f idl.File) (idl.LexerFile, error) {
	return &lexerFile{
		File:     f,
		reporter: self.reporter,
	}, nil
}

type lexerFile struct {
	idl.File
	reporter exc.Reporter
	once     sync.Once
	lines    Lines
	err      error
}

// Lines relexes the file on first use. Failures are sent to the reporter
// and the reporter decides whether they are returned.
func (self *lexerFile) Lines(ctx context.Context) ([]idl.LexedLine, error) {
	self.once.Do(func() {
		lines, eof, err := scanner.ScanFile(ctx, self.File)
		if err == nil {
			self.lines, err = Run(ctx, lines, eof)
		}
		if err != nil {
			e, ok := err.(exc.Exception)
			if !ok {
				e = exc.WrapUnknown(exc.Location{URI: self.File.Path(ctx)}, err)
			}
			if reported := self.reporter.Report(e); reported != nil {
				self.err = reported
			}
		}
	})
	return self.lines, self.err
}

func (self *lexerFile) Tokens(ctx context.Context) (idl.Iterator[idl.Token], error) {
	lines, err := self.Lines(ctx)
	if err != nil {
		return nil, err
	}
	return Lines(lines).Tokens(), nil
}
