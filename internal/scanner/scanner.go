// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package scanner splits source lines into atomic tokens. It knows nothing
// about context: quotes, dashes and brackets are reported wherever they
// appear and the relexer decides what they mean.
package scanner

import (
	"context"
	"regexp"
	"strings"

	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/iter"
)

const whitespace = " \t"

// Alternatives are tried left to right so the more specific forms must come
// first. The bare `\\.` form catches every other escape so that the relexer
// can reject it with an exact position.
var atomicPattern = regexp.MustCompile(
	`-{2,}` +
		`|"""` +
		`|"` +
		`|\\[0-7]{1,3}` +
		`|\\x[0-9A-Fa-f]{1,6}` +
		`|\\u[0-9A-Fa-f]{4}` +
		`|\\U[0-9A-Fa-f]{8}` +
		`|\\["'?\\abefnrtv]` +
		`|\\.` +
		`|[:()\[\]{},]`,
)

var punctuation = map[string]idl.AtomicKind{
	":": idl.AtomicKindColon,
	"(": idl.AtomicKindOpenParenthesis,
	")": idl.AtomicKindCloseParenthesis,
	"[": idl.AtomicKindOpenBracket,
	"]": idl.AtomicKindCloseBracket,
	"{": idl.AtomicKindOpenCurlyBrace,
	"}": idl.AtomicKindCloseCurlyBrace,
	",": idl.AtomicKindComma,
}

// ScanLine splits a physical line into its whitespace margins and atomic
// tokens. Text between pattern matches becomes NORMAL tokens whose span
// covers the text without its surrounding whitespace.
func ScanLine(line idl.FileLine) idl.SourceLine {
	text := line.Text
	body := strings.TrimLeft(text, whitespace)
	leading := text[:len(text)-len(body)]
	body = strings.TrimRight(body, whitespace)
	trailing := text[len(leading)+len(body):]

	start := line.Span.Begin.Advance(len(leading))
	tokens := make([]idl.AtomicToken, 0)
	normal := func(from int, to int) {
		segment := body[from:to]
		trimmed := strings.TrimLeft(segment, whitespace)
		from = from + len(segment) - len(trimmed)
		trimmed = strings.TrimRight(trimmed, whitespace)
		if trimmed == "" {
			return
		}
		tokens = append(tokens, newToken(line.Span.URI, start, from, idl.AtomicKindNormal, trimmed))
	}

	previous := 0
	for _, match := range atomicPattern.FindAllStringIndex(body, -1) {
		normal(previous, match[0])
		value := body[match[0]:match[1]]
		tokens = append(tokens, newToken(line.Span.URI, start, match[0], kindOf(value), value))
		previous = match[1]
	}
	normal(previous, len(body))

	return idl.SourceLine{
		Text:     text,
		Span:     line.Span,
		Leading:  leading,
		Trailing: trailing,
		Tokens:   tokens,
	}
}

// EndOfFile builds the synthetic line that follows the last line of a file.
func EndOfFile(uri string, at idl.Location) idl.SourceLine {
	return idl.SourceLine{
		Span: idl.Span{URI: uri, Begin: at, End: at},
		EOF:  true,
	}
}

// ScanFile reads and scans every line of a file. The returned end-of-file
// line is positioned right after the last line.
func ScanFile(ctx context.Context, f idl.File) ([]idl.SourceLine, idl.SourceLine, error) {
	uri := f.Path(ctx)
	body, err := f.Body(ctx)
	if err != nil {
		return nil, idl.SourceLine{}, err
	}
	reader := iter.NewLineFileBodyCtx(ctx, uri, body)
	lines := make([]idl.SourceLine, 0)
	for line := reader.Next(ctx); line.IsPresent(); line = reader.Next(ctx) {
		lines = append(lines, ScanLine(line.Value()))
	}
	if err := reader.Close(ctx); err != nil {
		return nil, idl.SourceLine{}, err
	}
	return lines, EndOfFile(uri, reader.End()), nil
}

func newToken(uri string, start idl.Location, offset int, kind idl.AtomicKind, value string) idl.AtomicToken {
	begin := start.Advance(offset)
	return idl.AtomicToken{
		Kind:  kind,
		Value: value,
		Span:  idl.Span{URI: uri, Begin: begin, End: begin.Advance(len(value))},
	}
}

func kindOf(value string) idl.AtomicKind {
	switch {
	case value[0] == '-' && len(value) == 2:
		return idl.AtomicKindCommentDash
	case value[0] == '-':
		return idl.AtomicKindBlockCommentDash
	case value == `"""`:
		return idl.AtomicKindMultiLineString
	case value == `"`:
		return idl.AtomicKindQuotedString
	case value[0] == '\\':
		return idl.AtomicKindEscapedCharacter
	default:
		return punctuation[value]
	}
}
