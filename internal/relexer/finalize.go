// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import (
	"context"
	"fmt"
	"strings"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/iter"
	"gopkg.yapllang.org/compiler.go/internal/optional"
)

type multiLine struct {
	begin   idl.TokenType
	content idl.TokenType
	end     idl.TokenType
	public  idl.TokenType
}

var multiLines = map[idl.TokenType]multiLine{
	idl.TokenTypeTmpBeginMultiLineComment: {
		begin:   idl.TokenTypeTmpBeginMultiLineComment,
		content: idl.TokenTypeTmpMultiLineCommentContent,
		end:     idl.TokenTypeTmpEndMultiLineComment,
		public:  idl.TokenTypeComment,
	},
	idl.TokenTypeTmpBeginMultiLineString: {
		begin:   idl.TokenTypeTmpBeginMultiLineString,
		content: idl.TokenTypeTmpStringContent,
		end:     idl.TokenTypeTmpEndMultiLineString,
		public:  idl.TokenTypeString,
	},
}

var resolved = map[idl.TokenType]idl.TokenType{
	idl.TokenTypeTmpSingleLineCommentContent: idl.TokenTypeComment,
	idl.TokenTypeTmpMultiLineCommentContent:  idl.TokenTypeComment,
	idl.TokenTypeTmpStringContent:            idl.TokenTypeString,
}

// Finalize turns the per-line output of the automaton into its final form.
// Multi-line constructs and runs of single-line comments are merged into the
// line they start on, delimiters are stripped, indentation inside multi-line
// constructs is made relative to the opening delimiter and every provisional
// token type is resolved. The input is not modified.
func Finalize(ctx context.Context, lines Lines) (Lines, error) {
	merged, err := mergeLines(lines)
	if err != nil {
		return nil, err
	}
	stripDelimiters(merged)
	normalizeIndentation(merged)
	return resolveTypes(ctx, merged)
}

func cloneLine(line Line) Line {
	tokens := make([]idl.Token, len(line.Tokens))
	copy(tokens, line.Tokens)
	return Line{Source: line.Source, Tokens: tokens}
}

func mergeLines(lines Lines) (Lines, error) {
	out := make(Lines, 0, len(lines))
	for _, line := range lines {
		previous := lastNonEmpty(out)
		if previous < 0 {
			out = append(out, cloneLine(line))
			continue
		}
		target := &out[previous]
		if construct, ok := openConstruct(target.Tokens); ok {
			if err := appendContinuation(target, construct, line); err != nil {
				return nil, err
			}
			continue
		}
		if len(line.Tokens) < 1 {
			continue
		}
		ok, err := mergeComments(target, line)
		if err != nil {
			return nil, err
		}
		if ok {
			continue
		}
		out = append(out, cloneLine(line))
	}
	return out, nil
}

func lastNonEmpty(lines Lines) int {
	for x := len(lines) - 1; x >= 0; x = x - 1 {
		if len(lines[x].Tokens) > 0 {
			return x
		}
	}
	return -1
}

// openConstruct reports the multi-line construct that the tokens begin but
// do not end.
func openConstruct(tokens []idl.Token) (multiLine, bool) {
	for x := len(tokens) - 1; x >= 0; x = x - 1 {
		tt := tokens[x].Type
		if tt == idl.TokenTypeTmpEndMultiLineComment || tt == idl.TokenTypeTmpEndMultiLineString {
			return multiLine{}, false
		}
		if m, ok := multiLines[tt]; ok {
			return m, true
		}
	}
	return multiLine{}, false
}

// appendContinuation moves the content of a line inside an open multi-line
// construct onto the line that opened it. Each source line becomes one
// newline separated segment that keeps its leading whitespace.
func appendContinuation(target *Line, construct multiLine, line Line) error {
	start := idl.Span{URI: line.Source.Span.URI, Begin: line.Source.Span.Begin, End: line.Source.Span.Begin}
	if len(line.Tokens) < 1 {
		return appendSegment(target, construct, "", start)
	}
	for _, t := range line.Tokens {
		switch t.Type {
		case construct.content:
			span := idl.Span{URI: start.URI, Begin: start.Begin, End: t.Span.End}
			if err := appendSegment(target, construct, line.Source.Leading+t.Value, span); err != nil {
				return err
			}
		case construct.end:
			target.Tokens = append(target.Tokens, t)
		default:
			return corruptionAt(t.Span, fmt.Sprintf("unexpected %s inside a multi-line construct", t.Type))
		}
	}
	return nil
}

func appendSegment(target *Line, construct multiLine, text string, span idl.Span) error {
	last := &target.Tokens[len(target.Tokens)-1]
	if last.Type == construct.begin {
		target.Tokens = append(target.Tokens, idl.Token{Type: construct.content, Value: text, Span: span})
		return nil
	}
	extended, err := last.Span.ExtendTo(span)
	if err != nil {
		return exc.Wrap(exc.SpanLocation(span), exc.CodeCrossSourceSpan, err)
	}
	last.Value = last.Value + "\n" + text
	last.Span = extended
	return nil
}

// mergeComments joins a line that holds only a single-line comment onto the
// comment ending the target line when it starts on the next row at the same
// column.
func mergeComments(target *Line, line Line) (bool, error) {
	if len(line.Tokens) != 1 || line.Tokens[0].Type != idl.TokenTypeTmpSingleLineCommentContent {
		return false, nil
	}
	last := &target.Tokens[len(target.Tokens)-1]
	if last.Type != idl.TokenTypeTmpSingleLineCommentContent {
		return false, nil
	}
	next := line.Tokens[0]
	row := idl.Span{
		URI:   last.Span.URI,
		Begin: idl.Location{Line: last.Span.End.Line, Column: last.Span.Begin.Column},
	}
	if !row.IsPredecessorLineOf(next.Span) {
		return false, nil
	}
	extended, err := last.Span.ExtendTo(next.Span)
	if err != nil {
		return false, exc.Wrap(exc.SpanLocation(next.Span), exc.CodeCrossSourceSpan, err)
	}
	last.Value = last.Value + "\n" + next.Value
	last.Span = extended
	return true, nil
}

func stripDelimiters(lines Lines) {
	for x := range lines {
		for y := range lines[x].Tokens {
			t := &lines[x].Tokens[y]
			switch {
			case t.Type == idl.TokenTypeTmpSingleLineCommentContent:
				segments := strings.Split(t.Value, "\n")
				for z, segment := range segments {
					segments[z] = strings.TrimPrefix(segment, " ")
				}
				t.Value = strings.Join(segments, "\n")
			case isDelimiter(t.Type):
				t.Value = ""
			}
		}
	}
}

// normalizeIndentation removes the indentation of the opening delimiter from
// every segment of a multi-line construct. Segments indented less than the
// delimiter lose all of their leading whitespace.
func normalizeIndentation(lines Lines) {
	for x := range lines {
		base := whitespaceWidth(lines[x].Source.Leading)
		tokens := lines[x].Tokens
		for y := 1; y < len(tokens); y = y + 1 {
			construct, ok := multiLines[tokens[y-1].Type]
			if !ok || tokens[y].Type != construct.content {
				continue
			}
			segments := strings.Split(tokens[y].Value, "\n")
			for z, segment := range segments {
				trimmed := trimIndent(segment, base)
				if z == 0 {
					tokens[y].Span.Begin = tokens[y].Span.Begin.Advance(len(segment) - len(trimmed))
				}
				segments[z] = trimmed
			}
			tokens[y].Value = strings.Join(segments, "\n")
		}
	}
}

// trimIndent drops leading spaces and tabs until width columns are gone.
func trimIndent(segment string, width int) string {
	removed := 0
	for x := 0; x < len(segment); x = x + 1 {
		if removed >= width || (segment[x] != ' ' && segment[x] != '\t') {
			return segment[x:]
		}
		removed = removed + whitespaceWidth(segment[x:x+1])
	}
	return ""
}

func resolveTypes(ctx context.Context, lines Lines) (Lines, error) {
	out := make(Lines, 0, len(lines))
	for _, line := range lines {
		tokens := make([]idl.Token, 0, len(line.Tokens))
		look := iter.NewLookahead(iter.NewSlice(line.Tokens), 1)
		for next := look.Next(ctx); next.IsPresent(); next = look.Next(ctx) {
			t := next.Value()
			if construct, ok := multiLines[t.Type]; ok {
				collapsed, err := collapse(ctx, look, construct, t)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, collapsed)
				continue
			}
			if public, ok := resolved[t.Type]; ok {
				t.Type = public
			}
			if t.Type.IsProvisional() {
				return nil, corruptionAt(t.Span, fmt.Sprintf("unresolved provisional token %s", t.Type))
			}
			tokens = append(tokens, t)
		}
		if err := look.Close(ctx); err != nil {
			return nil, err
		}
		out = append(out, Line{Source: line.Source, Tokens: tokens})
	}
	return out, nil
}

// collapse folds a begin delimiter, its optional content and its end
// delimiter into one public token.
func collapse(ctx context.Context, look idl.Lookahead[idl.Token], construct multiLine, begin idl.Token) (idl.Token, error) {
	result := idl.Token{Type: construct.public, Span: begin.Span}
	peek := look.Lookahead(ctx, 1)
	if peek.IsPresent() && peek.Value().Type == construct.content {
		result.Value = peek.Value().Value
		_ = look.Next(ctx)
		peek = look.Lookahead(ctx, 1)
	}
	if !peek.IsPresent() || peek.Value().Type != construct.end {
		return idl.Token{}, corruptionAt(begin.Span, fmt.Sprintf("%s without a matching %s", construct.begin, construct.end))
	}
	extended, err := result.Span.ExtendTo(peek.Value().Span)
	if err != nil {
		return idl.Token{}, exc.Wrap(exc.SpanLocation(begin.Span), exc.CodeCrossSourceSpan, err)
	}
	result.Span = extended
	_ = look.Next(ctx)
	return result, nil
}

func corruptionAt(span idl.Span, reason string) error {
	return newException(exc.CodeAutomatonCorruption, span, reason, optional.None[idl.AtomicToken](), nil, nil)
}
