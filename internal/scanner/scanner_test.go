// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package scanner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/fs"
	"gopkg.yapllang.org/compiler.go/internal/idl"
)

type atomic struct {
	kind   idl.AtomicKind
	value  string
	column int32
}

func fileLine(text string) idl.FileLine {
	begin := idl.Location{Line: 1}
	return idl.FileLine{
		Text: text,
		Span: idl.Span{URI: "/test", Begin: begin, End: begin.Advance(len(text))},
	}
}

func TestScanLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		leading  string
		trailing string
		expected []atomic
	}{
		{
			name:     "blank",
			input:    " \t ",
			leading:  " \t ",
			expected: []atomic{},
		},
		{
			name:     "block header",
			input:    "    foo bar:  ",
			leading:  "    ",
			trailing: "  ",
			expected: []atomic{
				{idl.AtomicKindNormal, "foo bar", 4},
				{idl.AtomicKindColon, ":", 11},
			},
		},
		{
			name:  "brackets and commas",
			input: "f(a, [b], {c})",
			expected: []atomic{
				{idl.AtomicKindNormal, "f", 0},
				{idl.AtomicKindOpenParenthesis, "(", 1},
				{idl.AtomicKindNormal, "a", 2},
				{idl.AtomicKindComma, ",", 3},
				{idl.AtomicKindOpenBracket, "[", 5},
				{idl.AtomicKindNormal, "b", 6},
				{idl.AtomicKindCloseBracket, "]", 7},
				{idl.AtomicKindComma, ",", 8},
				{idl.AtomicKindOpenCurlyBrace, "{", 10},
				{idl.AtomicKindNormal, "c", 11},
				{idl.AtomicKindCloseCurlyBrace, "}", 12},
				{idl.AtomicKindCloseParenthesis, ")", 13},
			},
		},
		{
			name:  "dashes",
			input: "x -- y --- z -----",
			expected: []atomic{
				{idl.AtomicKindNormal, "x", 0},
				{idl.AtomicKindCommentDash, "--", 2},
				{idl.AtomicKindNormal, "y", 5},
				{idl.AtomicKindBlockCommentDash, "---", 7},
				{idl.AtomicKindNormal, "z", 11},
				{idl.AtomicKindBlockCommentDash, "-----", 13},
			},
		},
		{
			name:  "quotes",
			input: `"a" """`,
			expected: []atomic{
				{idl.AtomicKindQuotedString, `"`, 0},
				{idl.AtomicKindNormal, "a", 1},
				{idl.AtomicKindQuotedString, `"`, 2},
				{idl.AtomicKindMultiLineString, `"""`, 4},
			},
		},
		{
			name:  "escapes",
			input: `\n\101\x7fz\é\U0001F600\q\`,
			expected: []atomic{
				{idl.AtomicKindEscapedCharacter, `\n`, 0},
				{idl.AtomicKindEscapedCharacter, `\101`, 2},
				{idl.AtomicKindEscapedCharacter, `\x7f`, 6},
				{idl.AtomicKindNormal, "z", 10},
				{idl.AtomicKindEscapedCharacter, `\é`, 11},
				{idl.AtomicKindEscapedCharacter, `\U0001F600`, 14},
				{idl.AtomicKindEscapedCharacter, `\q`, 24},
				{idl.AtomicKindNormal, `\`, 26},
			},
		},
		{
			name:  "short unicode escape",
			input: `\u12`,
			expected: []atomic{
				{idl.AtomicKindEscapedCharacter, `\u`, 0},
				{idl.AtomicKindNormal, "12", 2},
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line := ScanLine(fileLine(testCase.input))
			require.Equal(t, testCase.input, line.Text)
			require.Equal(t, testCase.leading, line.Leading)
			require.Equal(t, testCase.trailing, line.Trailing)
			actual := make([]atomic, 0, len(line.Tokens))
			for _, token := range line.Tokens {
				require.Equal(t, int(token.Span.End.Column-token.Span.Begin.Column), len(token.Value))
				actual = append(actual, atomic{token.Kind, token.Value, token.Span.Begin.Column})
			}
			require.Equal(t, testCase.expected, actual)
		})
	}
}

func TestScanFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	lines, eof, err := ScanFile(ctx, fs.NewFileString("/test", "foo:\n    bar\n", idl.FileKindYAPL))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, "foo:", lines[0].Text)
	require.Equal(t, "    ", lines[1].Leading)
	require.Equal(t, int64(9), lines[1].Tokens[0].Span.Begin.Offset)
	require.True(t, eof.EOF)
	require.Equal(t, idl.Location{Line: 3, Offset: 13}, eof.Span.Begin)

	_, _, err = ScanFile(ctx, fs.NewFileString("/bad", "\xc3\x28", idl.FileKindYAPL))
	var e exc.Exception
	require.True(t, errors.As(err, &e))
	require.Equal(t, exc.CodeInvalidUTF8, e.Code())
}
