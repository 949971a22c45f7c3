// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/fs"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/relexer"
	"gopkg.yapllang.org/compiler.go/internal/scanner"
)

func relex(t *testing.T, input string) (*idl.LexedFile, error) {
	t.Helper()
	ctx := context.Background()
	lines, eof, err := scanner.ScanFile(ctx, fs.NewFileString("/test.yapl", input, idl.FileKindYAPL))
	require.NoError(t, err)
	out, err := relexer.Run(ctx, lines, eof)
	if err != nil {
		return nil, err
	}
	return &idl.LexedFile{URI: "/test.yapl", Lines: out}, nil
}

func TestText(t *testing.T) {
	t.Parallel()

	f, err := relex(t, "foo:\n    bar -- why\n")
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, Text(&b, f.Lines))
	expected := strings.Join([]string{
		"-- line 1",
		"TokenTypeNormal         'foo'",
		"-- line 2",
		"TokenTypeBeginBlock     ''",
		"TokenTypeNormal         'bar'",
		"TokenTypeComment        'why'",
		"-- line 3",
		"TokenTypeEndBlock       ''",
		"",
	}, "\n")
	require.Equal(t, expected, b.String())
}

func TestAtomic(t *testing.T) {
	t.Parallel()

	lines, _, err := scanner.ScanFile(context.Background(), fs.NewFileString("/test.yapl", "f(a)\n", idl.FileKindYAPL))
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, Atomic(&b, lines))
	out := b.String()
	require.True(t, strings.HasPrefix(out, "-- line 1\n"))
	require.Contains(t, out, "AtomicKindOpenParenthesis")
	require.Contains(t, out, "'a'")
}

func TestYAML(t *testing.T) {
	t.Parallel()

	f, err := relex(t, "x = \"a\\tb\"\n")
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, YAML(&b, f))

	var doc yamlFile
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &doc))
	require.Equal(t, "/test.yapl", doc.URI)
	require.Len(t, doc.Lines, 1)
	require.Equal(t, int32(1), doc.Lines[0].Line)
	require.Equal(t, []yamlToken{
		{Type: "TokenTypeNormal", Value: "x =", Span: "1:0-1:3"},
		{Type: "TokenTypeString", Value: "a\tb", Span: "1:4-1:10"},
	}, doc.Lines[0].Tokens)
}

func TestBinary(t *testing.T) {
	t.Parallel()

	f, err := relex(t, "-- doc\ncall(a, [b]):\n    \"\"\"\n    text\n    \"\"\"\n")
	require.NoError(t, err)
	other, err := relex(t, "x\n")
	require.NoError(t, err)
	files, err := DecodeBinary(Binary(f, other))
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, other.Lines[0].Tokens, files[1].Lines[0].Tokens)
	decoded := files[0]
	require.Equal(t, f.URI, decoded.URI)
	require.Len(t, decoded.Lines, len(f.Lines))
	for x, line := range f.Lines {
		require.Equal(t, line.Source.Span.Begin.Line, decoded.Lines[x].Source.Span.Begin.Line)
		require.Equal(t, line.Tokens, decoded.Lines[x].Tokens)
	}
}

func TestDecodeBinaryInvalid(t *testing.T) {
	t.Parallel()

	f, err := relex(t, "foo\n")
	require.NoError(t, err)
	b := Binary(f)
	_, err = DecodeBinary(b[:len(b)-3])
	require.Error(t, err)
	var e exc.Exception
	require.True(t, errors.As(err, &e))
	require.Equal(t, exc.CodeInvalidEncoding, e.Code())
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	source := "x = \"hi\\q\"\n"
	_, err := relex(t, source)
	require.Error(t, err)

	var b bytes.Buffer
	require.NoError(t, Diagnostic(&b, err, DiagnosticOptions{NoColor: true, Source: source}))
	out := b.String()
	require.True(t, strings.HasPrefix(out, "error[Y0102] UnknownEscapeCharacter: unknown escape character: '\\q'\n"))
	require.Contains(t, out, "  --> /test.yapl:1:7\n")
	require.Contains(t, out, "1 | x = \"hi\\q\"\n")
	require.Contains(t, out, "\n |        ^^\n")
	require.Contains(t, out, "  state stack:")
	require.Contains(t, out, "[1] QUOTED_STRING")
	require.NotContains(t, out, "  stack:\n")
	require.NotContains(t, out, "\x1b[")

	b.Reset()
	require.NoError(t, Diagnostic(&b, err, DiagnosticOptions{NoColor: true, Trace: true}))
	require.Contains(t, b.String(), "  stack:\n")
	require.NotContains(t, b.String(), " | ")

	b.Reset()
	require.NoError(t, Diagnostic(&b, errors.New("boom"), DiagnosticOptions{NoColor: true}))
	require.Equal(t, "error: boom\n", b.String())

	b.Reset()
	plain := exc.New(exc.Location{URI: "/a.yapl"}, exc.CodeFileNotFound, "missing")
	require.NoError(t, Diagnostic(&b, plain, DiagnosticOptions{NoColor: true}))
	require.Equal(t, "error[Y0001] FileNotFound: missing\n  --> /a.yapl:0:0\n", b.String())
}
