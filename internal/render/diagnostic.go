// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/relexer"
)

var (
	errorColor  = lipgloss.Color("#EF4444")
	accentColor = lipgloss.Color("#3B82F6")
	mutedColor  = lipgloss.Color("#6B7280")
)

type DiagnosticOptions struct {
	// NoColor disables all styling.
	NoColor bool
	// Trace appends the call stack captured with the exception.
	Trace bool
	// Source is the text of the file the exception points into. When set
	// the offending line is quoted with a caret under the column.
	Source string
}

type painter struct {
	header lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
	plain  bool
}

func newPainter(w io.Writer, noColor bool) painter {
	r := lipgloss.NewRenderer(w)
	return painter{
		header: r.NewStyle().Foreground(errorColor).Bold(true),
		accent: r.NewStyle().Foreground(accentColor),
		muted:  r.NewStyle().Foreground(mutedColor),
		plain:  noColor,
	}
}

func (p painter) paint(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

// Diagnostic writes a readable report of err. Exceptions raised by the
// relexer include the automaton state at the time of failure.
func Diagnostic(w io.Writer, err error, opts DiagnosticOptions) error {
	p := newPainter(w, opts.NoColor)
	var b strings.Builder

	var e exc.Exception
	if !errors.As(err, &e) {
		b.WriteString(p.paint(p.header, "error"))
		fmt.Fprintf(&b, ": %s\n", err)
		_, werr := io.WriteString(w, b.String())
		return werr
	}

	loc := e.Location()
	b.WriteString(p.paint(p.header, fmt.Sprintf("error[%s] %s", e.Code(), exc.CodeName(e.Code()))))
	fmt.Fprintf(&b, ": %s\n", e.Message())
	b.WriteString(p.paint(p.accent, "  --> "))
	fmt.Fprintf(&b, "%s:%d:%d\n", loc.URI, loc.Line, loc.Column)

	var re *relexer.Exception
	isRelex := errors.As(err, &re)
	marks := "^"
	if isRelex {
		if width := utf8.RuneCountInString(re.Token.ValueOr(idl.AtomicToken{}).Value); width > 1 {
			marks = strings.Repeat("^", width)
		}
	}

	if text, ok := sourceLine(opts.Source, loc.Line); ok {
		gutter := fmt.Sprintf("%d", loc.Line)
		pad := strings.Repeat(" ", len(gutter))
		b.WriteString(p.paint(p.accent, pad+" |") + "\n")
		b.WriteString(p.paint(p.accent, gutter+" |") + " " + text + "\n")
		b.WriteString(p.paint(p.accent, pad+" |") + " " + caretPad(text, int(loc.Column)) + p.paint(p.header, marks) + "\n")
	}

	if isRelex {
		for _, row := range strings.Split(strings.TrimRight(re.Dump(), "\n"), "\n") {
			b.WriteString(p.paint(p.muted, "  "+row) + "\n")
		}
	}
	if opts.Trace {
		b.WriteString(p.paint(p.muted, "  stack:") + "\n")
		for _, row := range strings.Split(strings.TrimRight(e.Stack(), "\n"), "\n") {
			b.WriteString(p.paint(p.muted, "    "+row) + "\n")
		}
	}
	_, werr := io.WriteString(w, b.String())
	return werr
}

func sourceLine(source string, line int32) (string, bool) {
	if source == "" || line < 1 {
		return "", false
	}
	rows := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")
	if int(line) > len(rows) {
		return "", false
	}
	return rows[line-1], true
}

// caretPad returns the whitespace that places a caret under the given byte
// column, keeping tabs so the caret lines up.
func caretPad(text string, column int) string {
	if column > len(text) {
		column = len(text)
	}
	var b strings.Builder
	for x := 0; x < column; x = x + 1 {
		if text[x] == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}
