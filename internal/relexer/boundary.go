// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import (
	"fmt"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/optional"
)

var unclosedReasons = map[State]string{
	StateMultiLineComment:      "missing multi-line comment terminator",
	StateMultiLineString:       "missing multi-line string terminator",
	StateParenthesis:           "missing closing parenthesis",
	StateBrackets:              "missing closing bracket",
	StateCurlyBraces:           "missing closing curly braces",
	StateQuotedString:          "missing closing quote",
	StateStartingIndentedBlock: "expected indented block following ':'",
}

func (self *lineContext) beginLine() error {
	state, err := self.current()
	if err != nil {
		return err
	}
	blank := self.line.IsBlank()
	switch state.category() {
	case categoryStartingBlock:
		if blank {
			return nil
		}
		if err := self.indent(); err != nil {
			return err
		}
		if err := self.pop(StateStartingIndentedBlock, optional.None[idl.Token]()); err != nil {
			return err
		}
		self.pushWith(StateIndentedBlock, self.marker(idl.TokenTypeBeginBlock))
	case categoryCode:
		if blank {
			return nil
		}
		if self.wouldIndent() {
			return self.indentation(fmt.Sprintf(
				"should not indent at beginning of file or during normal code processing (%d > %d); indentation may only follow ':'",
				whitespaceWidth(self.line.Leading), self.engine.indents.total(),
			))
		}
		return self.dedent(self.line.Leading)
	case categoryBracket:
		if blank {
			return nil
		}
		if self.wouldDedent() {
			return self.indentation("should not dedent within parenthesis, brackets, or curly braces")
		}
	case categorySingleLineComment, categoryQuotedString:
		return self.corruption(fmt.Sprintf("state %s cannot continue onto a new line", state))
	}
	return nil
}

// dedent closes every indentation level deeper than ws, emitting one
// END_BLOCK per level.
func (self *lineContext) dedent(ws string) error {
	count, err := self.maybeDedent(ws)
	if err != nil {
		return err
	}
	for x := 0; x < count; x = x + 1 {
		if err := self.pop(StateIndentedBlock, optional.Some(self.marker(idl.TokenTypeEndBlock))); err != nil {
			return err
		}
	}
	return nil
}

func (self *lineContext) endLine() error {
	for bound := self.depth(); bound > 0; bound = bound - 1 {
		state, err := self.current()
		if err != nil {
			return err
		}
		if state == StateSingleLineComment {
			if err := self.pop(StateSingleLineComment, optional.Some(self.eol(idl.TokenTypeTmpEndSingleLineComment))); err != nil {
				return err
			}
			continue
		}
		if state == StateQuotedString {
			return self.unclosed(unclosedReasons[StateQuotedString])
		}
		break
	}
	if err := self.checkDelimiters(); err != nil {
		return err
	}
	self.tokens = coalesce(self.line, self.tokens)
	return nil
}

func (self *lineContext) endFile() error {
	for bound := self.depth() + len(self.engine.indents); bound > 0; bound = bound - 1 {
		state, err := self.current()
		if err != nil {
			return err
		}
		switch state {
		case StateBeginFile:
			return self.checkEmpty()
		case StateSingleLineComment:
			if err := self.pop(StateSingleLineComment, optional.Some(self.eol(idl.TokenTypeTmpEndSingleLineComment))); err != nil {
				return err
			}
		case StateIndentedBlock:
			if err := self.dedent(""); err != nil {
				return err
			}
		default:
			reason, ok := unclosedReasons[state]
			if !ok {
				return self.corruption(fmt.Sprintf("unexpected state %s at end-of-file", state))
			}
			return self.unclosed(reason)
		}
	}
	return self.checkEmpty()
}

func (self *lineContext) checkEmpty() error {
	states := self.engine.states
	if len(states) != 1 || states[0] != StateBeginFile {
		return self.corruption("context state not empty at end-of-file")
	}
	return nil
}

func isDelimiter(tt idl.TokenType) bool {
	switch tt {
	case idl.TokenTypeTmpBeginMultiLineComment, idl.TokenTypeTmpEndMultiLineComment,
		idl.TokenTypeTmpBeginMultiLineString, idl.TokenTypeTmpEndMultiLineString:
		return true
	}
	return false
}

// checkDelimiters rejects lines that mix a multi-line delimiter with any
// other token. Block markers do not count.
func (self *lineContext) checkDelimiters() error {
	count := 0
	var delimiter *idl.Token
	for x := range self.tokens {
		if self.tokens[x].Type.IsStructural() {
			continue
		}
		count = count + 1
		if delimiter == nil && isDelimiter(self.tokens[x].Type) {
			delimiter = &self.tokens[x]
		}
	}
	if delimiter == nil || count == 1 {
		return nil
	}
	kind := idl.AtomicKindBlockCommentDash
	if delimiter.Type == idl.TokenTypeTmpBeginMultiLineString || delimiter.Type == idl.TokenTypeTmpEndMultiLineString {
		kind = idl.AtomicKindMultiLineString
	}
	t := idl.AtomicToken{Kind: kind, Value: delimiter.Value, Span: delimiter.Span}
	return self.exception(exc.CodeInvalidTokenInContext, t.Span,
		fmt.Sprintf("multi-line delimiter '%s' must be the only token on its line", t.Value), optional.Some(t))
}

// coalesce folds the provisional tokens of one line. A single-line string or
// comment becomes one content token and neighbouring content tokens of the
// same kind join up, keeping the whitespace that separated them.
func coalesce(line idl.SourceLine, tokens []idl.Token) []idl.Token {
	out := make([]idl.Token, 0, len(tokens))
	var acc *idl.Token
	join := func(target *idl.Token, t idl.Token) {
		target.Value = target.Value + line.Between(target.Span, t.Span) + t.Value
		target.Span.End = t.Span.End
	}
	for _, t := range tokens {
		switch t.Type {
		case idl.TokenTypeTmpBeginSingleLineString:
			acc = &idl.Token{Type: idl.TokenTypeTmpStringContent, Span: t.Span}
		case idl.TokenTypeTmpBeginSingleLineComment:
			acc = &idl.Token{Type: idl.TokenTypeTmpSingleLineCommentContent, Span: t.Span}
		case idl.TokenTypeTmpEndSingleLineString:
			if acc == nil {
				out = append(out, t)
				continue
			}
			acc.Value = acc.Value + line.Between(acc.Span, t.Span)
			acc.Span.End = t.Span.End
			out = append(out, *acc)
			acc = nil
		case idl.TokenTypeTmpEndSingleLineComment:
			if acc == nil {
				out = append(out, t)
				continue
			}
			acc.Span.End = t.Span.End
			out = append(out, *acc)
			acc = nil
		case idl.TokenTypeTmpStringContent, idl.TokenTypeTmpSingleLineCommentContent, idl.TokenTypeTmpMultiLineCommentContent:
			if acc != nil {
				join(acc, t)
				continue
			}
			if n := len(out); n > 0 && out[n-1].Type == t.Type {
				join(&out[n-1], t)
				continue
			}
			out = append(out, t)
		default:
			out = append(out, t)
		}
	}
	if acc != nil {
		out = append(out, *acc)
	}
	return out
}
