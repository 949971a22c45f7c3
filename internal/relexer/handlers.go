// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import (
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/optional"
)

// handler consumes one atomic token in the current state.
type handler func(c *lineContext, t idl.AtomicToken) error

var handlers = map[category]handler{
	categoryCode:              handleCode,
	categoryBracket:           handleBracket,
	categorySingleLineComment: handleSingleLineComment,
	categoryMultiLineComment:  handleMultiLineComment,
	categoryQuotedString:      handleQuotedString,
	categoryMultiLineString:   handleMultiLineString,
	categoryStartingBlock:     handleStartingBlock,
}

var echoes = map[idl.AtomicKind]idl.TokenType{
	idl.AtomicKindOpenParenthesis:  idl.TokenTypeOpenParenthesis,
	idl.AtomicKindCloseParenthesis: idl.TokenTypeCloseParenthesis,
	idl.AtomicKindOpenBracket:      idl.TokenTypeOpenBracket,
	idl.AtomicKindCloseBracket:     idl.TokenTypeCloseBracket,
	idl.AtomicKindOpenCurlyBrace:   idl.TokenTypeOpenCurlyBrace,
	idl.AtomicKindCloseCurlyBrace:  idl.TokenTypeCloseCurlyBrace,
}

// brackets maps each opening kind to the state it enters and each state to
// the kind that closes it.
var (
	bracketOpens = map[idl.AtomicKind]State{
		idl.AtomicKindOpenParenthesis: StateParenthesis,
		idl.AtomicKindOpenBracket:     StateBrackets,
		idl.AtomicKindOpenCurlyBrace:  StateCurlyBraces,
	}
	bracketCloses = map[State]idl.AtomicKind{
		StateParenthesis: idl.AtomicKindCloseParenthesis,
		StateBrackets:    idl.AtomicKindCloseBracket,
		StateCurlyBraces: idl.AtomicKindCloseCurlyBrace,
	}
)

func as(t idl.AtomicToken, tt idl.TokenType) idl.Token {
	return idl.Token{Span: t.Span, Type: tt, Value: t.Value}
}

func isClosing(k idl.AtomicKind) bool {
	return k == idl.AtomicKindCloseParenthesis || k == idl.AtomicKindCloseBracket || k == idl.AtomicKindCloseCurlyBrace
}

// open handles the tokens that start a nested construct the same way in code
// and inside brackets. It reports false when t opens nothing. Any opening
// bracket inside curly braces re-enters curly braces, so only '}' closes it.
func open(c *lineContext, t idl.AtomicToken) bool {
	switch t.Kind {
	case idl.AtomicKindBlockCommentDash:
		c.pushWith(StateMultiLineComment, as(t, idl.TokenTypeTmpBeginMultiLineComment))
	case idl.AtomicKindCommentDash:
		c.pushWith(StateSingleLineComment, as(t, idl.TokenTypeTmpBeginSingleLineComment))
	case idl.AtomicKindQuotedString:
		c.pushWith(StateQuotedString, as(t, idl.TokenTypeTmpBeginSingleLineString))
	case idl.AtomicKindMultiLineString:
		c.pushWith(StateMultiLineString, as(t, idl.TokenTypeTmpBeginMultiLineString))
	case idl.AtomicKindOpenParenthesis, idl.AtomicKindOpenBracket, idl.AtomicKindOpenCurlyBrace:
		next := bracketOpens[t.Kind]
		if top, ok := c.engine.states.top(); ok && top == StateCurlyBraces {
			next = StateCurlyBraces
		}
		c.pushWith(next, as(t, echoes[t.Kind]))
	default:
		return false
	}
	return true
}

func handleCode(c *lineContext, t idl.AtomicToken) error {
	if open(c, t) {
		return nil
	}
	switch t.Kind {
	case idl.AtomicKindNormal, idl.AtomicKindComma:
		c.emit(as(t, idl.TokenTypeNormal))
	case idl.AtomicKindColon:
		c.push(StateStartingIndentedBlock)
	case idl.AtomicKindEscapedCharacter:
		return c.invalidToken(t, "escape sequences are only valid inside strings")
	default:
		if isClosing(t.Kind) {
			return c.closingUnopened(t)
		}
		return c.invalidToken(t, "unexpected token")
	}
	return nil
}

func handleBracket(c *lineContext, t idl.AtomicToken) error {
	if open(c, t) {
		return nil
	}
	state, err := c.current()
	if err != nil {
		return err
	}
	switch t.Kind {
	case idl.AtomicKindNormal:
		c.emit(as(t, idl.TokenTypeNormal))
	case idl.AtomicKindComma:
		c.emit(as(t, idl.TokenTypeComma))
	case idl.AtomicKindColon:
		return c.invalidToken(t, "a colon is not expected inside parenthesis, brackets, or curly braces")
	case idl.AtomicKindEscapedCharacter:
		return c.invalidToken(t, "escape sequences are only valid inside strings")
	default:
		if t.Kind == bracketCloses[state] {
			return c.pop(state, optional.Some(as(t, echoes[t.Kind])))
		}
		if isClosing(t.Kind) {
			return c.closingUnopened(t)
		}
		return c.invalidToken(t, "unexpected token")
	}
	return nil
}

func handleSingleLineComment(c *lineContext, t idl.AtomicToken) error {
	c.emit(as(t, idl.TokenTypeTmpSingleLineCommentContent))
	return nil
}

func handleMultiLineComment(c *lineContext, t idl.AtomicToken) error {
	if t.Kind == idl.AtomicKindBlockCommentDash {
		return c.pop(StateMultiLineComment, optional.Some(as(t, idl.TokenTypeTmpEndMultiLineComment)))
	}
	c.emit(as(t, idl.TokenTypeTmpMultiLineCommentContent))
	return nil
}

func handleQuotedString(c *lineContext, t idl.AtomicToken) error {
	if t.Kind == idl.AtomicKindQuotedString {
		return c.pop(StateQuotedString, optional.Some(as(t, idl.TokenTypeTmpEndSingleLineString)))
	}
	return stringContent(c, t)
}

func handleMultiLineString(c *lineContext, t idl.AtomicToken) error {
	if t.Kind == idl.AtomicKindMultiLineString {
		return c.pop(StateMultiLineString, optional.Some(as(t, idl.TokenTypeTmpEndMultiLineString)))
	}
	return stringContent(c, t)
}

func stringContent(c *lineContext, t idl.AtomicToken) error {
	if t.Kind != idl.AtomicKindEscapedCharacter {
		c.emit(as(t, idl.TokenTypeTmpStringContent))
		return nil
	}
	v, ok := unescape(t.Value)
	if !ok {
		return c.unknownEscape(t)
	}
	content := as(t, idl.TokenTypeTmpStringContent)
	content.Value = v
	c.emit(content)
	return nil
}

// handleStartingBlock rejects everything: a ':' must end its line.
func handleStartingBlock(c *lineContext, t idl.AtomicToken) error {
	return c.invalidToken(t, "expected end of line after ':'")
}

// consume dispatches t to the handler of the current state.
func (self *lineContext) consume(t idl.AtomicToken) error {
	state, err := self.current()
	if err != nil {
		return err
	}
	return handlers[state.category()](self, t)
}
