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

// EngineState is the automaton state that lives for a whole file.
type EngineState struct {
	states  stateStack
	indents indentStack
}

func NewEngineState() *EngineState {
	return &EngineState{
		states: stateStack{StateBeginFile},
	}
}

// States returns a copy of the state stack, bottom first.
func (self *EngineState) States() []State {
	return self.states.clone()
}

// Indents returns a copy of the indentation deltas, outermost first.
func (self *EngineState) Indents() []int {
	return self.indents.clone()
}

// lineContext borrows the engine state for the processing of one line and
// collects the tokens emitted for it.
type lineContext struct {
	engine *EngineState
	line   idl.SourceLine
	tokens []idl.Token
}

func newLineContext(engine *EngineState, line idl.SourceLine) *lineContext {
	return &lineContext{
		engine: engine,
		line:   line,
		tokens: make([]idl.Token, 0, len(line.Tokens)+1),
	}
}

func (self *lineContext) emit(t idl.Token) {
	self.tokens = append(self.tokens, t)
}

// pushWith emits t and then enters s.
func (self *lineContext) pushWith(s State, t idl.Token) {
	self.emit(t)
	self.push(s)
}

func (self *lineContext) push(s State) {
	self.engine.states.push(s)
}

// pop emits t, when present, and leaves expected.
func (self *lineContext) pop(expected State, t optional.Optional[idl.Token]) error {
	top, ok := self.engine.states.top()
	if !ok {
		return self.corruption(fmt.Sprintf("pop of %s from an empty state stack", expected))
	}
	if top != expected {
		return self.corruption(fmt.Sprintf("pop went haywire: expected %s but found %s", expected, top))
	}
	if t.IsPresent() {
		self.emit(t.Value())
	}
	self.engine.states.pop()
	return nil
}

func (self *lineContext) current() (State, error) {
	top, ok := self.engine.states.top()
	if !ok {
		return 0, self.corruption("state stack is empty")
	}
	return top, nil
}

func (self *lineContext) depth() int {
	return len(self.engine.states)
}

func (self *lineContext) wouldIndent() bool {
	return self.engine.indents.wouldIndent(self.line.Leading)
}

func (self *lineContext) wouldDedent() bool {
	return self.engine.indents.wouldDedent(self.line.Leading)
}

func (self *lineContext) indent() error {
	if err := self.engine.indents.indent(self.line.Leading); err != nil {
		return self.indentation(err.Error())
	}
	return nil
}

func (self *lineContext) maybeDedent(ws string) (int, error) {
	count, err := self.engine.indents.maybeDedent(ws)
	if err != nil {
		return 0, self.indentation(err.Error())
	}
	return count, nil
}

// marker builds a zero width structural token at the start of the line body,
// or at the end-of-file position.
func (self *lineContext) marker(tt idl.TokenType) idl.Token {
	body := self.line.BodySpan()
	return idl.Token{
		Type: tt,
		Span: idl.Span{URI: body.URI, Begin: body.Begin, End: body.Begin},
	}
}

// eol builds a zero width token at the end of the line body.
func (self *lineContext) eol(tt idl.TokenType) idl.Token {
	return idl.Token{
		Type: tt,
		Span: self.line.BodySpan().AsEnd(),
	}
}

func (self *lineContext) exception(code string, span idl.Span, message string, token optional.Optional[idl.AtomicToken]) *Exception {
	emitted := make([]idl.Token, len(self.tokens))
	copy(emitted, self.tokens)
	return newException(code, span, message, token, self.engine.states.clone(), emitted)
}

func (self *lineContext) closingUnopened(t idl.AtomicToken) error {
	return self.exception(exc.CodeClosingUnopenedBlock, t.Span,
		fmt.Sprintf("closing unopened block: '%s'", t.Value), optional.Some(t))
}

func (self *lineContext) unknownEscape(t idl.AtomicToken) error {
	return self.exception(exc.CodeUnknownEscapeCharacter, t.Span,
		fmt.Sprintf("unknown escape character: '%s'", t.Value), optional.Some(t))
}

func (self *lineContext) invalidToken(t idl.AtomicToken, reason string) error {
	state, _ := self.engine.states.top()
	return self.exception(exc.CodeInvalidTokenInContext, t.Span,
		fmt.Sprintf("invalid token '%s' in state %s: %s", t.Value, state, reason), optional.Some(t))
}

func (self *lineContext) unclosed(reason string) error {
	return self.exception(exc.CodeUnclosedOpenedBlock, self.line.BodySpan().AsEnd(), reason, optional.None[idl.AtomicToken]())
}

func (self *lineContext) indentation(reason string) error {
	return self.exception(exc.CodeIndentationError, self.line.BodySpan(), reason, optional.None[idl.AtomicToken]())
}

func (self *lineContext) corruption(reason string) error {
	return self.exception(exc.CodeAutomatonCorruption, self.line.BodySpan(), reason, optional.None[idl.AtomicToken]())
}
