// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import "fmt"

// State is one symbol of the pushdown automaton.
type State uint8

const (
	StateBeginFile State = iota
	StateNormal
	StateSingleLineComment
	StateMultiLineComment
	StateQuotedString
	StateMultiLineString
	StateStartingIndentedBlock
	StateIndentedBlock
	StateParenthesis
	StateBrackets
	StateCurlyBraces
)

func (s State) String() string {
	switch s {
	case StateBeginFile:
		return "BEGIN_FILE"
	case StateNormal:
		return "NORMAL"
	case StateSingleLineComment:
		return "SINGLE_LINE_COMMENT"
	case StateMultiLineComment:
		return "MULTI_LINE_COMMENT"
	case StateQuotedString:
		return "QUOTED_STRING"
	case StateMultiLineString:
		return "MULTI_LINE_STRING"
	case StateStartingIndentedBlock:
		return "STARTING_INDENTED_BLOCK"
	case StateIndentedBlock:
		return "INDENTED_BLOCK"
	case StateParenthesis:
		return "PARENTHESIS"
	case StateBrackets:
		return "BRACKETS"
	case StateCurlyBraces:
		return "CURLY_BRACES"
	default:
		return fmt.Sprintf("STATE(%d)", uint8(s))
	}
}

// category groups states that share a transition table.
type category uint8

const (
	categoryCode category = iota
	categoryBracket
	categorySingleLineComment
	categoryMultiLineComment
	categoryQuotedString
	categoryMultiLineString
	categoryStartingBlock
)

func (s State) category() category {
	switch s {
	case StateParenthesis, StateBrackets, StateCurlyBraces:
		return categoryBracket
	case StateSingleLineComment:
		return categorySingleLineComment
	case StateMultiLineComment:
		return categoryMultiLineComment
	case StateQuotedString:
		return categoryQuotedString
	case StateMultiLineString:
		return categoryMultiLineString
	case StateStartingIndentedBlock:
		return categoryStartingBlock
	default:
		return categoryCode
	}
}

// stateStack is shared by every line of a file. It is never empty while
// the automaton is consistent.
type stateStack []State

func (self stateStack) top() (State, bool) {
	if len(self) < 1 {
		return 0, false
	}
	return self[len(self)-1], true
}

func (self *stateStack) push(s State) {
	*self = append(*self, s)
}

func (self *stateStack) pop() {
	*self = (*self)[:len(*self)-1]
}

func (self stateStack) clone() []State {
	out := make([]State, len(self))
	copy(out, self)
	return out
}
