// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import "fmt"

const tabWidth = 4

// indentationError is converted into an Exception by the line context, which
// owns the diagnostic state.
type indentationError string

func (e indentationError) Error() string {
	return string(e)
}

// whitespaceWidth counts a tab as four columns and anything else as one.
func whitespaceWidth(ws string) int {
	width := 0
	for _, r := range ws {
		if r == '\t' {
			width = width + tabWidth
			continue
		}
		width = width + 1
	}
	return width
}

// indentStack holds the delta of each open indentation level.
type indentStack []int

func (self indentStack) total() int {
	sum := 0
	for _, delta := range self {
		sum = sum + delta
	}
	return sum
}

func (self indentStack) wouldIndent(ws string) bool {
	return whitespaceWidth(ws) > self.total()
}

func (self indentStack) wouldDedent(ws string) bool {
	return whitespaceWidth(ws) < self.total()
}

func (self *indentStack) indent(ws string) error {
	width := whitespaceWidth(ws)
	current := self.total()
	if width <= current {
		return indentationError(fmt.Sprintf(
			"indenting to (%d), which is our prior indentation level (%d), or less", width, current,
		))
	}
	*self = append(*self, width-current)
	return nil
}

// maybeDedent pops every level deeper than ws and returns how many were
// popped.
func (self *indentStack) maybeDedent(ws string) (int, error) {
	width := whitespaceWidth(ws)
	current := self.total()
	if width > current {
		return 0, indentationError(fmt.Sprintf(
			"expected a potential de-dent, found an in-dent instead (%d > %d)", width, current,
		))
	}
	count := 0
	for len(*self) > 0 && current > width {
		current = current - (*self)[len(*self)-1]
		*self = (*self)[:len(*self)-1]
		count = count + 1
	}
	return count, nil
}

func (self indentStack) clone() []int {
	out := make([]int, len(self))
	copy(out, self)
	return out
}
