// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import (
	"fmt"
	"strings"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/optional"
)

// Exception is the single error type raised while relexing. The embedded
// exc.Exception carries the code that identifies the failure. The other
// fields snapshot the automaton when the failure was raised.
type Exception struct {
	exc.Exception
	// Token is the atomic token that triggered the failure, if any.
	Token optional.Optional[idl.AtomicToken]
	// State is the top of the state stack at the time of failure.
	State State
	// States is the full state stack, bottom first.
	States []State
	// Emitted holds the tokens already produced for the current line.
	Emitted []idl.Token
}

func (self *Exception) Unwrap() error {
	return self.Exception
}

// Dump renders the diagnostic context of the failure.
func (self *Exception) Dump() string {
	var b strings.Builder
	b.WriteString("state stack:\n")
	if len(self.States) < 1 {
		b.WriteString("  <empty>\n")
	}
	for x, s := range self.States {
		fmt.Fprintf(&b, "  [%d] %s\n", x, s)
	}
	b.WriteString("output tokens:\n")
	if len(self.Emitted) < 1 {
		b.WriteString("  <empty>\n")
	}
	for x, t := range self.Emitted {
		fmt.Fprintf(&b, "  [%d] %-36s %q %s\n", x, t.Type, t.Value, t.Span)
	}
	b.WriteString("message:\n")
	fmt.Fprintf(&b, "  %s: %s\n", exc.CodeName(self.Code()), self.Message())
	b.WriteString("location:\n")
	loc := self.Location()
	fmt.Fprintf(&b, "  %s:%d:%d\n", loc.URI, loc.Line, loc.Column)
	return b.String()
}

func newException(code string, span idl.Span, message string, token optional.Optional[idl.AtomicToken], states []State, emitted []idl.Token) *Exception {
	e := &Exception{
		Exception: exc.New(exc.SpanLocation(span), code, message),
		Token:     token,
		States:    states,
		Emitted:   emitted,
	}
	if len(states) > 0 {
		e.State = states[len(states)-1]
	}
	return e
}
