// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"gopkg.yapllang.org/compiler.go/internal/idl"
)

const maxStackDepth = 32

type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
	// Stack renders the call stack captured when the exception was created.
	Stack() string
}

type Location struct {
	idl.Location
	URI string
}

// SpanLocation converts the beginning of a span into an exception location.
func SpanLocation(s idl.Span) Location {
	return Location{Location: s.Begin, URI: s.URI}
}

type exc struct {
	code     string
	message  string
	location Location
	callers  []uintptr
}

func (e *exc) Error() string {
	return fmt.Sprintf("%s:%d:%d -- %s: %s", e.location.URI, e.location.Line, e.location.Column, e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Location() Location {
	return e.location
}

func (e *exc) Stack() string {
	if len(e.callers) < 1 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(e.callers)
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

// Stack prefers the stack of a wrapped exception since it points closer to
// the failure.
func (e *excUnwrap) Stack() string {
	var inner Exception
	if errors.As(e.cause, &inner) {
		if s := inner.Stack(); s != "" {
			return s
		}
	}
	return e.Exception.Stack()
}

func New(location Location, code string, message string) Exception {
	return newAt(3, location, code, message)
}

// newAt records the stack starting skip frames above runtime.Callers.
func newAt(skip int, location Location, code string, message string) *exc {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	return &exc{
		location: location,
		message:  message,
		code:     code,
		callers:  pcs[:n],
	}
}

// Wrap converts err into an Exception with the given code. When err is
// already an Exception its message is kept, and so is its location if the
// given one has no URI.
func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	message := err.Error()
	var inner Exception
	if errors.As(err, &inner) {
		message = inner.Message()
		if location.URI == "" {
			location = inner.Location()
		}
	}
	return &excUnwrap{
		Exception: newAt(3, location, code, message),
		cause:     err,
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}
