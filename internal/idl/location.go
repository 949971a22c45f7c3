// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"errors"
	"fmt"
)

// Location is a byte precise position within a source. Line is 1-based,
// Column is the byte offset within the line and Offset the byte offset within
// the whole source.
type Location struct {
	Line   int32
	Column int32
	Offset int64
}

// Advance returns the location n bytes further along the same line.
func (self Location) Advance(n int) Location {
	return Location{
		Line:   self.Line,
		Column: self.Column + int32(n),
		Offset: self.Offset + int64(n),
	}
}

func (self Location) String() string {
	return fmt.Sprintf("%d:%d", self.Line, self.Column)
}

// ErrCrossSource is returned when two spans from different sources are
// combined.
var ErrCrossSource = errors.New("spans belong to different sources")

// Span is a begin/end pair of locations within one named source.
type Span struct {
	URI   string
	Begin Location
	End   Location
}

// IsImmediatePredecessorOf reports whether other begins at the exact byte
// where this span ends.
func (self Span) IsImmediatePredecessorOf(other Span) bool {
	return self.URI == other.URI && self.End.Offset == other.Begin.Offset
}

// IsPredecessorLineOf reports whether other begins on the line after this
// span begins, at the same column.
func (self Span) IsPredecessorLineOf(other Span) bool {
	return self.URI == other.URI &&
		self.Begin.Line+1 == other.Begin.Line &&
		self.Begin.Column == other.Begin.Column
}

// ExtendTo returns a copy of the span that ends where other ends.
func (self Span) ExtendTo(other Span) (Span, error) {
	if self.URI != other.URI {
		return self, fmt.Errorf("%w: %q and %q", ErrCrossSource, self.URI, other.URI)
	}
	return Span{URI: self.URI, Begin: self.Begin, End: other.End}, nil
}

// AsEnd returns a zero width span positioned at the end of this one.
func (self Span) AsEnd() Span {
	return Span{URI: self.URI, Begin: self.End, End: self.End}
}

func (self Span) String() string {
	return fmt.Sprintf("%s:%s-%s", self.URI, self.Begin, self.End)
}
