// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package iter provides the Iterator implementations used to walk source
// lines, tokens, and files.
package iter

import (
	"context"

	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/optional"
)

// NewSlice iterates over vs in order without copying it.
func NewSlice[T any](vs []T) idl.Iterator[T] {
	return &sliceIterator[T]{rest: vs}
}

type sliceIterator[T any] struct {
	rest []T
}

func (self *sliceIterator[T]) Next(ctx context.Context) optional.Optional[T] {
	if len(self.rest) < 1 {
		return optional.None[T]()
	}
	v := self.rest[0]
	self.rest = self.rest[1:]
	return optional.Some(v)
}

func (self *sliceIterator[T]) Close(ctx context.Context) error {
	self.rest = nil
	return nil
}

// NewIteratorFilter yields only the values of it that f keeps.
func NewIteratorFilter[T any](it idl.Iterator[T], f idl.Filter[T]) idl.Iterator[T] {
	return &filterIterator[T]{source: it, filter: f}
}

type filterIterator[T any] struct {
	source idl.Iterator[T]
	filter idl.Filter[T]
}

func (self *filterIterator[T]) Next(ctx context.Context) optional.Optional[T] {
	for v := self.source.Next(ctx); v.IsPresent(); v = self.source.Next(ctx) {
		if self.filter.Keep(ctx, v.Value()) {
			return v
		}
	}
	return optional.None[T]()
}

func (self *filterIterator[T]) Close(ctx context.Context) error {
	return self.source.Close(ctx)
}

// NewLookahead allows peeking up to depth values past the one most recently
// returned by Next. Lookahead(ctx, 0) is that value.
func NewLookahead[T any](it idl.Iterator[T], depth uint8) idl.Lookahead[T] {
	return &lookahead[T]{source: it, depth: depth}
}

type lookahead[T any] struct {
	source idl.Iterator[T]
	depth  uint8
	window []optional.Optional[T]
}

func (self *lookahead[T]) fill(ctx context.Context) bool {
	if self.window != nil {
		return false
	}
	self.window = make([]optional.Optional[T], 0, int(self.depth)+1)
	for len(self.window) <= int(self.depth) {
		self.window = append(self.window, self.source.Next(ctx))
	}
	return true
}

func (self *lookahead[T]) Next(ctx context.Context) optional.Optional[T] {
	if !self.fill(ctx) {
		self.window = append(self.window[1:], self.source.Next(ctx))
	}
	return self.window[0]
}

func (self *lookahead[T]) Lookahead(ctx context.Context, n uint8) optional.Optional[T] {
	self.fill(ctx)
	if n > self.depth {
		return optional.None[T]()
	}
	return self.window[n]
}

func (self *lookahead[T]) Close(ctx context.Context) error {
	return self.source.Close(ctx)
}

// FilterFunc adapts a plain function to idl.Filter. Signatures should accept
// idl.Filter rather than this type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}

// Collect drains the iterator into a slice and closes it.
func Collect[T any](ctx context.Context, it idl.Iterator[T]) ([]T, error) {
	out := make([]T, 0)
	for v := it.Next(ctx); v.IsPresent(); v = it.Next(ctx) {
		out = append(out, v.Value())
	}
	return out, it.Close(ctx)
}
