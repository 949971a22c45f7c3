// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package optional holds values that may be absent, such as the result of an
// iterator that has run out or the token that triggered a failure.
package optional

type Optional[T any] struct {
	present bool
	value   T
}

func (self Optional[T]) IsPresent() bool {
	return self.present
}

// Value returns the held value, or the zero value when absent.
func (self Optional[T]) Value() T {
	return self.value
}

// ValueOr returns the held value, or fallback when absent.
func (self Optional[T]) ValueOr(fallback T) T {
	if !self.present {
		return fallback
	}
	return self.value
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}
