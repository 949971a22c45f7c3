// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.yapllang.org/compiler.go/internal/idl"
)

func sequence(n int) []idl.Token {
	out := make([]idl.Token, 0, n)
	for x := 0; x < n; x = x + 1 {
		out = append(out, idl.Token{Type: idl.TokenTypeNormal, Value: fmt.Sprintf("t%d", x)})
	}
	return out
}

func TestLookahead(t *testing.T) {
	t.Parallel()

	const count = 8
	for depth := 0; depth < count+2; depth = depth + 1 {
		depth := depth
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			tokens := sequence(count)
			look := NewLookahead(NewSlice(tokens), uint8(depth))
			for x := 0; x < count; x = x + 1 {
				current := look.Next(ctx)
				require.True(t, current.IsPresent())
				require.Equal(t, tokens[x], current.Value())
				require.Equal(t, current, look.Lookahead(ctx, 0))

				peek := look.Lookahead(ctx, uint8(depth))
				if x+depth < count {
					require.True(t, peek.IsPresent())
					require.Equal(t, tokens[x+depth], peek.Value())
				} else {
					require.False(t, peek.IsPresent())
				}
				require.False(t, look.Lookahead(ctx, uint8(depth+1)).IsPresent())
			}
			require.False(t, look.Next(ctx).IsPresent())
			require.NoError(t, look.Close(ctx))
		})
	}
}

func TestLookaheadPeekFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tokens := sequence(3)
	look := NewLookahead(NewSlice(tokens), 1)
	require.Equal(t, tokens[1], look.Lookahead(ctx, 1).Value())
	require.Equal(t, tokens[0], look.Next(ctx).Value())
	require.Equal(t, tokens[1], look.Next(ctx).Value())
}

func TestIteratorFilter(t *testing.T) {
	t.Parallel()

	keepOdd := FilterFunc[idl.Token](func(ctx context.Context, val idl.Token) bool {
		return val.Value[len(val.Value)-1]%2 == 1
	})
	testCases := []struct {
		name     string
		input    []idl.Token
		expected []string
	}{
		{name: "empty", input: nil, expected: []string{}},
		{name: "none kept", input: sequence(1), expected: []string{}},
		{name: "alternating", input: sequence(6), expected: []string{"t1", "t3", "t5"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			out, err := Collect(ctx, NewIteratorFilter(NewSlice(testCase.input), idl.Filter[idl.Token](keepOdd)))
			require.NoError(t, err)
			values := make([]string, 0, len(out))
			for _, v := range out {
				values = append(values, v.Value)
			}
			require.Equal(t, testCase.expected, values)
		})
	}
}

func TestSliceClose(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	it := NewSlice(sequence(2))
	require.True(t, it.Next(ctx).IsPresent())
	require.NoError(t, it.Close(ctx))
	require.False(t, it.Next(ctx).IsPresent())
}

var benchPeek idl.Token

func BenchmarkLookahead(b *testing.B) {
	ctx := context.Background()
	tokens := sequence(1000)
	b.ResetTimer()
	for n := 0; n < b.N; n = n + 1 {
		look := NewLookahead(NewSlice(tokens), 1)
		for v := look.Next(ctx); v.IsPresent(); v = look.Next(ctx) {
			benchPeek = look.Lookahead(ctx, 1).Value()
		}
	}
}
