// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package relexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnescape(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{`\n`, "\n", true},
		{`\t`, "\t", true},
		{`\r`, "\r", true},
		{`\b`, "\b", true},
		{`\f`, "\f", true},
		{`\v`, "\v", true},
		{`\a`, "\a", true},
		{`\"`, `"`, true},
		{`\'`, "'", true},
		{`\\`, `\`, true},
		{`\?`, "?", true},
		{`\e`, "\x1b", true},
		{`\0`, "\x00", true},
		{`\7`, "\x07", true},
		{`\101`, "A", true},
		{`\x41`, "A", true},
		{`\x7f`, "\x7f", true},
		{`\x141`, "A", true},
		{`\xFFFFFF`, "\xff", true},
		{`\777`, "\xff", true},
		{`\u20ac`, "\u20ac", true},
		{`\u00e9`, "\u00e9", true},
		{`\ud800`, "", false},
		{`\U0001F600`, "", false},
		{`\q`, "", false},
		{`\8`, "", false},
		{`\é`, "", false},
		{`\`, "", false},
		{`n`, "", false},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			actual, ok := unescape(testCase.input)
			require.Equal(t, testCase.ok, ok)
			require.Equal(t, testCase.expected, actual)
		})
	}
}
