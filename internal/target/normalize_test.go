// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeURI(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"absolute path", "/a/b.yapl", "/a/b.yapl"},
		{"relative path", "a/b.yapl", "/a/b.yapl"},
		{"unclean path", "/a/../b/./c.yapl", "/b/c.yapl"},
		{"file uri", "file:///a/b.yapl", "/a/b.yapl"},
		{"root", "", "/"},
		{"remote uri", "https://example.com/a.yapl", "https://example.com/a.yapl"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.expected, NormalizeURI(testCase.input))
		})
	}
}
