// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

//go:build aix || darwin || dragonfly || freebsd || (js && wasm) || linux || netbsd || openbsd || solaris

package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRootsXDG(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"XDG_DATA_DIRS": "$HOME/share:/usr/share",
		"HOME":          "/home/yapl",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
	require.Equal(t, []string{"/home/yapl/share/yapl", "/usr/share/yapl"}, getDefaultRoots(lookup))

	none := func(string) (string, bool) { return "", false }
	require.Equal(t, []string{"/usr/local/share/yapl", "/usr/share/yapl"}, getDefaultRoots(none))
}
