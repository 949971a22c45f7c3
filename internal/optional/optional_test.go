// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	some := Some("x")
	require.True(t, some.IsPresent())
	require.Equal(t, "x", some.Value())
	require.Equal(t, "x", some.ValueOr("y"))

	none := None[string]()
	require.False(t, none.IsPresent())
	require.Equal(t, "", none.Value())
	require.Equal(t, "y", none.ValueOr("y"))

	zero := Some(0)
	require.True(t, zero.IsPresent())
	require.Equal(t, 0, zero.ValueOr(7))
}
