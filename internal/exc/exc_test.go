// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.yapllang.org/compiler.go/internal/idl"
)

func TestExceptionFormat(t *testing.T) {
	t.Parallel()

	loc := Location{Location: idl.Location{Line: 3, Column: 7, Offset: 40}, URI: "/a.yapl"}
	e := New(loc, CodeIndentationError, "bad indent")
	require.Equal(t, "/a.yapl:3:7 -- Y0105: bad indent", e.Error())
	require.Equal(t, CodeIndentationError, e.Code())
	require.Equal(t, "bad indent", e.Message())
	require.Equal(t, loc, e.Location())
	require.Contains(t, e.Stack(), "TestExceptionFormat")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(Location{}, CodeUnknownFatal, nil))

	e := Wrap(Location{URI: "/x"}, CodeFileNotFound, io.ErrUnexpectedEOF)
	require.True(t, errors.Is(e, io.ErrUnexpectedEOF))
	require.Equal(t, io.ErrUnexpectedEOF.Error(), e.Message())

	inner := New(Location{URI: "/y"}, CodeInvalidUTF8, "inner")
	outer := WrapUnknown(Location{URI: "/z"}, inner)
	require.Equal(t, CodeUnknownFatal, outer.Code())
	require.Equal(t, "inner", outer.Message())
	var target Exception
	require.True(t, errors.As(errors.Unwrap(outer), &target))
	require.Equal(t, CodeInvalidUTF8, target.Code())
	require.Equal(t, "/z", outer.Location().URI)
	require.Equal(t, inner.Stack(), outer.Stack())

	located := New(Location{URI: "/y", Location: idl.Location{Line: 4, Column: 2}}, CodeInvalidUTF8, "inner")
	inherited := WrapUnknown(Location{}, located)
	require.Equal(t, located.Location(), inherited.Location())
}

func TestReporter(t *testing.T) {
	t.Parallel()

	r := NewReporter([]string{CodeFileNotFound})
	wg := &sync.WaitGroup{}
	for x := 0; x < 10; x = x + 1 {
		wg.Add(1)
		go func(x int) {
			defer wg.Done()
			code := CodeFileNotFound
			if x%2 == 0 {
				code = CodeUnclosedOpenedBlock
			}
			_ = r.Report(New(Location{}, code, "m"))
		}(x)
	}
	wg.Wait()
	require.Len(t, r.Reported(), 10)
	require.Len(t, r.Fatal(), 5)
	require.Nil(t, r.Report(New(Location{}, CodeFileNotFound, "m")))
	require.NotNil(t, r.Report(New(Location{}, CodeAutomatonCorruption, "m")))
}

func TestCodeName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ClosingUnopenedBlock", CodeName(CodeClosingUnopenedBlock))
	require.Equal(t, "Unknown", CodeName("nope"))
	require.False(t, strings.HasPrefix(CodeName(CodeInvalidUTF8), "Y"))
}
