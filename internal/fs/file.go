// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"bufio"
	"context"
	"io"
	"strings"

	"gopkg.yapllang.org/compiler.go/internal/idl"
)

// NewFileString wraps static string content in idl.File. It is mostly used
// to relex sources that never touch a disk, such as test fixtures.
func NewFileString(path string, content string, kind idl.FileKind) idl.File {
	return NewFileFN(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}, kind)
}

// NewFileFN wraps content behind an opener in idl.File. The opener runs on
// every call to Body and must return a fresh handle each time. Handles may
// be in use concurrently.
func NewFileFN(path string, open func() (io.ReadCloser, error), kind idl.FileKind) idl.File {
	return &lazyFile{
		path: path,
		kind: kind,
		open: open,
	}
}

type lazyFile struct {
	path string
	kind idl.FileKind
	open func() (io.ReadCloser, error)
}

func (self *lazyFile) Path(ctx context.Context) string {
	return self.path
}

func (self *lazyFile) Kind(ctx context.Context) idl.FileKind {
	return self.kind
}

func (self *lazyFile) Body(ctx context.Context) (idl.FileBody, error) {
	rc, err := self.open()
	if err != nil {
		return nil, fsErr(self.path, err)
	}
	return bodyFromIO(self.path, struct {
		io.Reader
		io.Closer
	}{bufio.NewReader(rc), rc}), nil
}
