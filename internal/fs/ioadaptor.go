// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
)

const readChunk = 32 * 1024

// bodyFromIO adapts an io.ReadCloser to idl.FileBody. The slice returned by
// Read is only valid until the next call.
func bodyFromIO(uri string, v io.ReadCloser) idl.FileBody {
	return &ioFileBody{uri: uri, rc: v}
}

type ioFileBody struct {
	uri    string
	rc     io.ReadCloser
	buf    []byte
	closed bool
}

func (self *ioFileBody) Read(ctx context.Context, size int32) ([]byte, error) {
	loc := exc.Location{URI: self.uri}
	if err := ctx.Err(); err != nil {
		return nil, exc.WrapUnknown(loc, err)
	}
	if size < 1 {
		return nil, exc.New(loc, exc.CodeUnknownFatal, fmt.Sprintf("invalid read size %d", size))
	}
	if cap(self.buf) < int(size) {
		self.buf = make([]byte, size)
	}
	count, err := self.rc.Read(self.buf[:size])
	switch {
	case errors.Is(err, io.EOF):
		return self.buf[:count], exc.Wrap(loc, exc.CodeEOF, err)
	case err != nil:
		return nil, fsErr(self.uri, err)
	}
	return self.buf[:count], nil
}

func (self *ioFileBody) Close(ctx context.Context) error {
	if self.closed {
		return nil
	}
	self.closed = true
	return self.rc.Close()
}

// ReadAll returns the whole content of f.
func ReadAll(ctx context.Context, f idl.File) (string, error) {
	body, err := f.Body(ctx)
	if err != nil {
		return "", err
	}
	defer body.Close(ctx)
	var b strings.Builder
	for {
		chunk, err := body.Read(ctx, readChunk)
		b.Write(chunk)
		if err == nil {
			continue
		}
		var e exc.Exception
		if errors.As(err, &e) && e.Code() == exc.CodeEOF {
			return b.String(), nil
		}
		return "", err
	}
}
