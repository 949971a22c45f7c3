// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/optional"
)

const (
	maxLineSize = 16 * 1024 * 1024
	utf8BOM     = "\xEF\xBB\xBF"
)

// NewLineFileBody converts a FileBody into an iterator of physical lines.
func NewLineFileBody(uri string, b idl.FileBody) *LineReader {
	return NewLineFileBodyCtx(context.Background(), uri, b)
}

// NewLineFileBodyCtx is the same as NewLineFileBody but uses the given
// context for all read operations for cancellation or other purposes.
//
// Lines end at "\n", "\r\n" or a lone "\r" and never include the terminator.
// Every line must be valid UTF-8. The first invalid line ends the iteration
// and the failure is returned from Close.
func NewLineFileBodyCtx(ctx context.Context, uri string, b idl.FileBody) *LineReader {
	rc := &fileBodyIO{
		ctx:  ctx,
		body: b,
	}
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	scanner.Split(scanLinesWithTerminator)
	return &LineReader{
		uri:        uri,
		readCloser: rc,
		scanner:    scanner,
		next:       idl.Location{Line: 1},
	}
}

// LineReader iterates the lines of a file body.
type LineReader struct {
	uri        string
	readCloser io.ReadCloser
	scanner    *bufio.Scanner
	next       idl.Location
	started    bool
	err        error
}

func (self *LineReader) Next(ctx context.Context) optional.Optional[idl.FileLine] {
	if self.err != nil || !self.scanner.Scan() {
		return optional.None[idl.FileLine]()
	}
	raw := self.scanner.Bytes()
	if !self.started {
		self.started = true
		if bytes.HasPrefix(raw, []byte(utf8BOM)) {
			raw = raw[len(utf8BOM):]
			self.next = self.next.Advance(len(utf8BOM))
			self.next.Column = 0
		}
	}
	text, terminated := trimTerminator(raw)
	begin := self.next
	if bad := invalidUTF8(text); bad >= 0 {
		at := begin.Advance(bad)
		self.err = exc.New(
			exc.Location{Location: at, URI: self.uri},
			exc.CodeInvalidUTF8,
			fmt.Sprintf("file contains invalid UTF-8 at byte offset %d", at.Offset),
		)
		return optional.None[idl.FileLine]()
	}
	end := begin.Advance(len(text))
	self.next = begin.Advance(len(raw))
	if terminated {
		self.next = idl.Location{Line: begin.Line + 1, Offset: self.next.Offset}
	}
	return optional.Some(idl.FileLine{
		Text: string(text),
		Span: idl.Span{URI: self.uri, Begin: begin, End: end},
	})
}

// End returns the location immediately following the last line read so far.
// Once the reader is exhausted this is where the end-of-file line sits.
func (self *LineReader) End() idl.Location {
	return self.next
}

func (self *LineReader) Close(context.Context) error {
	_ = self.readCloser.Close()
	if self.err != nil {
		return self.err
	}
	if err := self.scanner.Err(); err != nil {
		return exc.WrapUnknown(exc.Location{Location: self.next, URI: self.uri}, err)
	}
	return nil
}

func scanLinesWithTerminator(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i+1], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i+2], nil
			}
			return i + 1, data[:i+1], nil
		}
		if atEOF {
			return i + 1, data[:i+1], nil
		}
		// A trailing '\r' may be the first half of "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func trimTerminator(raw []byte) ([]byte, bool) {
	switch {
	case bytes.HasSuffix(raw, []byte("\r\n")):
		return raw[:len(raw)-2], true
	case bytes.HasSuffix(raw, []byte("\n")), bytes.HasSuffix(raw, []byte("\r")):
		return raw[:len(raw)-1], true
	default:
		return raw, false
	}
}

// invalidUTF8 returns the byte index of the first invalid sequence or -1.
func invalidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for offset := 0; offset < len(b); {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset = offset + size
	}
	return -1
}

type fileBodyIO struct {
	ctx  context.Context
	body idl.FileBody
}

func (self *fileBodyIO) Read(p []byte) (int, error) {
	if err := self.ctx.Err(); err != nil {
		return 0, err
	}
	b, err := self.body.Read(self.ctx, int32(len(p)))
	copy(p, b)
	if err != nil && errors.Is(err, io.EOF) {
		return len(b), io.EOF
	}
	return len(b), err
}

func (self *fileBodyIO) Close() error {
	return self.body.Close(self.ctx)
}
