// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
)

// Field numbers of the binary encoding. The layout is equivalent to:
//
//	message Files    { repeated File files = 1; }
//	message File     { string uri = 1; repeated Line lines = 2; }
//	message Line     { int32 line = 1; repeated Token tokens = 2; }
//	message Token    { uint32 type = 1; string value = 2; Location begin = 3; Location end = 4; }
//	message Location { int32 line = 1; int32 column = 2; int64 offset = 3; }
const (
	fieldFilesFile protowire.Number = 1

	fieldFileURI   protowire.Number = 1
	fieldFileLines protowire.Number = 2

	fieldLineNumber protowire.Number = 1
	fieldLineTokens protowire.Number = 2

	fieldTokenType  protowire.Number = 1
	fieldTokenValue protowire.Number = 2
	fieldTokenBegin protowire.Number = 3
	fieldTokenEnd   protowire.Number = 4

	fieldLocationLine   protowire.Number = 1
	fieldLocationColumn protowire.Number = 2
	fieldLocationOffset protowire.Number = 3
)

// Binary encodes relexed files in protobuf wire format.
func Binary(files ...*idl.LexedFile) []byte {
	var b []byte
	for _, f := range files {
		b = protowire.AppendTag(b, fieldFilesFile, protowire.BytesType)
		b = protowire.AppendBytes(b, appendFile(nil, f))
	}
	return b
}

func appendFile(b []byte, f *idl.LexedFile) []byte {
	b = protowire.AppendTag(b, fieldFileURI, protowire.BytesType)
	b = protowire.AppendString(b, f.URI)
	for _, line := range f.Lines {
		b = protowire.AppendTag(b, fieldFileLines, protowire.BytesType)
		b = protowire.AppendBytes(b, appendLine(nil, line))
	}
	return b
}

func appendLine(b []byte, line idl.LexedLine) []byte {
	b = protowire.AppendTag(b, fieldLineNumber, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(line.Source.Span.Begin.Line))
	for _, t := range line.Tokens {
		b = protowire.AppendTag(b, fieldLineTokens, protowire.BytesType)
		b = protowire.AppendBytes(b, appendToken(nil, t))
	}
	return b
}

func appendToken(b []byte, t idl.Token) []byte {
	b = protowire.AppendTag(b, fieldTokenType, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(t.Type))
	if t.Value != "" {
		b = protowire.AppendTag(b, fieldTokenValue, protowire.BytesType)
		b = protowire.AppendString(b, t.Value)
	}
	b = protowire.AppendTag(b, fieldTokenBegin, protowire.BytesType)
	b = protowire.AppendBytes(b, appendLocation(nil, t.Span.Begin))
	b = protowire.AppendTag(b, fieldTokenEnd, protowire.BytesType)
	b = protowire.AppendBytes(b, appendLocation(nil, t.Span.End))
	return b
}

func appendLocation(b []byte, l idl.Location) []byte {
	b = protowire.AppendTag(b, fieldLocationLine, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(l.Line))
	b = protowire.AppendTag(b, fieldLocationColumn, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(l.Column))
	b = protowire.AppendTag(b, fieldLocationOffset, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(l.Offset))
	return b
}

// DecodeBinary reverses Binary. Decoded lines carry only the line number of
// their source.
func DecodeBinary(b []byte) ([]*idl.LexedFile, error) {
	raws := make([][]byte, 0)
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) error {
		if num == fieldFilesFile && typ == protowire.BytesType {
			raws = append(raws, raw)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	files := make([]*idl.LexedFile, 0, len(raws))
	for _, raw := range raws {
		f, err := decodeFile(raw)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func decodeFile(b []byte) (*idl.LexedFile, error) {
	f := &idl.LexedFile{}
	lines := make([][]byte, 0)
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) error {
		switch {
		case num == fieldFileURI && typ == protowire.BytesType:
			f.URI = string(raw)
		case num == fieldFileLines && typ == protowire.BytesType:
			lines = append(lines, raw)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, raw := range lines {
		line, err := decodeLine(f.URI, raw)
		if err != nil {
			return nil, err
		}
		f.Lines = append(f.Lines, line)
	}
	return f, nil
}

func decodeLine(uri string, b []byte) (idl.LexedLine, error) {
	line := idl.LexedLine{}
	line.Source.Span.URI = uri
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) error {
		switch {
		case num == fieldLineNumber && typ == protowire.VarintType:
			line.Source.Span.Begin.Line = int32(v)
			line.Source.Span.End.Line = int32(v)
		case num == fieldLineTokens && typ == protowire.BytesType:
			t, err := decodeToken(uri, raw)
			if err != nil {
				return err
			}
			line.Tokens = append(line.Tokens, t)
		}
		return nil
	})
	return line, err
}

func decodeToken(uri string, b []byte) (idl.Token, error) {
	t := idl.Token{Span: idl.Span{URI: uri}}
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) error {
		var err error
		switch {
		case num == fieldTokenType && typ == protowire.VarintType:
			t.Type = idl.TokenType(v)
		case num == fieldTokenValue && typ == protowire.BytesType:
			t.Value = string(raw)
		case num == fieldTokenBegin && typ == protowire.BytesType:
			t.Span.Begin, err = decodeLocation(raw)
		case num == fieldTokenEnd && typ == protowire.BytesType:
			t.Span.End, err = decodeLocation(raw)
		}
		return err
	})
	return t, err
}

func decodeLocation(b []byte) (idl.Location, error) {
	l := idl.Location{}
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) error {
		if typ != protowire.VarintType {
			return nil
		}
		switch num {
		case fieldLocationLine:
			l.Line = int32(v)
		case fieldLocationColumn:
			l.Column = int32(v)
		case fieldLocationOffset:
			l.Offset = int64(v)
		}
		return nil
	})
	return l, err
}

// consumeFields calls fn for every field of the message in b. Unknown fields
// are skipped. Varint values arrive in v and length delimited values in raw.
func consumeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, v uint64, raw []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return invalidEncoding(n)
		}
		b = b[n:]
		var v uint64
		var raw []byte
		switch typ {
		case protowire.VarintType:
			v, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			raw, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return invalidEncoding(n)
		}
		b = b[n:]
		if err := fn(num, typ, v, raw); err != nil {
			return err
		}
	}
	return nil
}

func invalidEncoding(n int) error {
	return exc.New(exc.Location{}, exc.CodeInvalidEncoding, fmt.Sprintf("invalid binary token stream: %v", protowire.ParseError(n)))
}
