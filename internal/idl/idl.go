// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package idl

import (
	"context"
	"fmt"

	"gopkg.yapllang.org/compiler.go/internal/optional"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	FileKindYAPL
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindYAPL:
		return "yapl"
	default:
		return fmt.Sprintf("unkown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}

type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	Files []string
}

type CompileResponse struct {
	Files []*LexedFile
}

// LexedFile is the relexed content of one source file. Each entry of Lines
// holds the final tokens produced for one or more merged source lines.
type LexedFile struct {
	URI   string
	Lines []LexedLine
}

type LexedLine struct {
	Source SourceLine
	Tokens []Token
}

type LexerFile interface {
	File
	Lines(ctx context.Context) ([]LexedLine, error)
	Tokens(ctx context.Context) (Iterator[Token], error)
}

type Lexer interface {
	Lex(ctx context.Context, f File) (LexerFile, error)
}
