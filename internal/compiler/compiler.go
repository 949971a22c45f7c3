// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/iter"
	"gopkg.yapllang.org/compiler.go/internal/target"
)

type Option func(c *compiler) error

func OptionWithFS(fs idl.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *compiler) error {
		c.Reporter = reporter
		return nil
	}
}

// OptionWithMaxConcurrency bounds the number of files relexed at once.
func OptionWithMaxConcurrency(max int) Option {
	return func(c *compiler) error {
		if max < 1 {
			return fmt.Errorf("max concurrency must be at least 1, got %d", max)
		}
		c.MaxConcurrency = max
		return nil
	}
}

func New(opts ...Option) (idl.Compiler, error) {
	c := &compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = os.LookupEnv
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Semaphore == nil {
		c.Semaphore = newSemaphore(c.MaxConcurrency)
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}
	if c.Lexers == nil {
		c.Lexers = DefaultLexers(c.Reporter)
	}
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             idl.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Lexers         map[idl.FileKind]idl.Lexer
}

func (self *compiler) Compile(ctx context.Context, req *idl.CompileRequest) (*idl.CompileResponse, error) {
	files := make([]idl.File, 0, len(req.Files))
	for _, f := range req.Files {
		uri := target.NormalizeURI(f)
		in, err := self.FS.Open(ctx, uri)
		if err != nil {
			self.report(uri, err)
			continue
		}
		known, err := iter.Collect(ctx, iter.NewIteratorFilter(iter.NewSlice(in), knownKind))
		if err != nil {
			self.report(uri, err)
			continue
		}
		files = append(files, known...)
	}

	loaded := &sync.Map{}
	results := make(chan fileResult, len(files))
	for _, file := range files {
		go func(file idl.File) {
			lexed, err := self.compileFile(ctx, file, loaded)
			results <- fileResult{lexed, err}
		}(file)
	}

	lexed := make([]*idl.LexedFile, 0, len(files))
	for x := 0; x < len(files); x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				// Already reported by the lexer.
				continue
			}
			if result.file != nil {
				lexed = append(lexed, result.file)
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.Slice(lexed, func(i int, j int) bool {
		return lexed[i].URI < lexed[j].URI
	})

	resp := &idl.CompileResponse{Files: lexed}
	caught := self.Reporter.Reported()
	if len(caught) > 0 {
		return resp, MultiException(caught)
	}
	return resp, nil
}

func (self *compiler) compileFile(ctx context.Context, file idl.File, loaded *sync.Map) (*idl.LexedFile, error) {
	if err := self.Semaphore.Lock(ctx); err != nil {
		return nil, err
	}
	defer self.Semaphore.Unlock()
	path := file.Path(ctx)
	if _, ok := loaded.LoadOrStore(path, true); ok {
		return nil, nil
	}
	lexer := self.Lexers[file.Kind(ctx)]
	if lexer == nil {
		e := exc.New(exc.Location{URI: path}, exc.CodeUnsupportedFileFormat, "Unsupported file format")
		return nil, self.Reporter.Report(e)
	}
	lf, err := lexer.Lex(ctx, file)
	if err != nil {
		return nil, self.report(path, err)
	}
	lines, err := lf.Lines(ctx)
	if err != nil {
		return nil, err
	}
	return &idl.LexedFile{URI: path, Lines: lines}, nil
}

func (self *compiler) report(uri string, err error) error {
	e, ok := err.(exc.Exception)
	if !ok {
		e = exc.WrapUnknown(exc.Location{URI: uri}, err)
	}
	return self.Reporter.Report(e)
}

var knownKind = iter.FilterFunc[idl.File](func(ctx context.Context, f idl.File) bool {
	return f.Kind(ctx) != idl.FileKindNone
})

type fileResult struct {
	file *idl.LexedFile
	err  error
}

// MultiException is every exception reported during one compilation.
type MultiException []exc.Exception

func (self MultiException) Error() string {
	if len(self) < 1 {
		return "no exceptions"
	}
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}

// Unwrap exposes the individual exceptions to errors.Is and errors.As.
func (self MultiException) Unwrap() []error {
	out := make([]error, 0, len(self))
	for _, e := range self {
		out = append(out, e)
	}
	return out
}
