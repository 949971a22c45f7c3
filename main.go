// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"

	"gopkg.yapllang.org/compiler.go/internal/compiler"
	"gopkg.yapllang.org/compiler.go/internal/exc"
	"gopkg.yapllang.org/compiler.go/internal/fs"
	"gopkg.yapllang.org/compiler.go/internal/idl"
	"gopkg.yapllang.org/compiler.go/internal/render"
	"gopkg.yapllang.org/compiler.go/internal/scanner"
	"gopkg.yapllang.org/compiler.go/internal/target"
)

type opts struct {
	Roots      []string
	Format     string
	Output     string
	DumpTokens bool
	Trace      bool
	NoColor    bool
	Verbose    bool
}

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdout io.Writer, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("yaplc", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for targets.")
	flags.StringVar(&op.Format, "format", "text", "Output format: text, yaml, or binary.")
	flags.StringVar(&op.Output, "output", "-", "Output file or - for STDOUT.")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the atomic tokens of each line before relexing.")
	flags.BoolVar(&op.Trace, "trace", true, "Include the captured call stack with each failure. Pass --trace=false to omit it.")
	flags.BoolVar(&op.NoColor, "no-color", false, "Disable colored diagnostics.")
	flags.BoolVarP(&op.Verbose, "verbose", "v", false, "Log progress to STDERR.")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	targets := flags.Args()
	if len(targets) < 1 {
		fmt.Fprintln(stderr, "usage: yaplc [flags] <target>...")
		flags.PrintDefaults()
		return exitUsage
	}
	switch op.Format {
	case "text", "yaml", "binary":
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", op.Format)
		return exitUsage
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		op.NoColor = true
	}

	logs := io.Discard
	if op.Verbose {
		logs = stderr
	}
	logger := log.New(logs, "", log.LstdFlags)
	diag := render.DiagnosticOptions{NoColor: op.NoColor, Trace: op.Trace}

	rootFS, err := compiler.NewDefaultFS(lookupEnv, op.Roots...)
	if err != nil {
		_ = render.Diagnostic(stderr, err, diag)
		return exitFail
	}
	searchFS, err := compiler.NewDefaultFS(lookupEnv)
	if err != nil {
		_ = render.Diagnostic(stderr, err, diag)
		return exitFail
	}
	mf := fs.FileSystemMulti{rootFS, searchFS}

	out := stdout
	if op.Output != "-" {
		f, err := os.Create(op.Output)
		if err != nil {
			_ = render.Diagnostic(stderr, err, diag)
			return exitFail
		}
		defer f.Close()
		out = f
	}

	if op.DumpTokens {
		dumpTokens(ctx, logger, mf, targets, out)
	}

	reporter := exc.NewReporter(nil)
	c, err := compiler.New(
		compiler.OptionWithLookupEnv(lookupEnv),
		compiler.OptionWithFS(mf),
		compiler.OptionWithExcReporter(reporter),
	)
	if err != nil {
		_ = render.Diagnostic(stderr, err, diag)
		return exitFail
	}

	logger.Printf("component=yaplc action=compile targets=%d roots=%v", len(targets), op.Roots)
	start := time.Now()
	resp, err := c.Compile(ctx, &idl.CompileRequest{Files: targets})
	if err != nil {
		var me compiler.MultiException
		if !errors.As(err, &me) {
			_ = render.Diagnostic(stderr, err, diag)
			return exitFail
		}
		logger.Printf("component=yaplc action=compile_failed exceptions=%d", len(me))
		for _, e := range me {
			diag.Source = readSource(ctx, mf, e.Location().URI)
			_ = render.Diagnostic(stderr, e, diag)
		}
		return exitFail
	}
	logger.Printf("component=yaplc action=compiled files=%d duration=%s", len(resp.Files), time.Since(start))

	if err := write(out, op.Format, resp.Files); err != nil {
		_ = render.Diagnostic(stderr, err, diag)
		return exitFail
	}
	logger.Printf("component=yaplc action=write format=%s output=%s", op.Format, op.Output)
	return exitOK
}

func write(w io.Writer, format string, files []*idl.LexedFile) error {
	switch format {
	case "yaml":
		return render.YAML(w, files...)
	case "binary":
		_, err := w.Write(render.Binary(files...))
		return err
	}
	for _, f := range files {
		if _, err := fmt.Fprintf(w, "== %s\n", f.URI); err != nil {
			return err
		}
		if err := render.Text(w, f.Lines); err != nil {
			return err
		}
	}
	return nil
}

// dumpTokens prints the atomic tokens of every target. Failures are left for
// the compile step to report.
func dumpTokens(ctx context.Context, logger *log.Logger, fsys idl.FileSystem, targets []string, w io.Writer) {
	for _, t := range targets {
		files, err := fsys.Open(ctx, target.NormalizeURI(t))
		if err != nil {
			logger.Printf("component=yaplc action=dump_tokens target=%s err=%q", t, err)
			continue
		}
		for _, f := range files {
			if f.Kind(ctx) == idl.FileKindNone {
				continue
			}
			lines, _, err := scanner.ScanFile(ctx, f)
			if err != nil {
				logger.Printf("component=yaplc action=dump_tokens file=%s err=%q", f.Path(ctx), err)
				continue
			}
			fmt.Fprintf(w, "== %s (atomic)\n", f.Path(ctx))
			_ = render.Atomic(w, lines)
		}
	}
}

func readSource(ctx context.Context, fsys idl.FileSystem, uri string) string {
	if uri == "" {
		return ""
	}
	files, err := fsys.Open(ctx, uri)
	if err != nil || len(files) != 1 {
		return ""
	}
	source, err := fs.ReadAll(ctx, files[0])
	if err != nil {
		return ""
	}
	return source
}
