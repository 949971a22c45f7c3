// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gopkg.yapllang.org/compiler.go/internal/render"
)

func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func envFor(dir string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		if name == "YAPL_PATH" {
			return dir, true
		}
		return "", false
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	dir := writeSources(t, map[string]string{
		"a.yapl":       "foo:\n    bar\n",
		"lib/b.yapl":   "-- hello\n",
		"broken.yapl":  "(a, b\n",
		"indent.yapl":  "a\n  b\n",
		"ignored.text": "nothing",
	})

	testCases := []struct {
		name     string
		args     []string
		code     int
		stdout   []string
		stderr   []string
		absent   []string
		noStdout bool
	}{
		{
			name:   "text",
			args:   []string{"a.yapl"},
			code:   exitOK,
			stdout: []string{"== /a.yapl\n-- line 1\n", "TokenTypeBeginBlock", "'bar'"},
		},
		{
			name:   "directory",
			args:   []string{"lib"},
			code:   exitOK,
			stdout: []string{"== /lib/b.yapl\n", "TokenTypeComment        'hello'"},
		},
		{
			name:   "dump tokens",
			args:   []string{"--dump-tokens", "a.yapl"},
			code:   exitOK,
			stdout: []string{"== /a.yapl (atomic)\n", "AtomicKindColon", "== /a.yapl\n"},
		},
		{
			name:     "relex failure",
			args:     []string{"--no-color", "a.yapl", "broken.yapl"},
			code:     exitFail,
			stderr:   []string{"error[Y0104] UnclosedOpenedBlock: missing closing parenthesis", "/broken.yapl:2:0", "state stack:", "  stack:\n"},
			noStdout: true,
		},
		{
			name:     "failure without call stack",
			args:     []string{"--no-color", "--trace=false", "broken.yapl"},
			code:     exitFail,
			stderr:   []string{"error[Y0104] UnclosedOpenedBlock"},
			absent:   []string{"  stack:\n"},
			noStdout: true,
		},
		{
			name:     "indentation failure",
			args:     []string{"--no-color", "indent.yapl"},
			code:     exitFail,
			stderr:   []string{"error[Y0105] IndentationError", "/indent.yapl:2:2", "  stack:\n"},
			noStdout: true,
		},
		{
			name:     "missing target",
			args:     []string{"--no-color", "nope.yapl"},
			code:     exitFail,
			stderr:   []string{"error[Y0001] FileNotFound"},
			noStdout: true,
		},
		{
			name:     "verbose",
			args:     []string{"-v", "a.yapl"},
			code:     exitOK,
			stderr:   []string{"component=yaplc action=compile targets=1", "action=compiled files=1"},
			stdout:   []string{"== /a.yapl"},
			noStdout: false,
		},
		{
			name:     "no targets",
			args:     []string{},
			code:     exitUsage,
			stderr:   []string{"usage: yaplc"},
			noStdout: true,
		},
		{
			name:     "unknown format",
			args:     []string{"--format", "xml", "a.yapl"},
			code:     exitUsage,
			stderr:   []string{`unknown format "xml"`},
			noStdout: true,
		},
		{
			name:     "unknown flag",
			args:     []string{"--bogus", "a.yapl"},
			code:     exitUsage,
			noStdout: true,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			var stderr bytes.Buffer
			args := append([]string{"--root", dir}, testCase.args...)
			code := run(args, &stdout, &stderr, envFor(dir))
			require.Equal(t, testCase.code, code, stderr.String())
			for _, s := range testCase.stdout {
				require.Contains(t, stdout.String(), s)
			}
			for _, s := range testCase.absent {
				require.NotContains(t, stderr.String(), s)
			}
			for _, s := range testCase.stderr {
				require.Contains(t, stderr.String(), s)
			}
			if testCase.noStdout {
				require.Empty(t, stdout.String())
			}
		})
	}
}

func TestRunFormats(t *testing.T) {
	t.Parallel()

	dir := writeSources(t, map[string]string{
		"a.yapl": "foo:\n    bar\n",
		"b.yapl": "\"\"\"\ntext\n\"\"\"\n",
	})

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--root", dir, "--format", "yaml", "b.yapl", "a.yapl"}, &stdout, &stderr, envFor(dir))
	require.Equal(t, exitOK, code, stderr.String())
	dec := yaml.NewDecoder(strings.NewReader(stdout.String()))
	uris := make([]string, 0)
	for {
		var doc struct {
			URI string `yaml:"uri"`
		}
		if err := dec.Decode(&doc); err != nil {
			break
		}
		uris = append(uris, doc.URI)
	}
	require.Equal(t, []string{"/a.yapl", "/b.yapl"}, uris)

	out := filepath.Join(t.TempDir(), "tokens.bin")
	stderr.Reset()
	code = run([]string{"--root", dir, "--format", "binary", "--output", out, "b.yapl"}, &bytes.Buffer{}, &stderr, envFor(dir))
	require.Equal(t, exitOK, code, stderr.String())
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	files, err := render.DecodeBinary(b)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "/b.yapl", files[0].URI)
	require.Equal(t, "text", files[0].Lines[0].Tokens[0].Value)
}
