// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"path/filepath"

	"gopkg.yapllang.org/compiler.go/internal/fs"
	"gopkg.yapllang.org/compiler.go/internal/idl"
)

// EnvSearchPath lists the roots searched for sources, separated by the OS
// path list separator. It replaces the platform defaults when set.
const EnvSearchPath = "YAPL_PATH"

// NewDefaultFS builds a file system that tries each of the given roots in
// order. With no roots it falls back to the search path.
func NewDefaultFS(lookup func(string) (string, bool), roots ...string) (idl.FileSystem, error) {
	if len(roots) < 1 {
		roots = getDefaultRoots(lookup)
	}
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			return nil, errAbs
		}
		rf, err := fs.NewFileSystemLocal(absRoot, fs.WithOptionRecursive(true))
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}

func searchPath(lookup func(string) (string, bool)) ([]string, bool) {
	v, ok := lookup(EnvSearchPath)
	if !ok || v == "" {
		return nil, false
	}
	roots := make([]string, 0)
	for _, root := range filepath.SplitList(v) {
		if root != "" {
			roots = append(roots, root)
		}
	}
	return roots, len(roots) > 0
}
