// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package target

import (
	"net/url"
	"path"
	"path/filepath"
)

// NormalizeURI converts a compile target into the form the file system
// expects.
//
// Targets may be any valid URI or file path. File paths and file URIs become
// clean absolute slash separated paths. All other URIs are left as-is with
// the expectation that some other FileSystem implementation handles them.
func NormalizeURI(target string) string {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file" && !isVolume(u.Scheme)) {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	target = filepath.ToSlash(target)
	if vol := filepath.VolumeName(target); vol != "" {
		target = target[len(vol):]
	}
	if !path.IsAbs(target) {
		return path.Join("/", target)
	}
	return path.Clean(target)
}

// isVolume reports whether a parsed scheme is actually a windows drive
// letter, as in C:/path.
func isVolume(scheme string) bool {
	return len(scheme) == 1
}
