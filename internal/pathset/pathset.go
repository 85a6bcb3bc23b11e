// Package pathset turns user-supplied paths into a canonical, duplicate-free
// list of regular files.
package pathset

import (
	"fmt"
	"os"
	"path/filepath"

	"rngrename/internal/errmode"
)

// Canonicalize returns the absolute path of p with symlinks resolved. It
// fails when p does not exist or is a directory.
func Canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", resolved)
	}
	return resolved, nil
}

// Dedup canonicalises every path and drops repeats, keeping the first
// occurrence and the input order. Failures are handled per h.Mode.
func Dedup(paths []string, h errmode.Handler) ([]string, error) {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		var canon string
		ok, err := h.Do(fmt.Sprintf("Error canonicalising path %q", p), func() error {
			c, err := Canonicalize(p)
			canon = c
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("canonicalise & dedup: %w", err)
		}
		if !ok {
			continue
		}
		if seen[canon] {
			if h.Log != nil {
				h.Log.Debug("dropping duplicate path", "path", p, "canonical", canon)
			}
			continue
		}
		seen[canon] = true
		out = append(out, canon)
	}
	return out, nil
}
