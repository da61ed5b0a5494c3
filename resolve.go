package pathfilter

import (
	"fmt"
	"path/filepath"
)

// canonicalPath resolves path to its absolute, symlink-free form. The path
// must exist on disk: every component is checked while resolving.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("canonicalize path: %w", err)
	}

	return filepath.ToSlash(resolved), nil
}

// lexicalPath normalizes path without touching the filesystem, for callers
// filtering paths that do not exist yet. "." and ".." are collapsed purely
// textually, so a ".." crossing a symlink may resolve to a different location
// than canonicalPath would give.
func lexicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return filepath.ToSlash(abs), nil
}

// baseName returns the final component of path, or "" when path has none
// (empty, a bare root, or a path ending in "." or "..").
func baseName(path string) string {
	if path == "" {
		return ""
	}

	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return ""
	}

	return base
}
