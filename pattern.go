package pathfilter

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern is one pattern string compiled once into the rules it can
// match under: glob against the resolved path string, then a prefix rule and
// an exact-name rule against the path's base name.
type compiledPattern struct {
	source string

	// globbed is nil when source does not compile as a glob; the pattern then
	// matches through the base-name rules only.
	globbed glob.Glob

	// prefix is the literal part before a trailing "*".
	prefix    string
	hasPrefix bool
}

// compilePattern resolves the rules applicable to one pattern string. The
// returned pattern is usable even when err is non-nil: the error only means
// its glob rule is disabled.
func compilePattern(pattern string) (compiledPattern, error) {
	cp := compiledPattern{source: pattern}

	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		cp.prefix = prefix
		cp.hasPrefix = true
	}

	// Compiled without separators, so "*" crosses directory boundaries and
	// "*.rs" matches any path whose string form ends in ".rs".
	g, err := glob.Compile(pattern)
	if err != nil {
		return cp, fmt.Errorf("compiling glob %q: %w", pattern, err)
	}

	cp.globbed = g
	return cp, nil
}

// matchInclude reports whether the pattern matches under any include rule:
// glob on the resolved path, prefix on the base name, exact base name.
func (p compiledPattern) matchInclude(resolved, name string) bool {
	if p.globbed != nil && p.globbed.Match(resolved) {
		return true
	}

	if p.hasPrefix && strings.HasPrefix(name, p.prefix) {
		return true
	}

	return name == p.source
}

// matchExclude reports whether the pattern matches under the glob rule only.
// The base-name rules never apply to exclude patterns.
func (p compiledPattern) matchExclude(resolved string) bool {
	return p.globbed != nil && p.globbed.Match(resolved)
}
