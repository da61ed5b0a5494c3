package pathfilter

import (
	"github.com/rs/zerolog"
)

// Config holds the pattern lists and matching options for one Filter.
type Config struct {
	Include         []string `yaml:"include"`
	Exclude         []string `yaml:"exclude"`
	IncludePriority bool     `yaml:"include-priority"`
	Lexical         bool     `yaml:"lexical"`
	Verbosity       string   `yaml:"verbosity"`
}

// Filterer is a function that returns true if a path should be kept.
type Filterer func(string) bool

// Filter decides whether paths should be kept based on compiled include and
// exclude pattern lists. A Filter is immutable after construction and safe
// for concurrent use.
type Filter struct {
	include         []compiledPattern
	exclude         []compiledPattern
	includePriority bool
	lexical         bool
	log             zerolog.Logger
}

// NewFilter compiles the configured pattern lists into a Filter.
//
// Compilation never fails: a pattern whose glob form does not compile is
// logged at warn level and keeps only its base-name rules, which for an
// exclude pattern means it can never match.
func NewFilter(cfg Config) *Filter {
	f := &Filter{
		includePriority: cfg.IncludePriority,
		lexical:         cfg.Lexical,
		log:             GetLogger(cfg.Verbosity),
	}

	f.include = f.compile(cfg.Include, "include")
	f.exclude = f.compile(cfg.Exclude, "exclude")

	return f
}

func (f *Filter) compile(patterns []string, list string) []compiledPattern {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, pattern := range patterns {
		cp, err := compilePattern(pattern)
		if err != nil {
			f.log.Warn().
				Err(err).
				Str("list", list).
				Str("pattern", pattern).
				Msg("Glob rule disabled for pattern")
		}

		compiled = append(compiled, cp)
	}

	return compiled
}

// WithLogger replaces the filter's diagnostics logger, e.g. to attach caller
// context fields or to capture the decision trace in tests.
func (f *Filter) WithLogger(logger zerolog.Logger) *Filter {
	f.log = logger
	return f
}

// ShouldInclude reports whether path should be kept.
//
// The path is resolved to its canonical absolute form first; a path that
// cannot be resolved is excluded. Include patterns are matched under the
// three-rule dialect, exclude patterns under the glob rule only. A path
// matched by both lists is decided by the include-priority flag, and an
// empty include list keeps every path the exclude list does not reject.
func (f *Filter) ShouldInclude(path string) bool {
	resolved, err := f.resolve(path)
	if err != nil {
		f.log.Error().
			Err(err).
			Str("path", path).
			Msg("Failed to resolve path")

		return false
	}

	// The base name comes from the original path, not the resolved one, so a
	// symlink's own name is what the base-name rules see.
	name := baseName(path)

	included := false
	for _, p := range f.include {
		if p.matchInclude(resolved, name) {
			included = true
			break
		}
	}

	excluded := false
	for _, p := range f.exclude {
		if p.matchExclude(resolved) {
			excluded = true
			break
		}
	}

	var keep bool
	switch {
	case included && excluded:
		keep = f.includePriority
	case included:
		keep = true
	case excluded:
		keep = false
	default:
		keep = len(f.include) == 0
	}

	f.log.Debug().
		Str("path", resolved).
		Bool("included", included).
		Bool("excluded", excluded).
		Bool("decision", keep).
		Msg("Checked path")

	return keep
}

func (f *Filter) resolve(path string) (string, error) {
	if f.lexical {
		return lexicalPath(path)
	}

	return canonicalPath(path)
}

// Filterer returns the filter as a plain predicate function for callers that
// pass predicates around instead of the Filter itself.
func (f *Filter) Filterer() Filterer {
	return f.ShouldInclude
}

// ShouldInclude is a convenience wrapper for one-off checks. Callers testing
// many paths against the same lists should build a Filter once instead.
func ShouldInclude(path string, include, exclude []string, includePriority bool) bool {
	return NewFilter(Config{
		Include:         include,
		Exclude:         exclude,
		IncludePriority: includePriority,
	}).ShouldInclude(path)
}
