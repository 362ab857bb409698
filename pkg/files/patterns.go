package files

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternSet filters the relative paths of a tree.
//
// A path is matched when it matches at least one include pattern (or there
// are no includes) and no exclude pattern. Patterns are slash-separated and
// relative to the tree root and use doublestar syntax: a "**" segment matches
// any number of directories and {a,b} matches either alternative.
type PatternSet struct {
	Includes []string
	Excludes []string
}

// PatternSetFactory creates a fresh PatternSet.
type PatternSetFactory func() *PatternSet

// DefaultPatterns returns an empty pattern set that matches every path.
func DefaultPatterns() *PatternSet {
	return &PatternSet{}
}

// IsEmpty reports whether the set matches every path.
func (p *PatternSet) IsEmpty() bool {
	return p == nil || (len(p.Includes) == 0 && len(p.Excludes) == 0)
}

// Matches reports whether the slash-separated relative path rel is matched.
// Malformed patterns match nothing.
func (p *PatternSet) Matches(rel string) bool {
	if p.IsEmpty() {
		return true
	}
	if len(p.Includes) > 0 && !slices.ContainsFunc(p.Includes, matcher(rel)) {
		return false
	}
	return !slices.ContainsFunc(p.Excludes, matcher(rel))
}

func matcher(rel string) func(string) bool {
	return func(pattern string) bool {
		ok, err := doublestar.Match(pattern, rel)
		return err == nil && ok
	}
}
