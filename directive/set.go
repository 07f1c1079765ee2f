// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package directive // import "go.opentelemetry.io/tracefilter/directive"

import (
	"sort"

	"go.opentelemetry.io/tracefilter/callsite"
	"go.opentelemetry.io/tracefilter/field"
	"go.opentelemetry.io/tracefilter/level"
)

// DirectiveSet is an ordered collection of directives of one kind. It
// deduplicates by the specificity comparator, not by full equality: of
// two distinct directives with equal specificity, the first inserted
// survives. MaxLevel tracks the maximum level across members and never
// decreases (there is no removal).
//
// Sets are built once and are read-only afterwards; concurrent readers
// need no synchronization.
type DirectiveSet[T Matched] struct {
	cmp        func(a, b T) int
	directives []T
	maxLevel   level.Level
}

// Len returns the number of directives in the set.
func (s *DirectiveSet[T]) Len() int { return len(s.directives) }

// IsEmpty reports whether the set has no directives.
func (s *DirectiveSet[T]) IsEmpty() bool { return len(s.directives) == 0 }

// MaxLevel returns the maximum level among all inserted directives,
// LevelOff when empty. Callers use it as a fast upper-bound gate before
// walking the set.
func (s *DirectiveSet[T]) MaxLevel() level.Level { return s.maxLevel }

// Directives returns the members in ascending specificity order.
func (s *DirectiveSet[T]) Directives() []T { return s.directives }

func (s *DirectiveSet[T]) add(d T) {
	if lvl := d.Level(); lvl > s.maxLevel {
		s.maxLevel = lvl
	}
	i, found := sort.Find(len(s.directives), func(i int) int {
		return s.cmp(d, s.directives[i])
	})
	if found {
		// Equal specificity already present; the earlier insertion wins.
		return
	}
	s.directives = append(s.directives, d)
	copy(s.directives[i+1:], s.directives[i:])
	s.directives[i] = d
}

// directivesFor walks the members that care about meta from most
// specific to least specific, stopping when yield returns false.
func (s *DirectiveSet[T]) directivesFor(meta *callsite.Metadata, yield func(T) bool) {
	for i := len(s.directives) - 1; i >= 0; i-- {
		d := s.directives[i]
		if !d.CaresAbout(meta) {
			continue
		}
		if !yield(d) {
			return
		}
	}
}

// Dynamics is the set of dynamic directives: rules that constrain span
// names or field values and must be evaluated per span instance.
type Dynamics struct {
	DirectiveSet[Directive]
}

func newDynamics() *Dynamics {
	return &Dynamics{DirectiveSet[Directive]{cmp: compareSpecificity}}
}

// Matcher resolves every applicable dynamic directive against the call
// site's metadata. Directives with field predicates contribute a field
// matcher; applicable directives without one raise the base level. It
// reports false when no directive contributed either.
func (d *Dynamics) Matcher(meta *callsite.Metadata) (*CallsiteMatcher, bool) {
	var fieldMatches []*field.CallsiteMatch
	baseLevel := level.LevelOff
	haveBase := false
	d.directivesFor(meta, func(dir Directive) bool {
		if fm, ok := dir.FieldMatcher(meta); ok {
			fieldMatches = append(fieldMatches, fm)
			return true
		}
		if !haveBase || dir.Level() > baseLevel {
			baseLevel = dir.Level()
			haveBase = true
		}
		return true
	})
	if !haveBase && len(fieldMatches) == 0 {
		return nil, false
	}
	return &CallsiteMatcher{fieldMatches: fieldMatches, baseLevel: baseLevel}, true
}

// Statics is the set of static directives: (target prefix, level) pairs
// whose answer for a call site never changes and can be cached by the
// caller.
type Statics struct {
	DirectiveSet[StaticDirective]
}

func newStatics() *Statics {
	return &Statics{DirectiveSet[StaticDirective]{cmp: compareStaticSpecificity}}
}

// Enabled reports whether any applicable static directive permits the
// call site's level.
func (s *Statics) Enabled(meta *callsite.Metadata) bool {
	lvl := meta.Level()
	enabled := false
	s.directivesFor(meta, func(d StaticDirective) bool {
		if d.Level() >= lvl {
			enabled = true
			return false
		}
		return true
	})
	return enabled
}

// Add inserts one static directive, raising MaxLevel if needed.
func (s *Statics) Add(d StaticDirective) {
	s.add(d)
}
