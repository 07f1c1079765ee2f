// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package directive // import "go.opentelemetry.io/tracefilter/directive"

import (
	"go.opentelemetry.io/tracefilter/field"
	"go.opentelemetry.io/tracefilter/level"
)

// CallsiteMatcher is the cached result of resolving the dynamic table
// against one call site's metadata: the field matchers whose predicates
// could apply to the declared fields, plus the base level contributed by
// applicable field-less directives. It is immutable; the caller owns
// whatever per-call-site cache holds it.
type CallsiteMatcher struct {
	fieldMatches []*field.CallsiteMatch
	baseLevel    level.Level
}

// BaseLevel returns the level enabled before any field predicate is
// satisfied.
func (cm *CallsiteMatcher) BaseLevel() level.Level { return cm.baseLevel }

// ToSpanMatcher instantiates the matcher for one span created at the
// call site, recording the span's initial attribute values.
func (cm *CallsiteMatcher) ToSpanMatcher(attrs field.Attributes) *SpanMatcher {
	fieldMatches := make([]*field.SpanMatch, len(cm.fieldMatches))
	for i, fm := range cm.fieldMatches {
		m := fm.ToSpanMatch()
		attrs.Visit(m.Recorder())
		fieldMatches[i] = m
	}
	return &SpanMatcher{fieldMatches: fieldMatches, baseLevel: cm.baseLevel}
}

// SpanMatcher tracks the effective level for one span instance as its
// field values are recorded. It lives for the span's lifetime and is
// discarded when the span ends.
type SpanMatcher struct {
	fieldMatches []*field.SpanMatch
	baseLevel    level.Level
}

// Level returns the level currently enabled for the span: the maximum
// level among satisfied field matchers, or the base level when none is
// satisfied. It is recomputed on every call since recorded values may
// satisfy more predicates over time.
func (sm *SpanMatcher) Level() level.Level {
	lvl := level.LevelOff
	matched := false
	for _, m := range sm.fieldMatches {
		if !m.IsMatched() {
			continue
		}
		if !matched || m.Level() > lvl {
			lvl = m.Level()
		}
		matched = true
	}
	if !matched {
		return sm.baseLevel
	}
	return lvl
}

// RecordUpdate applies later-recorded field values to every field
// matcher, allowing the effective level to change mid-span.
func (sm *SpanMatcher) RecordUpdate(rec field.Record) {
	for _, m := range sm.fieldMatches {
		rec.Visit(m.Recorder())
	}
}
