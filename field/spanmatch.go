// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package field // import "go.opentelemetry.io/tracefilter/field"

import (
	"go.uber.org/atomic"

	"go.opentelemetry.io/tracefilter/level"
)

// CallsiteMatch is one directive's field predicates resolved against a
// call site's declared fields. It is immutable and shared by every span
// instance created at the call site.
type CallsiteMatch struct {
	fields map[string]ValueMatch
	level  level.Level
}

// NewCallsiteMatch binds the given predicates at the given level.
func NewCallsiteMatch(fields map[string]ValueMatch, lvl level.Level) *CallsiteMatch {
	return &CallsiteMatch{fields: fields, level: lvl}
}

// Level returns the level of the directive the match was built from.
func (cm *CallsiteMatch) Level() level.Level { return cm.level }

// ToSpanMatch instantiates the per-span matched state for one span created
// at this call site.
func (cm *CallsiteMatch) ToSpanMatch() *SpanMatch {
	fields := make(map[string]*spanFieldState, len(cm.fields))
	for name, vm := range cm.fields {
		fields[name] = &spanFieldState{match: vm}
	}
	return &SpanMatch{fields: fields, level: cm.level}
}

type spanFieldState struct {
	match   ValueMatch
	matched atomic.Bool
}

// SpanMatch tracks, for one span instance, which of a directive's field
// predicates the recorded values have satisfied so far. A satisfied
// predicate stays satisfied for the span's lifetime; later values recorded
// under the same name do not clear it.
type SpanMatch struct {
	fields map[string]*spanFieldState
	level  level.Level
}

// Level returns the level the directive enables when the span matches.
func (sm *SpanMatch) Level() level.Level { return sm.level }

// IsMatched reports whether every predicate has been satisfied by a
// recorded value.
func (sm *SpanMatch) IsMatched() bool {
	for _, f := range sm.fields {
		if !f.matched.Load() {
			return false
		}
	}
	return true
}

// Recorder returns a Recorder that evaluates recorded values against the
// span's predicates.
func (sm *SpanMatch) Recorder() Recorder {
	return &matchRecorder{sm}
}

type matchRecorder struct {
	sm *SpanMatch
}

func (r *matchRecorder) record(name string, v Value) {
	f, ok := r.sm.fields[name]
	if !ok {
		return
	}
	if f.match.Matches(v) {
		f.matched.Store(true)
	}
}

func (r *matchRecorder) RecordBool(name string, value bool) { r.record(name, BoolValue(value)) }

func (r *matchRecorder) RecordInt64(name string, value int64) { r.record(name, Int64Value(value)) }

func (r *matchRecorder) RecordUint64(name string, value uint64) {
	r.record(name, Uint64Value(value))
}

func (r *matchRecorder) RecordFloat64(name string, value float64) {
	r.record(name, Float64Value(value))
}

func (r *matchRecorder) RecordString(name string, value string) {
	r.record(name, StringValue(value))
}
