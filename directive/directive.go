// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package directive implements the rule engine that decides, per call
// site and per span instance, whether an emission is enabled and at what
// verbosity. Textual rules parse into Directives; MakeTables partitions
// them into a statically cacheable table (target and level only) and a
// dynamic table whose rules must be re-evaluated against span state.
package directive // import "go.opentelemetry.io/tracefilter/directive"

import (
	"strings"

	"go.opentelemetry.io/tracefilter/callsite"
	"go.opentelemetry.io/tracefilter/field"
	"go.opentelemetry.io/tracefilter/level"
)

// Directive is a single parsed filtering rule. Construct one with Parse
// or Default only.
type Directive struct {
	// target is a prefix filter on the call site target, "" when absent.
	target string
	// inSpan is an exact filter on the span name, "" when absent.
	inSpan string
	fields []field.Match
	level  level.Level
}

// Matched is the capability shared by both directive kinds: whether a
// directive applies to a call site's metadata, and the level it
// specifies.
type Matched interface {
	CaresAbout(meta *callsite.Metadata) bool
	Level() level.Level
}

// Default returns the directive that filters nothing and enables nothing.
func Default() Directive {
	return Directive{level: level.LevelOff}
}

// Target returns the directive's target prefix filter, "" when absent.
func (d Directive) Target() string { return d.target }

// SpanName returns the directive's span name filter, "" when absent.
func (d Directive) SpanName() string { return d.inSpan }

// FieldMatches returns the directive's field predicates.
func (d Directive) FieldMatches() []field.Match { return d.fields }

// Level returns the level the directive enables.
func (d Directive) Level() level.Level { return d.level }

func (d Directive) hasSpanName() bool { return d.inSpan != "" }

func (d Directive) hasFields() bool { return len(d.fields) > 0 }

// IsDynamic reports whether the directive constrains span name or field
// values and therefore cannot be resolved once per call site.
func (d Directive) IsDynamic() bool { return d.hasSpanName() || d.hasFields() }

// IntoStatic reduces the directive to its static form. It reports false,
// without reducing, when the directive is dynamic.
func (d Directive) IntoStatic() (StaticDirective, bool) {
	if d.IsDynamic() {
		return StaticDirective{}, false
	}
	return StaticDirective{target: d.target, level: d.level}, true
}

// CaresAbout reports whether the directive applies to the call site: the
// target filter must prefix the metadata's target, the span name filter
// must equal its name, and every named field must be declared.
func (d Directive) CaresAbout(meta *callsite.Metadata) bool {
	if d.target != "" && !strings.HasPrefix(meta.Target(), d.target) {
		return false
	}
	if d.inSpan != "" && d.inSpan != meta.Name() {
		return false
	}
	fields := meta.Fields()
	for _, fm := range d.fields {
		if !fields.Contains(fm.Name) {
			return false
		}
	}
	return true
}

// FieldMatcher binds the directive's field value predicates to the call
// site's declared fields. It reports false when the directive names no
// fields (field-less directives only contribute a base level) or when a
// named field is not declared. Presence-only predicates contribute no
// value predicate to the matcher.
func (d Directive) FieldMatcher(meta *callsite.Metadata) (*field.CallsiteMatch, bool) {
	if !d.hasFields() {
		return nil, false
	}
	declared := meta.Fields()
	matches := make(map[string]field.ValueMatch, len(d.fields))
	for _, fm := range d.fields {
		if !declared.Contains(fm.Name) {
			return nil, false
		}
		if fm.Value == nil {
			continue
		}
		matches[fm.Name] = *fm.Value
	}
	return field.NewCallsiteMatch(matches, d.level), true
}

// String returns the directive in rule syntax.
func (d Directive) String() string {
	if d.target == "" && d.inSpan == "" && !d.hasFields() {
		return d.level.String()
	}
	var sb strings.Builder
	sb.WriteString(d.target)
	if d.inSpan != "" || d.hasFields() {
		sb.WriteByte('[')
		sb.WriteString(d.inSpan)
		if d.hasFields() {
			sb.WriteByte('{')
			for i, fm := range d.fields {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(fm.String())
			}
			sb.WriteByte('}')
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('=')
	sb.WriteString(d.level.String())
	return sb.String()
}

// MakeTables partitions parsed directives into the dynamic and static
// tables. It is the one-time preprocessing step run after parsing all
// configured rules.
func MakeTables(directives []Directive) (*Dynamics, *Statics) {
	dynamics := newDynamics()
	statics := newStatics()
	for _, d := range directives {
		if sd, ok := d.IntoStatic(); ok {
			statics.Add(sd)
			continue
		}
		dynamics.add(d)
	}
	return dynamics, statics
}

// StaticDirective is a directive reduced to (target prefix, level). It
// can be resolved once per call site and cached by the caller. Produced
// only by reducing a non-dynamic Directive.
type StaticDirective struct {
	target string
	level  level.Level
}

// Target returns the target prefix filter, "" when absent.
func (d StaticDirective) Target() string { return d.target }

// Level returns the level the directive enables.
func (d StaticDirective) Level() level.Level { return d.level }

// CaresAbout reports whether the directive applies to the call site.
func (d StaticDirective) CaresAbout(meta *callsite.Metadata) bool {
	return d.target == "" || strings.HasPrefix(meta.Target(), d.target)
}

// String returns the directive in rule syntax.
func (d StaticDirective) String() string {
	if d.target == "" {
		return d.level.String()
	}
	return d.target + "=" + d.level.String()
}

// compareSpecificity defines the total order directives are evaluated
// in: span-name filters first, then field predicate count, then target
// prefix length (an absent target ranks below any present one). Equal
// tuples compare equal, so distinct directives of equal specificity
// collapse in a DirectiveSet.
func compareSpecificity(a, b Directive) int {
	if c := compareBool(a.hasSpanName(), b.hasSpanName()); c != 0 {
		return c
	}
	if c := compareInt(len(a.fields), len(b.fields)); c != 0 {
		return c
	}
	return compareInt(len(a.target), len(b.target))
}

func compareStaticSpecificity(a, b StaticDirective) int {
	return compareInt(len(a.target), len(b.target))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
