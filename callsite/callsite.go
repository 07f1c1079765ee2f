// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package callsite describes the static metadata an instrumented program
// declares for each event or span call site: its target, optional span
// name, verbosity level, and the set of field names it may record.
package callsite // import "go.opentelemetry.io/tracefilter/callsite"

import (
	"go.opentelemetry.io/tracefilter/level"
)

// FieldSet is the set of field names a call site declares.
type FieldSet []string

// Contains reports whether name is declared by the set.
func (fs FieldSet) Contains(name string) bool {
	for _, f := range fs {
		if f == name {
			return true
		}
	}
	return false
}

// Metadata describes one call site. It is immutable after construction and
// safe for concurrent use.
type Metadata struct {
	target string
	name   string
	level  level.Level
	fields FieldSet
}

// NewMetadata returns the Metadata for a call site. target is the
// instrumented module path, name the span name (empty for events).
func NewMetadata(target, name string, lvl level.Level, fields FieldSet) *Metadata {
	return &Metadata{
		target: target,
		name:   name,
		level:  lvl,
		fields: fields,
	}
}

// Target returns the call site's target string.
func (m *Metadata) Target() string { return m.target }

// Name returns the call site's span name, or "" for events.
func (m *Metadata) Name() string { return m.name }

// Level returns the verbosity level the call site emits at.
func (m *Metadata) Level() level.Level { return m.level }

// Fields returns the field names the call site declares.
func (m *Metadata) Fields() FieldSet { return m.fields }
