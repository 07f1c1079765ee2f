// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package field // import "go.opentelemetry.io/tracefilter/field"

import (
	"strconv"
)

type valueType int32

const (
	valueTypeBool valueType = iota
	valueTypeInt64
	valueTypeUint64
	valueTypeFloat64
	valueTypeString
)

// Value is a field value recorded at runtime by an instrumented program.
type Value struct {
	typ valueType
	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
}

// BoolValue returns a Value holding v.
func BoolValue(v bool) Value { return Value{typ: valueTypeBool, b: v} }

// Int64Value returns a Value holding v.
func Int64Value(v int64) Value { return Value{typ: valueTypeInt64, i: v} }

// Uint64Value returns a Value holding v.
func Uint64Value(v uint64) Value { return Value{typ: valueTypeUint64, u: v} }

// Float64Value returns a Value holding v.
func Float64Value(v float64) Value { return Value{typ: valueTypeFloat64, f: v} }

// StringValue returns a Value holding v.
func StringValue(v string) Value { return Value{typ: valueTypeString, s: v} }

// String returns the text form of the value, as a string predicate
// would see it.
func (v Value) String() string {
	switch v.typ {
	case valueTypeBool:
		return strconv.FormatBool(v.b)
	case valueTypeInt64:
		return strconv.FormatInt(v.i, 10)
	case valueTypeUint64:
		return strconv.FormatUint(v.u, 10)
	case valueTypeFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return v.s
}

func (v Value) record(name string, r Recorder) {
	switch v.typ {
	case valueTypeBool:
		r.RecordBool(name, v.b)
	case valueTypeInt64:
		r.RecordInt64(name, v.i)
	case valueTypeUint64:
		r.RecordUint64(name, v.u)
	case valueTypeFloat64:
		r.RecordFloat64(name, v.f)
	default:
		r.RecordString(name, v.s)
	}
}

// Recorder receives field values as an instrumented program records them.
// SpanMatch returns one so span attribute and record events can drive
// predicate evaluation.
type Recorder interface {
	RecordBool(name string, value bool)
	RecordInt64(name string, value int64)
	RecordUint64(name string, value uint64)
	RecordFloat64(name string, value float64)
	RecordString(name string, value string)
}

// Recorded is one recorded name/value pair.
type Recorded struct {
	Name  string
	Value Value
}

// Attributes are the field values present when a span is created.
type Attributes []Recorded

// Visit replays the attributes into r.
func (a Attributes) Visit(r Recorder) {
	for _, kv := range a {
		kv.Value.record(kv.Name, r)
	}
}

// Record carries field values recorded after a span was created.
type Record []Recorded

// Visit replays the recorded values into r.
func (rec Record) Visit(r Recorder) {
	for _, kv := range rec {
		kv.Value.record(kv.Name, r)
	}
}
