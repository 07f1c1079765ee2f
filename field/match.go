// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package field implements the field-value predicate subsystem used by
// filtering directives: textual predicates parsed from a rule string,
// bound per call site, and evaluated against the values a span instance
// actually records.
package field // import "go.opentelemetry.io/tracefilter/field"

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var fieldNameRegexp = regexp.MustCompile(`^[[:word:]][[:word:].]*$`)

type matchType int32

const (
	matchTypeBool matchType = iota
	matchTypeUint64
	matchTypeInt64
	matchTypeFloat64
	matchTypeNaN
	matchTypeString
)

// ValueMatch is a predicate over a single recorded field value.
type ValueMatch struct {
	typ matchType
	b   bool
	u   uint64
	i   int64
	f   float64
	s   string
}

// ParseValue parses the value portion of a field predicate. Parsing never
// fails: text that is not a bool, integer, or float predicate matches the
// recorded value's text form literally.
func ParseValue(text string) ValueMatch {
	if text == "true" || text == "false" {
		return ValueMatch{typ: matchTypeBool, b: text == "true"}
	}
	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return ValueMatch{typ: matchTypeUint64, u: u}
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return ValueMatch{typ: matchTypeInt64, i: i}
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		if math.IsNaN(f) {
			return ValueMatch{typ: matchTypeNaN}
		}
		return ValueMatch{typ: matchTypeFloat64, f: f}
	}
	return ValueMatch{typ: matchTypeString, s: text}
}

// Matches reports whether the recorded value v satisfies the predicate.
func (m ValueMatch) Matches(v Value) bool {
	switch m.typ {
	case matchTypeBool:
		return v.typ == valueTypeBool && v.b == m.b
	case matchTypeUint64:
		switch v.typ {
		case valueTypeUint64:
			return v.u == m.u
		case valueTypeInt64:
			return v.i >= 0 && uint64(v.i) == m.u
		}
		return false
	case matchTypeInt64:
		// Negative predicates only: non-negative integers parse as uint64.
		return v.typ == valueTypeInt64 && v.i == m.i
	case matchTypeFloat64:
		return v.typ == valueTypeFloat64 && v.f == m.f
	case matchTypeNaN:
		return v.typ == valueTypeFloat64 && math.IsNaN(v.f)
	}
	return v.String() == m.s
}

// String returns the predicate's text form.
func (m ValueMatch) String() string {
	switch m.typ {
	case matchTypeBool:
		return strconv.FormatBool(m.b)
	case matchTypeUint64:
		return strconv.FormatUint(m.u, 10)
	case matchTypeInt64:
		return strconv.FormatInt(m.i, 10)
	case matchTypeFloat64:
		return strconv.FormatFloat(m.f, 'g', -1, 64)
	case matchTypeNaN:
		return "NaN"
	}
	return m.s
}

// Match is one parsed field predicate: a field name, optionally
// constrained to a value. A nil Value only requires the field to be
// declared by the call site.
type Match struct {
	Name  string
	Value *ValueMatch
}

// ParseMatch parses one field predicate of the form "name" or "name=value".
func ParseMatch(text string) (Match, error) {
	name, value, hasValue := strings.Cut(text, "=")
	if !fieldNameRegexp.MatchString(name) {
		return Match{}, fmt.Errorf("invalid field name %q", name)
	}
	if !hasValue {
		return Match{Name: name}, nil
	}
	if value == "" {
		return Match{}, fmt.Errorf("missing value for field %q", name)
	}
	vm := ParseValue(value)
	return Match{Name: name, Value: &vm}, nil
}

// String returns the predicate's text form.
func (m Match) String() string {
	if m.Value == nil {
		return m.Name
	}
	return m.Name + "=" + m.Value.String()
}
