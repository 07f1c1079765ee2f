// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package directive // import "go.opentelemetry.io/tracefilter/directive"

type parseErrorKind int32

const (
	// parseErrorOther: the rule matched no branch of the grammar.
	parseErrorOther parseErrorKind = iota
	// parseErrorField wraps a failure from the field predicate parser.
	parseErrorField
	// parseErrorLevel wraps a failure from the level keyword parser.
	parseErrorLevel
)

// ParseError is returned by Parse when a rule is rejected. Parsing is
// terminal for the rule: there is no partial recovery. Callers loading
// multiple rules decide per rule whether to skip or abort.
type ParseError struct {
	kind parseErrorKind
	err  error
}

func newParseError() *ParseError {
	return &ParseError{kind: parseErrorOther}
}

func newFieldParseError(err error) *ParseError {
	return &ParseError{kind: parseErrorField, err: err}
}

func newLevelParseError(err error) *ParseError {
	return &ParseError{kind: parseErrorLevel, err: err}
}

func (e *ParseError) Error() string {
	switch e.kind {
	case parseErrorField:
		return "invalid field filter: " + e.err.Error()
	case parseErrorLevel:
		return e.err.Error()
	}
	return "invalid filter directive"
}

// Unwrap returns the wrapped field or level error, nil otherwise.
func (e *ParseError) Unwrap() error {
	return e.err
}
