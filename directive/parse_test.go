// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/tracefilter/level"
)

func TestParse(t *testing.T) {
	tests := []struct {
		rule      string
		target    string
		spanName  string
		numFields int
		level     level.Level
	}{
		{rule: "info", level: level.LevelInfo},
		{rule: "INFO", level: level.LevelInfo},
		{rule: "off", level: level.LevelOff},
		{rule: "off3", level: level.LevelOff},
		{rule: "trace", level: level.LevelTrace},
		{rule: "my_crate", target: "my_crate", level: level.LevelError},
		{rule: "my_crate=warn", target: "my_crate", level: level.LevelWarn},
		{rule: "my_crate::mod=debug", target: "my_crate::mod", level: level.LevelDebug},
		{rule: "my_crate::mod=", target: "my_crate::mod", level: level.LevelError},
		{rule: "[my_span]=warn", spanName: "my_span", level: level.LevelWarn},
		{rule: "[my_span]", spanName: "my_span", level: level.LevelError},
		{rule: "[my_span{field=1}]", spanName: "my_span", numFields: 1, level: level.LevelError},
		{rule: "[my_span{field=1,other}]=debug", spanName: "my_span", numFields: 2, level: level.LevelDebug},
		{rule: "[my_span{field=1,}]=debug", spanName: "my_span", numFields: 1, level: level.LevelDebug},
		{rule: "[{field=1}]=trace", numFields: 1, level: level.LevelTrace},
		{rule: "my_crate[my_span]=info", target: "my_crate", spanName: "my_span", level: level.LevelInfo},
		{rule: "my_crate[my_span{field=value}]=trace", target: "my_crate", spanName: "my_span", numFields: 1, level: level.LevelTrace},
		// A target spelled like a level keyword is not a target.
		{rule: "info=debug", level: level.LevelDebug},
	}

	for _, test := range tests {
		t.Run(test.rule, func(t *testing.T) {
			d, err := Parse(test.rule)
			require.NoError(t, err)
			assert.Equal(t, test.target, d.Target())
			assert.Equal(t, test.spanName, d.SpanName())
			assert.Len(t, d.FieldMatches(), test.numFields)
			assert.Equal(t, test.level, d.Level())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		rule string
		msg  string
	}{
		{name: "empty", rule: "", msg: "invalid filter directive"},
		{name: "whitespace", rule: "my crate=info", msg: "invalid filter directive"},
		{name: "level_only_equals", rule: "=info", msg: "invalid filter directive"},
		{name: "unclosed_span", rule: "[my_span=info", msg: "invalid filter directive"},
		{name: "bad_level", rule: "my_crate=blah", msg: `invalid level keyword "blah"`},
		{name: "bad_field_name", rule: "[my_span{=1}]", msg: "invalid field filter"},
		{name: "empty_field", rule: "[my_span{field=1,,other}]", msg: "invalid field filter"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.rule)
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, err.Error(), test.msg)
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	_, err := Parse("my_crate=blah")
	require.Error(t, err)
	var lerr *level.ParseError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "blah", lerr.Text)

	_, err = Parse("")
	require.Error(t, err)
	assert.NotErrorIs(t, err, lerr)
}

func TestParseRoundTripString(t *testing.T) {
	rules := []string{
		"info",
		"my_crate=warn",
		"[my_span]=warn",
		"[my_span{field=1}]=error",
		"my_crate[my_span{field=value,other=3}]=trace",
	}
	for _, rule := range rules {
		t.Run(rule, func(t *testing.T) {
			d, err := Parse(rule)
			require.NoError(t, err)
			assert.Equal(t, rule, d.String())
		})
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, level.LevelOff, d.Level())
	assert.Empty(t, d.Target())
	assert.Empty(t, d.SpanName())
	assert.Empty(t, d.FieldMatches())
	assert.False(t, d.IsDynamic())
}
