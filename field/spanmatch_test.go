// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.opentelemetry.io/tracefilter/level"
)

func callsiteMatch(t *testing.T, lvl level.Level, preds ...string) *CallsiteMatch {
	t.Helper()
	fields := make(map[string]ValueMatch, len(preds))
	for _, p := range preds {
		m, err := ParseMatch(p)
		assert.NoError(t, err)
		assert.NotNil(t, m.Value)
		fields[m.Name] = *m.Value
	}
	return NewCallsiteMatch(fields, lvl)
}

func TestSpanMatchSingleField(t *testing.T) {
	cm := callsiteMatch(t, level.LevelDebug, "answer=42")
	sm := cm.ToSpanMatch()

	assert.Equal(t, level.LevelDebug, sm.Level())
	assert.False(t, sm.IsMatched())

	Record{{Name: "answer", Value: Int64Value(41)}}.Visit(sm.Recorder())
	assert.False(t, sm.IsMatched())

	Record{{Name: "answer", Value: Int64Value(42)}}.Visit(sm.Recorder())
	assert.True(t, sm.IsMatched())

	// A satisfied predicate stays satisfied.
	Record{{Name: "answer", Value: Int64Value(0)}}.Visit(sm.Recorder())
	assert.True(t, sm.IsMatched())
}

func TestSpanMatchConjunction(t *testing.T) {
	cm := callsiteMatch(t, level.LevelTrace, "answer=42", "ok=true")
	sm := cm.ToSpanMatch()

	Attributes{{Name: "answer", Value: Uint64Value(42)}}.Visit(sm.Recorder())
	assert.False(t, sm.IsMatched(), "only one of two predicates satisfied")

	Record{{Name: "ok", Value: BoolValue(true)}}.Visit(sm.Recorder())
	assert.True(t, sm.IsMatched())
}

func TestSpanMatchIgnoresUnknownFields(t *testing.T) {
	cm := callsiteMatch(t, level.LevelInfo, "answer=42")
	sm := cm.ToSpanMatch()

	Record{{Name: "other", Value: Int64Value(42)}}.Visit(sm.Recorder())
	assert.False(t, sm.IsMatched())
}

func TestSpanMatchNoPredicates(t *testing.T) {
	sm := NewCallsiteMatch(nil, level.LevelWarn).ToSpanMatch()
	assert.True(t, sm.IsMatched(), "a match with no value predicates is always satisfied")
}
