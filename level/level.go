// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package level defines the verbosity levels used by filtering directives.
package level // import "go.opentelemetry.io/tracefilter/level"

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a verbosity level. Levels form a total order:
// LevelOff < LevelError < LevelWarn < LevelInfo < LevelDebug < LevelTrace.
// LevelOff means "never enabled".
type Level int32

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

const (
	levelOffStr   = "off"
	levelErrorStr = "error"
	levelWarnStr  = "warn"
	levelInfoStr  = "info"
	levelDebugStr = "debug"
	levelTraceStr = "trace"
)

// ParseError is returned when a level keyword cannot be parsed.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid level keyword %q", e.Text)
}

// Parse returns the Level named by text. Keywords are case-insensitive;
// "off0" through "off5" are accepted as equivalent spellings of "off".
func Parse(text string) (Level, error) {
	switch strings.ToLower(text) {
	case levelOffStr, "off0", "off1", "off2", "off3", "off4", "off5":
		return LevelOff, nil
	case levelErrorStr:
		return LevelError, nil
	case levelWarnStr:
		return LevelWarn, nil
	case levelInfoStr:
		return LevelInfo, nil
	case levelDebugStr:
		return LevelDebug, nil
	case levelTraceStr:
		return LevelTrace, nil
	}
	return LevelOff, &ParseError{Text: text}
}

// Enabled reports whether a rule at level l permits emissions at level other.
func (l Level) Enabled(other Level) bool {
	return l >= other
}

// String returns the level keyword, or "" for unknown values.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return levelOffStr
	case LevelError:
		return levelErrorStr
	case LevelWarn:
		return levelWarnStr
	case LevelInfo:
		return levelInfoStr
	case LevelDebug:
		return levelDebugStr
	case LevelTrace:
		return levelTraceStr
	}
	return ""
}

// MarshalText marshals Level to text.
func (l Level) MarshalText() (text []byte, err error) {
	return []byte(l.String()), nil
}

// UnmarshalText unmarshals text to a Level.
func (l *Level) UnmarshalText(text []byte) error {
	if l == nil {
		return errors.New("cannot unmarshal to a nil *Level")
	}

	lvl, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}
