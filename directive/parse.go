// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package directive // import "go.opentelemetry.io/tracefilter/directive"

import (
	"regexp"
	"strings"

	"go.opentelemetry.io/tracefilter/field"
	"go.opentelemetry.io/tracefilter/level"
)

// The grammar is anchored re2 compiled once at init and reused for every
// rule. A rule is either a bare level keyword, or one target token
// and/or one bracketed span token followed by an optional level suffix.
var (
	directiveRegexp = regexp.MustCompile(
		`^(?P<global>(?i:trace|debug|info|warn|error|off[0-5]?))$` +
			`|^(?:(?P<target>[\w:]+)|(?P<span>\[[^\]]*\])){1,2}(?:=(?P<level>[^,\s=\[\]]*))?$`)
	spanPartRegexp = regexp.MustCompile(`(?P<name>[[:word:]]+)?(?:\{(?P<fields>[^\}]*)\})?`)

	idxGlobal = directiveRegexp.SubexpIndex("global")
	idxTarget = directiveRegexp.SubexpIndex("target")
	idxSpan   = directiveRegexp.SubexpIndex("span")
	idxLevel  = directiveRegexp.SubexpIndex("level")

	idxSpanName   = spanPartRegexp.SubexpIndex("name")
	idxSpanFields = spanPartRegexp.SubexpIndex("fields")
)

// Parse parses one filtering rule.
//
// Grammar: LEVEL | TARGET | TARGET=LEVEL | [SPAN] | [SPAN]=LEVEL |
// [SPAN{field=value,...}]=LEVEL | TARGET[SPAN{...}]=LEVEL. Level
// keywords are case-insensitive; a missing level defaults to error. A
// rule consisting solely of a level keyword sets the global default
// level, and a target spelled like a level keyword is never treated as
// a target.
func Parse(from string) (Directive, error) {
	caps := directiveRegexp.FindStringSubmatch(from)
	if caps == nil {
		return Directive{}, newParseError()
	}

	if global := caps[idxGlobal]; global != "" {
		lvl, err := level.Parse(global)
		if err != nil {
			return Directive{}, newLevelParseError(err)
		}
		d := Default()
		d.level = lvl
		return d, nil
	}

	target := caps[idxTarget]
	if target != "" {
		// A token that parses as a level keyword is not a target.
		if _, err := level.Parse(target); err == nil {
			target = ""
		}
	}

	var inSpan string
	var fields []field.Match
	if spanTok := caps[idxSpan]; spanTok != "" {
		content := strings.TrimSuffix(strings.TrimPrefix(spanTok, "["), "]")
		if spanCaps := spanPartRegexp.FindStringSubmatch(content); spanCaps != nil {
			inSpan = spanCaps[idxSpanName]
			if fieldsText := spanCaps[idxSpanFields]; fieldsText != "" {
				var err error
				if fields, err = parseFieldMatches(fieldsText); err != nil {
					return Directive{}, newFieldParseError(err)
				}
			}
		}
	}

	lvl := level.LevelError
	if levelText := caps[idxLevel]; levelText != "" {
		var err error
		if lvl, err = level.Parse(levelText); err != nil {
			return Directive{}, newLevelParseError(err)
		}
	}

	return Directive{
		target: target,
		inSpan: inSpan,
		fields: fields,
		level:  lvl,
	}, nil
}

// parseFieldMatches parses the comma-separated field predicate list of a
// span filter. One trailing comma is tolerated. Predicate values may not
// contain commas.
func parseFieldMatches(text string) ([]field.Match, error) {
	parts := strings.Split(text, ",")
	if last := len(parts) - 1; strings.TrimSpace(parts[last]) == "" {
		parts = parts[:last]
	}
	matches := make([]field.Match, 0, len(parts))
	for _, part := range parts {
		m, err := field.ParseMatch(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}
