// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package tracefilter builds directive tables from textual rule lists
// and answers, per call site, whether an emission is enabled and which
// dynamic matcher applies. The heavy lifting lives in the directive
// package; this package owns rule-list handling and construction policy
// (strict vs. skip-and-warn).
package tracefilter // import "go.opentelemetry.io/tracefilter"

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go.opentelemetry.io/tracefilter/callsite"
	"go.opentelemetry.io/tracefilter/directive"
	"go.opentelemetry.io/tracefilter/level"
)

// Settings holds the ambient collaborators a Filter is built with.
type Settings struct {
	// Logger reports rules skipped during lossy construction. Defaults
	// to a no-op logger.
	Logger *zap.Logger
}

func (s Settings) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// SplitRules splits a comma-separated rule list into individual rules.
// Commas inside a bracketed span filter separate field predicates, not
// rules. Empty entries are dropped.
func SplitRules(rules string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(rules); i++ {
		switch rules[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = appendRule(out, rules[start:i])
				start = i + 1
			}
		}
	}
	return appendRule(out, rules[start:])
}

func appendRule(out []string, rule string) []string {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return out
	}
	return append(out, rule)
}

// ParseList parses a comma-separated rule list. All rules are attempted;
// errors are combined per rule and returned alongside the directives
// that did parse, so the caller chooses between skipping and aborting.
func ParseList(rules string) ([]directive.Directive, error) {
	var directives []directive.Directive
	var errs error
	for _, rule := range SplitRules(rules) {
		d, err := directive.Parse(rule)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("parsing %q: %w", rule, err))
			continue
		}
		directives = append(directives, d)
	}
	return directives, errs
}

// ParseListLossy parses a comma-separated rule list, logging and
// skipping invalid rules.
func ParseListLossy(rules string, logger *zap.Logger) []directive.Directive {
	var directives []directive.Directive
	for _, rule := range SplitRules(rules) {
		d, err := directive.Parse(rule)
		if err != nil {
			logger.Warn("ignoring invalid filter directive",
				zap.String("rule", rule),
				zap.Error(err))
			continue
		}
		directives = append(directives, d)
	}
	return directives
}

// Filter holds the directive tables built from a configuration. It is
// read-only after construction and safe for concurrent use.
type Filter struct {
	dynamics *directive.Dynamics
	statics  *directive.Statics
	maxLevel level.Level
}

// New builds a Filter from cfg, logging and skipping invalid rules.
func New(set Settings, cfg Config) *Filter {
	return newFilter(ParseListLossy(cfg.ruleList(), set.logger()))
}

// NewStrict builds a Filter from cfg, failing when any rule is invalid.
// The returned error combines the failures of every invalid rule.
func NewStrict(set Settings, cfg Config) (*Filter, error) {
	directives, err := ParseList(cfg.ruleList())
	if err != nil {
		return nil, err
	}
	return newFilter(directives), nil
}

func newFilter(directives []directive.Directive) *Filter {
	dynamics, statics := directive.MakeTables(directives)
	maxLevel := statics.MaxLevel()
	if lvl := dynamics.MaxLevel(); lvl > maxLevel {
		maxLevel = lvl
	}
	return &Filter{
		dynamics: dynamics,
		statics:  statics,
		maxLevel: maxLevel,
	}
}

// MaxLevel returns the most verbose level any directive enables. It is
// the cheapest gate: a call site above it can never be enabled.
func (f *Filter) MaxLevel() level.Level { return f.maxLevel }

// Statics returns the static directive table.
func (f *Filter) Statics() *directive.Statics { return f.statics }

// Dynamics returns the dynamic directive table.
func (f *Filter) Dynamics() *directive.Dynamics { return f.dynamics }

// Enabled reports whether the call site may be enabled: either a static
// directive permits its level outright, or a dynamic directive applies
// to it (in which case the per-span matcher has the final say).
func (f *Filter) Enabled(meta *callsite.Metadata) bool {
	if !f.maxLevel.Enabled(meta.Level()) {
		return false
	}
	if f.statics.Enabled(meta) {
		return true
	}
	if f.dynamics.MaxLevel().Enabled(meta.Level()) {
		if _, ok := f.dynamics.Matcher(meta); ok {
			return true
		}
	}
	return false
}

// Matcher resolves the dynamic table against a span call site. The
// result is immutable; callers cache it per call site and promote it to
// a SpanMatcher for each span instance.
func (f *Filter) Matcher(meta *callsite.Metadata) (*directive.CallsiteMatcher, bool) {
	return f.dynamics.Matcher(meta)
}
