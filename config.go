// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tracefilter // import "go.opentelemetry.io/tracefilter"

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"

	"go.opentelemetry.io/tracefilter/level"
)

// envPrefix scopes the environment variables that override file
// configuration, e.g. TRACEFILTER_DEFAULT_LEVEL=debug.
const envPrefix = "TRACEFILTER_"

// Config is the filter configuration.
type Config struct {
	// Directives are filtering rules; each entry may itself be a
	// comma-separated rule list.
	Directives []string `mapstructure:"directives"`

	// DefaultLevel optionally names the level enabled for call sites no
	// directive targets. It compiles to one extra bare-level rule
	// appended after Directives.
	DefaultLevel string `mapstructure:"default_level"`
}

// Validate checks the structural parts of the configuration. Rule
// validity is decided when the Filter is built.
func (cfg Config) Validate() error {
	if cfg.DefaultLevel != "" {
		if _, err := level.Parse(cfg.DefaultLevel); err != nil {
			return fmt.Errorf("invalid default_level: %w", err)
		}
	}
	return nil
}

func (cfg Config) ruleList() string {
	rules := strings.Join(cfg.Directives, ",")
	if cfg.DefaultLevel == "" {
		return rules
	}
	if rules == "" {
		return cfg.DefaultLevel
	}
	return rules + "," + cfg.DefaultLevel
}

// LoadConfig reads a YAML configuration file, applies TRACEFILTER_*
// environment overrides, and validates the result.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration file: %w", err)
	}
	return unmarshalConfig(k)
}

// LoadConfigBytes is LoadConfig for in-memory YAML.
func LoadConfigBytes(b []byte) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(b), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return unmarshalConfig(k)
}

func unmarshalConfig(k *koanf.Koanf) (Config, error) {
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "mapstructure",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
