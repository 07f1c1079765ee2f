// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tracefilter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/tracefilter/level"
)

const testYAML = `
directives:
  - my_crate=debug
  - "[my_span{field=1}]=trace"
default_level: warn
`

func TestLoadConfigBytes(t *testing.T) {
	cfg, err := LoadConfigBytes([]byte(testYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"my_crate=debug", "[my_span{field=1}]=trace"}, cfg.Directives)
	assert.Equal(t, "warn", cfg.DefaultLevel)

	f, err := NewStrict(Settings{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, level.LevelTrace, f.MaxLevel())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracefilter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Directives, 2)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TRACEFILTER_DEFAULT_LEVEL", "debug")

	cfg, err := LoadConfigBytes([]byte(testYAML))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.DefaultLevel)
}

func TestLoadConfigInvalidDefaultLevel(t *testing.T) {
	_, err := LoadConfigBytes([]byte("default_level: loud\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid default_level")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{DefaultLevel: "info"}.Validate())
	assert.Error(t, Config{DefaultLevel: "loud"}.Validate())
}

func TestConfigRuleList(t *testing.T) {
	assert.Equal(t, "", Config{}.ruleList())
	assert.Equal(t, "warn", Config{DefaultLevel: "warn"}.ruleList())
	assert.Equal(t, "a=info,b=debug", Config{Directives: []string{"a=info", "b=debug"}}.ruleList())
	assert.Equal(t, "a=info,warn", Config{
		Directives:   []string{"a=info"},
		DefaultLevel: "warn",
	}.ruleList())
}
