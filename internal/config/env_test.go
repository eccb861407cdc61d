package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Generations int     `env:"TEST_GENERATIONS" envDefault:"6"`
	Coverage    float64 `env:"TEST_COVERAGE"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 6, cfg.Generations)
	assert.Zero(t, cfg.Coverage)
}

func TestParseEnvPrefix(t *testing.T) {
	t.Setenv("TEST_COVERAGE", "0.3")
	t.Setenv("OUTBREAK_TEST_COVERAGE", "0.9")

	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 0.9, cfg.Coverage, "only prefixed variables are read")
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("OUTBREAK_TEST_GENERATIONS", "six")

	var cfg envTestConfig
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse OUTBREAK_* env:")
}

func TestExitCode(t *testing.T) {
	errUsage := errors.New("usage")

	assert.Zero(t, ExitCode(nil, errUsage))
	assert.Equal(t, ExitUsage, ExitCode(fmt.Errorf("run: %w", errUsage), errUsage))
	assert.Equal(t, ExitUsage, ExitCode(flag.ErrHelp))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom"), errUsage))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ExitFailure, Report(&buf, errors.New("bad coverage")))
	assert.Equal(t, "outbreak: bad coverage\n", buf.String())

	buf.Reset()
	assert.Equal(t, ExitUsage, Report(&buf, flag.ErrHelp))
	assert.Empty(t, buf.String())

	assert.Zero(t, Report(&buf, nil))
}
