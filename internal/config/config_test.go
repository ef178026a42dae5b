package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	require.NotNil(t, cfg)
	assert.Empty(t, cfg.APILocator)
	assert.Empty(t, cfg.OutputDir)
	assert.InDelta(t, 1.0, cfg.DebounceSeconds, 0.0001)
	assert.Empty(t, cfg.GeneratorArgs)
	assert.Equal(t, Format(""), cfg.Format)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.False(t, cfg.Enabled())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("TSGEN_API", "myapp.api")
	t.Setenv("TSGEN_OUTPUT_DIR", "/tmp/client")
	t.Setenv("TSGEN_DEBOUNCE_SECONDS", "0.5")
	t.Setenv("TSGEN_GENERATOR_ARGS", "generate,-g,typescript-fetch")
	t.Setenv("TSGEN_FORMAT", "fetch")

	cfg := NewConfig()

	assert.Equal(t, "myapp.api", cfg.APILocator)
	assert.Equal(t, "/tmp/client", cfg.OutputDir)
	assert.InDelta(t, 0.5, cfg.DebounceSeconds, 0.0001)
	assert.Equal(t, []string{"generate", "-g", "typescript-fetch"}, cfg.GeneratorArgs)
	assert.Equal(t, FormatFetch, cfg.Format)
	assert.True(t, cfg.Enabled())
}

func TestFormat_Valid(t *testing.T) {
	assert.True(t, FormatFetch.Valid())
	assert.True(t, FormatAxios.Valid())
	assert.True(t, FormatAngular.Valid())
	assert.False(t, Format("").Valid())
	assert.False(t, Format("invalid").Valid())
}

func TestGeneratorArgsOrDefault_ExplicitArgsWin(t *testing.T) {
	cfg := &Config{
		GeneratorArgs: []string{"generate", "-g", "typescript-node"},
		Format:        FormatFetch,
	}

	assert.Equal(t, []string{"generate", "-g", "typescript-node"}, cfg.GeneratorArgsOrDefault())
}

func TestGeneratorArgsOrDefault_FormatProfile(t *testing.T) {
	cfg := &Config{Format: FormatAxios}

	args := cfg.GeneratorArgsOrDefault()
	assert.Contains(t, args, "typescript-axios")
	assert.Equal(t, "generate", args[0])
}

func TestGeneratorArgsOrDefault_Default(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, DefaultGeneratorArgs, cfg.GeneratorArgsOrDefault())
}
