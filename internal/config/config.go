package config

import (
	env "github.com/caarlos0/env/v11"
)

// Format selects which generator profile the TypeScript client is built with.
type Format string

const (
	FormatFetch   Format = "fetch"
	FormatAxios   Format = "axios"
	FormatAngular Format = "angular"
)

// Valid reports whether f is one of the supported profiles.
func (f Format) Valid() bool {
	switch f {
	case FormatFetch, FormatAxios, FormatAngular:
		return true
	}
	return false
}

// GeneratorName returns the openapi-generator-cli generator id for f.
func (f Format) GeneratorName() string {
	return "typescript-" + string(f)
}

// Config holds the client generation configuration.
// All values are read once at startup and never mutated afterwards.
type Config struct {
	// APILocator names the schema provider (dotted locator); together
	// with OutputDir it enables client generation.
	APILocator      string   `env:"API" envDefault:""`
	OutputDir       string   `env:"OUTPUT_DIR" envDefault:""`
	DebounceSeconds float64  `env:"DEBOUNCE_SECONDS" envDefault:"1.0"`
	GeneratorArgs   []string `env:"GENERATOR_ARGS"`
	Format          Format   `env:"FORMAT" envDefault:""`
	ServerAddress   string   `env:"SERVER_ADDRESS" envDefault:":8080"`
	Version         string   `env:"VERSION" envDefault:"dev"`
}

// DefaultGeneratorArgs is the argument list used when neither
// TSGEN_GENERATOR_ARGS nor TSGEN_FORMAT is configured.
var DefaultGeneratorArgs = []string{
	"generate",
	"-g", "typescript-angular",
	"-p", "removeOperationIdPrefix=true",
}

// NewConfig creates a new configuration from the environment
func NewConfig() *Config {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "TSGEN_",
	})
	if err != nil {
		panic(err)
	}
	return &cfg
}

// Enabled reports whether client generation is configured at all.
func (c *Config) Enabled() bool {
	return c.APILocator != "" && c.OutputDir != ""
}

// GeneratorArgsOrDefault resolves the effective generator argument list.
// Explicit arguments win over the format selector, which wins over the
// default angular profile.
func (c *Config) GeneratorArgsOrDefault() []string {
	if len(c.GeneratorArgs) > 0 {
		return c.GeneratorArgs
	}
	if c.Format.Valid() {
		return []string{
			"generate",
			"-g", c.Format.GeneratorName(),
			"-p", "removeOperationIdPrefix=true",
		}
	}
	return DefaultGeneratorArgs
}
