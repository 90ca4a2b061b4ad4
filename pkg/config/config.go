// Package config holds the runtime configuration for qabuild. Configuration
// is optional: the defaults reproduce the reference behavior, and a YAML
// file or CLI flags can override individual knobs.
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/qabuild-go/pkg/errors"
)

// Config represents the complete configuration for a qabuild run.
type Config struct {
	// Logging configuration
	Logging LoggingConfig `yaml:"logging,omitempty" validate:"omitempty"`

	// Build configuration
	Build BuildConfig `yaml:"build,omitempty" validate:"omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR, FATAL.
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`
}

// BuildConfig controls how splits are produced.
type BuildConfig struct {
	// Seed fixes the sampling streams for reproducible splits. When nil,
	// each run is seeded from the clock.
	Seed *int64 `yaml:"seed,omitempty"`

	// Parallel runs the independent partition rules concurrently.
	Parallel bool `yaml:"parallel,omitempty"`

	// Pretty controls indentation of the output JSON. Defaults to true,
	// matching the reference output files.
	Pretty *bool `yaml:"pretty,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	pretty := true
	return &Config{
		Logging: LoggingConfig{Level: "INFO"},
		Build:   BuildConfig{Pretty: &pretty},
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to read config file"),
			errors.Fields{"path": path})
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.ParseFailed, "failed to parse config file"),
			errors.Fields{"path": path})
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WithFields(err, errors.Fields{"path": path})
	}
	return cfg, nil
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, errors.ValidationFailed, "invalid configuration")
	}
	return nil
}

// PrettyOutput reports whether split files should be indented.
func (c *Config) PrettyOutput() bool {
	if c.Build.Pretty == nil {
		return true
	}
	return *c.Build.Pretty
}
