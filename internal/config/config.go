// Package config loads the optional YAML configuration of the pipeloop CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/enclosure"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config holds all pipeloop CLI configuration.
type Config struct {
	Solve   SolveConfig   `yaml:"solve"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// SolveConfig configures the loop walk and the interior scan.
type SolveConfig struct {
	StartPolicy string `yaml:"start_policy" validate:"oneof=resolved wildcard"`
	MaxSteps    int    `yaml:"max_steps" validate:"min=0"` // 0 = grid area
}

// RenderConfig configures the render command.
type RenderConfig struct {
	Color bool `yaml:"color"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level" validate:"oneof=debug info warn error"`
	Encoding string `yaml:"encoding" validate:"oneof=json console"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Solve: SolveConfig{
			StartPolicy: enclosure.StartResolved.String(),
			MaxSteps:    0,
		},
		Render: RenderConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Level:    "warn",
			Encoding: "console",
		},
	}
}

// Load reads configuration from a YAML file over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// SolveOptions converts the solve section into pipeloop options.
func (c *Config) SolveOptions(logger *zap.Logger) ([]pipeloop.Option, error) {
	policy, err := enclosure.ParseStartPolicy(c.Solve.StartPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return []pipeloop.Option{
		pipeloop.WithLogger(logger),
		pipeloop.WithMaxSteps(c.Solve.MaxSteps),
		pipeloop.WithStartPolicy(policy),
	}, nil
}

// ZapConfig builds the logger configuration; verbose forces debug level.
func (c *Config) ZapConfig(verbose bool) (zap.Config, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = c.Logging.Encoding
	if c.Logging.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc, nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		switch e.Tag() {
		case "oneof":
			return fmt.Errorf("%w: %s must be one of [%s], got %q", ErrInvalidConfig, field, e.Param(), e.Value())
		case "min":
			return fmt.Errorf("%w: %s must be at least %s", ErrInvalidConfig, field, e.Param())
		default:
			return fmt.Errorf("%w: %s failed %s", ErrInvalidConfig, field, e.Tag())
		}
	}
	return ErrInvalidConfig
}
