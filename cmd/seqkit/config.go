package main

import (
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/validation"
)

const serviceName = "seqkit"

// Config is the seqkit CLI configuration, loaded from config.yml, .env and
// SEQKIT_* environment variables, then overridden by flags.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Product              ProductConfig   `yaml:"product" mapstructure:"product"`
	Telemetry            TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ProductConfig drives the product command.
type ProductConfig struct {
	Dimensions [][]string `yaml:"dimensions" mapstructure:"dimensions" validate:"min=1"`
	Format     string     `yaml:"format" mapstructure:"format" validate:"oneof=text json"`
	Limit      int        `yaml:"limit" mapstructure:"limit" validate:"gte=0"`
}

// TelemetryConfig enables OTLP export when Endpoint is set.
type TelemetryConfig struct {
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Product.Format == "" {
		c.Product.Format = formatText
	}
	if c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1.0
	}
}

// Validate checks the base config, then the tagged sections.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c.Telemetry); err != nil {
		return err
	}
	return validation.Validate(c.Product)
}

// loadConfig reads configuration from path, or from the default locations
// when path is empty.
func loadConfig(path string) (*Config, error) {
	var opts []config.LoaderOption
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	cfg := new(Config)
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
