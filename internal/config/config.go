package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/geekmdtravis/geekmd-calc/internal/calculator"
	"github.com/geekmdtravis/geekmd-calc/internal/model"
)

// Config holds all CLI configuration.
type Config struct {
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
	HomaIR struct {
		DecimalPlaces *int `yaml:"decimal_places"`
	} `yaml:"homa_ir"`
	Ascvd struct {
		Method string `yaml:"method"`
	} `yaml:"ascvd"`
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("GEEKMD_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("GEEKMD_ASCVD_METHOD"); v != "" {
		cfg.Ascvd.Method = v
	}
	if v := os.Getenv("GEEKMD_DECIMAL_PLACES"); v != "" {
		places, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse GEEKMD_DECIMAL_PLACES: %w", err)
		}
		cfg.HomaIR.DecimalPlaces = &places
	}

	// Defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Ascvd.Method == "" {
		cfg.Ascvd.Method = string(model.MethodPooledCohort2013)
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if !ValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format %q must be one of %v", c.Output.Format, Formats)
	}
	if _, err := calculator.ParseAscvdMethod(c.Ascvd.Method); err != nil {
		return fmt.Errorf("ascvd.method: %w", err)
	}
	if p := c.HomaIR.DecimalPlaces; p != nil {
		if *p < 0 {
			return fmt.Errorf("homa_ir.decimal_places must not be negative")
		}
		if *p > calculator.MaxDecimalPlaces {
			return fmt.Errorf("homa_ir.decimal_places must not exceed %d", calculator.MaxDecimalPlaces)
		}
	}
	return nil
}

// AscvdMethod returns the configured default method. Call Validate first.
func (c *Config) AscvdMethod() model.AscvdMethod {
	m, _ := calculator.ParseAscvdMethod(c.Ascvd.Method)
	return m
}

// ValidFormat reports whether f is an accepted output format.
func ValidFormat(f string) bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}
