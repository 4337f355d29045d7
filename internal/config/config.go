// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
)

// Configuration holds all configuration for cc-paydown-planner.
type Configuration struct {
	Defaults Defaults      `yaml:"defaults,omitempty"`
	Budget   float64       `yaml:"budget,omitempty"`
	CardFile string        `yaml:"cardFile,omitempty"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
}

// Defaults holds fallback values applied to cards that omit a field.
type Defaults struct {
	APR     float64 `yaml:"apr,omitempty"`
	DueDate string  `yaml:"dueDate,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Environment variables override file values.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Configuration {
	return &Configuration{
		Defaults: Defaults{
			APR:     constants.DefaultAPR,
			DueDate: constants.DefaultDueDate,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: constants.OutputFormatPretty,
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("defaults.apr", constants.DefaultAPR)
	v.SetDefault("defaults.duedate", constants.DefaultDueDate)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("output.format", constants.OutputFormatPretty)
}

// ValidateConfiguration checks the configuration for unusable values, resets
// them to safe ones, and returns warnings describing what changed.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Defaults.APR < 0 {
		warnings = append(warnings, fmt.Sprintf("default APR %.2f is negative; using %.2f instead",
			c.Defaults.APR, constants.DefaultAPR))
		c.Defaults.APR = constants.DefaultAPR
	}

	if c.Budget < 0 {
		warnings = append(warnings, fmt.Sprintf("configured budget %.2f is negative; ignoring it", c.Budget))
		c.Budget = 0
	}

	if c.Defaults.DueDate == "" {
		c.Defaults.DueDate = constants.DefaultDueDate
	}

	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}

	return warnings
}
