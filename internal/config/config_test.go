package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paydown/cc-paydown-planner/pkg/constants"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
defaults:
  apr: 22.5
  dueDate: "1st"
budget: 450.00
cardFile: cards.json
logging:
  level: debug
  format: console
output:
  format: csv
`)

	config, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if config.Defaults.APR != 22.5 {
		t.Errorf("Defaults.APR = %v, expected 22.5", config.Defaults.APR)
	}
	if config.Defaults.DueDate != "1st" {
		t.Errorf("Defaults.DueDate = %q, expected 1st", config.Defaults.DueDate)
	}
	if config.Budget != 450.00 {
		t.Errorf("Budget = %v, expected 450", config.Budget)
	}
	if config.CardFile != "cards.json" {
		t.Errorf("CardFile = %q, expected cards.json", config.CardFile)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", config.Logging.Level)
	}
	if config.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, expected csv", config.Output.Format)
	}
}

func TestLoadConfigurationAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
budget: 300.00
`)

	config, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if config.Defaults.APR != constants.DefaultAPR {
		t.Errorf("Defaults.APR = %v, expected default %v", config.Defaults.APR, constants.DefaultAPR)
	}
	if config.Defaults.DueDate != constants.DefaultDueDate {
		t.Errorf("Defaults.DueDate = %q, expected default %q", config.Defaults.DueDate, constants.DefaultDueDate)
	}
	if config.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, expected info", config.Logging.Level)
	}
	if config.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Output.Format = %q, expected pretty", config.Output.Format)
	}
}

func TestExampleConfigFile(t *testing.T) {
	config, err := LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if warnings := config.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("example config produced warnings: %v", warnings)
	}
	if config.Defaults.APR != constants.DefaultAPR {
		t.Errorf("Defaults.APR = %v, expected %v", config.Defaults.APR, constants.DefaultAPR)
	}
	if config.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Output.Format = %q, expected pretty", config.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration("nonexistent.yaml")
	if err == nil {
		t.Error("LoadConfiguration() expected error for missing file")
	}
}

func TestLoadConfigurationMalformedFile(t *testing.T) {
	path := writeConfig(t, "budget: [not a number\n")
	_, err := LoadConfiguration(path)
	if err == nil {
		t.Error("LoadConfiguration() expected error for malformed YAML")
	}
}

func TestDefault(t *testing.T) {
	config := Default()

	if config.Defaults.APR != constants.DefaultAPR {
		t.Errorf("Defaults.APR = %v, expected %v", config.Defaults.APR, constants.DefaultAPR)
	}
	if config.Defaults.DueDate != constants.DefaultDueDate {
		t.Errorf("Defaults.DueDate = %q, expected %q", config.Defaults.DueDate, constants.DefaultDueDate)
	}
	if config.Budget != 0 {
		t.Errorf("Budget = %v, expected unset", config.Budget)
	}
	if config.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Output.Format = %q, expected pretty", config.Output.Format)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name         string
		config       Configuration
		wantWarnings int
		checkFixed   func(*testing.T, *Configuration)
	}{
		{
			name: "clean config",
			config: Configuration{
				Defaults: Defaults{APR: 20, DueDate: "15th"},
				Budget:   200,
				Output:   OutputConfig{Format: "pretty"},
			},
			wantWarnings: 0,
		},
		{
			name: "negative APR reset",
			config: Configuration{
				Defaults: Defaults{APR: -5, DueDate: "15th"},
				Output:   OutputConfig{Format: "pretty"},
			},
			wantWarnings: 1,
			checkFixed: func(t *testing.T, c *Configuration) {
				if c.Defaults.APR != constants.DefaultAPR {
					t.Errorf("APR = %v, expected reset to %v", c.Defaults.APR, constants.DefaultAPR)
				}
			},
		},
		{
			name: "negative budget ignored",
			config: Configuration{
				Defaults: Defaults{APR: 20, DueDate: "15th"},
				Budget:   -100,
				Output:   OutputConfig{Format: "pretty"},
			},
			wantWarnings: 1,
			checkFixed: func(t *testing.T, c *Configuration) {
				if c.Budget != 0 {
					t.Errorf("Budget = %v, expected 0", c.Budget)
				}
			},
		},
		{
			name:         "empty fields silently filled",
			config:       Configuration{},
			wantWarnings: 0,
			checkFixed: func(t *testing.T, c *Configuration) {
				if c.Defaults.DueDate != constants.DefaultDueDate {
					t.Errorf("DueDate = %q, expected %q", c.Defaults.DueDate, constants.DefaultDueDate)
				}
				if c.Output.Format != constants.OutputFormatPretty {
					t.Errorf("Output.Format = %q, expected %q", c.Output.Format, constants.OutputFormatPretty)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.ValidateConfiguration()
			if len(warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings %v, expected %d", len(warnings), warnings, tt.wantWarnings)
			}
			if tt.checkFixed != nil {
				tt.checkFixed(t, &tt.config)
			}
		})
	}
}
