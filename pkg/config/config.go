// Package config handles loading and validation of qc.yaml evaluation suites.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tidelab/oceanqc/pkg/types"
)

// Load reads and parses qc.yaml from the given directory. Configuration
// errors surface immediately; nothing is clamped or defaulted away.
func Load(dir string) (*types.SuiteConfig, error) {
	path := filepath.Join(dir, "qc.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg types.SuiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *types.SuiteConfig) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	if len(cfg.Variables) == 0 {
		return fmt.Errorf("at least one variable is required")
	}

	seen := make(map[string]bool, len(cfg.Variables))
	for _, v := range cfg.Variables {
		if v.Name == "" {
			return fmt.Errorf("variable name is required")
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate variable %q", v.Name)
		}
		seen[v.Name] = true

		if len(v.Tests()) == 0 {
			return fmt.Errorf("variable %q enables no tests", v.Name)
		}
		if v.GrossRange != nil {
			if err := v.GrossRange.Validate(); err != nil {
				return fmt.Errorf("variable %q gross range: %w", v.Name, err)
			}
		}
		if v.Spike != nil {
			if err := v.Spike.Validate(); err != nil {
				return fmt.Errorf("variable %q spike: %w", v.Name, err)
			}
		}
		if v.FlatLine != nil {
			if err := v.FlatLine.Validate(); err != nil {
				return fmt.Errorf("variable %q flat line: %w", v.Name, err)
			}
		}
		if v.RateOfChange != nil {
			if err := v.RateOfChange.Validate(); err != nil {
				return fmt.Errorf("variable %q rate of change: %w", v.Name, err)
			}
		}
	}
	return nil
}
