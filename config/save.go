package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Shaptic/sep-39/pkg/errors"
)

// SaveConfig saves the configuration to a file, creating the parent
// directory if needed.
func SaveConfig(config *Config, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return errors.Errorf("create directory for config file: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Errorf("marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return errors.Errorf("write config file: %w", err)
	}
	return nil
}
