package config

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	sep39 "github.com/Shaptic/sep-39"
	"github.com/Shaptic/sep-39/pkg/errors"
	"github.com/Shaptic/sep-39/pkg/logtrace"
)

// LimitsConfig carries the target ledger's record-size limits. The
// defaults match ManageData: 64-character keys, 64-byte values.
type LimitsConfig struct {
	MaxKeyLen   int `yaml:"max_key_len"`
	MaxValueLen int `yaml:"max_value_len"`
}

// ArchiveConfig locates the local record archive.
type ArchiveConfig struct {
	DataDir string `yaml:"data_dir"`
}

type Config struct {
	LimitsConfig  `yaml:"limits"`
	ArchiveConfig `yaml:"archive"`

	// Base directory for relative paths (not from YAML).
	BaseDir string `yaml:"-"`
}

// DefaultConfig returns a configuration with the ledger defaults.
func DefaultConfig() *Config {
	return &Config{
		LimitsConfig: LimitsConfig{
			MaxKeyLen:   sep39.MaxKeyLen,
			MaxValueLen: sep39.MaxValueLen,
		},
		ArchiveConfig: ArchiveConfig{
			DataDir: "archive",
		},
	}
}

// GetArchiveDir returns the full path to the archive directory.
func (c *Config) GetArchiveDir() string {
	if filepath.IsAbs(c.ArchiveConfig.DataDir) {
		return c.ArchiveConfig.DataDir
	}
	return filepath.Join(c.BaseDir, c.ArchiveConfig.DataDir)
}

// LoadConfig loads the configuration from a file and applies the base
// directory.
func LoadConfig(filename string, baseDir string) (*Config, error) {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, errors.Errorf("resolve config path: %w", err)
	}

	logtrace.Debug(context.Background(), "loading configuration", logtrace.Fields{
		logtrace.FieldPath: absPath,
		"base_dir":         baseDir,
	})

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Errorf("parse config file: %w", err)
	}
	config.BaseDir = baseDir

	if config.MaxKeyLen <= sep39.IndexWidth {
		return nil, errors.Errorf("max_key_len %d leaves no room for record indices", config.MaxKeyLen)
	}
	if config.MaxValueLen <= 0 {
		return nil, errors.Errorf("max_value_len must be positive, got %d", config.MaxValueLen)
	}
	return config, nil
}
