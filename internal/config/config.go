// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the optional configuration file: where it lives,
// reading it with defaults applied, and writing it back.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "numcheck"

// LogLevels lists the accepted values for Config.LogLevel.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the top-level application configuration
type Config struct {
	// LogLevel is the minimum level written to the log sinks
	LogLevel string `yaml:"log_level"`

	// LogToFile enables the JSON log file
	LogToFile bool `yaml:"log_to_file"`

	// LogFile overrides the log file location (absolute or starting with '~/')
	LogFile string `yaml:"log_file,omitempty"`

	// LogToStderr mirrors log records to stderr
	LogToStderr bool `yaml:"log_to_stderr"`

	// Color enables colored error and status lines
	Color bool `yaml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:    "info",
		LogToFile:   true,
		LogToStderr: false,
		Color:       true,
	}
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appName, "config.yaml"), nil
}

// LoadConfig reads the config file. A missing file yields Default().
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(configPath)
}

// LoadFile reads the configuration at path, filling unset fields from Default().
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that YAML decoding cannot.
func (c Config) Validate() error {
	c.LogLevel = strings.ToLower(c.LogLevel)
	if !slices.Contains(LogLevels, c.LogLevel) {
		return fmt.Errorf("log_level %q must be one of %s", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.LogFile != "" && !strings.HasPrefix(c.LogFile, "/") && !strings.HasPrefix(c.LogFile, "~/") {
		return fmt.Errorf("log_file %q must be absolute or start with '~/'", c.LogFile)
	}
	return nil
}

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	return data, nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
