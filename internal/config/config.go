// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the scanner's YAML configuration with profile
// support. Missing files fall back to defaults so the CLI always starts.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	// Default settings applied when no profile is selected.
	Defaults struct {
		Format  string `yaml:"format"`
		Checks  string `yaml:"checks"`
		Column  string `yaml:"column"`
		Workers int    `yaml:"workers"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Detection tunables for the engine.
	Detection struct {
		PhoneRegion         string `yaml:"phone_region"`
		HighVolumeThreshold int    `yaml:"high_volume_threshold"`
		MinNameWords        int    `yaml:"min_name_words"`
	} `yaml:"detection"`

	// Recognizer configures the entity-recognition sidecar.
	Recognizer struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"recognizer"`

	// Storage configures the embedded report store.
	Storage struct {
		Path string `yaml:"path"`
	} `yaml:"storage"`

	// Suppressions points at the false-positive rule file.
	Suppressions struct {
		File string `yaml:"file"`
	} `yaml:"suppressions"`

	// Profiles for different scanning scenarios.
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile overrides a subset of defaults for a named scenario.
type Profile struct {
	Format      string `yaml:"format"`
	Checks      string `yaml:"checks"`
	Column      string `yaml:"column"`
	Workers     int    `yaml:"workers"`
	NoColor     bool   `yaml:"no_color"`
	Description string `yaml:"description"`
}

// defaultConfigNames are probed in order when no -config flag is given.
var defaultConfigNames = []string{"lgpd-scan.yaml", ".lgpd-scan.yaml"}

// LoadConfig loads configuration from path, or defaults when path is "".
func LoadConfig(path string) (*Config, error) {
	config := &Config{Profiles: make(map[string]Profile)}

	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"
	config.Defaults.Column = "Texto Mascarado"
	config.Defaults.Workers = 0 // 0 means GOMAXPROCS
	config.Detection.PhoneRegion = "BR"
	config.Detection.HighVolumeThreshold = 10
	config.Detection.MinNameWords = 2
	config.Recognizer.TimeoutSeconds = 10

	config.Profiles["ci"] = Profile{
		Format:      "json",
		Checks:      "CPF,CNPJ,CREDIT_CARD,EMAIL,PHONE",
		NoColor:     true,
		Description: "Machine-readable output with the document and contact checks",
	}

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return config, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// LoadConfigOrDefault loads path and silently falls back to defaults on any
// error, the behavior the CLI wants on startup.
func LoadConfigOrDefault(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		fresh, _ := LoadConfig("")
		return fresh
	}
	return cfg
}

// FindConfigFile probes the working directory and the user home directory
// for a config file, returning "" when none exists.
func FindConfigFile() string {
	for _, name := range defaultConfigNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range defaultConfigNames {
			candidate := filepath.Join(home, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}

// ApplyProfile overlays the named profile onto the defaults. Unknown
// profile names are an error so typos don't silently scan with defaults.
func (c *Config) ApplyProfile(name string) error {
	if name == "" {
		return nil
	}
	profile, ok := c.Profiles[name]
	if !ok {
		return fmt.Errorf("unknown profile %q", name)
	}
	if profile.Format != "" {
		c.Defaults.Format = profile.Format
	}
	if profile.Checks != "" {
		c.Defaults.Checks = profile.Checks
	}
	if profile.Column != "" {
		c.Defaults.Column = profile.Column
	}
	if profile.Workers > 0 {
		c.Defaults.Workers = profile.Workers
	}
	if profile.NoColor {
		c.Defaults.NoColor = true
	}
	return nil
}
