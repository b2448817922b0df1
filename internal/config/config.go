// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"metapdf/internal/paths"
)

// Config represents the application configuration
type Config struct {
	// Default settings, overridable per run by command line flags
	Defaults struct {
		Format  string `yaml:"format"`
		NoColor bool   `yaml:"no_color"`
		Verbose bool   `yaml:"verbose"`
		Strict  bool   `yaml:"strict"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	config.Defaults.Format = "csv"
	config.Defaults.NoColor = false
	config.Defaults.Verbose = false
	config.Defaults.Strict = false

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if config.Defaults.Format == "" {
		config.Defaults.Format = "csv"
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to the
// built-in defaults when the file is missing or unparseable.
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile looks for a config file in standard locations and returns
// the first one that exists, or "" if none was found.
func FindConfigFile() string {
	candidates := []string{
		"metapdf.yaml",
		".metapdf.yaml",
		paths.GetConfigFile(),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
