package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default name of the config file
const DefaultConfigFile = "config.yaml"

const (
	defaultServer    = "http://localhost:3000"
	defaultAPIPrefix = "/api"
)

// Config represents the configuration for the resource CLI
type Config struct {
	// Version of the configuration file format
	Version string `yaml:"version"`
	// Server is the URL and port of the resource server
	Server string `yaml:"server"`
	// APIPrefix is the path the resource routes are mounted under
	APIPrefix string `yaml:"api_prefix"`
	// PriceFeedURL is the price feed used by the swap command
	PriceFeedURL string `yaml:"price_feed_url,omitempty"`
}

var config *Config

// DefaultConfig is used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Version:   "1.0",
		Server:    defaultServer,
		APIPrefix: defaultAPIPrefix,
	}
}

// GetDefaultConfigPath returns the default path for the config file
// It uses the OS-specific config directory (e.g., ~/.config/resourcesrv on Linux)
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "resourcesrv", DefaultConfigFile), nil
}

// LoadConfig loads the configuration from the specified file
// If no file is specified, it uses the default config location
func LoadConfig(file string) error {
	if file == "" {
		var err error
		file, err = GetDefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get default config path: %w", err)
		}
	}

	yamlStr, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read config file: %w", err)
	}

	c := DefaultConfig()
	if err = yaml.Unmarshal(yamlStr, c); err != nil {
		return fmt.Errorf("unable to parse config file: %w", err)
	}

	// Validate required fields
	if c.Server == "" {
		return errors.New("server is required")
	}
	// Validate server port format
	if !strings.Contains(strings.TrimPrefix(strings.TrimPrefix(c.Server, "http://"), "https://"), ":") {
		return errors.New("server must include port number")
	}

	// Morph the server URL before storing
	c.Server = MorphServer(c.Server)
	c.APIPrefix = normalizePrefix(c.APIPrefix)

	config = c
	return nil
}

// GetConfig returns the current configuration
func GetConfig() *Config {
	if config == nil {
		config = DefaultConfig()
	}
	return config
}

// SetConfig replaces the active configuration.
func SetConfig(c *Config) {
	config = c
}

// WriteConfig writes the current configuration to the specified file
func (cfg *Config) WriteConfig(file string) error {
	if file == "" {
		return errors.New("file path cannot be empty")
	}

	err := os.MkdirAll(filepath.Dir(file), os.ModePerm)
	if err != nil {
		return fmt.Errorf("unable to create config directory: %w", err)
	}

	yamlStr, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("unable to generate configuration: %w", err)
	}

	err = os.WriteFile(file, yamlStr, os.FileMode(0644))
	if err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return nil
}

// Print prints the current configuration in a human-readable format
func (cfg *Config) Print() {
	fmt.Printf("Server: %s\n", cfg.Server)
	fmt.Printf("API prefix: %s\n", cfg.APIPrefix)
	if cfg.PriceFeedURL != "" {
		fmt.Printf("Price feed: %s\n", cfg.PriceFeedURL)
	}
}

// MorphServer ensures the server URL is properly formatted
// Adds http:// prefix if missing and removes trailing slashes
func MorphServer(server string) string {
	if server == "" {
		return server
	}

	// Remove any trailing slashes
	server = strings.TrimRight(server, "/")

	// Add http:// if no protocol is specified
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "http://" + server
	}

	return server
}

func normalizePrefix(prefix string) string {
	if p := strings.Trim(prefix, "/"); p != "" {
		return "/" + p
	}
	return ""
}

// GetServerURL returns the properly formatted server URL
func (cfg *Config) GetServerURL() string {
	return MorphServer(cfg.Server)
}
