package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPort is used when neither a flag, the PORT environment variable,
// nor a config file specifies one.
const DefaultPort = 5000

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "mockapi.yaml"

// Config represents the mockapi configuration
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Server  ServerConfig  `yaml:"server"`
}

// ServiceConfig contains service identity settings
type ServiceConfig struct {
	Name string `yaml:"name"`
}

// ServerConfig contains listener settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			Name: "api",
		},
		Server: ServerConfig{
			// The fixture only ever binds the loopback interface.
			Host: "127.0.0.1",
			Port: DefaultPort,
		},
	}
}

// Load reads and parses a mockapi.yaml file
func Load(path string) (*Config, error) {
	// Clean and validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault tries to load mockapi.yaml from the working directory,
// falls back to default
func LoadOrDefault() *Config {
	cfg, err := Load(filepath.Join(".", DefaultConfigFile))
	if err != nil {
		// Config file doesn't exist or is invalid, use defaults
		return Default()
	}
	return cfg
}

// Save writes the config to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolvePort applies the port override chain on top of the config file
// value: a non-zero flag value wins, then the PORT environment variable,
// then whatever the file (or default) already holds.
func (c *Config) ResolvePort(flagPort int) error {
	if flagPort != 0 {
		c.Server.Port = flagPort
		return ValidatePort(c.Server.Port)
	}

	if env := os.Getenv("PORT"); env != "" {
		port, err := strconv.Atoi(env)
		if err != nil {
			return fmt.Errorf("invalid PORT value %q: %w", env, err)
		}
		c.Server.Port = port
	}

	return ValidatePort(c.Server.Port)
}

// ValidatePort rejects ports outside the valid TCP range.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}
	return nil
}
