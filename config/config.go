package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. SCRIPTBOX_RUNNER_TIMEOUT_SEC.
const EnvPrefix = "SCRIPTBOX"

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Runner  RunnerConfig  `mapstructure:"runner"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Transport string `mapstructure:"transport"`
	HTTPPort  int    `mapstructure:"http_port"`
}

// RunnerConfig holds script runner configuration
type RunnerConfig struct {
	WorkingDirectory string `mapstructure:"working_directory"`
	Backend          string `mapstructure:"backend"`
	Interpreter      string `mapstructure:"interpreter"`
	Extension        string `mapstructure:"extension"`
	Language         string `mapstructure:"language"`
	TimeoutSec       int    `mapstructure:"timeout_sec"`
	MaxOutputBytes   int    `mapstructure:"max_output_bytes"`

	// Container backends only.
	Image          string `mapstructure:"image"`
	MemoryMB       int    `mapstructure:"memory_mb"`
	NetworkEnabled bool   `mapstructure:"network_enabled"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Mode   string `mapstructure:"mode"`
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// New loads the configuration from config.yaml in the working directory or
// ./config, falling back to defaults when no file exists.
func New() (*Config, error) {
	return Load("")
}

// Load reads configuration from path, or searches the default locations when
// path is empty. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// If config file not found, continue with defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.http_port", 8080)

	v.SetDefault("runner.working_directory", ".")
	v.SetDefault("runner.backend", "local")
	v.SetDefault("runner.interpreter", "python3")
	v.SetDefault("runner.extension", ".py")
	v.SetDefault("runner.language", "Python")
	v.SetDefault("runner.timeout_sec", 30)
	v.SetDefault("runner.max_output_bytes", 1<<20)
	v.SetDefault("runner.image", "python:3.11-slim")
	v.SetDefault("runner.memory_mb", 512)
	v.SetDefault("runner.network_enabled", false)

	v.SetDefault("logging.mode", "production")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output", "stderr")
}

var (
	validBackends = map[string]bool{"local": true, "docker": true, "podman": true}
	validModes    = map[string]bool{"production": true, "development": true}
	validLevels   = map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
		"dpanic": true, "panic": true, "fatal": true,
	}
)

// validate ensures the configuration is valid
func (c *Config) validate() error {
	if c.Server.Transport != "stdio" && c.Server.Transport != "http" {
		return fmt.Errorf("invalid server.transport: %s, must be 'stdio' or 'http'", c.Server.Transport)
	}

	if c.Server.Transport == "http" && (c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535) {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}

	if !validBackends[c.Runner.Backend] {
		return fmt.Errorf("unsupported runner.backend: %s", c.Runner.Backend)
	}

	if c.Runner.WorkingDirectory == "" {
		return errors.New("runner.working_directory must not be empty")
	}

	if c.Runner.Interpreter == "" {
		return errors.New("runner.interpreter must not be empty")
	}

	if !strings.HasPrefix(c.Runner.Extension, ".") {
		return fmt.Errorf("runner.extension must start with '.', got: %q", c.Runner.Extension)
	}

	if c.Runner.TimeoutSec <= 0 {
		return fmt.Errorf("runner.timeout_sec must be positive, got: %d", c.Runner.TimeoutSec)
	}

	if c.Runner.MaxOutputBytes < 0 {
		return fmt.Errorf("runner.max_output_bytes must not be negative, got: %d", c.Runner.MaxOutputBytes)
	}

	if c.Runner.Backend != "local" {
		if c.Runner.Image == "" {
			return fmt.Errorf("runner.image is required for the %s backend", c.Runner.Backend)
		}
		if c.Runner.MemoryMB <= 0 {
			return fmt.Errorf("runner.memory_mb must be positive, got: %d", c.Runner.MemoryMB)
		}
	}

	if !validModes[c.Logging.Mode] {
		return fmt.Errorf("invalid logging.mode: %s, must be 'production' or 'development'", c.Logging.Mode)
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	return nil
}

// GetTimeout returns the execution timeout as a duration
func (c *Config) GetTimeout() time.Duration {
	return time.Duration(c.Runner.TimeoutSec) * time.Second
}
