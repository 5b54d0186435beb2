package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Transport: "http",
			HTTPPort:  8080,
		},
		Runner: RunnerConfig{
			WorkingDirectory: ".",
			Backend:          "local",
			Interpreter:      "python3",
			Extension:        ".py",
			Language:         "Python",
			TimeoutSec:       30,
			MaxOutputBytes:   1 << 20,
			Image:            "python:3.11-slim",
			MemoryMB:         512,
		},
		Logging: LoggingConfig{
			Mode:  "production",
			Level: "info",
		},
	}
}

func TestConfigValidation(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		require.NoError(t, validConfig().validate())
	})

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"InvalidServerTransport", func(c *Config) { c.Server.Transport = "invalid" }, "invalid server.transport"},
		{"InvalidHTTPPort", func(c *Config) { c.Server.HTTPPort = 0 }, "invalid server.http_port"},
		{"InvalidBackend", func(c *Config) { c.Runner.Backend = "kubernetes" }, "unsupported runner.backend"},
		{"EmptyWorkingDirectory", func(c *Config) { c.Runner.WorkingDirectory = "" }, "runner.working_directory"},
		{"EmptyInterpreter", func(c *Config) { c.Runner.Interpreter = "" }, "runner.interpreter"},
		{"ExtensionWithoutDot", func(c *Config) { c.Runner.Extension = "py" }, "runner.extension"},
		{"InvalidTimeout", func(c *Config) { c.Runner.TimeoutSec = 0 }, "runner.timeout_sec must be positive"},
		{"NegativeMaxOutput", func(c *Config) { c.Runner.MaxOutputBytes = -1 }, "runner.max_output_bytes"},
		{"DockerWithoutImage", func(c *Config) {
			c.Runner.Backend = "docker"
			c.Runner.Image = ""
		}, "runner.image is required"},
		{"PodmanWithoutMemory", func(c *Config) {
			c.Runner.Backend = "podman"
			c.Runner.MemoryMB = 0
		}, "runner.memory_mb must be positive"},
		{"InvalidLoggingMode", func(c *Config) { c.Logging.Mode = "invalid_mode" }, "invalid logging.mode"},
		{"InvalidLogLevel", func(c *Config) { c.Logging.Level = "invalid_level" }, "invalid logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("StdioIgnoresHTTPPort", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Transport = "stdio"
		cfg.Server.HTTPPort = 0
		require.NoError(t, cfg.validate())
	})

	t.Run("ContainerBackendWithImage", func(t *testing.T) {
		cfg := validConfig()
		cfg.Runner.Backend = "docker"
		require.NoError(t, cfg.validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("DefaultsWhenNoFile", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "stdio", cfg.Server.Transport)
		assert.Equal(t, "local", cfg.Runner.Backend)
		assert.Equal(t, "python3", cfg.Runner.Interpreter)
		assert.Equal(t, ".py", cfg.Runner.Extension)
		assert.Equal(t, "Python", cfg.Runner.Language)
		assert.Equal(t, 30*time.Second, cfg.GetTimeout())
		assert.Equal(t, "stderr", cfg.Logging.Output)
	})

	t.Run("FromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scriptbox.yaml")
		content := `
server:
  transport: http
  http_port: 9090
runner:
  working_directory: /srv/scripts
  timeout_sec: 5
logging:
  mode: development
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http", cfg.Server.Transport)
		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, "/srv/scripts", cfg.Runner.WorkingDirectory)
		assert.Equal(t, 5*time.Second, cfg.GetTimeout())
		assert.Equal(t, "development", cfg.Logging.Mode)
		// untouched keys keep their defaults
		assert.Equal(t, "python3", cfg.Runner.Interpreter)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("SCRIPTBOX_RUNNER_TIMEOUT_SEC", "7")
		t.Setenv("SCRIPTBOX_RUNNER_INTERPRETER", "python")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Runner.TimeoutSec)
		assert.Equal(t, "python", cfg.Runner.Interpreter)
	})

	t.Run("InvalidFileValues", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("runner:\n  backend: chroot\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation error")
	})
}
