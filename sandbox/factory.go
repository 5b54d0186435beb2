package sandbox

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/isdmx/scriptbox/config"
)

// NewRunnerFromConfig creates a Runner whose backend follows cfg.Runner.Backend
func NewRunnerFromConfig(logger *zap.Logger, cfg *config.Config) (*Runner, error) {
	rc := cfg.Runner
	runnerConfig := Config{
		Interpreter:    rc.Interpreter,
		Extension:      rc.Extension,
		Language:       rc.Language,
		Timeout:        cfg.GetTimeout(),
		MaxOutputBytes: rc.MaxOutputBytes,
	}

	switch rc.Backend {
	case "local", "":
		return NewRunner(logger, runnerConfig), nil
	case EngineDocker, EnginePodman:
		backend, err := NewContainerBackend(rc.Backend, rc.Image, runnerConfig.withDefaults().Interpreter, rc.MemoryMB, rc.NetworkEnabled)
		if err != nil {
			return nil, err
		}
		return NewRunner(logger, runnerConfig, WithBackend(backend)), nil
	default:
		return nil, fmt.Errorf("unsupported backend: %s", rc.Backend)
	}
}
