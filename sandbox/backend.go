package sandbox

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// Invocation is a fully built command for one script run.
type Invocation struct {
	Args []string
	Dir  string
	// Cleanup, when set, is run after a timeout or cancellation to release
	// whatever the killed command left behind.
	Cleanup []string
}

// Backend turns a resolved script into the command that runs it.
type Backend interface {
	Name() string
	Command(target Target, args []string) Invocation
}

// LocalBackend runs the interpreter directly on the host, passing the script
// path exactly as the caller wrote it.
type LocalBackend struct {
	Interpreter string
}

// Name returns "local".
func (LocalBackend) Name() string { return "local" }

// Command builds [interpreter, file_path, args...] run from the working directory.
func (b LocalBackend) Command(target Target, args []string) Invocation {
	argv := make([]string, 0, 2+len(args))
	argv = append(argv, b.Interpreter, target.FilePath)
	argv = append(argv, args...)
	return Invocation{Args: argv, Dir: target.Root}
}

// Container engines supported by ContainerBackend.
const (
	EngineDocker = "docker"
	EnginePodman = "podman"
)

// ContainerWorkdir is where the working directory is mounted inside the
// container.
const ContainerWorkdir = "/workdir"

// ContainerBackend runs the interpreter in a throwaway container with the
// working directory bind-mounted, capabilities dropped and networking off
// unless enabled.
type ContainerBackend struct {
	Engine         string
	Image          string
	Interpreter    string
	MemoryMB       int
	NetworkEnabled bool

	// newName is swapped in tests.
	newName func() string
}

// NewContainerBackend creates a ContainerBackend for engine ("docker" or "podman").
func NewContainerBackend(engine, image, interpreter string, memoryMB int, network bool) (*ContainerBackend, error) {
	if engine != EngineDocker && engine != EnginePodman {
		return nil, fmt.Errorf("unsupported container engine: %s", engine)
	}
	return &ContainerBackend{
		Engine:         engine,
		Image:          image,
		Interpreter:    interpreter,
		MemoryMB:       memoryMB,
		NetworkEnabled: network,
		newName:        func() string { return "scriptbox-" + uuid.NewString() },
	}, nil
}

// Name returns the container engine, "docker" or "podman".
func (b *ContainerBackend) Name() string { return b.Engine }

// Command builds an "<engine> run" invocation under a fresh container name and
// a matching "<engine> stop" cleanup.
func (b *ContainerBackend) Command(target Target, args []string) Invocation {
	name := b.newName()

	network := "none"
	if b.NetworkEnabled {
		network = "bridge"
	}

	argv := []string{
		b.Engine, "run",
		"--rm",
		"--name", name,
		"-v", fmt.Sprintf("%s:%s", target.Root, ContainerWorkdir),
		"--workdir", ContainerWorkdir,
		"--memory", fmt.Sprintf("%dm", b.MemoryMB),
		"--network", network,
		"--security-opt", "no-new-privileges:true",
		"--cap-drop", "ALL",
		b.Image,
		b.Interpreter,
		// host-absolute paths mean nothing inside the container
		filepath.ToSlash(target.Rel),
	}
	argv = append(argv, args...)

	return Invocation{
		Args:    argv,
		Dir:     target.Root,
		Cleanup: []string{b.Engine, "stop", name},
	}
}
