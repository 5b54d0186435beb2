package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Defaults applied by NewRunner when Config leaves a field empty.
const (
	DefaultInterpreter = "python3"
	DefaultExtension   = ".py"
	DefaultLanguage    = "Python"
	DefaultTimeout     = 30 * time.Second

	// DefaultWaitDelay bounds how long RealCommandRunner waits for output
	// pipes after the process has been killed.
	DefaultWaitDelay = 2 * time.Second
)

// Request holds the parameters of a single script execution
type Request struct {
	WorkingDirectory string
	FilePath         string
	Args             []string
}

// Result holds the captured outcome of a script execution
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Config holds runner configuration
type Config struct {
	Interpreter string
	Extension   string
	Language    string
	Timeout     time.Duration

	// MaxOutputBytes caps each captured stream; zero means no cap.
	MaxOutputBytes int
}

func (c Config) withDefaults() Config {
	if c.Interpreter == "" {
		c.Interpreter = DefaultInterpreter
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// CommandRunner defines an interface for executing system commands
type CommandRunner interface {
	RunCommand(ctx context.Context, dir string, args []string) (stdout, stderr string, exitCode int, err error)
}

// RealCommandRunner implements CommandRunner using os/exec. Arguments are
// handed to the process as-is; no shell is involved.
type RealCommandRunner struct {
	WaitDelay time.Duration
}

// RunCommand executes args[0] with the remaining arguments in dir. A non-zero
// exit status is reported through exitCode, not err.
func (r RealCommandRunner) RunCommand(ctx context.Context, dir string, args []string) (stdout, stderr string, exitCode int, err error) {
	if len(args) < 1 {
		return "", "", 0, errors.New("no command provided")
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // argv is built by a Backend, never by a shell
	cmd.Dir = dir
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return stdoutBuf.String(), stderrBuf.String(), 0, fmt.Errorf("failed to run %s: %w", args[0], err)
		}
		exitCode = exitErr.ExitCode()
	}

	return stdoutBuf.String(), stderrBuf.String(), exitCode, nil
}

// FileSystem defines the file system queries the runner needs
type FileSystem interface {
	FileExists(path string) (bool, error)
}

// RealFileSystem implements FileSystem using the os package
type RealFileSystem struct{}

// FileExists reports whether path exists. Directories count.
func (RealFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}
