package sandbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// cleanupTimeout bounds the cleanup command run after a timeout or cancellation.
const cleanupTimeout = 10 * time.Second

// Runner validates and executes scripts inside a working directory
type Runner struct {
	logger    *zap.Logger
	config    Config
	backend   Backend
	cmdRunner CommandRunner
	fs        FileSystem
}

// RunnerOption defines a functional option for Runner
type RunnerOption func(*Runner)

// WithBackend sets the Backend used to build commands
func WithBackend(backend Backend) RunnerOption {
	return func(r *Runner) {
		r.backend = backend
	}
}

// WithCommandRunner sets the CommandRunner for Runner
func WithCommandRunner(cmdRunner CommandRunner) RunnerOption {
	return func(r *Runner) {
		r.cmdRunner = cmdRunner
	}
}

// WithFileSystem sets the FileSystem for Runner
func WithFileSystem(fs FileSystem) RunnerOption {
	return func(r *Runner) {
		r.fs = fs
	}
}

// NewRunner creates a Runner. Without options it executes locally through
// os/exec.
func NewRunner(logger *zap.Logger, config Config, opts ...RunnerOption) *Runner {
	config = config.withDefaults()
	r := &Runner{
		logger:    logger,
		config:    config,
		backend:   LocalBackend{Interpreter: config.Interpreter},
		cmdRunner: RealCommandRunner{},
		fs:        RealFileSystem{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Language returns the script kind named in result messages.
func (r *Runner) Language() string { return r.config.Language }

// RunPythonFile runs filePath inside workingDir and always returns a
// printable result; failures are rendered, never returned.
func (r *Runner) RunPythonFile(ctx context.Context, workingDir, filePath string, args ...string) string {
	res, err := r.Run(ctx, Request{
		WorkingDirectory: workingDir,
		FilePath:         filePath,
		Args:             args,
	})
	if err != nil {
		return FormatError(err, r.config.Language)
	}
	return FormatResult(res)
}

// Run validates req and executes the script. Validation failures are
// *PathError, expiry of the runner's own deadline is *TimeoutError and an ended
// caller context wraps ctx.Err(). A non-zero exit status is not an error.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	args := make([]string, len(req.Args))
	copy(args, req.Args)

	target, err := r.validate(req.WorkingDirectory, req.FilePath)
	if err != nil {
		r.logger.Warn("script rejected",
			zap.String("working_directory", req.WorkingDirectory),
			zap.String("file_path", req.FilePath),
			zap.Error(err))
		return Result{}, err
	}

	inv := r.backend.Command(target, args)

	r.logger.Info("running script",
		zap.String("backend", r.backend.Name()),
		zap.String("working_directory", target.Root),
		zap.String("file_path", target.FilePath),
		zap.Int("arg_count", len(args)),
		zap.Duration("timeout", r.config.Timeout))

	runCtx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, exitCode, err := r.cmdRunner.RunCommand(runCtx, inv.Dir, inv.Args)
	elapsed := time.Since(start)

	if runCtx.Err() != nil {
		r.cleanup(inv)
		// the caller's context ended first: cancellation or a shorter deadline
		if parentErr := ctx.Err(); parentErr != nil {
			r.logger.Warn("script cancelled",
				zap.String("file_path", target.FilePath),
				zap.Duration("elapsed", elapsed),
				zap.Error(parentErr))
			return Result{}, fmt.Errorf("script cancelled: %w", parentErr)
		}
		r.logger.Error("script timed out",
			zap.String("file_path", target.FilePath),
			zap.Duration("elapsed", elapsed))
		return Result{}, &TimeoutError{Command: inv.Args, Timeout: r.config.Timeout}
	}
	if err != nil {
		r.logger.Error("script execution failed",
			zap.String("file_path", target.FilePath),
			zap.Error(err))
		return Result{}, err
	}

	r.logger.Info("script finished",
		zap.String("file_path", target.FilePath),
		zap.Int("exit_code", exitCode),
		zap.Int("stdout_len", len(stdout)),
		zap.Int("stderr_len", len(stderr)),
		zap.Duration("elapsed", elapsed))

	return Result{
		Stdout:   truncateOutput(stdout, r.config.MaxOutputBytes),
		Stderr:   truncateOutput(stderr, r.config.MaxOutputBytes),
		ExitCode: exitCode,
	}, nil
}

// validate applies the containment, existence and extension checks in that
// order.
func (r *Runner) validate(workingDir, filePath string) (Target, error) {
	target, err := Resolve(workingDir, filePath)
	if err != nil {
		return Target{}, err
	}

	exists, err := r.fs.FileExists(target.Path)
	if err != nil {
		r.logger.Debug("stat failed, treating as missing", zap.String("path", target.Path), zap.Error(err))
	}
	if !exists {
		return Target{}, &PathError{FilePath: filePath, Err: ErrNotFound}
	}

	if !strings.HasSuffix(filePath, r.config.Extension) {
		return Target{}, &PathError{FilePath: filePath, Err: ErrWrongType}
	}

	return target, nil
}

func (r *Runner) cleanup(inv Invocation) {
	if len(inv.Cleanup) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()
	if _, stderr, code, err := r.cmdRunner.RunCommand(ctx, inv.Dir, inv.Cleanup); err != nil || code != 0 {
		r.logger.Warn("cleanup after timeout failed",
			zap.Strings("command", inv.Cleanup),
			zap.Int("exit_code", code),
			zap.String("stderr", stderr),
			zap.Error(err))
	}
}
