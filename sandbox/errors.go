package sandbox

import (
	"errors"
	"fmt"
	"time"
)

// Validation failures. Each is wrapped in a *PathError.
var (
	ErrOutsideWorkdir = errors.New("path is outside the permitted working directory")
	ErrNotFound       = errors.New("file not found")
	ErrWrongType      = errors.New("wrong file type")
)

// PathError reports a file path rejected before anything was executed.
type PathError struct {
	FilePath string
	Err      error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.FilePath, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// TimeoutError reports a script killed because it ran past its deadline.
type TimeoutError struct {
	Command []string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command %q timed out after %s", e.Command, e.Timeout)
}
