// Package sandbox runs scripts confined to a working directory.
//
// A Runner resolves a caller-supplied relative path against a permitted root,
// rejects anything that escapes the root, does not exist or lacks the
// expected script extension, then executes the script through a Backend with
// a hard timeout. The outcome is rendered into a single human-readable string
// suitable as a tool result for an LLM agent.
//
// Backends:
//   - LocalBackend runs the interpreter directly on the host.
//   - ContainerBackend runs it inside a throwaway Docker or Podman container
//     with the working directory mounted at /workdir.
//
// Usage:
//
//	runner := sandbox.NewRunner(logger, sandbox.Config{Interpreter: "python3"})
//	out := runner.RunPythonFile(ctx, "/srv/scripts", "report.py", "--verbose")
//	fmt.Println(out)
package sandbox
