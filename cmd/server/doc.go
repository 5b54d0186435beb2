// Package main is the entry point for the scriptbox server and CLI.
//
// scriptbox runs scripts confined to a working directory on behalf of LLM
// agents. "serve" exposes the run_python_file tool over MCP (stdio or HTTP),
// "run" executes a single script from the command line and "describe" prints
// the tool declaration.
//
// The serve command uses Uber's fx framework for dependency injection and
// lifecycle management, with zap for structured logging and viper for
// configuration.
package main
