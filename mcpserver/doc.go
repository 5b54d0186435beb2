// Package mcpserver provides the Model Context Protocol (MCP) server implementation.
//
// The mcpserver package exposes the run_python_file tool over MCP using the
// mark3labs/mcp-go library. Callers supply file_path and optional args; the
// working directory is fixed by configuration so a model can never choose
// its own sandbox root.
//
// The server supports both stdio and HTTP transports as configured by the
// application configuration.
//
// Usage:
//
//	srv, err := mcpserver.New(cfg, logger, runner)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = srv.ServeStdio() // or srv.ServeHTTP()
package mcpserver
